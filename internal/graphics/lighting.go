package graphics

import "github.com/go-gl/mathgl/mgl32"

// Workshop lighting shared by every lit pass.
var (
	LightDir         = mgl32.Vec3{0.4, 1.0, 0.3}
	Ambient  float32 = 0.35
)

// UseLit binds a "lit" shader with the frame camera and resets per-object state.
func UseLit(s *Shader, view, proj mgl32.Mat4) {
	s.Use()
	s.SetMatrix4("view", view)
	s.SetMatrix4("projection", proj)
	s.SetVector3("lightDir", LightDir)
	s.SetFloat("ambient", Ambient)
	s.SetFloat("opacity", 1)
	s.SetFloat("flash", 0)
}

// DrawLit draws m with the given model matrix and color.
func DrawLit(s *Shader, m *GPUMesh, model mgl32.Mat4, color mgl32.Vec3) {
	s.SetMatrix4("model", model)
	s.SetVector3("color", color)
	m.Draw()
}
