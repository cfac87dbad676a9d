package tools

import (
	"math"

	"workshop/internal/carve"
	"workshop/internal/graphics"
	renderer "workshop/internal/graphics/renderer"
	"workshop/internal/mesh"
	"workshop/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	woodColor    = mgl32.Vec3{0.6, 0.42, 0.25}
	steelColor   = mgl32.Vec3{0.72, 0.74, 0.78}
	bristleColor = mgl32.Vec3{0.18, 0.14, 0.1}
	headColor    = mgl32.Vec3{0.5, 0.33, 0.2}
)

type part struct {
	gpu   *graphics.GPUMesh
	local mgl32.Mat4
	color mgl32.Vec3
}

// Tools draws the tools lying in the workshop. Held tools are skipped here and
// drawn in view space by the hand renderable through DrawTool.
type Tools struct {
	shader *graphics.Shader
	kits   map[carve.ToolKind][]part
	owned  []*graphics.GPUMesh
}

func NewTools() *Tools {
	return &Tools{kits: make(map[carve.ToolKind][]part)}
}

// lying turns a +Y cylinder so it runs along +X, centred at (x, y).
func lying(x, y float32) mgl32.Mat4 {
	return mgl32.Translate3D(x, y, 0).Mul4(mgl32.HomogRotate3DZ(-math.Pi / 2))
}

func (t *Tools) upload(m *mesh.Mesh) *graphics.GPUMesh {
	g := graphics.UploadMesh(m, false)
	t.owned = append(t.owned, g)
	return g
}

func (t *Tools) Init() error {
	var err error
	t.shader, err = graphics.NewShader("lit")
	if err != nil {
		return err
	}

	// Shapes match scene.ToolCollider: along +X, underside at y=0.
	t.kits[carve.Chisel] = []part{
		{t.upload(mesh.NewCylinder(0.02, 0.022, 0.14, 12)), lying(-0.05, 0.022), woodColor},
		{t.upload(mesh.NewBox(0.1, 0.008, 0.03, 1)), mgl32.Translate3D(0.07, 0.022, 0), steelColor},
	}
	t.kits[carve.Brush] = []part{
		{t.upload(mesh.NewCylinder(0.012, 0.012, 0.16, 10)), lying(-0.03, 0.015), woodColor},
		{t.upload(mesh.NewBox(0.06, 0.03, 0.035, 1)), mgl32.Translate3D(0.08, 0.018, 0), bristleColor},
	}
	t.kits[carve.Mallet] = []part{
		{t.upload(mesh.NewCylinder(0.014, 0.014, 0.22, 10)), lying(-0.04, 0.04), woodColor},
		{t.upload(mesh.NewBox(0.08, 0.08, 0.14, 1)), mgl32.Translate3D(0.11, 0.04, 0), headColor},
	}
	return nil
}

// DrawTool draws one tool with the given model matrix. The lit shader must be
// bound via graphics.UseLit.
func (t *Tools) DrawTool(shader *graphics.Shader, tool *carve.Tool, model mgl32.Mat4) {
	shade := float32(1)
	if tool.Broken() {
		shade = 0.45
	}
	for _, p := range t.kits[tool.Kind] {
		graphics.DrawLit(shader, p.gpu, model.Mul4(p.local), p.color.Mul(shade))
	}
}

func (t *Tools) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderTools")()

	graphics.UseLit(t.shader, ctx.View, ctx.Proj)
	for _, v := range ctx.Scene.Tools() {
		if v.Held {
			continue
		}
		t.DrawTool(t.shader, v.Tool, v.Transform.Matrix())
	}
}

func (t *Tools) SetViewport(width, height int) {}

func (t *Tools) Dispose() {
	for _, g := range t.owned {
		g.Delete()
	}
	t.owned = nil
	if t.shader != nil {
		t.shader.Delete()
	}
}
