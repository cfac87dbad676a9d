package wireframe

import (
	"workshop/internal/graphics"
	renderer "workshop/internal/graphics/renderer"
	"workshop/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Wireframe outlines the pick box of the hovered entity.
type Wireframe struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
}

func NewWireframe() *Wireframe {
	return &Wireframe{}
}

func (w *Wireframe) Init() error {
	var err error
	w.shader, err = graphics.NewShader("line")
	if err != nil {
		return err
	}
	w.setupWireframeVAO()
	return nil
}

func (w *Wireframe) Render(ctx renderer.RenderContext) {
	p := ctx.Player
	if !p.HasHovered || ctx.Scene.IsHeld(p.Hovered) {
		return
	}
	lo, hi, ok := ctx.Scene.WorldBox(p.Hovered)
	if !ok {
		return
	}
	defer profiling.Track("renderer.renderHighlighted")()
	w.renderBox(lo, hi, ctx.View, ctx.Proj)
}

func (w *Wireframe) SetViewport(width, height int) {}

func (w *Wireframe) Dispose() {
	if w.vao != 0 {
		gl.DeleteVertexArrays(1, &w.vao)
	}
	if w.vbo != 0 {
		gl.DeleteBuffers(1, &w.vbo)
	}
	if w.shader != nil {
		w.shader.Delete()
	}
}

func (w *Wireframe) setupWireframeVAO() {
	gl.GenVertexArrays(1, &w.vao)
	gl.BindVertexArray(w.vao)

	gl.GenBuffers(1, &w.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, w.vbo)

	// unit cube edges
	vertices := []float32{
		// Front face
		-0.5, -0.5, 0.5, 0.5, -0.5, 0.5,
		0.5, -0.5, 0.5, 0.5, 0.5, 0.5,
		0.5, 0.5, 0.5, -0.5, 0.5, 0.5,
		-0.5, 0.5, 0.5, -0.5, -0.5, 0.5,

		// Back face
		-0.5, -0.5, -0.5, 0.5, -0.5, -0.5,
		0.5, -0.5, -0.5, 0.5, 0.5, -0.5,
		0.5, 0.5, -0.5, -0.5, 0.5, -0.5,
		-0.5, 0.5, -0.5, -0.5, -0.5, -0.5,

		// Connecting edges
		-0.5, -0.5, 0.5, -0.5, -0.5, -0.5,
		0.5, -0.5, 0.5, 0.5, -0.5, -0.5,
		0.5, 0.5, 0.5, 0.5, 0.5, -0.5,
		-0.5, 0.5, 0.5, -0.5, 0.5, -0.5,
	}

	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.BindVertexArray(0)
}

func (w *Wireframe) renderBox(lo, hi mgl32.Vec3, view, projection mgl32.Mat4) {
	w.shader.Use()
	w.shader.SetMatrix4("projection", projection)
	w.shader.SetMatrix4("view", view)

	center := lo.Add(hi).Mul(0.5)
	size := hi.Sub(lo).Mul(1.02)
	model := mgl32.Translate3D(center.X(), center.Y(), center.Z()).
		Mul4(mgl32.Scale3D(size.X(), size.Y(), size.Z()))

	w.shader.SetMatrix4("model", model)
	w.shader.SetVector4("color", mgl32.Vec4{0, 0, 0, 1})

	gl.BindVertexArray(w.vao)
	gl.LineWidth(1.0)
	gl.DrawArrays(gl.LINES, 0, 24)
	gl.BindVertexArray(0)
}
