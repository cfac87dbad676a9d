package crosshair

import (
	"workshop/internal/graphics"
	renderer "workshop/internal/graphics/renderer"
	"workshop/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var Vertices = []float32{
	-0.02, 0.0, 0.0,
	0.02, 0.0, 0.0,
	0.0, -0.02, 0.0,
	0.0, 0.02, 0.0,
}

var (
	idleColor  = mgl32.Vec4{1, 1, 1, 0.8}
	hoverColor = mgl32.Vec4{1, 0.85, 0.4, 1}
)

// Crosshair implements crosshair rendering
type Crosshair struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
}

func NewCrosshair() *Crosshair {
	return &Crosshair{}
}

func (c *Crosshair) Init() error {
	var err error
	c.shader, err = graphics.NewShader("line")
	if err != nil {
		return err
	}
	c.setupCrosshairVAO()
	return nil
}

func (c *Crosshair) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderCrosshair")()

	color := idleColor
	if ctx.Player.HasHovered {
		color = hoverColor
	}
	c.renderCrosshair(ctx.Camera.AspectRatio, color)
}

func (c *Crosshair) SetViewport(width, height int) {}

func (c *Crosshair) Dispose() {
	if c.vao != 0 {
		gl.DeleteVertexArrays(1, &c.vao)
	}
	if c.vbo != 0 {
		gl.DeleteBuffers(1, &c.vbo)
	}
	if c.shader != nil {
		c.shader.Delete()
	}
}

func (c *Crosshair) setupCrosshairVAO() {
	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)

	gl.GenBuffers(1, &c.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(Vertices)*4, gl.Ptr(Vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.BindVertexArray(0)
}

func (c *Crosshair) renderCrosshair(aspectRatio float32, color mgl32.Vec4) {
	c.shader.Use()
	// keep the arms square on wide windows
	c.shader.SetMatrix4("model", mgl32.Scale3D(1/aspectRatio, 1, 1))
	c.shader.SetMatrix4("view", mgl32.Ident4())
	c.shader.SetMatrix4("projection", mgl32.Ident4())
	c.shader.SetVector4("color", color)

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.BindVertexArray(c.vao)
	gl.LineWidth(1.0)
	gl.DrawArrays(gl.LINES, 0, 4)
	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}
