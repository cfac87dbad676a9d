package ui

import (
	"workshop/internal/graphics"
	renderer "workshop/internal/graphics/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// floats per vertex: position xy, color rgba
const uiVertexFloats = 6

// UI batches screen-space rectangles and draws text through a FontRenderer.
// Coordinates are window pixels with a top-left origin.
type UI struct {
	shader     *graphics.Shader
	font       *graphics.FontRenderer
	vao        uint32
	vbo        uint32
	capacity   int
	verts      []float32
	projection mgl32.Mat4
}

func NewUI() *UI {
	return &UI{projection: mgl32.Ortho(0, 900, 600, 0, -1, 1)}
}

func (u *UI) Init() error {
	var err error
	u.shader, err = graphics.NewShader("ui")
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &u.vao)
	gl.GenBuffers(1, &u.vbo)
	gl.BindVertexArray(u.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, u.vbo)
	u.capacity = 64 * 6 * uiVertexFloats
	gl.BufferData(gl.ARRAY_BUFFER, u.capacity*4, nil, gl.DYNAMIC_DRAW)
	stride := int32(uiVertexFloats * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, gl.PtrOffset(2*4))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return nil
}

func (u *UI) SetFontRenderer(fr *graphics.FontRenderer) {
	u.font = fr
}

// Render is a no-op; the HUD and menus drive drawing through BeginFrame and Flush.
func (u *UI) Render(ctx renderer.RenderContext) {}

func (u *UI) SetViewport(width, height int) {
	u.projection = mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
	if u.font != nil {
		u.font.SetViewport(width, height)
	}
}

func (u *UI) Dispose() {
	if u.vao != 0 {
		gl.DeleteVertexArrays(1, &u.vao)
	}
	if u.vbo != 0 {
		gl.DeleteBuffers(1, &u.vbo)
	}
	if u.shader != nil {
		u.shader.Delete()
	}
}

func (u *UI) BeginFrame() {
	u.verts = u.verts[:0]
}

// DrawFilledRect queues a rectangle; it is drawn on the next Flush or DrawText.
func (u *UI) DrawFilledRect(x, y, w, h float32, color mgl32.Vec3, alpha float32) {
	r, g, b := color.X(), color.Y(), color.Z()
	u.verts = append(u.verts,
		x, y, r, g, b, alpha,
		x+w, y, r, g, b, alpha,
		x+w, y+h, r, g, b, alpha,
		x, y, r, g, b, alpha,
		x+w, y+h, r, g, b, alpha,
		x, y+h, r, g, b, alpha,
	)
}

// DrawText draws on top of everything queued so far.
func (u *UI) DrawText(text string, x, y, scale float32, color mgl32.Vec3) {
	if u.font == nil {
		return
	}
	u.Flush()
	u.font.Render(text, x, y, scale, color)
}

func (u *UI) MeasureText(text string, scale float32) (float32, float32) {
	if u.font == nil {
		return 0, 0
	}
	return u.font.Measure(text, scale)
}

func (u *UI) Flush() {
	if len(u.verts) == 0 {
		return
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	u.shader.Use()
	u.shader.SetMatrix4("projection", u.projection)

	gl.BindVertexArray(u.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, u.vbo)
	size := len(u.verts)
	if size > u.capacity {
		u.capacity = size * 2
		gl.BufferData(gl.ARRAY_BUFFER, u.capacity*4, nil, gl.DYNAMIC_DRAW)
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size*4, gl.Ptr(u.verts))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(size/uiVertexFloats))
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	u.verts = u.verts[:0]
}
