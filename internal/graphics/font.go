package graphics

import (
	"errors"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"workshop/internal/graphics/fontatlas"
)

// FontRenderer draws text from a baked atlas in window pixels.
type FontRenderer struct {
	atlas      *fontatlas.Atlas
	texture    uint32
	shader     *Shader
	projection mgl32.Mat4
	vao        uint32
	vbo        uint32
	scratch    []float32
}

// NewFontRenderer bakes the default face at px pixels and uploads it.
func NewFontRenderer(px, width, height int) (*FontRenderer, error) {
	atlas, err := fontatlas.BakeDefault(px)
	if err != nil {
		return nil, err
	}
	if len(atlas.Glyphs) == 0 {
		return nil, errors.New("font atlas has no glyphs")
	}
	shader, err := NewShader("font")
	if err != nil {
		return nil, err
	}
	fr := &FontRenderer{
		atlas:   atlas,
		texture: UploadAlphaTexture(atlas.Image),
		shader:  shader,
	}
	fr.SetViewport(width, height)

	gl.GenVertexArrays(1, &fr.vao)
	gl.GenBuffers(1, &fr.vbo)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 256*fontatlas.FloatsPerGlyph*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 4, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return fr, nil
}

func (fr *FontRenderer) SetViewport(width, height int) {
	fr.projection = mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
}

func (fr *FontRenderer) LineHeight(scale float32) float32 {
	return fr.atlas.LineHeight * scale
}

// Measure returns the width and height text occupies at scale.
func (fr *FontRenderer) Measure(text string, scale float32) (float32, float32) {
	return fr.atlas.Measure(text, scale)
}

// Render draws text with its baseline at (x, y).
func (fr *FontRenderer) Render(text string, x, y, scale float32, color mgl32.Vec3) {
	fr.scratch = fr.atlas.Layout(fr.scratch[:0], text, x, y, scale)
	fr.draw(color)
}

// RenderLines draws several lines in one call, lineStep pixels apart.
func (fr *FontRenderer) RenderLines(lines []string, x, yStart, lineStep, scale float32, color mgl32.Vec3) {
	fr.scratch = fr.scratch[:0]
	y := yStart
	for _, line := range lines {
		fr.scratch = fr.atlas.Layout(fr.scratch, line, x, y, scale)
		y += lineStep
	}
	fr.draw(color)
}

func (fr *FontRenderer) draw(color mgl32.Vec3) {
	if len(fr.scratch) == 0 {
		return
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	fr.shader.Use()
	fr.shader.SetVector3("textColor", color)
	fr.shader.SetMatrix4("projection", fr.projection)
	fr.shader.SetInt("text", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, fr.texture)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)

	// orphan then fill to avoid stalling on a buffer still in use
	size := len(fr.scratch) * 4
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(fr.scratch))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(fr.scratch)/4))

	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
}

func (fr *FontRenderer) Dispose() {
	gl.DeleteTextures(1, &fr.texture)
	gl.DeleteVertexArrays(1, &fr.vao)
	gl.DeleteBuffers(1, &fr.vbo)
	fr.shader.Delete()
}
