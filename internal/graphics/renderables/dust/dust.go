package dust

import (
	"workshop/internal/graphics"
	renderer "workshop/internal/graphics/renderer"
	"workshop/internal/profiling"
	"workshop/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const floatsPerParticle = 4

// Dust draws carving debris as round points that fade with age.
type Dust struct {
	shader    *graphics.Shader
	vao, vbo  uint32
	capacity  int
	particles []scene.DustParticle
	verts     []float32
	Color     mgl32.Vec3
}

func NewDust() *Dust {
	return &Dust{Color: mgl32.Vec3{0.82, 0.7, 0.52}}
}

func (d *Dust) Init() error {
	var err error
	d.shader, err = graphics.NewShader("dust")
	if err != nil {
		return err
	}
	gl.GenVertexArrays(1, &d.vao)
	gl.GenBuffers(1, &d.vbo)
	gl.BindVertexArray(d.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	d.capacity = 256 * floatsPerParticle
	gl.BufferData(gl.ARRAY_BUFFER, d.capacity*4, nil, gl.STREAM_DRAW)
	stride := int32(floatsPerParticle * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.BindVertexArray(0)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	return nil
}

func (d *Dust) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderDust")()

	d.particles = ctx.Scene.Dust(d.particles[:0])
	if len(d.particles) == 0 {
		return
	}
	d.verts = d.verts[:0]
	for _, p := range d.particles {
		d.verts = append(d.verts, p.Position.X(), p.Position.Y(), p.Position.Z(), p.Fade)
	}

	d.shader.Use()
	d.shader.SetMatrix4("view", ctx.View)
	d.shader.SetMatrix4("projection", ctx.Proj)
	d.shader.SetFloat("pointSize", 24)
	d.shader.SetVector3("color", d.Color)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(false)
	gl.BindVertexArray(d.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	if len(d.verts) > d.capacity {
		d.capacity = len(d.verts) * 2
		gl.BufferData(gl.ARRAY_BUFFER, d.capacity*4, nil, gl.STREAM_DRAW)
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(d.verts)*4, gl.Ptr(d.verts))
	gl.DrawArrays(gl.POINTS, 0, int32(len(d.particles)))
	gl.BindVertexArray(0)
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

func (d *Dust) SetViewport(width, height int) {}

func (d *Dust) Dispose() {
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
	}
	if d.vbo != 0 {
		gl.DeleteBuffers(1, &d.vbo)
	}
	if d.shader != nil {
		d.shader.Delete()
	}
}
