package workshop

import (
	"workshop/internal/graphics"
	renderer "workshop/internal/graphics/renderer"
	"workshop/internal/mesh"
	"workshop/internal/profiling"
	"workshop/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

const floorSize = 20

type piece struct {
	gpu   *graphics.GPUMesh
	model mgl32.Mat4
	color mgl32.Vec3
}

// Workshop draws the static room: floor, bench and its legs.
type Workshop struct {
	shader *graphics.Shader
	pieces []piece
}

func NewWorkshop() *Workshop {
	return &Workshop{}
}

func (w *Workshop) Init() error {
	var err error
	w.shader, err = graphics.NewShader("lit")
	if err != nil {
		return err
	}

	floor := mesh.NewPlane(floorSize, floorSize, 1)
	w.pieces = append(w.pieces, piece{
		gpu:   graphics.UploadMesh(floor, false),
		model: mgl32.Ident4(),
		color: mgl32.Vec3{0.36, 0.3, 0.25},
	})

	const topThickness = 0.08
	top := mesh.NewBox(scene.BenchWidth, topThickness, scene.BenchDepth, 1)
	w.pieces = append(w.pieces, piece{
		gpu:   graphics.UploadMesh(top, false),
		model: mgl32.Translate3D(scene.BenchCenter.X(), scene.BenchHeight-topThickness/2, scene.BenchCenter.Z()),
		color: mgl32.Vec3{0.55, 0.38, 0.22},
	})

	legH := float32(scene.BenchHeight - topThickness)
	leg := graphics.UploadMesh(mesh.NewBox(0.08, legH, 0.08, 1), false)
	dx, dz := float32(scene.BenchWidth/2-0.1), float32(scene.BenchDepth/2-0.1)
	for _, sx := range []float32{-1, 1} {
		for _, sz := range []float32{-1, 1} {
			w.pieces = append(w.pieces, piece{
				gpu:   leg,
				model: mgl32.Translate3D(scene.BenchCenter.X()+sx*dx, legH/2, scene.BenchCenter.Z()+sz*dz),
				color: mgl32.Vec3{0.45, 0.3, 0.18},
			})
		}
	}
	return nil
}

func (w *Workshop) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderWorkshop")()

	graphics.UseLit(w.shader, ctx.View, ctx.Proj)
	for _, p := range w.pieces {
		graphics.DrawLit(w.shader, p.gpu, p.model, p.color)
	}
}

func (w *Workshop) SetViewport(width, height int) {}

func (w *Workshop) Dispose() {
	seen := make(map[*graphics.GPUMesh]bool)
	for _, p := range w.pieces {
		if !seen[p.gpu] {
			p.gpu.Delete()
			seen[p.gpu] = true
		}
	}
	w.pieces = nil
	if w.shader != nil {
		w.shader.Delete()
	}
}
