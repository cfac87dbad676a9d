package workpiece

import (
	"workshop/internal/graphics"
	renderer "workshop/internal/graphics/renderer"
	"workshop/internal/meshing"
	"workshop/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/google/uuid"
)

type gpuEntry struct {
	gpu     *graphics.GPUMesh
	version uint64 // uploaded
	pending uint64 // submitted to the pool
}

// Workpieces draws carved meshes. Dirty meshes are rebuilt by the meshing pool
// and re-uploaded when the result comes back.
type Workpieces struct {
	shader  *graphics.Shader
	pool    *meshing.WorkerPool
	entries map[uuid.UUID]*gpuEntry
}

func NewWorkpieces(pool *meshing.WorkerPool) *Workpieces {
	return &Workpieces{
		pool:    pool,
		entries: make(map[uuid.UUID]*gpuEntry),
	}
}

func (w *Workpieces) Init() error {
	var err error
	w.shader, err = graphics.NewShader("lit")
	return err
}

func (w *Workpieces) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderWorkpieces")()

	views := ctx.Scene.Workpieces()
	for _, v := range views {
		wp := v.Workpiece
		e, ok := w.entries[wp.ID]
		if !ok {
			e = &gpuEntry{gpu: graphics.UploadMesh(wp.Mesh, true), version: wp.Mesh.Version()}
			e.pending = e.version
			w.entries[wp.ID] = e
			continue
		}
		if ver := wp.Mesh.Version(); ver != e.pending && w.pool.Submit(wp.ID, wp.Mesh) {
			e.pending = ver
		}
	}

	w.pool.Drain(func(res meshing.MeshResult) {
		if e, ok := w.entries[res.Key]; ok {
			e.gpu.UpdateVertices(res.Vertices)
			e.version = res.Version
		}
	})

	graphics.UseLit(w.shader, ctx.View, ctx.Proj)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	// carving can push vertices through, so both faces stay visible
	gl.Disable(gl.CULL_FACE)
	for _, v := range views {
		wp := v.Workpiece
		e := w.entries[wp.ID]
		w.shader.SetFloat("opacity", wp.Material.Opacity)
		w.shader.SetFloat("flash", wp.Material.Flash)
		graphics.DrawLit(w.shader, e.gpu, wp.Mesh.Model(), wp.Material.Color)
	}
	gl.Enable(gl.CULL_FACE)
	gl.Disable(gl.BLEND)
}

func (w *Workpieces) SetViewport(width, height int) {}

func (w *Workpieces) Dispose() {
	for id, e := range w.entries {
		e.gpu.Delete()
		w.pool.Forget(id)
	}
	w.entries = map[uuid.UUID]*gpuEntry{}
	if w.shader != nil {
		w.shader.Delete()
	}
}
