package renderer

import (
	"fmt"

	"workshop/internal/config"
	"workshop/internal/graphics"
	"workshop/internal/player"
	"workshop/internal/profiling"
	"workshop/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Sprinting widens the view by this many degrees.
const sprintFOVBoost = 10

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera

	// FOV transition
	targetFOV  float32
	currentFOV float32
}

// NewRenderer configures GL state and initializes rs in order.
func NewRenderer(width, height int, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	fov := config.GetFOV()
	r := &Renderer{
		camera:     graphics.NewCamera(width, height, fov),
		targetFOV:  fov,
		currentFOV: fov,
	}

	for i, rd := range rs {
		if err := rd.Init(); err != nil {
			// release what was already set up
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %d: %w", i, err)
		}
		rd.SetViewport(width, height)
	}
	r.renderables = rs
	return r, nil
}

// stepFOV moves current towards target by at most step.
func stepFOV(current, target, step float32) float32 {
	if current < target {
		current += step
		if current > target {
			current = target
		}
	} else if current > target {
		current -= step
		if current < target {
			current = target
		}
	}
	return current
}

// Render draws one frame of the workshop.
func (r *Renderer) Render(s *scene.Scene, p *player.Player, overlay Overlay, dt float64) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(0.16, 0.13, 0.11, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	base := config.GetFOV()
	r.targetFOV = base
	if p.IsSprinting && p.HorizontalSpeed() > 0.1 {
		r.targetFOV = base + sprintFOVBoost
	}
	r.currentFOV = stepFOV(r.currentFOV, r.targetFOV, float32(dt)*100)
	r.camera.FOV = r.currentFOV

	if config.GetWireframeMode() {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}

	ctx := RenderContext{
		Camera:  r.camera,
		Scene:   s,
		Player:  p,
		Overlay: overlay,
		DT:      dt,
		View:    p.GetViewMatrix(),
		Proj:    r.camera.GetProjectionMatrix(),
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}

	if config.GetWireframeMode() {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

func (r *Renderer) GetCamera() *graphics.Camera {
	return r.camera
}

// UpdateViewport updates the camera and every renderable.
func (r *Renderer) UpdateViewport(width, height int) {
	r.camera.SetViewport(width, height)
	for _, rd := range r.renderables {
		rd.SetViewport(width, height)
	}
}
