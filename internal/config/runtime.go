package config

import "sync"

// runtimeSettings holds the values the pause menu and hotkeys change while playing.
type runtimeSettings struct {
	mu               sync.RWMutex
	fpsLimit         int
	fov              float32
	wireframe        bool
	viewBobbing      bool
	mouseSensitivity float64
	touchSensitivity float64
	grabDistance     float32
	carveRadius      float32
	carveStrength    float32
	carveInterval    float64
	minOpacity       float32
}

var globalRuntime = newRuntime(Default())

func newRuntime(s Settings) *runtimeSettings {
	r := &runtimeSettings{}
	r.apply(s)
	return r
}

func (r *runtimeSettings) apply(s Settings) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fpsLimit = s.Render.FPSLimit
	r.fov = s.Render.FOV
	r.wireframe = s.Render.Wireframe
	r.viewBobbing = s.Controls.ViewBobbing
	r.mouseSensitivity = s.Controls.MouseSensitivity
	r.touchSensitivity = s.Controls.TouchSensitivity
	r.grabDistance = s.Controls.GrabDistance
	r.carveRadius = s.Carve.Radius
	r.carveStrength = s.Carve.Strength
	r.carveInterval = s.Carve.Interval
	r.minOpacity = s.Carve.MinOpacity
}

// Apply replaces the runtime values with those from s. Called once after Load.
func Apply(s Settings) {
	globalRuntime.apply(s)
}

// GetFPSLimit returns the frame cap, 0 meaning uncapped
func GetFPSLimit() int {
	globalRuntime.mu.RLock()
	defer globalRuntime.mu.RUnlock()
	return globalRuntime.fpsLimit
}

// SetFPSLimit sets the frame cap. Negative values become 0.
func SetFPSLimit(limit int) {
	globalRuntime.mu.Lock()
	defer globalRuntime.mu.Unlock()
	if limit < 0 {
		limit = 0
	}
	globalRuntime.fpsLimit = limit
}

func GetFOV() float32 {
	globalRuntime.mu.RLock()
	defer globalRuntime.mu.RUnlock()
	return globalRuntime.fov
}

func GetWireframeMode() bool {
	globalRuntime.mu.RLock()
	defer globalRuntime.mu.RUnlock()
	return globalRuntime.wireframe
}

// ToggleWireframeMode flips wireframe rendering and returns the new value
func ToggleWireframeMode() bool {
	globalRuntime.mu.Lock()
	defer globalRuntime.mu.Unlock()
	globalRuntime.wireframe = !globalRuntime.wireframe
	return globalRuntime.wireframe
}

func GetViewBobbing() bool {
	globalRuntime.mu.RLock()
	defer globalRuntime.mu.RUnlock()
	return globalRuntime.viewBobbing
}

func SetViewBobbing(enabled bool) {
	globalRuntime.mu.Lock()
	defer globalRuntime.mu.Unlock()
	globalRuntime.viewBobbing = enabled
}

// GetMouseSensitivity returns degrees of rotation per pixel of cursor movement
func GetMouseSensitivity() float64 {
	globalRuntime.mu.RLock()
	defer globalRuntime.mu.RUnlock()
	return globalRuntime.mouseSensitivity
}

// SetMouseSensitivity sets the look sensitivity, clamped to [0.01, 1]
func SetMouseSensitivity(v float64) {
	globalRuntime.mu.Lock()
	defer globalRuntime.mu.Unlock()
	if v < 0.01 {
		v = 0.01
	}
	if v > 1 {
		v = 1
	}
	globalRuntime.mouseSensitivity = v
}

func GetTouchSensitivity() float64 {
	globalRuntime.mu.RLock()
	defer globalRuntime.mu.RUnlock()
	return globalRuntime.touchSensitivity
}

func GetGrabDistance() float32 {
	globalRuntime.mu.RLock()
	defer globalRuntime.mu.RUnlock()
	return globalRuntime.grabDistance
}

// CarveParams groups the values one carve event needs.
type CarveParams struct {
	Radius     float32
	Strength   float32
	Interval   float64
	MinOpacity float32
}

func GetCarveParams() CarveParams {
	globalRuntime.mu.RLock()
	defer globalRuntime.mu.RUnlock()
	return CarveParams{
		Radius:     globalRuntime.carveRadius,
		Strength:   globalRuntime.carveStrength,
		Interval:   globalRuntime.carveInterval,
		MinOpacity: globalRuntime.minOpacity,
	}
}
