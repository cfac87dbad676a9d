package carve

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// flashDecay is how much of the feedback pulse fades per second.
const flashDecay = 4.0

// Material is the surface look of a workpiece.
type Material struct {
	Color   mgl32.Vec3
	Opacity float32
	Flash   float32 // 1 right after a carve, decays to 0
}

// Feedback clamps opacity into [minOpacity, 1] and starts a new pulse.
func (m *Material) Feedback(minOpacity float32) {
	m.Opacity = mgl32.Clamp(m.Opacity, minOpacity, 1)
	m.Flash = 1
}

// Update fades the pulse.
func (m *Material) Update(dt float64) {
	if m.Flash <= 0 {
		return
	}
	m.Flash = max(0, m.Flash-float32(dt*flashDecay))
}

// Paint sets the colour to the hue elapsed/50 ms around the wheel, at saturation 0.8
// and lightness 0.6.
func (m *Material) Paint(elapsedMs float64) {
	hue := math.Mod(elapsedMs/50, 360) / 360
	m.Color = HSL(float32(hue), 0.8, 0.6)
}

// HSL converts hue, saturation and lightness in [0, 1] to RGB.
func HSL(h, s, l float32) mgl32.Vec3 {
	if s == 0 {
		return mgl32.Vec3{l, l, l}
	}
	var q float32
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return mgl32.Vec3{
		hueToRGB(p, q, h+1.0/3),
		hueToRGB(p, q, h),
		hueToRGB(p, q, h-1.0/3),
	}
}

func hueToRGB(p, q, t float32) float32 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}
