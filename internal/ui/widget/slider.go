package widget

import "github.com/go-gl/mathgl/mgl32"

const thumbWidth = 20

type Slider struct {
	BaseComponent
	Value    float32 // 0.0 to 1.0
	Steps    int
	ID       string
	OnChange func(val float32)

	dragging bool
}

func NewSlider(x, y, w, h float32, initialVal float32, steps int, id string, onChange func(val float32)) *Slider {
	return &Slider{
		BaseComponent: BaseComponent{X: x, Y: y, W: w, H: h},
		Value:         mgl32.Clamp(initialVal, 0, 1),
		Steps:         steps,
		ID:            id,
		OnChange:      onChange,
	}
}

// Dragging reports whether the slider holds the pointer capture.
func (s *Slider) Dragging() bool { return s.dragging }

// HandleInput begins a drag on a press inside the track and follows the
// pointer until release, snapping to Steps when set.
func (s *Slider) HandleInput(ptr Pointer) bool {
	switch {
	case s.dragging && !ptr.Down:
		s.dragging = false
		return false
	case !s.dragging && ptr.JustPressed && s.Contains(ptr.X, ptr.Y):
		s.dragging = true
	case !s.dragging:
		return false
	}

	v := s.snap((ptr.X - s.X) / s.W)
	if v != s.Value {
		s.Value = v
		if s.OnChange != nil {
			s.OnChange(v)
		}
	}
	return true
}

func (s *Slider) snap(v float32) float32 {
	v = mgl32.Clamp(v, 0, 1)
	if s.Steps > 1 {
		denom := float32(s.Steps - 1)
		idx := int(v*denom + 0.5)
		v = float32(idx) / denom
	}
	return v
}

func (s *Slider) Render(p Painter) {
	p.DrawFilledRect(s.X, s.Y, s.W, s.H, mgl32.Vec3{0.3, 0.3, 0.3}, 0.8)

	if s.Steps > 1 {
		tickH := s.H * 0.6
		tickY := s.Y + (s.H-tickH)*0.5
		spacing := s.Steps / 10
		if spacing < 1 {
			spacing = 1
		}
		for i := 0; i < s.Steps; i++ {
			if i != 0 && i != s.Steps-1 && i%spacing != 0 {
				continue
			}
			ratio := float32(i) / float32(s.Steps-1)
			p.DrawFilledRect(s.X+ratio*s.W-1, tickY, 2, tickH, mgl32.Vec3{0.9, 0.9, 0.9}, 0.18)
		}
	}

	thumbX := s.X + (s.W-thumbWidth)*s.Value
	p.DrawFilledRect(thumbX, s.Y, thumbWidth, s.H, mgl32.Vec3{0.6, 0.6, 0.6}, 0.9)
}
