package widget

import "github.com/go-gl/mathgl/mgl32"

type Toggle struct {
	BaseComponent
	Label     string
	IsOn      bool
	OnToggle  func(isOn bool)
	IsHovered bool
}

func NewToggle(label string, x, y, w, h float32, initial bool, onToggle func(isOn bool)) *Toggle {
	return &Toggle{
		BaseComponent: BaseComponent{X: x, Y: y, W: w, H: h},
		Label:         label,
		IsOn:          initial,
		OnToggle:      onToggle,
	}
}

// Render draws only the switch box; callers place the label.
func (t *Toggle) Render(p Painter) {
	bg := mgl32.Vec3{0.5, 0.2, 0.2}
	if t.IsOn {
		bg = mgl32.Vec3{0.2, 0.5, 0.2}
	}
	if t.IsHovered {
		bg = bg.Mul(1.2)
	}
	p.DrawFilledRect(t.X, t.Y, t.W, t.H, bg, 0.85)
}

func (t *Toggle) HandleInput(ptr Pointer) bool {
	t.IsHovered = t.Contains(ptr.X, ptr.Y)
	if t.IsHovered && ptr.JustPressed {
		t.IsOn = !t.IsOn
		if t.OnToggle != nil {
			t.OnToggle(t.IsOn)
		}
		return true
	}
	return false
}
