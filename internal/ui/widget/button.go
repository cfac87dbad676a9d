package widget

import "github.com/go-gl/mathgl/mgl32"

type Button struct {
	BaseComponent
	Text      string
	Subtitle  string
	OnClick   func()
	IsHovered bool

	NormalColor   mgl32.Vec3
	HoverColor    mgl32.Vec3
	TextColor     mgl32.Vec3
	SubtitleColor mgl32.Vec3
}

func NewButton(text string, x, y, w, h float32, onClick func()) *Button {
	return &Button{
		BaseComponent: BaseComponent{X: x, Y: y, W: w, H: h},
		Text:          text,
		OnClick:       onClick,
		NormalColor:   mgl32.Vec3{0.3, 0.3, 0.3},
		HoverColor:    mgl32.Vec3{0.4, 0.4, 0.4},
		TextColor:     mgl32.Vec3{1, 1, 1},
		SubtitleColor: mgl32.Vec3{0.8, 0.8, 0.8},
	}
}

func (b *Button) Render(p Painter) {
	color := b.NormalColor
	if b.IsHovered {
		color = b.HoverColor
	}
	p.DrawFilledRect(b.X, b.Y, b.W, b.H, color, 1.0)

	// Main text takes 40% of the height, or 30% when sharing with a subtitle.
	mainRatio := float32(0.4)
	if b.Subtitle != "" {
		mainRatio = 0.3
	}

	_, rawH := p.MeasureText(b.Text, 1.0)
	if rawH == 0 {
		rawH = 20
	}
	targetH := b.H * mainRatio
	textScale := targetH / rawH

	textW, _ := p.MeasureText(b.Text, textScale)
	maxW := b.W * 0.9
	if textW > maxW {
		correction := maxW / textW
		textScale *= correction
		targetH *= correction
		textW = maxW
	}

	var subScale, subW, subH, spacing float32
	if b.Subtitle != "" {
		subScale = textScale * 0.6
		subW, _ = p.MeasureText(b.Subtitle, subScale)
		if subW > maxW {
			subScale *= maxW / subW
			subW = maxW
		}
		_, rawSubH := p.MeasureText(b.Subtitle, 1.0)
		subH = rawSubH * subScale
		spacing = b.H * 0.05
	}

	contentH := targetH
	if b.Subtitle != "" {
		contentH += spacing + subH
	}
	top := b.Y + (b.H-contentH)/2

	// baseline sits at roughly 75% of the line height
	p.DrawText(b.Text, b.X+(b.W-textW)/2, top+targetH*0.75, textScale, b.TextColor)
	if b.Subtitle != "" {
		p.DrawText(b.Subtitle, b.X+(b.W-subW)/2, top+targetH+spacing+subH*0.75, subScale, b.SubtitleColor)
	}
}

// HandleInput refreshes the hover state and fires OnClick on a press inside.
func (b *Button) HandleInput(ptr Pointer) bool {
	b.IsHovered = b.Contains(ptr.X, ptr.Y)
	if b.IsHovered && ptr.JustPressed {
		if b.OnClick != nil {
			b.OnClick()
		}
		return true
	}
	return false
}
