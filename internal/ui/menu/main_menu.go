package menu

import (
	"workshop/internal/ui/widget"

	"github.com/go-gl/mathgl/mgl32"
)

type MainMenu struct {
	buttons     []*widget.Button
	shouldStart bool
	shouldQuit  bool
}

func NewMainMenu() *MainMenu {
	mm := &MainMenu{}

	startBtn := widget.NewButton("Enter Workshop", 0, 0, 0, 0, func() {
		mm.shouldStart = true
	})
	startBtn.TextColor = mgl32.Vec3{0.96, 0.78, 0.45}
	startBtn.Subtitle = "Grab a chisel, carve wood and stone"
	mm.buttons = append(mm.buttons, startBtn)

	quitBtn := widget.NewButton("Quit", 0, 0, 0, 0, func() {
		mm.shouldQuit = true
	})
	mm.buttons = append(mm.buttons, quitBtn)

	return mm
}

func (m *MainMenu) layout(winW, winH float32) {
	scale := layoutScale(winW, winH)
	centerX, centerY := winW/2, winH/2
	btnW := 400 * scale
	btnX := centerX - btnW/2

	m.buttons[0].SetPosition(btnX, centerY-40*scale)
	m.buttons[0].SetSize(btnW, 80*scale)
	m.buttons[1].SetPosition(btnX, centerY+60*scale)
	m.buttons[1].SetSize(btnW, 50*scale)
}

func (m *MainMenu) Update(ptr widget.Pointer, winW, winH float32) Action {
	m.shouldStart = false
	m.shouldQuit = false

	m.layout(winW, winH)
	for _, btn := range m.buttons {
		btn.HandleInput(ptr)
	}

	if m.shouldStart {
		return ActionStart
	}
	if m.shouldQuit {
		return ActionQuitGame
	}
	return ActionNone
}

func (m *MainMenu) Render(p widget.Painter, winW, winH float32) {
	m.layout(winW, winH)
	scale := layoutScale(winW, winH)
	centerX, centerY := winW/2, winH/2

	p.DrawFilledRect(0, 0, winW, winH, mgl32.Vec3{0.12, 0.09, 0.07}, 1.0)

	title := "WORKSHOP"
	tw, _ := p.MeasureText(title, 1.4*scale)
	p.DrawText(title, centerX-tw/2, centerY-200*scale, 1.4*scale, mgl32.Vec3{1, 1, 1})

	sub := "Carve with the chisel, paint with the brush"
	sw, _ := p.MeasureText(sub, 0.5*scale)
	p.DrawText(sub, centerX-sw/2, centerY-140*scale, 0.5*scale, mgl32.Vec3{0.8, 0.8, 0.8})

	for _, btn := range m.buttons {
		btn.Render(p)
	}
}
