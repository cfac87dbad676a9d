package menu

import (
	"fmt"

	"workshop/internal/config"
	"workshop/internal/ui/widget"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	minSensitivity = 0.01
	maxSensitivity = 1.0
	sliderW        = 200
	sliderH        = 20
	toggleW        = 40
)

type PauseMenu struct {
	buttons      []*widget.Button
	sensitivity  *widget.Slider
	fpsLimit     *widget.Slider
	bobbing      *widget.Toggle
	shouldResume bool
	shouldQuit   bool
}

func sensitivityToSlider(v float64) float32 {
	return float32((v - minSensitivity) / (maxSensitivity - minSensitivity))
}

func sliderToSensitivity(v float32) float64 {
	return minSensitivity + float64(v)*(maxSensitivity-minSensitivity)
}

// fpsFromSlider maps [0, 0.99] onto 30..240 FPS; the far end means uncapped.
func fpsFromSlider(v float32) int {
	if v > 0.99 {
		return 0
	}
	return int(30 + v*210 + 0.5)
}

func NewPauseMenu() *PauseMenu {
	pm := &PauseMenu{}

	pm.sensitivity = widget.NewSlider(0, 0, sliderW, sliderH, sensitivityToSlider(config.GetMouseSensitivity()), 100, "sensitivity", func(val float32) {
		config.SetMouseSensitivity(sliderToSensitivity(val))
	})

	var fpsVal float32 = 1
	if cur := config.GetFPSLimit(); cur > 0 {
		fpsVal = mgl32.Clamp(float32(cur-30)/210, 0, 0.95)
	}
	pm.fpsLimit = widget.NewSlider(0, 0, sliderW, sliderH, fpsVal, 211, "fpsLimit", func(val float32) {
		config.SetFPSLimit(fpsFromSlider(val))
	})

	pm.bobbing = widget.NewToggle("View Bobbing", 0, 0, toggleW, sliderH, config.GetViewBobbing(), func(isOn bool) {
		config.SetViewBobbing(isOn)
	})

	resumeBtn := widget.NewButton("Resume", 0, 0, 200, 40, func() {
		pm.shouldResume = true
	})
	resumeBtn.NormalColor = mgl32.Vec3{0.2, 0.2, 0.2}
	resumeBtn.HoverColor = mgl32.Vec3{0.3, 0.3, 0.3}
	pm.buttons = append(pm.buttons, resumeBtn)

	quitBtn := widget.NewButton("Main Menu", 0, 0, 200, 40, func() {
		pm.shouldQuit = true
	})
	quitBtn.NormalColor = mgl32.Vec3{0.2, 0.2, 0.2}
	quitBtn.HoverColor = mgl32.Vec3{0.3, 0.3, 0.3}
	pm.buttons = append(pm.buttons, quitBtn)

	return pm
}

func (p *PauseMenu) layout(winW float32) {
	centerX := winW / 2
	y := float32(150)
	const spacing = 70

	p.sensitivity.SetPosition(centerX-sliderW/2, y)
	y += spacing
	p.fpsLimit.SetPosition(centerX-sliderW/2, y)
	y += spacing
	p.bobbing.SetPosition(centerX-toggleW/2, y)
	y += spacing
	p.buttons[0].SetPosition(centerX-100, y)
	p.buttons[1].SetPosition(centerX-100, y+50)
}

func (p *PauseMenu) Update(ptr widget.Pointer, winW, winH float32) Action {
	p.shouldResume = false
	p.shouldQuit = false

	// may have been changed by a key binding
	p.bobbing.IsOn = config.GetViewBobbing()

	p.layout(winW)
	p.sensitivity.HandleInput(ptr)
	p.fpsLimit.HandleInput(ptr)
	p.bobbing.HandleInput(ptr)
	for _, btn := range p.buttons {
		btn.HandleInput(ptr)
	}

	if p.shouldResume {
		return ActionResume
	}
	if p.shouldQuit {
		return ActionQuitToMenu
	}
	return ActionNone
}

func (p *PauseMenu) Render(u widget.Painter, winW, winH float32) {
	p.layout(winW)
	u.DrawFilledRect(0, 0, winW, winH, mgl32.Vec3{0, 0, 0}, 0.5)

	centerX := winW / 2
	white := mgl32.Vec3{1, 1, 1}
	grey := mgl32.Vec3{0.8, 0.8, 0.8}

	title := "PAUSED"
	tw, _ := u.MeasureText(title, 1.0)
	u.DrawText(title, centerX-tw/2, 80, 1.0, white)

	label := func(text string, y float32) {
		w, _ := u.MeasureText(text, 0.4)
		u.DrawText(text, centerX-w/2, y-15, 0.4, white)
	}

	label("Mouse Sensitivity", p.sensitivity.Y)
	p.sensitivity.Render(u)
	u.DrawText(fmt.Sprintf("%.2f", config.GetMouseSensitivity()), p.sensitivity.X+sliderW+10, p.sensitivity.Y+15, 0.35, grey)

	label("FPS Limit", p.fpsLimit.Y)
	p.fpsLimit.Render(u)
	fpsText := "Uncapped"
	if limit := fpsFromSlider(p.fpsLimit.Value); limit > 0 {
		fpsText = fmt.Sprintf("%d FPS", limit)
	}
	u.DrawText(fpsText, p.fpsLimit.X+sliderW+10, p.fpsLimit.Y+15, 0.35, grey)

	label("View Bobbing", p.bobbing.Y)
	p.bobbing.Render(u)
	status := "Off"
	if p.bobbing.IsOn {
		status = "On"
	}
	u.DrawText(status, p.bobbing.X+toggleW+10, p.bobbing.Y+15, 0.35, grey)

	for _, btn := range p.buttons {
		btn.Render(u)
	}
}
