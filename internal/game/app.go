package game

import (
	"fmt"
	"time"

	"workshop/internal/config"
	"workshop/internal/graphics"
	"workshop/internal/graphics/renderables/ui"
	"workshop/internal/input"
	"workshop/internal/input/touch"
	"workshop/internal/play"
	"workshop/internal/profiling"
	"workshop/internal/ui/menu"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

type AppState int

const (
	StateMainMenu AppState = iota
	StatePlaying
	// StateError shows a static message until the window closes.
	StateError
)

const slowFrame = 16 * time.Millisecond

type App struct {
	window       *glfw.Window
	inputManager *input.InputManager
	touch        *touch.Controller
	cfg          config.Settings
	log          *zap.Logger

	state AppState

	mainMenu     *menu.MainMenu
	menuUI       *ui.UI
	fontRenderer *graphics.FontRenderer

	session *Session

	limiter   *play.FPSLimiter
	clock     *play.FrameClock
	errText   string
	frameCost time.Duration
}

func NewApp(window *glfw.Window, im *input.InputManager, cfg config.Settings, log *zap.Logger) (*App, error) {
	width, height := window.GetSize()

	menuUI := ui.NewUI()
	if err := menuUI.Init(); err != nil {
		return nil, fmt.Errorf("menu ui: %w", err)
	}
	fr, err := graphics.NewFontRenderer(48, width, height)
	if err != nil {
		menuUI.Dispose()
		return nil, fmt.Errorf("font: %w", err)
	}
	menuUI.SetFontRenderer(fr)
	menuUI.SetViewport(width, height)

	return &App{
		window:       window,
		inputManager: im,
		touch:        touch.NewController(float64(width)),
		cfg:          cfg,
		log:          log,
		state:        StateMainMenu,
		mainMenu:     menu.NewMainMenu(),
		menuUI:       menuUI,
		fontRenderer: fr,
		limiter:      play.NewFPSLimiter(),
		clock:        play.NewFrameClock(),
	}, nil
}

func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
	a.EndSession()
	a.menuUI.Dispose()
	a.fontRenderer.Dispose()
}

func (a *App) tick() {
	if a.frameCost > slowFrame {
		a.log.Debug("slow frame", zap.Duration("took", a.frameCost), zap.String("top", profiling.TopN(5)))
	}
	profiling.ResetFrame()
	start := time.Now()
	dt := a.clock.Tick()

	glfw.PollEvents()

	switch a.state {
	case StateMainMenu:
		a.updateMainMenu()
		a.renderMainMenu()
	case StatePlaying:
		if a.session != nil {
			action := a.session.Update(dt, a.inputManager, a.touch)
			a.session.Render(dt)

			switch action {
			case menu.ActionQuitToMenu:
				a.EndSession()
			case menu.ActionQuitGame:
				a.window.SetShouldClose(true)
			}
		}
	case StateError:
		a.renderError()
	}

	a.window.SwapBuffers()
	a.frameCost = time.Since(start)

	a.inputManager.PostUpdate()

	idle := a.state != StatePlaying || (a.session != nil && a.session.Paused)
	a.limiter.Wait(config.GetFPSLimit(), idle)
}

func (a *App) updateMainMenu() {
	w, h := a.window.GetSize()
	switch a.mainMenu.Update(pointer(a.window, a.inputManager), float32(w), float32(h)) {
	case menu.ActionStart:
		a.StartSession()
	case menu.ActionQuitGame:
		a.window.SetShouldClose(true)
	}
}

func (a *App) renderMainMenu() {
	gl.ClearColor(0.08, 0.06, 0.05, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	w, h := a.window.GetSize()
	a.menuUI.BeginFrame()
	a.mainMenu.Render(a.menuUI, float32(w), float32(h))
	a.menuUI.Flush()
}

func (a *App) renderError() {
	gl.ClearColor(0.2, 0.05, 0.05, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	a.menuUI.BeginFrame()
	a.menuUI.DrawText("Something went wrong", 40, 60, 0.8, mgl32.Vec3{1, 0.8, 0.8})
	a.menuUI.DrawText(a.errText, 40, 110, 0.45, mgl32.Vec3{1, 1, 1})
	a.menuUI.DrawText("Close the window to exit", 40, 160, 0.45, mgl32.Vec3{0.8, 0.8, 0.8})
	a.menuUI.Flush()
}

// Fail stops the game and shows err instead of the scene.
func (a *App) Fail(err error) {
	a.log.Error("fatal", zap.Error(err))
	a.EndSession()
	a.errText = err.Error()
	a.state = StateError
}

func (a *App) StartSession() {
	s, err := NewSession(a.window, a.fontRenderer, a.cfg.Meshing, a.log)
	if err != nil {
		a.Fail(fmt.Errorf("start session: %w", err))
		return
	}
	a.session = s
	a.clock.Reset()
	a.state = StatePlaying
	a.log.Info("session started")
}

func (a *App) EndSession() {
	if a.session != nil {
		a.session.Cleanup()
		a.session = nil
	}
	a.state = StateMainMenu
	a.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
}

// HandleTouch feeds a touch point from the platform layer.
func (a *App) HandleTouch(ev touch.Event) {
	if a.session == nil || a.session.Paused {
		return
	}
	a.touch.Handle(ev)
}

// RefreshRender repaints the current screen while the window is being resized.
func (a *App) RefreshRender() {
	switch {
	case a.state == StatePlaying && a.session != nil:
		a.session.RefreshRender()
	case a.state == StateError:
		a.renderError()
		a.window.SwapBuffers()
	default:
		a.renderMainMenu()
		a.window.SwapBuffers()
	}
}
