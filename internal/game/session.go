package game

import (
	"fmt"
	"time"

	"workshop/internal/config"
	"workshop/internal/graphics"
	"workshop/internal/graphics/renderables/crosshair"
	"workshop/internal/graphics/renderables/dust"
	"workshop/internal/graphics/renderables/hand"
	"workshop/internal/graphics/renderables/hud"
	"workshop/internal/graphics/renderables/tools"
	"workshop/internal/graphics/renderables/ui"
	"workshop/internal/graphics/renderables/wireframe"
	"workshop/internal/graphics/renderables/workpiece"
	"workshop/internal/graphics/renderables/workshop"
	"workshop/internal/graphics/renderer"
	"workshop/internal/input"
	"workshop/internal/input/touch"
	"workshop/internal/meshing"
	"workshop/internal/play"
	"workshop/internal/profiling"
	"workshop/internal/ui/menu"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

type Session struct {
	Window     *glfw.Window
	Renderer   *renderer.Renderer
	UIRenderer *ui.UI
	State      *play.State
	Pool       *meshing.WorkerPool

	Paused    bool
	PauseMenu *menu.PauseMenu

	showHelp      bool
	showProfiling bool
	fps           play.FPSMeter
	log           *zap.Logger
}

func NewSession(window *glfw.Window, font *graphics.FontRenderer, mc config.MeshingSettings, log *zap.Logger) (*Session, error) {
	pool, err := meshing.NewWorkerPool(mc.Workers, mc.QueueSize, log.Named("meshing"))
	if err != nil {
		return nil, err
	}

	toolsRenderer := tools.NewTools()
	uiRenderer := ui.NewUI()

	width, height := window.GetSize()
	r, err := renderer.NewRenderer(width, height,
		workshop.NewWorkshop(),
		workpiece.NewWorkpieces(pool),
		toolsRenderer,
		wireframe.NewWireframe(),
		dust.NewDust(),
		hand.NewHand(toolsRenderer),
		crosshair.NewCrosshair(),
		uiRenderer,
		hud.NewHUD(uiRenderer),
	)
	if err != nil {
		pool.Shutdown()
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	uiRenderer.SetFontRenderer(font)
	uiRenderer.SetViewport(width, height)

	state := play.New(log.Named("session"), time.Now().UnixNano())
	for _, w := range state.Scene.Workpieces() {
		wp := w.Workpiece
		log.Info("workpiece ready",
			zap.String("id", wp.ShortID()),
			zap.String("name", wp.Name),
			zap.Stringer("material", wp.Type),
			zap.Int("vertices", wp.Mesh.VertexCount()),
		)
	}

	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	return &Session{
		Window:     window,
		Renderer:   r,
		UIRenderer: uiRenderer,
		State:      state,
		Pool:       pool,
		PauseMenu:  menu.NewPauseMenu(),
		log:        log,
	}, nil
}

func (s *Session) Cleanup() {
	s.Renderer.Dispose()
	s.Pool.Shutdown()
	s.log.Info("session ended", zap.Float64("score", s.State.Score()), zap.Int("carves", s.State.Carves()))

	s.State = nil
	s.Renderer = nil
	s.UIRenderer = nil
}

func (s *Session) Update(dt float64, im *input.InputManager, tc *touch.Controller) menu.Action {
	if s.Paused {
		w, h := s.Window.GetSize()
		switch s.PauseMenu.Update(pointer(s.Window, im), float32(w), float32(h)) {
		case menu.ActionResume:
			s.SetPaused(false)
		case menu.ActionQuitToMenu:
			return menu.ActionQuitToMenu
		case menu.ActionQuitGame:
			return menu.ActionQuitGame
		}
	}

	if !s.Paused {
		s.State.Step(dt, ReadControls(im, tc))
	}

	s.handleInputActions(im)
	return menu.ActionNone
}

func (s *Session) overlay() renderer.Overlay {
	o := renderer.Overlay{
		Score:         s.State.Score(),
		Carves:        s.State.Carves(),
		Hint:          s.State.Hint,
		FPS:           s.fps.Frame(time.Now()),
		ShowHelp:      s.showHelp,
		ShowProfiling: s.showProfiling,
		Wireframe:     config.GetWireframeMode(),
	}
	if t := s.State.Player.HeldTool(s.State.Scene); t != nil {
		o.HasTool = true
		o.ToolName = t.Kind.String()
		o.ToolCondition = t.Condition()
	}
	if s.Paused {
		o.Hint = ""
	}
	return o
}

func (s *Session) Render(dt float64) {
	defer profiling.Track("session.Render")()

	s.Renderer.Render(s.State.Scene, s.State.Player, s.overlay(), dt)

	if s.Paused {
		w, h := s.Window.GetSize()
		s.UIRenderer.BeginFrame()
		s.PauseMenu.Render(s.UIRenderer, float32(w), float32(h))
		s.UIRenderer.Flush()
	}
}

func (s *Session) SetPaused(paused bool) {
	s.Paused = paused
	if s.Paused {
		s.Window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		w, h := s.Window.GetSize()
		s.Window.SetCursorPos(float64(w)/2, float64(h)/2)
	} else {
		s.Window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		s.State.Player.ResetMouse()
	}
}

func (s *Session) handleInputActions(im *input.InputManager) {
	if im.JustPressed(input.ActionPause) {
		s.SetPaused(!s.Paused)
	}
	if im.JustPressed(input.ActionToggleWireframe) {
		on := config.ToggleWireframeMode()
		s.log.Debug("wireframe toggled", zap.Bool("on", on))
	}
	if im.JustPressed(input.ActionToggleProfiling) {
		s.showProfiling = !s.showProfiling
	}
	if im.JustPressed(input.ActionToggleHelp) {
		s.showHelp = !s.showHelp
	}
}

// RefreshRender repaints during a live resize, when the main loop is blocked.
func (s *Session) RefreshRender() {
	s.Render(0)
	s.Window.SwapBuffers()
}
