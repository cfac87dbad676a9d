package renderer

import (
	"workshop/internal/graphics"
	"workshop/internal/player"
	"workshop/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// Overlay carries the session values the 2D layers display.
type Overlay struct {
	Score         float64
	Carves        int
	ToolName      string
	ToolCondition float32
	HasTool       bool
	Hint          string
	FPS           float64
	ShowHelp      bool
	ShowProfiling bool
	Wireframe     bool
}

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Camera  *graphics.Camera
	Scene   *scene.Scene
	Player  *player.Player
	Overlay Overlay
	DT      float64
	View    mgl32.Mat4
	Proj    mgl32.Mat4
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
