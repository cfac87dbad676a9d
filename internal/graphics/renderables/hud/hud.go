package hud

import (
	"fmt"
	"strings"

	"workshop/internal/graphics/renderables/ui"
	renderer "workshop/internal/graphics/renderer"
	"workshop/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

var helpLines = []string{
	"WASD / arrows  move",
	"Shift  sprint     Space  jump",
	"E  grab           Q  drop",
	"Left mouse  use tool",
	"F  wireframe      V  profiling",
	"H  help           Esc  pause",
}

// HUD draws score, the held tool, hints and the optional help and profiling panels.
type HUD struct {
	ui     *ui.UI
	width  float32
	height float32
}

func NewHUD(u *ui.UI) *HUD {
	return &HUD{ui: u, width: 900, height: 600}
}

func (h *HUD) Init() error { return nil }

func (h *HUD) SetViewport(width, height int) {
	h.width, h.height = float32(width), float32(height)
}

func (h *HUD) Dispose() {}

func (h *HUD) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.hud")()

	o := ctx.Overlay
	white := mgl32.Vec3{1, 1, 1}

	h.ui.BeginFrame()
	h.ui.DrawFilledRect(6, 6, 230, 48, mgl32.Vec3{0, 0, 0}, 0.35)
	h.ui.DrawText(fmt.Sprintf("Score: %.0f", o.Score), 14, 26, 0.5, white)
	h.ui.DrawText(fmt.Sprintf("Carves: %d   FPS: %.0f", o.Carves, o.FPS), 14, 46, 0.4, mgl32.Vec3{0.85, 0.85, 0.85})

	if o.HasTool {
		h.renderTool(o)
	}
	if o.Hint != "" {
		tw, _ := h.ui.MeasureText(o.Hint, 0.45)
		h.ui.DrawText(o.Hint, (h.width-tw)/2, h.height/2+60, 0.45, mgl32.Vec3{1, 0.92, 0.7})
	}
	if o.ShowHelp {
		h.renderHelp()
	}
	if o.ShowProfiling {
		h.renderProfiling()
	}
	h.ui.Flush()
}

func (h *HUD) renderTool(o renderer.Overlay) {
	const barW, barH = 180, 8
	x := (h.width - barW) / 2
	y := h.height - 40

	label := o.ToolName
	if o.ToolCondition <= 0 {
		label += " (broken)"
	}
	tw, _ := h.ui.MeasureText(label, 0.45)
	h.ui.DrawText(label, (h.width-tw)/2, y-8, 0.45, mgl32.Vec3{1, 1, 1})

	h.ui.DrawFilledRect(x, y, barW, barH, mgl32.Vec3{0.1, 0.1, 0.1}, 0.7)
	c := mgl32.Clamp(o.ToolCondition, 0, 1)
	// green to red as the tool wears
	color := mgl32.Vec3{1 - c, c, 0.15}
	h.ui.DrawFilledRect(x, y, barW*c, barH, color, 0.9)
}

func (h *HUD) renderHelp() {
	x, y := h.width-300, float32(24)
	h.ui.DrawFilledRect(x-10, y-18, 300, float32(len(helpLines))*20+14, mgl32.Vec3{0, 0, 0}, 0.45)
	for i, line := range helpLines {
		h.ui.DrawText(line, x, y+float32(i)*20, 0.4, mgl32.Vec3{0.95, 0.95, 0.95})
	}
}

func (h *HUD) renderProfiling() {
	lines := []string{
		"render: " + profiling.FormatMs(profiling.SumWithPrefix("renderer.")),
		"carve: " + profiling.FormatMs(profiling.SumWithPrefix("carve.")) +
			"  meshing: " + profiling.FormatMs(profiling.SumWithPrefix("meshing.")),
	}
	if top := profiling.TopN(8); top != "" {
		lines = append(lines, strings.Split(top, ", ")...)
	}
	y := float32(78)
	for _, line := range lines {
		h.ui.DrawText(line, 14, y, 0.35, mgl32.Vec3{0.8, 1, 0.8})
		y += 16
	}
}
