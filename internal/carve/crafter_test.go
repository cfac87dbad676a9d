package carve

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"workshop/internal/mesh"
)

func newTestCrafter() *Crafter {
	return NewCrafter(Params{Radius: 0.15, Strength: 0.02, MinOpacity: 0.35}, zap.NewNop())
}

func topHit(wp *Workpiece) Hit {
	return Hit{Point: mgl32.Vec3{0, 0.5, 0}, Dir: mgl32.Vec3{0, -1, 0}}
}

func TestPerformCarve(t *testing.T) {
	c := newTestCrafter()
	var dust []mgl32.Vec3
	c.OnDust = func(p mgl32.Vec3) { dust = append(dust, p) }

	wp := NewWorkpiece("block", Wood, mesh.NewBox(1, 1, 1, 8))
	wp.Material.Opacity = 0.1
	chisel := NewTool(Chisel)

	out := c.Perform(ActionCarve, wp, chisel, topHit(wp), 0)
	if !out.Result.Changed() || !out.Used {
		t.Fatalf("outcome = %+v", out)
	}
	if chisel.Durability != 199 {
		t.Errorf("durability = %d, want 199", chisel.Durability)
	}
	if wp.Carves != 1 || wp.Score <= 0 {
		t.Errorf("carves=%d score=%v", wp.Carves, wp.Score)
	}
	if math.Abs(wp.Score-float64(out.Result.Displacement)*ScorePerUnit) > 1e-6 {
		t.Errorf("score = %v", wp.Score)
	}
	if wp.Material.Opacity != 0.35 || wp.Material.Flash != 1 {
		t.Errorf("material = %+v", wp.Material)
	}
	if len(dust) != 1 {
		t.Errorf("dust callbacks = %d", len(dust))
	}
}

func TestPerformMissDoesNotWear(t *testing.T) {
	c := newTestCrafter()
	wp := NewWorkpiece("block", Wood, mesh.NewBox(1, 1, 1, 2))
	chisel := NewTool(Chisel)
	out := c.Perform(ActionCarve, wp, chisel, Hit{Point: mgl32.Vec3{5, 5, 5}, Dir: mgl32.Vec3{0, -1, 0}}, 0)
	if out.Used || chisel.Durability != chisel.MaxDurability {
		t.Errorf("miss consumed durability: %+v", out)
	}
}

func TestPerformBrokenTool(t *testing.T) {
	c := newTestCrafter()
	wp := NewWorkpiece("block", Wood, mesh.NewBox(1, 1, 1, 8))
	chisel := NewTool(Chisel)
	chisel.Durability = 0
	if out := c.Perform(ActionCarve, wp, chisel, topHit(wp), 0); out.Result.Changed() {
		t.Error("broken tool carved")
	}
	if wp.Mesh.Version() != 0 {
		t.Error("mesh modified by broken tool")
	}
}

func TestPerformNoOps(t *testing.T) {
	c := newTestCrafter()
	wp := NewWorkpiece("block", Wood, mesh.NewBox(1, 1, 1, 2))
	if out := c.Perform(ActionNone, wp, nil, topHit(wp), 0); out.Used || out.Result.Changed() {
		t.Error("empty action did something")
	}
	if out := c.Perform(ActionCarve, nil, nil, Hit{}, 0); out.Used {
		t.Error("nil workpiece did something")
	}
	before := wp.Material
	c.Perform(ActionAssemble, wp, NewTool(Mallet), topHit(wp), 0)
	c.Perform(Action("polish"), wp, nil, topHit(wp), 0)
	if wp.Material != before || wp.Mesh.Version() != 0 {
		t.Error("assemble/unknown changed the workpiece")
	}
}

func TestPaintHue(t *testing.T) {
	c := newTestCrafter()
	wp := NewWorkpiece("block", Wood, mesh.NewBox(1, 1, 1, 1))
	brush := NewTool(Brush)

	// 0 ms is hue 0: pure red at s=0.8, l=0.6
	c.Perform(ActionPaint, wp, brush, Hit{}, 0)
	want := mgl32.Vec3{0.92, 0.28, 0.28}
	if !wp.Material.Color.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("color = %v, want %v", wp.Material.Color, want)
	}
	// 6000 ms wraps to hue 120: green
	c.Perform(ActionPaint, wp, brush, Hit{}, 6000)
	if g := wp.Material.Color; g.Y() <= g.X() || g.Y() <= g.Z() {
		t.Errorf("color = %v, want green dominant", g)
	}
	if brush.Durability != brush.MaxDurability-2 {
		t.Errorf("brush durability = %d", brush.Durability)
	}
}

func TestStoneIsHarder(t *testing.T) {
	c := newTestCrafter()
	wood := NewWorkpiece("wood", Wood, mesh.NewBox(1, 1, 1, 8))
	stone := NewWorkpiece("stone", Stone, mesh.NewBox(1, 1, 1, 8))
	w := c.Perform(ActionCarve, wood, nil, topHit(wood), 0)
	s := c.Perform(ActionCarve, stone, nil, topHit(stone), 0)
	if s.Result.Displacement >= w.Result.Displacement {
		t.Errorf("stone %v >= wood %v", s.Result.Displacement, w.Result.Displacement)
	}
}

func TestToolWearAndCompat(t *testing.T) {
	tool := NewTool(Mallet)
	for tool.Use() {
	}
	if !tool.Broken() || tool.Condition() != 0 {
		t.Errorf("tool = %+v", tool)
	}
	if tool.Use() {
		t.Error("broken tool reported use")
	}
	if tool.CompatibleWith(Stone) {
		t.Error("mallet should not work stone")
	}
	if !NewTool(Chisel).CompatibleWith(Stone) {
		t.Error("chisel should work stone")
	}
	if NewTool(Chisel).Kind.Action() != ActionCarve {
		t.Error("chisel action")
	}
}

func TestMaterialFlashDecay(t *testing.T) {
	m := Material{Opacity: 2}
	m.Feedback(0.35)
	if m.Opacity != 1 {
		t.Errorf("opacity = %v, want clamp to 1", m.Opacity)
	}
	m.Update(0.1)
	if m.Flash <= 0 || m.Flash >= 1 {
		t.Errorf("flash = %v after 0.1s", m.Flash)
	}
	m.Update(10)
	if m.Flash != 0 {
		t.Errorf("flash = %v, want 0", m.Flash)
	}
}
