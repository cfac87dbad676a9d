package scene

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"workshop/internal/carve"
	"workshop/internal/mesh"
	"workshop/internal/physics"
)

var toolBox = Collider{Min: mgl32.Vec3{-0.06, 0, -0.06}, Max: mgl32.Vec3{0.06, 0.6, 0.06}}

func TestPickNearest(t *testing.T) {
	s := New()
	near := s.SpawnTool(carve.NewTool(carve.Chisel), Transform{Position: mgl32.Vec3{0, 1, -1}, Scale: 1}, toolBox)
	s.SpawnTool(carve.NewTool(carve.Mallet), Transform{Position: mgl32.Vec3{0, 1, -2}, Scale: 1}, toolBox)

	r := physics.Ray{Origin: mgl32.Vec3{0, 1.3, 1}, Dir: mgl32.Vec3{0, 0, -1}}
	hit, ok := s.Pick(r, 5)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Entity != near || hit.Kind != KindTool {
		t.Errorf("picked %v kind %v, want nearest tool", hit.Entity, hit.Kind)
	}
	if hit.Distance < 1.93 || hit.Distance > 1.95 {
		t.Errorf("distance = %v", hit.Distance)
	}

	if _, ok := s.Pick(r, 1.5); ok {
		t.Error("expected miss beyond max distance")
	}
}

func TestPickWorkpiece(t *testing.T) {
	s := New()
	wp := carve.NewWorkpiece("block", carve.Wood, mesh.NewBox(1, 1, 1, 2))
	e := s.SpawnWorkpiece(wp, Transform{Position: mgl32.Vec3{0, 1.5, 0}, Scale: 1})

	hit, ok := s.Pick(physics.Ray{Origin: mgl32.Vec3{0, 1.5, 3}, Dir: mgl32.Vec3{0, 0, -1}}, 5)
	if !ok || hit.Entity != e || hit.Kind != KindWorkpiece {
		t.Fatalf("hit = %+v ok=%v", hit, ok)
	}
	if s.Workpiece(e) != wp || s.Tool(e) != nil {
		t.Error("accessors returned wrong component")
	}
	// the mesh follows the spawn transform
	lo, hi := wp.Mesh.WorldBounds()
	if !lo.ApproxEqual(mgl32.Vec3{-0.5, 1, -0.5}) || !hi.ApproxEqual(mgl32.Vec3{0.5, 2, 0.5}) {
		t.Errorf("mesh world bounds = %v %v", lo, hi)
	}
}

func TestHoldOnlyOne(t *testing.T) {
	s := New()
	a := s.SpawnTool(carve.NewTool(carve.Chisel), Transform{Scale: 1}, toolBox)
	b := s.SpawnTool(carve.NewTool(carve.Brush), Transform{Position: mgl32.Vec3{2, 0, 0}, Scale: 1}, toolBox)
	wp := s.SpawnWorkpiece(carve.NewWorkpiece("block", carve.Wood, mesh.NewBox(1, 1, 1, 1)), Transform{Position: mgl32.Vec3{0, 0, 5}, Scale: 1})

	if err := s.Hold(wp); !errors.Is(err, ErrNotGrabbable) {
		t.Errorf("hold workpiece: err = %v", err)
	}
	if err := s.Hold(a); err != nil {
		t.Fatalf("hold: %v", err)
	}
	if err := s.Hold(b); !errors.Is(err, ErrAlreadyHolding) {
		t.Errorf("second hold: err = %v", err)
	}
	if e, ok := s.Holding(); !ok || e != a {
		t.Errorf("holding = %v %v", e, ok)
	}

	// held entities are not pickable
	r := physics.Ray{Origin: mgl32.Vec3{0, 0.3, 2}, Dir: mgl32.Vec3{0, 0, -1}}
	if hit, ok := s.Pick(r, 5); ok && hit.Entity == a {
		t.Error("picked the held tool")
	}

	drop := mgl32.Vec3{0, 0.8, -1}
	if err := s.Release(a, drop, 0.5); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Holding(); ok {
		t.Error("still holding after release")
	}
	if tr, _ := s.Transform(a); tr.Position != drop || tr.Yaw != 0.5 {
		t.Errorf("released transform = %+v", tr)
	}
	if err := s.Hold(b); err != nil {
		t.Errorf("hold after release: %v", err)
	}
}

func TestToolsView(t *testing.T) {
	s := New()
	a := s.SpawnTool(carve.NewTool(carve.Chisel), Transform{Scale: 1}, toolBox)
	s.SpawnTool(carve.NewTool(carve.Brush), Transform{Scale: 1}, toolBox)
	if err := s.Hold(a); err != nil {
		t.Fatal(err)
	}
	held := 0
	for _, v := range s.Tools() {
		if v.Held {
			held++
			if v.Entity != a || v.Tool.Kind != carve.Chisel {
				t.Errorf("held view = %+v", v)
			}
		}
	}
	if held != 1 || len(s.Tools()) != 2 {
		t.Errorf("held=%d total=%d", held, len(s.Tools()))
	}
}

func TestDustLifecycle(t *testing.T) {
	s := New()
	rng := rand.New(rand.NewSource(3))
	s.SpawnDust(mgl32.Vec3{0, 1.5, 0}, 12, rng)
	if got := s.DustCount(); got != 12 {
		t.Fatalf("dust = %d", got)
	}

	s.Update(1.0 / 60)
	parts := s.Dust(nil)
	if len(parts) != 12 {
		t.Fatalf("dust after one frame = %d", len(parts))
	}
	for _, p := range parts {
		if p.Fade <= 0 || p.Fade > 1 {
			t.Errorf("fade = %v", p.Fade)
		}
	}

	for i := 0; i < 120; i++ {
		s.Update(1.0 / 60)
	}
	if got := s.DustCount(); got != 0 {
		t.Errorf("dust after 2s = %d, want 0", got)
	}
}

func TestFurnishPlacesEverythingOnTheBench(t *testing.T) {
	s := New()
	s.Furnish()

	tools := s.Tools()
	if len(tools) != 3 {
		t.Fatalf("expected 3 tools, got %d", len(tools))
	}
	kinds := map[carve.ToolKind]bool{}
	for _, tv := range tools {
		kinds[tv.Tool.Kind] = true
		if tv.Transform.Position.Y() != BenchHeight {
			t.Errorf("%v rests at y=%v", tv.Tool.Kind, tv.Transform.Position.Y())
		}
	}
	if !kinds[carve.Chisel] || !kinds[carve.Brush] || !kinds[carve.Mallet] {
		t.Errorf("missing tool kinds: %v", kinds)
	}

	wps := s.Workpieces()
	if len(wps) != 2 {
		t.Fatalf("expected 2 workpieces, got %d", len(wps))
	}
	for _, wv := range wps {
		lo, _ := wv.Workpiece.Mesh.WorldBounds()
		if d := lo.Y() - BenchHeight; d < -1e-4 || d > 1e-4 {
			t.Errorf("%s bottom at %v, want bench top", wv.Workpiece.Name, lo.Y())
		}
	}
}

func TestChiselReachableFromSpawn(t *testing.T) {
	s := New()
	s.Furnish()

	var target mgl32.Vec3
	for _, tv := range s.Tools() {
		if tv.Tool.Kind == carve.Chisel {
			target = tv.Transform.Position.Add(mgl32.Vec3{0, 0.025, 0})
		}
	}
	eye := PlayerSpawn.Add(mgl32.Vec3{0, 1.6, 0})
	dir := target.Sub(eye).Normalize()
	hit, ok := s.Pick(physics.Ray{Origin: eye, Dir: dir}, 3)
	if !ok || hit.Kind != KindTool || s.Tool(hit.Entity).Kind != carve.Chisel {
		t.Fatalf("expected to pick the chisel, got %+v ok=%v", hit, ok)
	}
}
