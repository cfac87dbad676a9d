package player

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"workshop/internal/carve"
	"workshop/internal/physics"
	"workshop/internal/scene"
)

const frame = 1.0 / 60.0

func TestNeverBelowFloor(t *testing.T) {
	p := New(mgl32.Vec3{0, 3, 0})
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		in := MoveIntent{
			Forward: float32(rng.Intn(3) - 1),
			Strafe:  float32(rng.Intn(3) - 1),
			Sprint:  rng.Intn(2) == 0,
			Jump:    rng.Intn(10) == 0,
		}
		dt := rng.Float64() / 30
		p.Update(dt, in, true)
		if p.Position.Y() < physics.FloorHeight {
			t.Fatalf("frame %d: feet at %v below floor", i, p.Position.Y())
		}
	}
}

func TestFallAndLand(t *testing.T) {
	p := New(mgl32.Vec3{0, 2, 0})
	if p.OnGround {
		t.Fatal("spawned in the air but grounded")
	}
	for i := 0; i < 120; i++ {
		p.Update(frame, MoveIntent{}, true)
	}
	if !p.OnGround || p.Position.Y() != 0 || p.Velocity.Y() != 0 {
		t.Errorf("after falling: y=%v vy=%v grounded=%v", p.Position.Y(), p.Velocity.Y(), p.OnGround)
	}
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	p := New(mgl32.Vec3{})
	p.Update(frame, MoveIntent{Jump: true}, true)
	if p.OnGround || p.Position.Y() <= 0 {
		t.Fatalf("jump did not leave the floor: %+v", p.Position)
	}
	vy := p.Velocity.Y()
	p.Update(frame, MoveIntent{Jump: true}, true)
	if p.Velocity.Y() >= vy {
		t.Errorf("mid-air jump re-applied velocity: %v -> %v", vy, p.Velocity.Y())
	}

	// apex of v^2/2g
	p = New(mgl32.Vec3{})
	var peak float32
	p.Update(frame, MoveIntent{Jump: true}, true)
	for i := 0; i < 120; i++ {
		peak = max(peak, p.Position.Y())
		p.Update(frame, MoveIntent{}, true)
	}
	want := JumpVelocity * JumpVelocity / (2 * -Gravity)
	if math.Abs(float64(peak)-want) > 0.15 {
		t.Errorf("jump peak = %v, want about %v", peak, want)
	}
}

func TestWalkAndSprintSpeed(t *testing.T) {
	p := New(mgl32.Vec3{})
	p.Update(frame, MoveIntent{Forward: 1, Strafe: 1}, true)
	if s := p.HorizontalSpeed(); math.Abs(float64(s)-WalkSpeed) > 1e-4 {
		t.Errorf("diagonal walk speed = %v, want normalized %v", s, WalkSpeed)
	}
	p.Update(frame, MoveIntent{Forward: 1, Sprint: true}, true)
	if s := p.HorizontalSpeed(); math.Abs(float64(s)-SprintSpeed) > 1e-4 {
		t.Errorf("sprint speed = %v", s)
	}
	p.Update(frame, MoveIntent{Sprint: true}, true)
	if p.IsSprinting || p.HorizontalSpeed() != 0 {
		t.Error("standing still should not sprint")
	}
}

func TestForwardFollowsYaw(t *testing.T) {
	p := New(mgl32.Vec3{})
	// default yaw faces -Z
	start := p.Position
	p.Update(0.1, MoveIntent{Forward: 1}, false)
	d := p.Position.Sub(start)
	if d.Z() >= -0.49 || math.Abs(float64(d.X())) > 1e-4 {
		t.Errorf("moved %v, want about (0,0,-0.5)", d)
	}
	p.Position = mgl32.Vec3{}
	p.Update(0.1, MoveIntent{Strafe: 1}, false)
	if p.Position.X() < 0.49 {
		t.Errorf("strafe right moved %v, want +X", p.Position)
	}
}

func TestHeadBob(t *testing.T) {
	p := New(mgl32.Vec3{})
	p.Update(frame, MoveIntent{}, true) // settle on the floor
	p.Update(0.1, MoveIntent{Forward: 1}, true)
	want := EyeHeight + float32(math.Sin(0.1*BobFrequency))*BobAmplitude
	if math.Abs(float64(p.CameraHeight-want)) > 1e-5 {
		t.Errorf("camera height = %v, want %v", p.CameraHeight, want)
	}

	for i := 0; i < 60; i++ {
		p.Update(frame, MoveIntent{}, true)
	}
	if math.Abs(float64(p.CameraHeight-EyeHeight)) > 1e-3 {
		t.Errorf("camera did not settle: %v", p.CameraHeight)
	}

	q := New(mgl32.Vec3{})
	for i := 0; i < 30; i++ {
		q.Update(frame, MoveIntent{Forward: 1}, false)
	}
	if q.CameraHeight != EyeHeight {
		t.Errorf("bob with view bobbing off: %v", q.CameraHeight)
	}
}

func TestPitchClamp(t *testing.T) {
	p := New(mgl32.Vec3{})
	p.HandleMouseMovement(100, 100, 0.1) // first event only records
	if p.CamPitch != 0 || p.CamYaw != -90 {
		t.Fatalf("first event turned the camera: yaw=%v pitch=%v", p.CamYaw, p.CamPitch)
	}
	p.HandleMouseMovement(100, -5000, 0.1)
	if p.CamPitch != MaxPitch {
		t.Errorf("pitch = %v, want %v", p.CamPitch, MaxPitch)
	}
	p.ApplyLookDelta(0, -1e6, 0.1)
	if p.CamPitch != -MaxPitch {
		t.Errorf("pitch = %v, want %v", p.CamPitch, -MaxPitch)
	}
	p.ApplyLookDelta(50, 0, 0.1)
	if math.Abs(p.CamYaw-(-85)) > 1e-9 {
		t.Errorf("yaw = %v, want -85", p.CamYaw)
	}

	yaw := p.CamYaw
	p.ResetMouse()
	p.HandleMouseMovement(0, 0, 0.1)
	if p.CamYaw != yaw {
		t.Error("event after reset turned the camera")
	}
}

func spawnTools(s *scene.Scene) {
	box := scene.Collider{Min: mgl32.Vec3{-0.1, 0, -0.1}, Max: mgl32.Vec3{0.1, 0.6, 0.1}}
	s.SpawnTool(carve.NewTool(carve.Chisel), scene.Transform{Position: mgl32.Vec3{0, 1.3, -1.5}, Scale: 1}, box)
	s.SpawnTool(carve.NewTool(carve.Brush), scene.Transform{Position: mgl32.Vec3{0, 1.3, -2.5}, Scale: 1}, box)
}

func TestGrabAtMostOne(t *testing.T) {
	s := scene.New()
	spawnTools(s)
	p := New(mgl32.Vec3{})

	if !p.TryGrab(s, 3) {
		t.Fatal("expected to grab the chisel")
	}
	if tool := p.HeldTool(s); tool == nil || tool.Kind != carve.Chisel {
		t.Fatalf("held tool = %+v", tool)
	}
	// still cooling down and holding
	if p.TryGrab(s, 3) {
		t.Error("grabbed a second item")
	}
	for i := 0; i < 60; i++ {
		p.Update(frame, MoveIntent{}, true)
	}
	if p.TryGrab(s, 3) {
		t.Error("grabbed while holding after cooldown")
	}
	if e, ok := s.Holding(); !ok || e != p.Held {
		t.Error("scene and player disagree about the held item")
	}
}

func TestGrabCooldownAfterDrop(t *testing.T) {
	s := scene.New()
	spawnTools(s)
	p := New(mgl32.Vec3{})

	if !p.TryGrab(s, 3) {
		t.Fatal("grab")
	}
	if !p.Drop(s) {
		t.Fatal("drop")
	}
	if p.TryGrab(s, 3) {
		t.Error("grab accepted during cooldown")
	}
	for i := 0; i < 40; i++ {
		p.Update(frame, MoveIntent{}, true)
	}
	if !p.TryGrab(s, 3) {
		t.Error("grab rejected after cooldown")
	}
}

func TestDropInFront(t *testing.T) {
	s := scene.New()
	spawnTools(s)
	p := New(mgl32.Vec3{})
	if !p.TryGrab(s, 3) {
		t.Fatal("grab")
	}
	held := p.Held
	p.Drop(s)

	tr, ok := s.Transform(held)
	if !ok {
		t.Fatal("dropped entity missing")
	}
	want := mgl32.Vec3{0, waistHeight, -dropDistance}
	if !tr.Position.ApproxEqualThreshold(want, 1e-4) {
		t.Errorf("dropped at %v, want %v", tr.Position, want)
	}
	if p.HasHeld || s.IsHeld(held) {
		t.Error("still held after drop")
	}
	if p.Drop(s) {
		t.Error("drop with empty hands reported success")
	}
}

func TestGrabOutOfReach(t *testing.T) {
	s := scene.New()
	spawnTools(s)
	p := New(mgl32.Vec3{0, 0, 5})
	if p.TryGrab(s, 3) {
		t.Error("grabbed beyond reach")
	}
}
