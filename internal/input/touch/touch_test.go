package touch

import (
	"math"
	"testing"
)

func TestStick(t *testing.T) {
	c := NewController(800)
	c.Handle(Event{ID: 1, X: 100, Y: 400, Phase: Began})
	if f, s := c.MoveVector(); f != 0 || s != 0 {
		t.Fatalf("untouched stick = %v %v", f, s)
	}

	c.Handle(Event{ID: 1, X: 100, Y: 370, Phase: Moved}) // half way up
	f, s := c.MoveVector()
	if math.Abs(float64(f)-0.5) > 1e-6 || s != 0 {
		t.Errorf("stick = %v %v, want forward 0.5", f, s)
	}
	if c.Sprinting() {
		t.Error("half stick should not sprint")
	}

	c.Handle(Event{ID: 1, X: 400, Y: 400, Phase: Moved}) // far right, clamped
	f, s = c.MoveVector()
	if f != 0 || s != 1 || !c.Sprinting() {
		t.Errorf("stick = %v %v sprint=%v", f, s, c.Sprinting())
	}

	c.Handle(Event{ID: 1, X: 400, Y: 400, Phase: Ended})
	if f, s := c.MoveVector(); f != 0 || s != 0 || c.Active() {
		t.Error("stick still active after release")
	}
}

func TestDeadZone(t *testing.T) {
	c := NewController(800)
	c.Handle(Event{ID: 1, X: 100, Y: 100, Phase: Began})
	c.Handle(Event{ID: 1, X: 105, Y: 100, Phase: Moved})
	if f, s := c.MoveVector(); f != 0 || s != 0 {
		t.Errorf("inside dead zone: %v %v", f, s)
	}
}

func TestLookDragAndTap(t *testing.T) {
	c := NewController(800)
	c.Handle(Event{ID: 2, X: 600, Y: 300, Phase: Began})
	c.Handle(Event{ID: 2, X: 620, Y: 290, Phase: Moved})
	c.Handle(Event{ID: 2, X: 640, Y: 280, Phase: Moved})

	dx, dy := c.ConsumeLook()
	if dx != 40 || dy != 20 {
		t.Errorf("look = %v %v, want 40 20", dx, dy)
	}
	if dx, dy := c.ConsumeLook(); dx != 0 || dy != 0 {
		t.Error("look not reset after consume")
	}
	c.Handle(Event{ID: 2, X: 640, Y: 280, Phase: Ended})
	if c.ConsumeTap() {
		t.Error("drag reported as tap")
	}

	c.Handle(Event{ID: 3, X: 500, Y: 200, Phase: Began})
	c.Handle(Event{ID: 3, X: 503, Y: 202, Phase: Moved})
	c.Handle(Event{ID: 3, X: 503, Y: 202, Phase: Ended})
	if !c.ConsumeTap() {
		t.Error("tap not detected")
	}
	if c.ConsumeTap() {
		t.Error("tap reported twice")
	}

	c.Handle(Event{ID: 4, X: 500, Y: 200, Phase: Began})
	c.Handle(Event{ID: 4, X: 500, Y: 200, Phase: Cancelled})
	if c.ConsumeTap() {
		t.Error("cancelled touch reported as tap")
	}
}

func TestSecondFingerCarves(t *testing.T) {
	c := NewController(800)
	c.Handle(Event{ID: 1, X: 100, Y: 400, Phase: Began}) // stick
	c.Handle(Event{ID: 2, X: 600, Y: 300, Phase: Began}) // look
	if c.CarveHeld() {
		t.Fatal("carve with only one right finger")
	}
	c.Handle(Event{ID: 3, X: 700, Y: 500, Phase: Began})
	if !c.CarveHeld() {
		t.Fatal("second right finger should carve")
	}
	c.Handle(Event{ID: 3, X: 700, Y: 500, Phase: Ended})
	if c.CarveHeld() {
		t.Error("carve still held")
	}

	// a second left finger is ignored
	c.Handle(Event{ID: 5, X: 50, Y: 50, Phase: Began})
	c.Handle(Event{ID: 5, X: 50, Y: 0, Phase: Moved})
	if f, _ := c.MoveVector(); f != 0 {
		t.Errorf("second left finger moved the stick: %v", f)
	}
}
