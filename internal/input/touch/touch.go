// Package touch turns raw touch points into player intents: a virtual stick on the
// left half of the screen, look dragging on the right half, tap to grab and a
// second right-hand finger to carve.
package touch

import "math"

type Phase uint8

const (
	Began Phase = iota
	Moved
	Ended
	Cancelled
)

// Event is one touch point update in window pixels.
type Event struct {
	ID    int
	X, Y  float64
	Phase Phase
}

const (
	DefaultStickRadius = 60.0
	deadZone           = 0.15
	sprintThreshold    = 0.95
	// a look touch that travels less than this is a tap
	tapSlop = 10.0
)

type pointer struct {
	id        int
	originX   float64
	originY   float64
	x, y      float64
	travelled float64
}

type Controller struct {
	width       float64
	stickRadius float64

	stick *pointer
	look  *pointer
	carve *pointer

	lookDX, lookDY float64
	tapPending     bool
}

func NewController(width float64) *Controller {
	return &Controller{width: width, stickRadius: DefaultStickRadius}
}

// Resize updates the split between the stick and look halves.
func (c *Controller) Resize(width float64) {
	c.width = width
}

func (c *Controller) Handle(ev Event) {
	switch ev.Phase {
	case Began:
		p := &pointer{id: ev.ID, originX: ev.X, originY: ev.Y, x: ev.X, y: ev.Y}
		switch {
		case ev.X < c.width/2 && c.stick == nil:
			c.stick = p
		case ev.X >= c.width/2 && c.look == nil:
			c.look = p
		case ev.X >= c.width/2 && c.carve == nil:
			c.carve = p
		}
	case Moved:
		switch {
		case c.stick != nil && c.stick.id == ev.ID:
			c.stick.x, c.stick.y = ev.X, ev.Y
		case c.look != nil && c.look.id == ev.ID:
			dx, dy := ev.X-c.look.x, ev.Y-c.look.y
			c.lookDX += dx
			c.lookDY -= dy // dragging up looks up
			c.look.travelled += math.Hypot(dx, dy)
			c.look.x, c.look.y = ev.X, ev.Y
		case c.carve != nil && c.carve.id == ev.ID:
			c.carve.x, c.carve.y = ev.X, ev.Y
		}
	case Ended, Cancelled:
		switch {
		case c.stick != nil && c.stick.id == ev.ID:
			c.stick = nil
		case c.look != nil && c.look.id == ev.ID:
			if ev.Phase == Ended && c.look.travelled < tapSlop {
				c.tapPending = true
			}
			c.look = nil
		case c.carve != nil && c.carve.id == ev.ID:
			c.carve = nil
		}
	}
}

// MoveVector returns forward and strafe in [-1, 1] from the virtual stick.
func (c *Controller) MoveVector() (forward, strafe float32) {
	dx, dy, mag := c.stickOffset()
	if mag < deadZone {
		return 0, 0
	}
	return float32(-dy), float32(dx)
}

// Sprinting reports whether the stick is pushed to its rim.
func (c *Controller) Sprinting() bool {
	_, _, mag := c.stickOffset()
	return mag >= sprintThreshold
}

func (c *Controller) stickOffset() (dx, dy, mag float64) {
	if c.stick == nil || c.stickRadius <= 0 {
		return 0, 0, 0
	}
	dx = (c.stick.x - c.stick.originX) / c.stickRadius
	dy = (c.stick.y - c.stick.originY) / c.stickRadius
	mag = math.Hypot(dx, dy)
	if mag > 1 {
		dx, dy, mag = dx/mag, dy/mag, 1
	}
	return dx, dy, mag
}

// ConsumeLook returns the accumulated look drag in pixels and resets it.
// Positive dy looks up.
func (c *Controller) ConsumeLook() (dx, dy float64) {
	dx, dy = c.lookDX, c.lookDY
	c.lookDX, c.lookDY = 0, 0
	return dx, dy
}

// ConsumeTap reports a tap on the look half once.
func (c *Controller) ConsumeTap() bool {
	t := c.tapPending
	c.tapPending = false
	return t
}

func (c *Controller) CarveHeld() bool { return c.carve != nil }

func (c *Controller) Active() bool {
	return c.stick != nil || c.look != nil || c.carve != nil
}
