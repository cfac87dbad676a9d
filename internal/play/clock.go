package play

import "time"

// MaxFrameDelta caps a single simulation step, so a hitch or a resumed window
// never produces a huge jump.
const MaxFrameDelta = 1.0 / 30.0

// FrameClock measures the time between frames.
type FrameClock struct {
	now  func() time.Time
	last time.Time
}

func NewFrameClock() *FrameClock {
	return &FrameClock{now: time.Now}
}

// Tick returns the seconds since the previous Tick, clamped to MaxFrameDelta.
// The first Tick returns 0.
func (c *FrameClock) Tick() float64 {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return 0
	}
	dt := t.Sub(c.last).Seconds()
	c.last = t
	if dt < 0 {
		return 0
	}
	return min(dt, MaxFrameDelta)
}

// Reset makes the next Tick start from zero again, e.g. after a pause.
func (c *FrameClock) Reset() {
	c.last = time.Time{}
}

// FPSMeter counts frames over one second windows.
type FPSMeter struct {
	frames int
	start  time.Time
	fps    float64
}

// Frame records a presented frame at t and returns the latest measurement.
func (m *FPSMeter) Frame(t time.Time) float64 {
	if m.start.IsZero() {
		m.start = t
	}
	m.frames++
	if el := t.Sub(m.start); el >= time.Second {
		m.fps = float64(m.frames) / el.Seconds()
		m.frames = 0
		m.start = t
	}
	return m.fps
}
