package play

import "time"

// IdleFPS caps menus and the pause screen.
const IdleFPS = 60

// FrameBudget is the time one frame may take under limit FPS, or 0 when uncapped.
// Idle frames never run faster than IdleFPS.
func FrameBudget(limit int, idle bool) time.Duration {
	if idle && (limit <= 0 || limit > IdleFPS) {
		limit = IdleFPS
	}
	if limit <= 0 {
		return 0
	}
	return time.Second / time.Duration(limit)
}

// FPSLimiter paces frames by sleeping most of the budget and spinning the rest.
type FPSLimiter struct {
	next time.Time
	spin time.Duration
}

func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{spin: 200 * time.Microsecond}
}

// Wait blocks until the next frame is due.
func (f *FPSLimiter) Wait(limit int, idle bool) {
	budget := FrameBudget(limit, idle)
	if budget == 0 {
		f.next = time.Time{}
		return
	}

	now := time.Now()
	// resync after a hitch instead of rushing to catch up
	if f.next.IsZero() || now.Sub(f.next) > budget {
		f.next = now
	}
	f.next = f.next.Add(budget)

	if d := time.Until(f.next) - f.spin; d > 0 {
		time.Sleep(d)
	}
	for time.Now().Before(f.next) {
	}
}
