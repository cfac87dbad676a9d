package play

import "workshop/internal/player"

// Controls is the input for one simulation step, merged from every source.
type Controls struct {
	Move  player.MoveIntent
	Grab  bool // edge triggered
	Drop  bool // edge triggered
	Carve bool // held

	// Touch look drag in pixels, positive dy looks up. Mouse look is applied
	// directly from the cursor callback.
	LookDX, LookDY float64
}
