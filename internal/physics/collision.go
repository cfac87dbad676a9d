package physics

// FloorHeight is the world Y of the workshop floor.
const FloorHeight float32 = 0

// ClampToFloor keeps a foot position at or above the floor. It reports whether the
// position was resting on or pushed up to the floor.
func ClampToFloor(y float32) (float32, bool) {
	if y <= FloorHeight {
		return FloorHeight, true
	}
	return y, false
}
