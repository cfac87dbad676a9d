package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"workshop/internal/carve"
)

// Transform places an entity in the world. Yaw is in radians around +Y.
type Transform struct {
	Position mgl32.Vec3
	Yaw      float32
	Scale    float32
}

func (t Transform) Matrix() mgl32.Mat4 {
	s := t.Scale
	if s == 0 {
		s = 1
	}
	return mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).
		Mul4(mgl32.HomogRotate3DY(t.Yaw)).
		Mul4(mgl32.Scale3D(s, s, s))
}

type Kind uint8

const (
	KindTool Kind = iota
	KindWorkpiece
)

// Interactable marks entities the player can target with the centre ray.
type Interactable struct {
	Kind      Kind
	Grabbable bool
}

// Collider is a local space box used for picking.
type Collider struct {
	Min, Max mgl32.Vec3
}

type ToolRef struct {
	Tool *carve.Tool
}

type WorkpieceRef struct {
	Workpiece *carve.Workpiece
}

// Held tags the entity currently in the player's hand.
type Held struct{}

// Dust is a short lived particle spawned by carving.
type Dust struct {
	Velocity mgl32.Vec3
	Life     float32
	MaxLife  float32
}
