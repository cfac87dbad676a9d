package carve

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"workshop/internal/mesh"
)

type MaterialType uint8

const (
	Wood MaterialType = iota
	Stone
)

func (t MaterialType) String() string {
	if t == Stone {
		return "stone"
	}
	return "wood"
}

// Hardness scales carve strength; harder material gives less per stroke.
func (t MaterialType) Hardness() float32 {
	if t == Stone {
		return 2
	}
	return 1
}

// Workpiece is a carvable block on the bench.
type Workpiece struct {
	ID       uuid.UUID
	Name     string
	Type     MaterialType
	Mesh     *mesh.Mesh
	Material Material

	Carves int
	Score  float64
}

func NewWorkpiece(name string, mt MaterialType, m *mesh.Mesh) *Workpiece {
	w := &Workpiece{
		ID:   uuid.New(),
		Name: name,
		Type: mt,
		Mesh: m,
	}
	switch mt {
	case Stone:
		w.Material = Material{Color: mgl32.Vec3{0.62, 0.62, 0.64}, Opacity: 1}
	default:
		// burlywood, slightly see-through
		w.Material = Material{Color: mgl32.Vec3{0.871, 0.722, 0.529}, Opacity: 0.7}
	}
	return w
}

// ShortID is the first block of the UUID, used in logs and on the HUD.
func (w *Workpiece) ShortID() string {
	return w.ID.String()[:8]
}
