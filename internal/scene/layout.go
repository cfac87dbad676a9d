package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"workshop/internal/carve"
	"workshop/internal/mesh"
)

// Bench dimensions in metres. The bench stands on the floor at BenchCenter.
const (
	BenchWidth  = 3.0
	BenchHeight = 0.9
	BenchDepth  = 1.2
)

var BenchCenter = mgl32.Vec3{0, 0, -1.2}

// PlayerSpawn faces the bench from the open side of the room.
var PlayerSpawn = mgl32.Vec3{0, 0, 0.6}

// ToolCollider is the pick box of a tool lying along +X with its underside at y=0.
func ToolCollider(kind carve.ToolKind) Collider {
	switch kind {
	case carve.Brush:
		return Collider{Min: mgl32.Vec3{-0.11, 0, -0.02}, Max: mgl32.Vec3{0.11, 0.04, 0.02}}
	case carve.Mallet:
		return Collider{Min: mgl32.Vec3{-0.15, 0, -0.07}, Max: mgl32.Vec3{0.15, 0.08, 0.07}}
	default:
		return Collider{Min: mgl32.Vec3{-0.12, 0, -0.025}, Max: mgl32.Vec3{0.12, 0.05, 0.025}}
	}
}

// Furnish lays out the starting bench: a wood and a stone block, and one of
// each tool along the front edge.
func (s *Scene) Furnish() {
	top := float32(BenchHeight)
	front := BenchCenter.Z() + BenchDepth/2 - 0.15

	wood := carve.NewWorkpiece("oak block", carve.Wood, mesh.NewBox(0.4, 0.3, 0.3, 14))
	s.SpawnWorkpiece(wood, Transform{Position: mgl32.Vec3{-0.35, top + 0.15, BenchCenter.Z()}, Scale: 1})

	stone := carve.NewWorkpiece("limestone block", carve.Stone, mesh.NewBox(0.3, 0.3, 0.3, 12))
	s.SpawnWorkpiece(stone, Transform{Position: mgl32.Vec3{0.4, top + 0.15, BenchCenter.Z()}, Scale: 1})

	for i, kind := range []carve.ToolKind{carve.Chisel, carve.Brush, carve.Mallet} {
		x := -0.6 + float32(i)*0.45
		s.SpawnTool(carve.NewTool(kind), Transform{Position: mgl32.Vec3{x, top, front}, Scale: 1}, ToolCollider(kind))
	}
}
