package mesh

import "github.com/go-gl/mathgl/mgl32"

// Snapshot is an immutable copy of the vertex data, safe to hand to another goroutine.
type Snapshot struct {
	Version   uint64
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Indices   []uint32
}

// Snapshot copies the current geometry.
func (m *Mesh) Snapshot() Snapshot {
	return Snapshot{
		Version:   m.version,
		Positions: append([]mgl32.Vec3(nil), m.Positions...),
		Normals:   append([]mgl32.Vec3(nil), m.Normals...),
		Indices:   append([]uint32(nil), m.Indices...),
	}
}

// FloatsPerVertex is the stride of Interleave output: position xyz, normal xyz.
const FloatsPerVertex = 6

// Interleave packs positions and normals into a single vertex buffer.
func (s Snapshot) Interleave() []float32 {
	out := make([]float32, 0, len(s.Positions)*FloatsPerVertex)
	for i, p := range s.Positions {
		n := s.Normals[i]
		out = append(out, p[0], p[1], p[2], n[0], n[1], n[2])
	}
	return out
}
