package mesh

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"workshop/internal/profiling"
)

var ErrInvalidMesh = errors.New("invalid mesh")

// Mesh is an indexed triangle mesh whose vertex positions may be edited in place.
// Positions and normals are in local space; Model maps them to world space.
// The index buffer is fixed after construction.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Indices   []uint32

	model   mgl32.Mat4
	inverse mgl32.Mat4
	version uint64
}

// New validates the buffers and computes smooth normals.
func New(positions []mgl32.Vec3, indices []uint32) (*Mesh, error) {
	m := &Mesh{
		Positions: positions,
		Normals:   make([]mgl32.Vec3, len(positions)),
		Indices:   indices,
		model:     mgl32.Ident4(),
		inverse:   mgl32.Ident4(),
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	m.ComputeNormals()
	return m, nil
}

// Validate checks that the mesh is a well formed triangle list.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices is not a multiple of 3", ErrInvalidMesh, len(m.Indices))
	}
	if len(m.Normals) != len(m.Positions) {
		return fmt.Errorf("%w: %d normals for %d positions", ErrInvalidMesh, len(m.Normals), len(m.Positions))
	}
	n := uint32(len(m.Positions))
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("%w: index %d at %d out of range (%d vertices)", ErrInvalidMesh, idx, i, n)
		}
	}
	return nil
}

func (m *Mesh) VertexCount() int   { return len(m.Positions) }
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// ComputeNormals rebuilds per-vertex normals as the area weighted sum of adjacent face normals.
// Vertices that belong to no triangle, or only to degenerate ones, get a zero normal.
func (m *Mesh) ComputeNormals() {
	defer profiling.Track("mesh.ComputeNormals")()

	for i := range m.Normals {
		m.Normals[i] = mgl32.Vec3{}
	}
	for t := 0; t+2 < len(m.Indices); t += 3 {
		a, b, c := m.Indices[t], m.Indices[t+1], m.Indices[t+2]
		pa, pb, pc := m.Positions[a], m.Positions[b], m.Positions[c]
		// cross product length is twice the triangle area
		face := pb.Sub(pa).Cross(pc.Sub(pa))
		m.Normals[a] = m.Normals[a].Add(face)
		m.Normals[b] = m.Normals[b].Add(face)
		m.Normals[c] = m.Normals[c].Add(face)
	}
	for i, n := range m.Normals {
		if l := n.Len(); l > 1e-12 {
			m.Normals[i] = n.Mul(1 / l)
		}
	}
}

// SetModel sets the local to world transform.
func (m *Mesh) SetModel(model mgl32.Mat4) {
	m.model = model
	m.inverse = model.Inv()
}

func (m *Mesh) Model() mgl32.Mat4   { return m.model }
func (m *Mesh) Inverse() mgl32.Mat4 { return m.inverse }

// WorldPosition returns vertex i in world space.
func (m *Mesh) WorldPosition(i int) mgl32.Vec3 {
	return mgl32.TransformCoordinate(m.Positions[i], m.model)
}

// ToLocalPoint maps a world space point into mesh space.
func (m *Mesh) ToLocalPoint(p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.TransformCoordinate(p, m.inverse)
}

// ToLocalVector maps a world space displacement into mesh space, keeping its world length
// once transformed back by Model.
func (m *Mesh) ToLocalVector(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.TransformNormal(v, m.inverse)
}

// ToWorldVector maps a local displacement (or normal for rigid models) into world space.
func (m *Mesh) ToWorldVector(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.TransformNormal(v, m.model)
}

// Bounds returns the local space axis aligned bounding box.
func (m *Mesh) Bounds() (lo, hi mgl32.Vec3) {
	if len(m.Positions) == 0 {
		return
	}
	lo, hi = m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		for k := 0; k < 3; k++ {
			lo[k] = min(lo[k], p[k])
			hi[k] = max(hi[k], p[k])
		}
	}
	return lo, hi
}

// WorldBounds returns the world space box enclosing the transformed local box.
func (m *Mesh) WorldBounds() (lo, hi mgl32.Vec3) {
	llo, lhi := m.Bounds()
	first := true
	for i := 0; i < 8; i++ {
		c := mgl32.Vec3{llo[0], llo[1], llo[2]}
		if i&1 != 0 {
			c[0] = lhi[0]
		}
		if i&2 != 0 {
			c[1] = lhi[1]
		}
		if i&4 != 0 {
			c[2] = lhi[2]
		}
		w := mgl32.TransformCoordinate(c, m.model)
		if first {
			lo, hi = w, w
			first = false
			continue
		}
		for k := 0; k < 3; k++ {
			lo[k] = min(lo[k], w[k])
			hi[k] = max(hi[k], w[k])
		}
	}
	return lo, hi
}

// Version increases on every Touch. Consumers compare it to detect stale copies.
func (m *Mesh) Version() uint64 { return m.version }

// Touch marks the geometry as modified.
func (m *Mesh) Touch() { m.version++ }

// Clone returns a deep copy with the same transform and version.
func (m *Mesh) Clone() *Mesh {
	c := *m
	c.Positions = append([]mgl32.Vec3(nil), m.Positions...)
	c.Normals = append([]mgl32.Vec3(nil), m.Normals...)
	c.Indices = append([]uint32(nil), m.Indices...)
	return &c
}
