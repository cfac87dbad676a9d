package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"workshop/internal/mesh"
	"workshop/internal/profiling"
)

const (
	MinReachDistance = 0.1
	MaxReachDistance = 5.0
)

const epsilon = 1e-7

// Ray is a half line. Dir is expected to be normalized so distances are in world units.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// RaycastResult stores the nearest hit of a ray against a mesh
type RaycastResult struct {
	Point    mgl32.Vec3
	Normal   mgl32.Vec3 // geometric normal of the hit triangle, world space, facing the ray
	Distance float32
	Triangle int
	Hit      bool
}

// IntersectTriangle returns the distance along r to triangle abc (Möller-Trumbore).
// Both faces count as hits.
func IntersectTriangle(r Ray, a, b, c mgl32.Vec3) (float32, bool) {
	e1 := b.Sub(a)
	e2 := c.Sub(a)
	p := r.Dir.Cross(e2)
	det := e1.Dot(p)
	if det > -epsilon && det < epsilon {
		return 0, false
	}
	inv := 1 / det
	s := r.Origin.Sub(a)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := s.Cross(e1)
	v := r.Dir.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t := e2.Dot(q) * inv
	if t < 0 {
		return 0, false
	}
	return t, true
}

// IntersectAABB returns the entry distance of r into the box [lo, hi] using the slab
// method. A ray starting inside reports 0.
func IntersectAABB(r Ray, lo, hi mgl32.Vec3) (float32, bool) {
	tmin := float32(math.Inf(-1))
	tmax := float32(math.Inf(1))
	for k := 0; k < 3; k++ {
		if r.Dir[k] > -epsilon && r.Dir[k] < epsilon {
			if r.Origin[k] < lo[k] || r.Origin[k] > hi[k] {
				return 0, false
			}
			continue
		}
		inv := 1 / r.Dir[k]
		t1 := (lo[k] - r.Origin[k]) * inv
		t2 := (hi[k] - r.Origin[k]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	if tmax < 0 {
		return 0, false
	}
	return max(tmin, 0), true
}

// RaycastMesh finds the nearest triangle of m hit by r between minDist and maxDist.
// The mesh bounds are tested first so misses cost one box test.
func RaycastMesh(r Ray, m *mesh.Mesh, minDist, maxDist float32) RaycastResult {
	defer profiling.Track("physics.RaycastMesh")()

	result := RaycastResult{Triangle: -1}
	lo, hi := m.WorldBounds()
	if t, ok := IntersectAABB(r, lo, hi); !ok || t > maxDist {
		return result
	}

	world := make([]mgl32.Vec3, m.VertexCount())
	for i := range world {
		world[i] = m.WorldPosition(i)
	}

	best := maxDist
	for tri := 0; tri < m.TriangleCount(); tri++ {
		a := world[m.Indices[tri*3]]
		b := world[m.Indices[tri*3+1]]
		c := world[m.Indices[tri*3+2]]
		t, ok := IntersectTriangle(r, a, b, c)
		if !ok || t < minDist || t > best {
			continue
		}
		best = t
		n := b.Sub(a).Cross(c.Sub(a))
		if n.Dot(r.Dir) > 0 {
			n = n.Mul(-1)
		}
		result = RaycastResult{
			Point:    r.At(t),
			Normal:   n.Normalize(),
			Distance: t,
			Triangle: tri,
			Hit:      true,
		}
	}
	return result
}
