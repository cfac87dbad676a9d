package carve

import (
	"github.com/go-gl/mathgl/mgl32"

	"workshop/internal/mesh"
	"workshop/internal/profiling"
)

// Result describes what a single carve event did to a mesh.
type Result struct {
	Moved        int     // vertices displaced
	Displacement float32 // sum of world space displacement lengths
}

func (r Result) Changed() bool { return r.Moved > 0 }

// Displace pushes every vertex whose world position lies strictly within radius of
// point along dir, by (1 - distance/radius) * strength world units. A vertex at the
// impact point moves by exactly strength.
//
// dir is normalized here. When it is zero each vertex is pushed against its own
// normal instead; vertices with neither are skipped. Normals are recomputed and the
// mesh version bumped only if something moved. Indices are never touched.
func Displace(m *mesh.Mesh, point, dir mgl32.Vec3, radius, strength float32) Result {
	defer profiling.Track("carve.Displace")()

	var res Result
	if m == nil || radius <= 0 || strength == 0 {
		return res
	}

	var localDir mgl32.Vec3
	useDir := dir.Len() > 1e-6
	if useDir {
		localDir = m.ToLocalVector(dir.Normalize())
	}

	for i := range m.Positions {
		dist := m.WorldPosition(i).Sub(point).Len()
		if dist >= radius {
			continue
		}
		push := (1 - dist/radius) * strength

		step := localDir
		if !useDir {
			n := m.ToWorldVector(m.Normals[i])
			if n.Len() <= 1e-6 {
				continue
			}
			step = m.ToLocalVector(n.Normalize().Mul(-1))
		}
		m.Positions[i] = m.Positions[i].Add(step.Mul(push))
		res.Moved++
		res.Displacement += abs(push)
	}

	if res.Moved > 0 {
		m.ComputeNormals()
		m.Touch()
	}
	return res
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
