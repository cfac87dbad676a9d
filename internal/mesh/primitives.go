package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// NewBox builds a box centred on the origin. Each face is a segments x segments grid
// with its own vertices, so edges carry duplicated positions with separate normals.
func NewBox(w, h, d float32, segments int) *Mesh {
	segments = max(segments, 1)
	hw, hh, hd := w/2, h/2, d/2

	type face struct {
		origin, u, v mgl32.Vec3
	}
	// u x v points outward for every face
	faces := []face{
		{mgl32.Vec3{hw, -hh, hd}, mgl32.Vec3{0, 0, -d}, mgl32.Vec3{0, h, 0}},   // +X
		{mgl32.Vec3{-hw, -hh, -hd}, mgl32.Vec3{0, 0, d}, mgl32.Vec3{0, h, 0}},  // -X
		{mgl32.Vec3{-hw, hh, hd}, mgl32.Vec3{w, 0, 0}, mgl32.Vec3{0, 0, -d}},   // +Y
		{mgl32.Vec3{-hw, -hh, -hd}, mgl32.Vec3{w, 0, 0}, mgl32.Vec3{0, 0, d}},  // -Y
		{mgl32.Vec3{-hw, -hh, hd}, mgl32.Vec3{w, 0, 0}, mgl32.Vec3{0, h, 0}},   // +Z
		{mgl32.Vec3{hw, -hh, -hd}, mgl32.Vec3{-w, 0, 0}, mgl32.Vec3{0, h, 0}},  // -Z
	}

	var positions []mgl32.Vec3
	var indices []uint32
	for _, f := range faces {
		base := uint32(len(positions))
		positions, indices = appendGrid(positions, indices, base, f.origin, f.u, f.v, segments, segments)
	}
	m, _ := New(positions, indices)
	return m
}

// NewPlane builds a w x d plane in the XZ plane facing +Y.
func NewPlane(w, d float32, segments int) *Mesh {
	segments = max(segments, 1)
	origin := mgl32.Vec3{-w / 2, 0, d / 2}
	positions, indices := appendGrid(nil, nil, 0, origin, mgl32.Vec3{w, 0, 0}, mgl32.Vec3{0, 0, -d}, segments, segments)
	m, _ := New(positions, indices)
	return m
}

func appendGrid(positions []mgl32.Vec3, indices []uint32, base uint32, origin, u, v mgl32.Vec3, su, sv int) ([]mgl32.Vec3, []uint32) {
	for j := 0; j <= sv; j++ {
		for i := 0; i <= su; i++ {
			p := origin.Add(u.Mul(float32(i) / float32(su))).Add(v.Mul(float32(j) / float32(sv)))
			positions = append(positions, p)
		}
	}
	row := uint32(su + 1)
	for j := 0; j < sv; j++ {
		for i := 0; i < su; i++ {
			a := base + uint32(j)*row + uint32(i)
			b := a + 1
			c := a + row
			e := c + 1
			indices = append(indices, a, b, e, a, e, c)
		}
	}
	return positions, indices
}

// NewCylinder builds a capped cylinder along +Y centred on the origin.
// Top and bottom radii may differ, giving a cone frustum.
func NewCylinder(radiusTop, radiusBottom, height float32, radial int) *Mesh {
	radial = max(radial, 3)
	hh := height / 2

	var positions []mgl32.Vec3
	var indices []uint32

	// side: two rings with a duplicated seam
	for i := 0; i <= radial; i++ {
		a := 2 * math.Pi * float64(i) / float64(radial)
		s, c := float32(math.Sin(a)), float32(math.Cos(a))
		positions = append(positions,
			mgl32.Vec3{s * radiusBottom, -hh, c * radiusBottom},
			mgl32.Vec3{s * radiusTop, hh, c * radiusTop},
		)
	}
	for i := 0; i < radial; i++ {
		b0 := uint32(2 * i)
		t0 := b0 + 1
		b1 := b0 + 2
		t1 := b0 + 3
		indices = append(indices, b0, b1, t1, b0, t1, t0)
	}

	addCap := func(y, r float32, up bool) {
		if r <= 0 {
			return
		}
		centre := uint32(len(positions))
		positions = append(positions, mgl32.Vec3{0, y, 0})
		for i := 0; i < radial; i++ {
			a := 2 * math.Pi * float64(i) / float64(radial)
			positions = append(positions, mgl32.Vec3{float32(math.Sin(a)) * r, y, float32(math.Cos(a)) * r})
		}
		for i := 0; i < radial; i++ {
			p := centre + 1 + uint32(i)
			q := centre + 1 + uint32((i+1)%radial)
			if up {
				indices = append(indices, centre, p, q)
			} else {
				indices = append(indices, centre, q, p)
			}
		}
	}
	addCap(hh, radiusTop, true)
	addCap(-hh, radiusBottom, false)

	m, _ := New(positions, indices)
	return m
}
