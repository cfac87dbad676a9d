package mesh

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewRejectsBadIndices(t *testing.T) {
	pos := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	if _, err := New(pos, []uint32{0, 1}); !errors.Is(err, ErrInvalidMesh) {
		t.Errorf("partial triangle: err = %v", err)
	}
	if _, err := New(pos, []uint32{0, 1, 3}); !errors.Is(err, ErrInvalidMesh) {
		t.Errorf("out of range index: err = %v", err)
	}
	if _, err := New(pos, []uint32{0, 1, 2}); err != nil {
		t.Errorf("valid triangle: %v", err)
	}
}

func TestBoxNormalsPointOutward(t *testing.T) {
	b := NewBox(2, 2, 2, 4)
	if err := b.Validate(); err != nil {
		t.Fatal(err)
	}
	if got, want := b.VertexCount(), 6*5*5; got != want {
		t.Errorf("vertex count = %d, want %d", got, want)
	}
	if got, want := b.TriangleCount(), 6*4*4*2; got != want {
		t.Errorf("triangle count = %d, want %d", got, want)
	}
	for i, p := range b.Positions {
		n := b.Normals[i]
		if math.Abs(float64(n.Len())-1) > 1e-4 {
			t.Fatalf("normal %d not unit: %v", i, n)
		}
		// every face normal points away from the centre
		if p.Dot(n) <= 0 {
			t.Fatalf("vertex %d at %v has inward normal %v", i, p, n)
		}
	}
}

func TestPlaneFacesUp(t *testing.T) {
	p := NewPlane(20, 20, 2)
	for i, n := range p.Normals {
		if !n.ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, 1e-5) {
			t.Fatalf("normal %d = %v", i, n)
		}
	}
	lo, hi := p.Bounds()
	if lo != (mgl32.Vec3{-10, 0, -10}) || hi != (mgl32.Vec3{10, 0, 10}) {
		t.Errorf("bounds = %v %v", lo, hi)
	}
}

func TestCylinderSideNormals(t *testing.T) {
	c := NewCylinder(0.04, 0.04, 0.4, 8)
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	// first ring vertex sits on +Z and its normal must lean outward
	if c.Normals[0].Z() <= 0 {
		t.Errorf("side normal = %v", c.Normals[0])
	}
	lo, hi := c.Bounds()
	if math.Abs(float64(hi.Y()-lo.Y())-0.4) > 1e-5 {
		t.Errorf("height = %v", hi.Y()-lo.Y())
	}
}

func TestWorldTransform(t *testing.T) {
	b := NewBox(1, 1, 1, 1)
	b.SetModel(mgl32.Translate3D(0, 3, 0).Mul4(mgl32.Scale3D(2, 2, 2)))

	w := b.WorldPosition(0)
	want := mgl32.TransformCoordinate(b.Positions[0], b.Model())
	if !w.ApproxEqual(want) {
		t.Errorf("world = %v, want %v", w, want)
	}
	if back := b.ToLocalPoint(w); !back.ApproxEqualThreshold(b.Positions[0], 1e-5) {
		t.Errorf("round trip = %v", back)
	}

	// a unit world displacement stays unit length after local -> world
	local := b.ToLocalVector(mgl32.Vec3{0, 0, 1})
	if l := b.ToWorldVector(local).Len(); math.Abs(float64(l)-1) > 1e-5 {
		t.Errorf("world length = %v", l)
	}

	lo, hi := b.WorldBounds()
	if !lo.ApproxEqual(mgl32.Vec3{-1, 2, -1}) || !hi.ApproxEqual(mgl32.Vec3{1, 4, 1}) {
		t.Errorf("world bounds = %v %v", lo, hi)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	b := NewBox(1, 1, 1, 2)
	b.Touch()
	s := b.Snapshot()
	b.Positions[0] = mgl32.Vec3{9, 9, 9}
	b.Touch()

	if s.Version != 1 {
		t.Errorf("snapshot version = %d", s.Version)
	}
	if s.Positions[0] == (mgl32.Vec3{9, 9, 9}) {
		t.Error("snapshot shares position storage")
	}
	buf := s.Interleave()
	if len(buf) != len(s.Positions)*FloatsPerVertex {
		t.Fatalf("interleaved len = %d", len(buf))
	}
	if buf[3] != s.Normals[0][0] || buf[0] != s.Positions[0][0] {
		t.Error("interleave layout is not pos,normal")
	}
}

func TestCloneIsDeep(t *testing.T) {
	b := NewBox(1, 1, 1, 1)
	c := b.Clone()
	c.Positions[0] = mgl32.Vec3{5, 5, 5}
	if b.Positions[0] == c.Positions[0] {
		t.Error("clone shares positions")
	}
}

func BenchmarkComputeNormals(b *testing.B) {
	m := NewBox(1, 1, 1, 32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.ComputeNormals()
	}
}
