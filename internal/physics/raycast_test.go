package physics_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"workshop/internal/mesh"
	"workshop/internal/physics"
)

func TestIntersectTriangle(t *testing.T) {
	a := mgl32.Vec3{-1, 0, -1}
	b := mgl32.Vec3{1, 0, -1}
	c := mgl32.Vec3{0, 0, 1}

	down := physics.Ray{Origin: mgl32.Vec3{0, 2, 0}, Dir: mgl32.Vec3{0, -1, 0}}
	d, ok := physics.IntersectTriangle(down, a, b, c)
	if !ok || d < 1.999 || d > 2.001 {
		t.Fatalf("expected hit at 2, got %v %v", d, ok)
	}

	// pointing away
	up := physics.Ray{Origin: mgl32.Vec3{0, 2, 0}, Dir: mgl32.Vec3{0, 1, 0}}
	if _, ok := physics.IntersectTriangle(up, a, b, c); ok {
		t.Error("expected miss for ray pointing away")
	}

	// parallel to the plane
	side := physics.Ray{Origin: mgl32.Vec3{-5, 0, 0}, Dir: mgl32.Vec3{1, 0, 0}}
	if _, ok := physics.IntersectTriangle(side, a, b, c); ok {
		t.Error("expected miss for parallel ray")
	}

	// outside the edges
	off := physics.Ray{Origin: mgl32.Vec3{3, 2, 0}, Dir: mgl32.Vec3{0, -1, 0}}
	if _, ok := physics.IntersectTriangle(off, a, b, c); ok {
		t.Error("expected miss outside triangle")
	}
}

func TestIntersectAABB(t *testing.T) {
	lo := mgl32.Vec3{4.5, -0.5, -0.5}
	hi := mgl32.Vec3{5.5, 0.5, 0.5}

	r := physics.Ray{Origin: mgl32.Vec3{0.5, 0, 0}, Dir: mgl32.Vec3{1, 0, 0}}
	d, ok := physics.IntersectAABB(r, lo, hi)
	if !ok {
		t.Fatal("expected hit")
	}
	if d < 3.99 || d > 4.01 {
		t.Errorf("expected distance 4, got %f", d)
	}

	if _, ok := physics.IntersectAABB(physics.Ray{Origin: r.Origin, Dir: mgl32.Vec3{0, 1, 0}}, lo, hi); ok {
		t.Error("expected miss with wrong direction")
	}
	if _, ok := physics.IntersectAABB(physics.Ray{Origin: mgl32.Vec3{10, 0, 0}, Dir: mgl32.Vec3{1, 0, 0}}, lo, hi); ok {
		t.Error("expected miss for box behind the ray")
	}

	inside := physics.Ray{Origin: mgl32.Vec3{5, 0, 0}, Dir: mgl32.Vec3{0, 0, 1}}
	if d, ok := physics.IntersectAABB(inside, lo, hi); !ok || d != 0 {
		t.Errorf("inside ray: %v %v", d, ok)
	}
}

func TestRaycastMesh(t *testing.T) {
	block := mesh.NewBox(1, 1, 1, 4)
	block.SetModel(mgl32.Translate3D(0, 1.2, 0))

	eye := mgl32.Vec3{0, 1.6, 3}
	r := physics.Ray{Origin: eye, Dir: mgl32.Vec3{0, 1.2, 0}.Sub(eye).Normalize()}

	res := physics.RaycastMesh(r, block, physics.MinReachDistance, physics.MaxReachDistance)
	if !res.Hit {
		t.Fatal("expected hit on the block front face")
	}
	if res.Point.Z() < 0.499 || res.Point.Z() > 0.501 {
		t.Errorf("hit point %v is not on the +Z face", res.Point)
	}
	if res.Normal.Z() < 0.99 {
		t.Errorf("normal = %v, want +Z", res.Normal)
	}

	short := physics.RaycastMesh(r, block, physics.MinReachDistance, 1.0)
	if short.Hit {
		t.Errorf("expected miss beyond max distance, got %v", short.Point)
	}

	away := physics.Ray{Origin: eye, Dir: mgl32.Vec3{0, 0, 1}}
	if physics.RaycastMesh(away, block, 0, 10).Hit {
		t.Error("expected miss looking away")
	}
}

func TestClampToFloor(t *testing.T) {
	if y, grounded := physics.ClampToFloor(-0.3); y != physics.FloorHeight || !grounded {
		t.Errorf("below floor: %v %v", y, grounded)
	}
	if y, grounded := physics.ClampToFloor(1.5); y != 1.5 || grounded {
		t.Errorf("in air: %v %v", y, grounded)
	}
}

func BenchmarkRaycastMesh(b *testing.B) {
	block := mesh.NewBox(1, 1, 1, 16)
	block.SetModel(mgl32.Translate3D(0, 1.2, 0))
	r := physics.Ray{Origin: mgl32.Vec3{0, 1.6, 3}, Dir: mgl32.Vec3{0, -0.13, -1}.Normalize()}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = physics.RaycastMesh(r, block, physics.MinReachDistance, physics.MaxReachDistance)
	}
}
