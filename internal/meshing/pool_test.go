package meshing

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"workshop/internal/mesh"
)

func TestBuild(t *testing.T) {
	m := mesh.NewBox(1, 1, 1, 2)
	res := Build(uuid.New(), m.Snapshot())
	if res.Error != nil {
		t.Fatal(res.Error)
	}
	if len(res.Vertices) != m.VertexCount()*mesh.FloatsPerVertex {
		t.Errorf("vertices = %d floats", len(res.Vertices))
	}
	if len(res.Indices) != len(m.Indices) {
		t.Errorf("indices = %d", len(res.Indices))
	}
}

func TestSynchronousPool(t *testing.T) {
	p, err := NewWorkerPool(0, 4, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	defer p.Shutdown()

	key := uuid.New()
	m := mesh.NewBox(1, 1, 1, 2)
	if !p.Submit(key, m) {
		t.Fatal("submit rejected")
	}
	var got []MeshResult
	if n := p.Drain(func(r MeshResult) { got = append(got, r) }); n != 1 {
		t.Fatalf("drained %d", n)
	}
	if got[0].Key != key {
		t.Errorf("key = %v", got[0].Key)
	}
	if p.Drain(func(MeshResult) {}) != 0 {
		t.Error("result delivered twice")
	}
}

func TestStaleResultsDiscarded(t *testing.T) {
	p, err := NewWorkerPool(0, 4, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	defer p.Shutdown()

	key := uuid.New()
	m := mesh.NewBox(1, 1, 1, 2)
	p.Submit(key, m)

	m.Positions[0] = m.Positions[0].Add(mgl32.Vec3{0, 0.1, 0})
	m.Touch()
	p.Submit(key, m)

	var versions []uint64
	p.Drain(func(r MeshResult) { versions = append(versions, r.Version) })
	if len(versions) != 1 || versions[0] != 1 {
		t.Errorf("versions = %v, want only the latest", versions)
	}
}

func TestAsyncPool(t *testing.T) {
	p, err := NewWorkerPool(2, 8, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	defer p.Shutdown()

	keys := []uuid.UUID{uuid.New(), uuid.New()}
	for _, k := range keys {
		m := mesh.NewBox(1, 1, 1, 4)
		for !p.Submit(k, m) {
			time.Sleep(time.Millisecond)
		}
	}

	seen := map[uuid.UUID]bool{}
	deadline := time.Now().Add(2 * time.Second)
	for len(seen) < len(keys) && time.Now().Before(deadline) {
		p.Drain(func(r MeshResult) { seen[r.Key] = true })
		time.Sleep(time.Millisecond)
	}
	for _, k := range keys {
		if !seen[k] {
			t.Errorf("no result for %v", k)
		}
	}
}

func TestSubmitAfterShutdown(t *testing.T) {
	p, err := NewWorkerPool(1, 1, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	p.Shutdown()
	if p.Submit(uuid.New(), mesh.NewBox(1, 1, 1, 1)) {
		t.Error("submit accepted after shutdown")
	}
}
