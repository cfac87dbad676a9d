package meshing

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"workshop/internal/mesh"
	"workshop/internal/profiling"
)

// MeshResult is a GPU-ready vertex buffer built from one mesh snapshot.
type MeshResult struct {
	Key      uuid.UUID
	Version  uint64
	Vertices []float32 // interleaved position, normal
	Indices  []uint32
	Error    error
}

// Build packs a snapshot into a MeshResult.
func Build(key uuid.UUID, snap mesh.Snapshot) MeshResult {
	if len(snap.Normals) != len(snap.Positions) {
		return MeshResult{Key: key, Version: snap.Version, Error: fmt.Errorf("build %s: %d normals for %d positions", key, len(snap.Normals), len(snap.Positions))}
	}
	return MeshResult{
		Key:      key,
		Version:  snap.Version,
		Vertices: snap.Interleave(),
		Indices:  snap.Indices,
	}
}

// WorkerPool builds vertex buffers off the main thread. Submit and Drain must be
// called from the same goroutine; workers only see detached snapshots.
type WorkerPool struct {
	pool    *ants.Pool // nil builds synchronously
	results chan MeshResult
	ready   []MeshResult

	latest map[uuid.UUID]uint64

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	log    *zap.Logger
}

// NewWorkerPool creates a pool with the given number of workers. With zero workers
// every Submit builds immediately on the caller's goroutine.
func NewWorkerPool(workers, queueSize int, log *zap.Logger) (*WorkerPool, error) {
	if log == nil {
		log = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	p := &WorkerPool{
		results: make(chan MeshResult, max(queueSize, 1)),
		latest:  make(map[uuid.UUID]uint64),
		ctx:     ctx,
		cancel:  cancel,
		log:     log,
	}
	if workers > 0 {
		pool, err := ants.NewPool(workers,
			ants.WithNonblocking(true),
			ants.WithPanicHandler(func(v any) {
				log.Error("mesh worker panic", zap.Any("panic", v))
			}),
		)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("create mesh pool: %w", err)
		}
		p.pool = pool
	}
	return p, nil
}

// Submit snapshots m and schedules a build. It returns false when every worker is
// busy; the caller keeps the mesh dirty and tries again next frame.
func (p *WorkerPool) Submit(key uuid.UUID, m *mesh.Mesh) bool {
	defer profiling.Track("meshing.Submit")()

	if p.ctx.Err() != nil {
		return false
	}
	snap := m.Snapshot()

	if p.pool == nil {
		p.latest[key] = snap.Version
		p.ready = append(p.ready, Build(key, snap))
		return true
	}

	p.wg.Add(1)
	err := p.pool.Submit(func() {
		defer p.wg.Done()
		if p.ctx.Err() != nil {
			return
		}
		res := Build(key, snap)
		select {
		case p.results <- res:
		case <-p.ctx.Done():
		}
	})
	if err != nil {
		p.wg.Done()
		if !errors.Is(err, ants.ErrPoolOverload) {
			p.log.Warn("mesh submit failed", zap.Stringer("key", key), zap.Error(err))
		}
		return false
	}
	p.latest[key] = snap.Version
	return true
}

// Drain hands every finished, current result to fn and returns how many were applied.
// Results older than the latest submitted version of their key are dropped.
func (p *WorkerPool) Drain(fn func(MeshResult)) int {
	defer profiling.Track("meshing.Drain")()

	applied := 0
	apply := func(r MeshResult) {
		if r.Error != nil {
			p.log.Error("mesh build failed", zap.Stringer("key", r.Key), zap.Error(r.Error))
			return
		}
		if r.Version < p.latest[r.Key] {
			return
		}
		fn(r)
		applied++
	}

	for _, r := range p.ready {
		apply(r)
	}
	p.ready = p.ready[:0]

	for {
		select {
		case r := <-p.results:
			apply(r)
		default:
			return applied
		}
	}
}

// Forget drops version tracking for a key, e.g. when its mesh is removed.
func (p *WorkerPool) Forget(key uuid.UUID) {
	delete(p.latest, key)
}

// Running is the number of busy workers.
func (p *WorkerPool) Running() int {
	if p.pool == nil {
		return 0
	}
	return p.pool.Running()
}

// Shutdown cancels pending work and waits for the workers to exit.
func (p *WorkerPool) Shutdown() {
	p.cancel()
	p.wg.Wait()
	if p.pool != nil {
		p.pool.Release()
	}
}
