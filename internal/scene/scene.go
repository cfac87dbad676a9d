package scene

import (
	"errors"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"

	"workshop/internal/carve"
	"workshop/internal/physics"
	"workshop/internal/profiling"
)

var (
	ErrAlreadyHolding = errors.New("already holding an item")
	ErrNotGrabbable   = errors.New("entity is not grabbable")
	ErrDeadEntity     = errors.New("entity no longer exists")
)

const (
	dustGravity = -9.8
	dustLife    = 0.6
)

// Scene owns the ECS world with every tool, workpiece and dust particle.
type Scene struct {
	world ecs.World

	transforms    *ecs.Map[Transform]
	interactables *ecs.Map[Interactable]
	colliders     *ecs.Map[Collider]
	tools         *ecs.Map[ToolRef]
	workpieces    *ecs.Map[WorkpieceRef]
	held          *ecs.Map[Held]

	toolBuilder *ecs.Map4[Transform, Interactable, Collider, ToolRef]
	wpBuilder   *ecs.Map4[Transform, Interactable, Collider, WorkpieceRef]
	dustBuilder *ecs.Map2[Transform, Dust]

	pickFilter *ecs.Filter3[Transform, Interactable, Collider]
	toolFilter *ecs.Filter2[Transform, ToolRef]
	wpFilter   *ecs.Filter2[Transform, WorkpieceRef]
	dustFilter *ecs.Filter2[Transform, Dust]
	heldFilter *ecs.Filter1[Held]

	removeBuf []ecs.Entity
}

func New() *Scene {
	s := &Scene{world: ecs.NewWorld()}
	w := &s.world

	s.transforms = ecs.NewMap[Transform](w)
	s.interactables = ecs.NewMap[Interactable](w)
	s.colliders = ecs.NewMap[Collider](w)
	s.tools = ecs.NewMap[ToolRef](w)
	s.workpieces = ecs.NewMap[WorkpieceRef](w)
	s.held = ecs.NewMap[Held](w)

	s.toolBuilder = ecs.NewMap4[Transform, Interactable, Collider, ToolRef](w)
	s.wpBuilder = ecs.NewMap4[Transform, Interactable, Collider, WorkpieceRef](w)
	s.dustBuilder = ecs.NewMap2[Transform, Dust](w)

	s.pickFilter = ecs.NewFilter3[Transform, Interactable, Collider](w).Without(ecs.C[Held]())
	s.toolFilter = ecs.NewFilter2[Transform, ToolRef](w)
	s.wpFilter = ecs.NewFilter2[Transform, WorkpieceRef](w)
	s.dustFilter = ecs.NewFilter2[Transform, Dust](w)
	s.heldFilter = ecs.NewFilter1[Held](w)
	return s
}

// SpawnTool places a grabbable tool with the given pick box.
func (s *Scene) SpawnTool(tool *carve.Tool, t Transform, box Collider) ecs.Entity {
	return s.toolBuilder.NewEntity(
		&t,
		&Interactable{Kind: KindTool, Grabbable: true},
		&box,
		&ToolRef{Tool: tool},
	)
}

// SpawnWorkpiece places a workpiece. Its mesh model matrix follows the transform.
func (s *Scene) SpawnWorkpiece(wp *carve.Workpiece, t Transform) ecs.Entity {
	wp.Mesh.SetModel(t.Matrix())
	lo, hi := wp.Mesh.Bounds()
	return s.wpBuilder.NewEntity(
		&t,
		&Interactable{Kind: KindWorkpiece},
		&Collider{Min: lo, Max: hi},
		&WorkpieceRef{Workpiece: wp},
	)
}

// Hit is the nearest interactable along a ray.
type Hit struct {
	Entity   ecs.Entity
	Kind     Kind
	Distance float32
	Point    mgl32.Vec3
}

// Pick returns the nearest interactable whose box the ray enters within maxDist.
// Held entities are skipped.
func (s *Scene) Pick(r physics.Ray, maxDist float32) (Hit, bool) {
	defer profiling.Track("scene.Pick")()

	var best Hit
	found := false
	q := s.pickFilter.Query()
	for q.Next() {
		t, in, c := q.Get()
		lo, hi := worldBox(*t, *c)
		d, ok := physics.IntersectAABB(r, lo, hi)
		if !ok || d > maxDist || (found && d >= best.Distance) {
			continue
		}
		best = Hit{Entity: q.Entity(), Kind: in.Kind, Distance: d, Point: r.At(d)}
		found = true
	}
	return best, found
}

// WorldBox returns the world space pick box of e.
func (s *Scene) WorldBox(e ecs.Entity) (lo, hi mgl32.Vec3, ok bool) {
	if !s.world.Alive(e) || !s.transforms.Has(e) || !s.colliders.Has(e) {
		return lo, hi, false
	}
	lo, hi = worldBox(*s.transforms.Get(e), *s.colliders.Get(e))
	return lo, hi, true
}

func worldBox(t Transform, c Collider) (lo, hi mgl32.Vec3) {
	m := t.Matrix()
	for i := 0; i < 8; i++ {
		p := c.Min
		if i&1 != 0 {
			p[0] = c.Max[0]
		}
		if i&2 != 0 {
			p[1] = c.Max[1]
		}
		if i&4 != 0 {
			p[2] = c.Max[2]
		}
		w := mgl32.TransformCoordinate(p, m)
		if i == 0 {
			lo, hi = w, w
			continue
		}
		for k := 0; k < 3; k++ {
			lo[k] = min(lo[k], w[k])
			hi[k] = max(hi[k], w[k])
		}
	}
	return lo, hi
}

// Hold tags e as held. Only one entity can be held at a time.
func (s *Scene) Hold(e ecs.Entity) error {
	if !s.world.Alive(e) {
		return ErrDeadEntity
	}
	if _, ok := s.Holding(); ok {
		return ErrAlreadyHolding
	}
	if !s.interactables.Has(e) || !s.interactables.Get(e).Grabbable {
		return ErrNotGrabbable
	}
	s.held.Add(e, &Held{})
	return nil
}

// Release puts the held entity e back into the world at pos.
func (s *Scene) Release(e ecs.Entity, pos mgl32.Vec3, yaw float32) error {
	if !s.world.Alive(e) {
		return ErrDeadEntity
	}
	if !s.held.Has(e) {
		return nil
	}
	s.held.Remove(e)
	t := s.transforms.Get(e)
	t.Position = pos
	t.Yaw = yaw
	return nil
}

// Holding returns the held entity, if any.
func (s *Scene) Holding() (ecs.Entity, bool) {
	q := s.heldFilter.Query()
	if q.Next() {
		e := q.Entity()
		q.Close()
		return e, true
	}
	return ecs.Entity{}, false
}

func (s *Scene) IsHeld(e ecs.Entity) bool {
	return s.world.Alive(e) && s.held.Has(e)
}

// Tool returns the tool attached to e, or nil.
func (s *Scene) Tool(e ecs.Entity) *carve.Tool {
	if !s.world.Alive(e) || !s.tools.Has(e) {
		return nil
	}
	return s.tools.Get(e).Tool
}

// Workpiece returns the workpiece attached to e, or nil.
func (s *Scene) Workpiece(e ecs.Entity) *carve.Workpiece {
	if !s.world.Alive(e) || !s.workpieces.Has(e) {
		return nil
	}
	return s.workpieces.Get(e).Workpiece
}

// Transform returns a copy of e's transform.
func (s *Scene) Transform(e ecs.Entity) (Transform, bool) {
	if !s.world.Alive(e) || !s.transforms.Has(e) {
		return Transform{}, false
	}
	return *s.transforms.Get(e), true
}

// ToolView is a read only row for renderers.
type ToolView struct {
	Entity    ecs.Entity
	Transform Transform
	Tool      *carve.Tool
	Held      bool
}

func (s *Scene) Tools() []ToolView {
	var out []ToolView
	q := s.toolFilter.Query()
	for q.Next() {
		t, ref := q.Get()
		e := q.Entity()
		out = append(out, ToolView{Entity: e, Transform: *t, Tool: ref.Tool, Held: s.held.Has(e)})
	}
	return out
}

type WorkpieceView struct {
	Entity    ecs.Entity
	Transform Transform
	Workpiece *carve.Workpiece
}

func (s *Scene) Workpieces() []WorkpieceView {
	var out []WorkpieceView
	q := s.wpFilter.Query()
	for q.Next() {
		t, ref := q.Get()
		out = append(out, WorkpieceView{Entity: q.Entity(), Transform: *t, Workpiece: ref.Workpiece})
	}
	return out
}

// SpawnDust emits count particles at point with random outward velocity.
func (s *Scene) SpawnDust(point mgl32.Vec3, count int, rng *rand.Rand) {
	for i := 0; i < count; i++ {
		v := mgl32.Vec3{
			(rng.Float32() - 0.5) * 1.2,
			rng.Float32()*1.5 + 0.3,
			(rng.Float32() - 0.5) * 1.2,
		}
		life := dustLife * (0.6 + 0.4*rng.Float32())
		s.dustBuilder.NewEntity(
			&Transform{Position: point, Scale: 1},
			&Dust{Velocity: v, Life: life, MaxLife: life},
		)
	}
}

// Update advances dust particles and removes the expired ones.
func (s *Scene) Update(dt float32) {
	defer profiling.Track("scene.Update")()

	s.removeBuf = s.removeBuf[:0]
	q := s.dustFilter.Query()
	for q.Next() {
		t, d := q.Get()
		d.Velocity[1] += dustGravity * dt
		t.Position = t.Position.Add(d.Velocity.Mul(dt))
		d.Life -= dt
		if d.Life <= 0 || t.Position.Y() < physics.FloorHeight {
			s.removeBuf = append(s.removeBuf, q.Entity())
		}
	}
	// entities cannot be removed while the query holds the world lock
	for _, e := range s.removeBuf {
		s.world.RemoveEntity(e)
	}
}

// DustParticle is a snapshot of one particle for rendering.
type DustParticle struct {
	Position mgl32.Vec3
	Fade     float32 // 1 when spawned, 0 when expiring
}

func (s *Scene) Dust(dst []DustParticle) []DustParticle {
	dst = dst[:0]
	q := s.dustFilter.Query()
	for q.Next() {
		t, d := q.Get()
		fade := float32(0)
		if d.MaxLife > 0 {
			fade = d.Life / d.MaxLife
		}
		dst = append(dst, DustParticle{Position: t.Position, Fade: fade})
	}
	return dst
}

func (s *Scene) DustCount() int {
	n := 0
	q := s.dustFilter.Query()
	for q.Next() {
		n++
	}
	return n
}
