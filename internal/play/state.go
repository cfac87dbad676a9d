// Package play holds the workshop simulation: the scene, the player and the
// crafting rules, stepped once per frame without any window or GL state.
package play

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"workshop/internal/carve"
	"workshop/internal/config"
	"workshop/internal/physics"
	"workshop/internal/player"
	"workshop/internal/profiling"
	"workshop/internal/scene"
)

// DustPerCarve is the number of particles spawned by one successful carve.
const DustPerCarve = 6

// State is one workshop session.
type State struct {
	Scene   *scene.Scene
	Player  *player.Player
	Crafter *carve.Crafter

	Hint string

	carveTimer float64
	elapsedMs  float64
	rng        *rand.Rand
	log        *zap.Logger
}

// New furnishes a fresh workshop and places the player at the spawn point.
func New(log *zap.Logger, seed int64) *State {
	if log == nil {
		log = zap.NewNop()
	}
	cp := config.GetCarveParams()
	s := &State{
		Scene:  scene.New(),
		Player: player.New(scene.PlayerSpawn),
		Crafter: carve.NewCrafter(carve.Params{
			Radius:     cp.Radius,
			Strength:   cp.Strength,
			MinOpacity: cp.MinOpacity,
		}, log.Named("carve")),
		rng: rand.New(rand.NewSource(seed)),
		log: log,
	}
	s.Crafter.OnDust = func(p mgl32.Vec3) {
		s.Scene.SpawnDust(p, DustPerCarve, s.rng)
	}
	s.Scene.Furnish()
	return s
}

// Step advances the session by dt seconds.
func (s *State) Step(dt float64, c Controls) {
	defer profiling.Track("play.Step")()

	s.elapsedMs += dt * 1000
	p := s.Player

	if c.LookDX != 0 || c.LookDY != 0 {
		p.ApplyLookDelta(c.LookDX, c.LookDY, config.GetTouchSensitivity())
	}
	func() {
		defer profiling.Track("player.Update")()
		p.Update(dt, c.Move, config.GetViewBobbing())
	}()
	p.UpdateHovered(s.Scene)

	if c.Grab && p.TryGrab(s.Scene, config.GetGrabDistance()) {
		if t := p.HeldTool(s.Scene); t != nil {
			s.log.Info("equipped tool", zap.Stringer("tool", t.Kind), zap.Int("durability", t.Durability))
		}
	}
	if c.Drop && p.Drop(s.Scene) {
		s.log.Debug("dropped held item")
	}

	// a fresh press carves at once, holding repeats every interval
	interval := config.GetCarveParams().Interval
	if !c.Carve {
		s.carveTimer = interval
	} else if s.carveTimer += dt; s.carveTimer >= interval {
		s.carveTimer = 0
		s.useTool()
	}

	s.Scene.Update(float32(dt))
	for _, w := range s.Scene.Workpieces() {
		w.Workpiece.Material.Update(dt)
	}
	s.Hint = s.hint()
}

// Aim finds the workpiece surface under the crosshair within reach.
func (s *State) Aim() (*carve.Workpiece, physics.RaycastResult, bool) {
	ray := s.Player.Ray()
	reach := config.GetGrabDistance()

	var best *carve.Workpiece
	var bestHit physics.RaycastResult
	for _, w := range s.Scene.Workpieces() {
		hit := physics.RaycastMesh(ray, w.Workpiece.Mesh, physics.MinReachDistance, reach)
		if hit.Hit && (best == nil || hit.Distance < bestHit.Distance) {
			best, bestHit = w.Workpiece, hit
		}
	}
	return best, bestHit, best != nil
}

// useTool applies the held tool to the aimed workpiece once.
func (s *State) useTool() carve.Outcome {
	tool := s.Player.HeldTool(s.Scene)
	if tool == nil {
		return carve.Outcome{}
	}
	wp, hit, ok := s.Aim()
	if !ok || !tool.CompatibleWith(wp.Type) {
		return carve.Outcome{}
	}

	p := s.Player
	p.TriggerHandSwing()
	out := s.Crafter.Perform(tool.Kind.Action(), wp, tool, carve.Hit{
		Point: hit.Point,
		Dir:   p.GetFrontVector(),
	}, s.elapsedMs)
	if tool.Broken() && out.Used {
		s.log.Info("tool worn out", zap.Stringer("tool", tool.Kind))
	}
	return out
}

// Score is the total carve score over every workpiece.
func (s *State) Score() float64 {
	var total float64
	for _, w := range s.Scene.Workpieces() {
		total += w.Workpiece.Score
	}
	return total
}

// Carves is the number of successful carves over every workpiece.
func (s *State) Carves() int {
	n := 0
	for _, w := range s.Scene.Workpieces() {
		n += w.Workpiece.Carves
	}
	return n
}

func (s *State) hint() string {
	p := s.Player
	tool := p.HeldTool(s.Scene)
	if tool == nil {
		if p.HasHovered && p.HoverDistance <= config.GetGrabDistance() {
			if t := s.Scene.Tool(p.Hovered); t != nil {
				return fmt.Sprintf("E to pick up the %s", t.Kind)
			}
		}
		return "Look at a tool on the bench and press E"
	}
	if tool.Broken() {
		return fmt.Sprintf("The %s is worn out, Q to put it down", tool.Kind)
	}
	wp, _, ok := s.Aim()
	if !ok {
		return ""
	}
	if !tool.CompatibleWith(wp.Type) {
		return fmt.Sprintf("The %s does not work on %s", tool.Kind, wp.Type)
	}
	return ""
}
