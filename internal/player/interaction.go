package player

import (
	"github.com/go-gl/mathgl/mgl32"

	"workshop/internal/carve"
	"workshop/internal/physics"
	"workshop/internal/profiling"
	"workshop/internal/scene"
)

const (
	dropDistance = 1.0
	waistHeight  = 0.9
)

// UpdateHovered picks the interactable under the crosshair.
func (p *Player) UpdateHovered(s *scene.Scene) {
	defer profiling.Track("player.UpdateHovered")()

	hit, ok := s.Pick(p.Ray(), physics.MaxReachDistance)
	p.HasHovered = ok
	if ok {
		p.Hovered = hit.Entity
		p.HoverDistance = hit.Distance
	}
}

// TryGrab holds the nearest grabbable entity along the view ray within maxDist.
// It does nothing while already holding or cooling down from the previous grab.
func (p *Player) TryGrab(s *scene.Scene, maxDist float32) bool {
	if !p.CanGrab() {
		return false
	}
	hit, ok := s.Pick(p.Ray(), maxDist)
	if !ok {
		return false
	}
	if err := s.Hold(hit.Entity); err != nil {
		return false
	}
	p.Held = hit.Entity
	p.HasHeld = true
	p.grabCooldown = GrabCooldown
	p.GripSqueeze = 1
	p.HasHovered = false
	return true
}

// Drop puts the held entity back into the world in front of the player at waist height.
func (p *Player) Drop(s *scene.Scene) bool {
	if !p.HasHeld {
		return false
	}
	pos := p.Position.
		Add(p.GetFlatFrontVector().Mul(dropDistance)).
		Add(mgl32.Vec3{0, waistHeight, 0})
	yaw := -mgl32.DegToRad(float32(p.CamYaw))
	if err := s.Release(p.Held, pos, yaw); err != nil {
		return false
	}
	p.HasHeld = false
	p.TriggerHandSwing()
	return true
}

// HeldTool returns the tool in hand, or nil.
func (p *Player) HeldTool(s *scene.Scene) *carve.Tool {
	if !p.HasHeld {
		return nil
	}
	return s.Tool(p.Held)
}
