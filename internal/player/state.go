package player

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"
)

const (
	EyeHeight = 1.6

	// GrabCooldown is the time in seconds after a grab before another grab is accepted.
	GrabCooldown = 0.5
)

// MoveIntent is the movement the player asks for this frame, independent of the
// input device. Forward and Strafe are in [-1, 1].
type MoveIntent struct {
	Forward float32
	Strafe  float32
	Sprint  bool
	Jump    bool
}

func (m MoveIntent) Moving() bool { return m.Forward != 0 || m.Strafe != 0 }

type Player struct {
	Position    mgl32.Vec3 // feet
	Velocity    mgl32.Vec3
	OnGround    bool
	IsSprinting bool
	IsMoving    bool

	CamYaw     float64 // degrees, 0 looks along +X
	CamPitch   float64 // degrees, clamped to +-MaxPitch
	LastMouseX float64
	LastMouseY float64
	FirstMouse bool

	// Head bob
	BobPhase     float64
	CameraHeight float32

	// Arms lag behind the camera and breathe while idle
	PrevRenderArmYaw   float32
	RenderArmYaw       float32
	PrevRenderArmPitch float32
	RenderArmPitch     float32
	swayTime           float64

	// Hand animation state
	handSwingTimer    float64
	handSwingDuration float64
	HandSwingProgress float32
	GripSqueeze       float32 // 1 right after a grab, relaxes with the cooldown

	// Interaction
	Held          ecs.Entity
	HasHeld       bool
	grabCooldown  float64
	Hovered       ecs.Entity
	HasHovered    bool
	HoverDistance float32
}

func New(spawn mgl32.Vec3) *Player {
	return &Player{
		Position:          spawn,
		OnGround:          spawn.Y() <= 0,
		CamYaw:            -90.0, // facing -Z, towards the bench
		FirstMouse:        true,
		CameraHeight:      EyeHeight,
		handSwingDuration: 0.25,
	}
}

func (p *Player) GetEyePosition() mgl32.Vec3 {
	return p.Position.Add(mgl32.Vec3{0, p.CameraHeight, 0})
}

// CanGrab reports whether a grab would be accepted right now.
func (p *Player) CanGrab() bool {
	return !p.HasHeld && p.grabCooldown <= 0
}
