package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"workshop/internal/physics"
	"workshop/internal/profiling"
)

const (
	Gravity      = -29.8
	WalkSpeed    = 5.0
	SprintSpeed  = 8.0
	JumpVelocity = 10.0

	BobFrequency  = 9.0
	BobAmplitude  = 0.04
	BobReturnRate = 10.0
)

// Update advances movement, gravity, the floor clamp, head bob and hand animation by dt seconds.
func (p *Player) Update(dt float64, in MoveIntent, viewBobbing bool) {
	defer profiling.Track("player.Update")()

	p.updateHorizontal(in)

	if in.Jump && p.OnGround {
		p.Velocity[1] = JumpVelocity
		p.OnGround = false
	}
	p.Velocity[1] += float32(Gravity * dt)

	p.Position = p.Position.Add(p.Velocity.Mul(float32(dt)))

	y, grounded := physics.ClampToFloor(p.Position.Y())
	p.Position[1] = y
	if grounded {
		if p.Velocity[1] < 0 {
			p.Velocity[1] = 0
		}
		p.OnGround = true
	} else {
		p.OnGround = false
	}

	p.updateHeadBob(dt, viewBobbing)
	p.UpdateRenderArm(dt)
	p.updateHand(dt)
}

func (p *Player) updateHorizontal(in MoveIntent) {
	p.IsMoving = in.Moving()
	p.IsSprinting = in.Sprint && p.IsMoving

	forward := p.GetFlatFrontVector()
	right := p.GetRightVector()
	move := forward.Mul(in.Forward).Add(right.Mul(in.Strafe))

	if move.Len() < 1e-6 {
		p.Velocity[0], p.Velocity[2] = 0, 0
		return
	}
	speed := float32(WalkSpeed)
	if p.IsSprinting {
		speed = SprintSpeed
	}
	move = move.Normalize().Mul(speed)
	p.Velocity[0], p.Velocity[2] = move.X(), move.Z()
}

func (p *Player) updateHeadBob(dt float64, enabled bool) {
	if enabled && p.IsMoving && p.OnGround {
		p.BobPhase += dt * BobFrequency
		p.CameraHeight = EyeHeight + float32(math.Sin(p.BobPhase))*BobAmplitude
		return
	}
	t := float32(math.Min(dt*BobReturnRate, 1))
	p.CameraHeight += (EyeHeight - p.CameraHeight) * t
}

// UpdateRenderArm lets the arms trail the camera rotation.
func (p *Player) UpdateRenderArm(dt float64) {
	p.PrevRenderArmYaw = p.RenderArmYaw
	p.PrevRenderArmPitch = p.RenderArmPitch

	decaySpeed := 25.0
	factor := float32(1.0 - math.Exp(-decaySpeed*dt))

	p.RenderArmPitch += (float32(p.CamPitch) - p.RenderArmPitch) * factor
	p.RenderArmYaw += (float32(p.CamYaw) - p.RenderArmYaw) * factor
	p.swayTime += dt
}

// IdleSway returns the breathing offset on Y and the arm roll in radians.
// The left arm uses the negated roll.
func (p *Player) IdleSway() (bob, roll float32) {
	bob = float32(math.Sin(p.swayTime*2)) * 0.02
	roll = float32(math.Sin(p.swayTime*3)) * 0.05
	return bob, roll
}

// TriggerHandSwing starts a new right-hand swing animation.
func (p *Player) TriggerHandSwing() {
	if p.handSwingTimer <= 0 {
		p.handSwingTimer = p.handSwingDuration
	}
}

func (p *Player) updateHand(dt float64) {
	if p.handSwingTimer > 0 {
		p.handSwingTimer -= dt
		if p.handSwingTimer < 0 {
			p.handSwingTimer = 0
		}
		p.HandSwingProgress = float32(1 - p.handSwingTimer/p.handSwingDuration)
	} else {
		p.HandSwingProgress = 0
	}

	if p.grabCooldown > 0 {
		p.grabCooldown -= dt
		if p.grabCooldown < 0 {
			p.grabCooldown = 0
		}
	}
	p.GripSqueeze = float32(p.grabCooldown / GrabCooldown)
}

// HorizontalSpeed is the current ground speed in m/s.
func (p *Player) HorizontalSpeed() float32 {
	return mgl32.Vec2{p.Velocity.X(), p.Velocity.Z()}.Len()
}
