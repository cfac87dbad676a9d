package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"workshop/internal/physics"
)

const MaxPitch = 89.0

// HandleMouseMovement turns the camera from an absolute cursor position.
// The first event after ResetMouse only records the position.
func (p *Player) HandleMouseMovement(xpos, ypos, sensitivity float64) {
	if p.FirstMouse {
		p.LastMouseX = xpos
		p.LastMouseY = ypos
		p.FirstMouse = false
		return
	}

	xoffset := xpos - p.LastMouseX
	yoffset := p.LastMouseY - ypos
	p.LastMouseX = xpos
	p.LastMouseY = ypos

	p.ApplyLookDelta(xoffset, yoffset, sensitivity)
}

// ApplyLookDelta turns the camera by a relative delta in pixels; positive dy looks up.
func (p *Player) ApplyLookDelta(dx, dy, sensitivity float64) {
	p.CamYaw = math.Mod(p.CamYaw+dx*sensitivity, 360)
	p.CamPitch += dy * sensitivity

	if p.CamPitch > MaxPitch {
		p.CamPitch = MaxPitch
	}
	if p.CamPitch < -MaxPitch {
		p.CamPitch = -MaxPitch
	}
}

// ResetMouse forgets the last cursor position, e.g. after the cursor is recaptured.
func (p *Player) ResetMouse() {
	p.FirstMouse = true
}

func (p *Player) GetFrontVector() mgl32.Vec3 {
	y := mgl32.DegToRad(float32(p.CamYaw))
	pt := mgl32.DegToRad(float32(p.CamPitch))
	fx := float32(math.Cos(float64(y)) * math.Cos(float64(pt)))
	fy := float32(math.Sin(float64(pt)))
	fz := float32(math.Sin(float64(y)) * math.Cos(float64(pt)))
	return mgl32.Vec3{fx, fy, fz}.Normalize()
}

// GetFlatFrontVector is the front vector projected onto the floor.
func (p *Player) GetFlatFrontVector() mgl32.Vec3 {
	y := float64(mgl32.DegToRad(float32(p.CamYaw)))
	return mgl32.Vec3{float32(math.Cos(y)), 0, float32(math.Sin(y))}
}

func (p *Player) GetRightVector() mgl32.Vec3 {
	f := p.GetFlatFrontVector()
	return mgl32.Vec3{-f.Z(), 0, f.X()}
}

func (p *Player) GetViewMatrix() mgl32.Mat4 {
	eye := p.GetEyePosition()
	return mgl32.LookAtV(eye, eye.Add(p.GetFrontVector()), mgl32.Vec3{0, 1, 0})
}

// Ray is the centre-of-screen ray used for hovering, grabbing and carving.
func (p *Player) Ray() physics.Ray {
	return physics.Ray{Origin: p.GetEyePosition(), Dir: p.GetFrontVector()}
}
