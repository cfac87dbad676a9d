package graphics

import "github.com/go-gl/mathgl/mgl32"

// Camera holds the projection parameters. The view matrix comes from the player.
type Camera struct {
	Width, Height int
	AspectRatio   float32
	FOV           float32
	NearPlane     float32
	FarPlane      float32
}

func NewCamera(width, height int, fov float32) *Camera {
	c := &Camera{FOV: fov, NearPlane: 0.05, FarPlane: 200.0}
	c.SetViewport(width, height)
	return c
}

func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Width, c.Height = width, height
	c.AspectRatio = float32(width) / float32(height)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// Ortho maps window pixels (origin top-left) to clip space.
func (c *Camera) Ortho() mgl32.Mat4 {
	return mgl32.Ortho(0, float32(c.Width), float32(c.Height), 0, -1, 1)
}
