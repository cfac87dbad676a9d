package hand

import (
	"math"

	"workshop/internal/graphics"
	"workshop/internal/graphics/renderables/tools"
	renderer "workshop/internal/graphics/renderer"
	"workshop/internal/mesh"
	"workshop/internal/player"
	"workshop/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	skinColor   = mgl32.Vec3{0.87, 0.67, 0.53}
	sleeveColor = mgl32.Vec3{0.25, 0.32, 0.4}
)

// Hand draws both forearms in view space, with the held tool in the right hand.
type Hand struct {
	shader *graphics.Shader
	arm    *graphics.GPUMesh
	sleeve *graphics.GPUMesh
	tools  *tools.Tools
}

func NewHand(t *tools.Tools) *Hand {
	return &Hand{tools: t}
}

func (h *Hand) Init() error {
	var err error
	h.shader, err = graphics.NewShader("lit")
	if err != nil {
		return err
	}
	h.arm = graphics.UploadMesh(mesh.NewBox(0.07, 0.07, 0.32, 1), false)
	h.sleeve = graphics.UploadMesh(mesh.NewBox(0.085, 0.085, 0.14, 1), false)
	return nil
}

func (h *Hand) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderHand")()

	p := ctx.Player
	gl.Clear(gl.DEPTH_BUFFER_BIT)
	graphics.UseLit(h.shader, mgl32.Ident4(), ctx.Proj)
	// light from over the shoulder regardless of where the camera looks
	h.shader.SetVector3("lightDir", mgl32.Vec3{0.3, 1, 0.6})

	right := h.armModel(p, 1)
	h.drawArm(right)
	h.drawArm(h.armModel(p, -1))

	if tool := p.HeldTool(ctx.Scene); tool != nil && h.tools != nil {
		swing := float64(p.HandSwingProgress)
		strike := float32(math.Sin(math.Sqrt(swing) * math.Pi))
		grip := mgl32.Translate3D(0, 0.04-0.015*p.GripSqueeze, -0.16).
			Mul4(mgl32.HomogRotate3DY(math.Pi / 2)).
			Mul4(mgl32.HomogRotate3DZ(-0.35 - strike*0.9))
		h.tools.DrawTool(h.shader, tool, right.Mul4(grip))
	}
}

// armModel builds the forearm transform. side is 1 for the right arm, -1 for the left.
func (h *Hand) armModel(p *player.Player, side float32) mgl32.Mat4 {
	bob, roll := p.IdleSway()

	// arms trail the camera
	lagYaw := float32(p.CamYaw) - p.RenderArmYaw
	lagPitch := float32(p.CamPitch) - p.RenderArmPitch
	model := mgl32.HomogRotate3DX(mgl32.DegToRad(lagPitch * 0.1)).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(-lagYaw * 0.1)))

	var sx, sy, sz, rot float32
	if side > 0 {
		swing := float64(p.HandSwingProgress)
		sx = float32(-0.3 * math.Sin(math.Sqrt(swing)*math.Pi))
		sy = float32(0.4 * math.Sin(math.Sqrt(swing)*math.Pi*2.0))
		sz = float32(-0.4 * math.Sin(swing*math.Pi))
		rot = float32(math.Sin(swing*swing*math.Pi)) * 0.6
	}

	model = model.Mul4(mgl32.Translate3D(side*0.3+sx*0.3, -0.32+bob+sy*0.2, -0.42+sz*0.3))
	model = model.Mul4(mgl32.HomogRotate3DZ(roll * side))
	model = model.Mul4(mgl32.HomogRotate3DY(side * mgl32.DegToRad(12)))
	model = model.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(8) - rot))
	return model
}

func (h *Hand) drawArm(model mgl32.Mat4) {
	graphics.DrawLit(h.shader, h.arm, model, skinColor)
	graphics.DrawLit(h.shader, h.sleeve, model.Mul4(mgl32.Translate3D(0, 0, 0.16)), sleeveColor)
}

func (h *Hand) SetViewport(width, height int) {}

func (h *Hand) Dispose() {
	if h.arm != nil {
		h.arm.Delete()
	}
	if h.sleeve != nil {
		h.sleeve.Delete()
	}
	if h.shader != nil {
		h.shader.Delete()
	}
}
