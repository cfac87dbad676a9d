package game

import (
	"workshop/internal/input"
	"workshop/internal/input/touch"
	"workshop/internal/play"
	"workshop/internal/player"
	"workshop/internal/ui/widget"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// ReadControls collects the state of the keyboard and mouse bindings and, when
// given, the touch controller.
func ReadControls(im *input.InputManager, tc *touch.Controller) play.Controls {
	c := play.Controls{
		Move: player.MoveIntent{
			Forward: im.Axis(input.ActionMoveBackward, input.ActionMoveForward),
			Strafe:  im.Axis(input.ActionMoveLeft, input.ActionMoveRight),
			Sprint:  im.IsActive(input.ActionSprint),
			Jump:    im.IsActive(input.ActionJump),
		},
		Grab:  im.JustPressed(input.ActionGrab),
		Drop:  im.JustPressed(input.ActionDrop),
		Carve: im.IsActive(input.ActionCarve),
	}
	if tc == nil {
		return c
	}

	if f, s := tc.MoveVector(); f != 0 || s != 0 {
		c.Move.Forward, c.Move.Strafe = f, s
		c.Move.Sprint = c.Move.Sprint || tc.Sprinting()
	}
	c.LookDX, c.LookDY = tc.ConsumeLook()
	c.Grab = c.Grab || tc.ConsumeTap()
	c.Carve = c.Carve || tc.CarveHeld()
	return c
}

// pointer samples the cursor for menu widgets.
func pointer(w *glfw.Window, im *input.InputManager) widget.Pointer {
	x, y := w.GetCursorPos()
	return widget.Pointer{
		X:           float32(x),
		Y:           float32(y),
		Down:        im.IsActive(input.ActionMouseLeft),
		JustPressed: im.JustPressed(input.ActionMouseLeft),
	}
}
