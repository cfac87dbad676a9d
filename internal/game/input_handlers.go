package game

import (
	"workshop/internal/config"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func SetupInputHandlers(app *App) {
	window := app.window
	im := app.inputManager

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if s := app.session; s != nil && !s.Paused {
			s.State.Player.HandleMouseMovement(xpos, ypos, config.GetMouseSensitivity())
		}
	})

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)

		// clicking back into the window recaptures the cursor
		if s := app.session; s != nil && !s.Paused && action == glfw.Press {
			if w.GetInputMode(glfw.CursorMode) != glfw.CursorDisabled {
				w.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
				s.State.Player.ResetMouse()
			}
		}
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

		// layout uses window coordinates, not framebuffer pixels
		winW, winH := w.GetSize()
		app.menuUI.SetViewport(winW, winH)
		app.fontRenderer.SetViewport(winW, winH)
		app.touch.Resize(float64(winW))

		if app.session != nil {
			app.session.Renderer.UpdateViewport(winW, winH)
		}
	})

	window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		if focused {
			return
		}
		im.ReleaseAll()
		if app.session != nil && !app.session.Paused {
			app.session.SetPaused(true)
		}
	})

	window.SetRefreshCallback(func(w *glfw.Window) {
		app.RefreshRender()
	})
}
