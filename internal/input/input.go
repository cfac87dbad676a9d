package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action is a logical game action, not a physical key
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionSprint
	ActionGrab
	ActionDrop
	ActionCarve
	ActionPause
	ActionToggleWireframe
	ActionToggleProfiling
	ActionToggleHelp
	ActionMouseLeft
	ActionMouseRight
	ActionCount // sentinel for array sizing
)

var actionNames = [ActionCount]string{
	"move_forward", "move_backward", "move_left", "move_right",
	"jump", "sprint", "grab", "drop", "carve", "pause",
	"toggle_wireframe", "toggle_profiling", "toggle_help",
	"mouse_left", "mouse_right",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// InputManager maps GLFW keys and mouse buttons to actions and tracks
// held state plus per-frame press/release edges.
type InputManager struct {
	mu sync.RWMutex

	keyToActions         map[glfw.Key][]Action
	mouseButtonToActions map[glfw.MouseButton][]Action

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool
}

// NewInputManager creates an InputManager with the default bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
	}

	im.BindKey(glfw.KeyW, ActionMoveForward)
	im.BindKey(glfw.KeyUp, ActionMoveForward)
	im.BindKey(glfw.KeyS, ActionMoveBackward)
	im.BindKey(glfw.KeyDown, ActionMoveBackward)
	im.BindKey(glfw.KeyA, ActionMoveLeft)
	im.BindKey(glfw.KeyLeft, ActionMoveLeft)
	im.BindKey(glfw.KeyD, ActionMoveRight)
	im.BindKey(glfw.KeyRight, ActionMoveRight)
	im.BindKey(glfw.KeySpace, ActionJump)
	im.BindKey(glfw.KeyLeftShift, ActionSprint)
	im.BindKey(glfw.KeyE, ActionGrab)
	im.BindKey(glfw.KeyQ, ActionDrop)
	im.BindKey(glfw.KeyEscape, ActionPause)
	im.BindKey(glfw.KeyF, ActionToggleWireframe)
	im.BindKey(glfw.KeyV, ActionToggleProfiling)
	im.BindKey(glfw.KeyH, ActionToggleHelp)

	im.BindMouseButton(glfw.MouseButtonLeft, ActionCarve)
	im.BindMouseButton(glfw.MouseButtonLeft, ActionMouseLeft)
	im.BindMouseButton(glfw.MouseButtonRight, ActionMouseRight)

	return im
}

// BindKey binds a key to an action. Several keys may share an action.
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (im *InputManager) UnbindKey(key glfw.Key) {
	im.mu.Lock()
	defer im.mu.Unlock()
	delete(im.keyToActions, key)
}

func (im *InputManager) BindMouseButton(button glfw.MouseButton, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.mouseButtonToActions[button] = append(im.mouseButtonToActions[button], action)
}

// HandleKeyEvent updates state from a GLFW key event. Repeat counts as held.
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.RLock()
	actions := im.keyToActions[key]
	im.mu.RUnlock()

	im.set(actions, action == glfw.Press || action == glfw.Repeat)
}

func (im *InputManager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	im.mu.RLock()
	actions := im.mouseButtonToActions[button]
	im.mu.RUnlock()

	im.set(actions, action == glfw.Press)
}

// Press and Release drive actions directly, e.g. from the touch controller.
func (im *InputManager) Press(a Action)   { im.set([]Action{a}, true) }
func (im *InputManager) Release(a Action) { im.set([]Action{a}, false) }

func (im *InputManager) set(actions []Action, pressed bool) {
	if len(actions) == 0 {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	for _, act := range actions {
		if act < 0 || act >= ActionCount {
			continue
		}
		// edges are latched until PostUpdate so short taps between frames are not lost
		if pressed && !im.currentState[act] {
			im.justPressed[act] = true
		}
		if !pressed && im.currentState[act] {
			im.justReleased[act] = true
		}
		im.currentState[act] = pressed
	}
}

// ReleaseAll clears held state, e.g. when the window loses focus.
func (im *InputManager) ReleaseAll() {
	im.mu.Lock()
	defer im.mu.Unlock()
	for i := range ActionCount {
		if im.currentState[i] {
			im.justReleased[i] = true
		}
		im.currentState[i] = false
	}
}

// PostUpdate clears the edge flags. Call once at the end of each frame.
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()
	for i := range ActionCount {
		im.justPressed[i] = false
		im.justReleased[i] = false
	}
}

// IsActive reports whether the action is held
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.currentState[action]
}

// JustPressed reports whether the action went down since the last PostUpdate
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justPressed[action]
}

func (im *InputManager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justReleased[action]
}

// Axis returns -1, 0 or 1 from a pair of opposing actions.
func (im *InputManager) Axis(negative, positive Action) float32 {
	var v float32
	if im.IsActive(positive) {
		v++
	}
	if im.IsActive(negative) {
		v--
	}
	return v
}
