package menu

type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionResume
	ActionQuitToMenu
	ActionQuitGame
)

func (a Action) String() string {
	switch a {
	case ActionStart:
		return "start"
	case ActionResume:
		return "resume"
	case ActionQuitToMenu:
		return "quit_to_menu"
	case ActionQuitGame:
		return "quit_game"
	default:
		return "none"
	}
}

// layoutScale fits a 900x600 reference layout into the window.
func layoutScale(w, h float32) float32 {
	scale := w / 900
	if s := h / 600; s < scale {
		scale = s
	}
	if scale <= 0 {
		return 1
	}
	return scale
}
