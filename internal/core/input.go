package core

// Action represents a semantic game action, abstracted from physical key
// presses and pointer gestures.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow, swipe up
	ActionDown           // S, Down arrow, swipe down
	ActionLeft           // A, Left arrow, swipe left
	ActionRight          // D, Right arrow, swipe right
	ActionStart          // Space, Enter - start a session when none is running
	ActionRestart        // R - start over, even mid-game
	ActionHelp           // ? - toggle the full key help
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirectional reports whether the action steers the snake.
func (a Action) IsDirectional() bool {
	return a >= ActionUp && a <= ActionRight
}

// ResolveSwipe turns a pointer drag of (dx, dy) cells into a directional
// action. The dominant axis wins; ties go to the vertical axis. A drag that
// did not move resolves to ActionNone.
func ResolveSwipe(dx, dy int) Action {
	if Abs(dx) > Abs(dy) {
		if dx > 0 {
			return ActionRight
		}
		return ActionLeft
	}
	switch {
	case dy > 0:
		return ActionDown
	case dy < 0:
		return ActionUp
	}
	return ActionNone
}
