package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionRestart        // R
	ActionQuit           // Q, Ctrl+C
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
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirectional reports whether the action slides the board.
func (a Action) IsDirectional() bool {
	return a >= ActionUp && a <= ActionRight
}

// ActionFromRune maps a single typed character to an action.
// Letters are case-insensitive; unrecognized characters map to ActionNone.
func ActionFromRune(r rune) Action {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}

	switch r {
	case 'W':
		return ActionUp
	case 'A':
		return ActionLeft
	case 'S':
		return ActionDown
	case 'D':
		return ActionRight
	case 'R':
		return ActionRestart
	case 'Q':
		return ActionQuit
	}

	return ActionNone
}

// ActionsFromString maps every character of s to an action, dropping the
// ones that map to ActionNone.
func ActionsFromString(s string) []Action {
	var actions []Action
	for _, r := range s {
		if a := ActionFromRune(r); a != ActionNone {
			actions = append(actions, a)
		}
	}
	return actions
}
