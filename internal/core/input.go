package core

// Action represents a semantic editor action, abstracted from physical key
// presses so the editor works with intents rather than raw input.
type Action int

const (
	ActionNone          Action = iota
	ActionUp                   // Up arrow, k - move cursor up
	ActionDown                 // Down arrow, j - move cursor down
	ActionLeft                 // Left arrow, h - move cursor left
	ActionRight                // Right arrow, l - move cursor right
	ActionMarkStart            // s - mark cursor cell as start
	ActionMarkFinish           // f - mark cursor cell as finish
	ActionToggleBarrier        // x, space - toggle barrier on cursor cell
	ActionUnmark               // d, backspace - clear cursor cell
	ActionFindPath             // enter, p - request a path
	ActionClear                // c - clear the whole grid
	ActionNextPreset           // n - load the next built-in layout
	ActionToggleHelp           // ? - show or hide the info panel
	ActionQuit                 // q, ctrl+c - leave the editor
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
	case ActionMarkStart:
		return "MarkStart"
	case ActionMarkFinish:
		return "MarkFinish"
	case ActionToggleBarrier:
		return "ToggleBarrier"
	case ActionUnmark:
		return "Unmark"
	case ActionFindPath:
		return "FindPath"
	case ActionClear:
		return "Clear"
	case ActionNextPreset:
		return "NextPreset"
	case ActionToggleHelp:
		return "ToggleHelp"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Delta returns the cursor offset for movement actions and (0, 0) otherwise.
// Up decreases Y, Down increases Y (screen coordinates).
func (a Action) Delta() (dx, dy int) {
	switch a {
	case ActionUp:
		return 0, -1
	case ActionDown:
		return 0, 1
	case ActionLeft:
		return -1, 0
	case ActionRight:
		return 1, 0
	default:
		return 0, 0
	}
}
