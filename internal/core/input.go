package core

// Action represents a semantic plugin action, abstracted from physical keys.
// Plugins work with high-level intents rather than raw input.
type Action int

const (
	ActionNone   Action = iota
	ActionUp            // W, Up arrow - move cursor up
	ActionDown          // S, Down arrow - move cursor down
	ActionLeft          // A, Left arrow - move cursor left
	ActionRight         // D, Right arrow - move cursor right
	ActionSelect        // Enter, Space - pick up / drop / lock in
	ActionCancel        // Esc, Backspace - deselect or back out
	ActionPause         // P - pause/unpause
	ActionRestart       // R - restart after game over
	ActionHint          // H - request a move hint
	ActionWalkAway      // W key in the quiz - take the money and leave

	// Number-key actions. Plugins interpret them: the quiz binds 1-3 to
	// lifelines, the gem board binds them to surge-line triggers.
	ActionNum1
	ActionNum2
	ActionNum3
	ActionNum4
	ActionNum5
	ActionNum6
	ActionNum7
	ActionNum8
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
	case ActionSelect:
		return "Select"
	case ActionCancel:
		return "Cancel"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionHint:
		return "Hint"
	case ActionWalkAway:
		return "WalkAway"
	case ActionNum1, ActionNum2, ActionNum3, ActionNum4,
		ActionNum5, ActionNum6, ActionNum7, ActionNum8:
		return "Num"
	default:
		return "Unknown"
	}
}

// NumIndex returns the zero-based index of a number-key action,
// or -1 for any other action.
func (a Action) NumIndex() int {
	if a >= ActionNum1 && a <= ActionNum8 {
		return int(a - ActionNum1)
	}
	return -1
}

// InputFrame holds the actions triggered during one host tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Num returns the zero-based index of the first number-key action triggered
// this frame, or -1 if none was.
func (f InputFrame) Num() int {
	for a := ActionNum1; a <= ActionNum8; a++ {
		if f.Has(a) {
			return a.NumIndex()
		}
	}
	return -1
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
