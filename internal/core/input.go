package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps raw keys to these intents; the simulation
// never sees device input.
type Action int

const (
	ActionNone            Action = iota
	ActionMoveLeft               // Left arrow, A - walk left
	ActionMoveRight              // Right arrow, D - walk right
	ActionJump                   // Up arrow, W - jump (twice for Sue)
	ActionAttack                 // Space - character attack
	ActionSwitchCharacter        // X - cycle to the next alive cat
	ActionConfirm                // Enter - confirm (title screen, name entry)
	ActionPause                  // P - pause/unpause
	ActionRestart                // R - back to title after victory/game over
	ActionAbandon                // Esc - abandon the session, score discarded
	ActionQuit                   // Q, Ctrl+C - exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionJump:
		return "Jump"
	case ActionAttack:
		return "Attack"
	case ActionSwitchCharacter:
		return "SwitchCharacter"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionAbandon:
		return "Abandon"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
