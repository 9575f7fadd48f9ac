package core

// Action represents a semantic game action, abstracted from physical key
// presses. This allows the game to work with high-level intents rather
// than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionForward          // W, Up arrow - step one tile forward
	ActionBackward         // S, Down arrow - step one tile back
	ActionTurnLeft         // A, Left arrow - turn 90 degrees left
	ActionTurnRight        // D, Right arrow - turn 90 degrees right
	ActionMap              // M - toggle map overlay
	ActionInventory        // I - toggle inventory overlay
	ActionDayNight         // T - toggle day/night sky
	ActionMenu1            // 1 - interior menu choice
	ActionMenu2            // 2
	ActionMenu3            // 3
	ActionMenu4            // 4
	ActionBack             // Esc - leave interior / quit from the street
	ActionQuit             // Q, Ctrl+C - exit immediately
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionForward:
		return "Forward"
	case ActionBackward:
		return "Backward"
	case ActionTurnLeft:
		return "TurnLeft"
	case ActionTurnRight:
		return "TurnRight"
	case ActionMap:
		return "Map"
	case ActionInventory:
		return "Inventory"
	case ActionDayNight:
		return "DayNight"
	case ActionMenu1:
		return "Menu1"
	case ActionMenu2:
		return "Menu2"
	case ActionMenu3:
		return "Menu3"
	case ActionMenu4:
		return "Menu4"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// MenuIndex returns the zero-based interior menu index for menu actions,
// or -1 for anything else.
func (a Action) MenuIndex() int {
	switch a {
	case ActionMenu1:
		return 0
	case ActionMenu2:
		return 1
	case ActionMenu3:
		return 2
	case ActionMenu4:
		return 3
	default:
		return -1
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
