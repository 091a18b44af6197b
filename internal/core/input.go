package core

// Action is an abstract command produced by a frontend from raw input.
// The simulation never sees key names, only actions.
type Action int

const (
	ActionNone Action = iota
	ActionFlap        // Space, Up, W, mouse click
	ActionStart       // Enter, R - start or restart a run
	ActionPause       // explicit pause
	ActionResume      // explicit resume
	ActionTogglePause // P, Esc
	ActionQuit        // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionResume:
		return "Resume"
	case ActionTogglePause:
		return "TogglePause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions received between two ticks.
// Frontends fill it from input events and hand it to the simulation
// right before the next tick, so commands never interleave with a tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as received.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was received this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether no action was received.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear drops all actions so the frame can be reused for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
