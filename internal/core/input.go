package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone Action = iota
	ActionUp          // W, Up arrow - move up
	ActionDown        // S, Down arrow - move down
	ActionFire        // Space - shoot
	ActionQuit        // Q, Escape, Ctrl+C, window close
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
	case ActionFire:
		return "Fire"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// EventKind distinguishes presses from releases.
type EventKind int

const (
	KeyDown EventKind = iota
	KeyUp
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	if k == KeyUp {
		return "KeyUp"
	}
	return "KeyDown"
}

// InputEvent is one input occurrence within a frame.
type InputEvent struct {
	Kind   EventKind
	Action Action
}

// InputFrame represents the input collected for a single simulation tick.
// Events keep their arrival order, since a press and a release of the same
// key inside one tick must be applied in sequence.
type InputFrame struct {
	events []InputEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records a key-down for the action.
func (f *InputFrame) Set(a Action) {
	f.push(InputEvent{Kind: KeyDown, Action: a})
}

// Release records a key-up for the action.
func (f *InputFrame) Release(a Action) {
	f.push(InputEvent{Kind: KeyUp, Action: a})
}

func (f *InputFrame) push(ev InputEvent) {
	if ev.Action == ActionNone {
		return
	}
	f.events = append(f.events, ev)
}

// Events returns the frame's events in arrival order.
func (f InputFrame) Events() []InputEvent {
	return f.events
}

// Len returns the number of events in the frame.
func (f InputFrame) Len() int {
	return len(f.events)
}

// Clear resets all events for the next frame.
func (f *InputFrame) Clear() {
	f.events = f.events[:0]
}
