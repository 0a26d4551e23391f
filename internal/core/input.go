package core

// Action represents a semantic action, abstracted from physical input.
// The runner only understands ActionPrimary; the rest belong to the frontends.
type Action int

const (
	ActionNone       Action = iota
	ActionPrimary           // Space, mouse press, touch - start / jump / restart
	ActionQuit              // Q, Ctrl+C
	ActionScreenshot        // Ctrl+S
	ActionHelp              // ?
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPrimary:
		return "Primary"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	case ActionHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two frames.
type InputFrame struct {
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
