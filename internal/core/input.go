package core

// Action represents a semantic input action, abstracted from physical key presses.
// Frontends map keys to actions; the rest of the platform only sees intents.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move the keyboard cursor up
	ActionDown           // S, Down arrow - move the keyboard cursor down
	ActionLeft           // A, Left arrow - move the keyboard cursor left
	ActionRight          // D, Right arrow - move the keyboard cursor right
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause
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
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
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

// Cursor is a tracked point steered by directional actions.
// It stays inside the [0, W] x [0, H] field.
type Cursor struct {
	Pos   Vec2
	Speed float64 // field units per step
	W, H  float64
}

// NewCursor creates a cursor centered on a w x h field.
func NewCursor(w, h, speed float64) *Cursor {
	return &Cursor{
		Pos:   V(w/2, h/2),
		Speed: speed,
		W:     w,
		H:     h,
	}
}

// Apply moves the cursor one step for every directional action in the frame.
func (c *Cursor) Apply(f InputFrame) {
	if f.Has(ActionUp) {
		c.Pos.Y -= c.Speed
	}
	if f.Has(ActionDown) {
		c.Pos.Y += c.Speed
	}
	if f.Has(ActionLeft) {
		c.Pos.X -= c.Speed
	}
	if f.Has(ActionRight) {
		c.Pos.X += c.Speed
	}
	c.Pos.X = ClampF(c.Pos.X, 0, c.W)
	c.Pos.Y = ClampF(c.Pos.Y, 0, c.H)
}

// Point returns a pointer to a copy of the cursor position,
// suitable as an engine input point.
func (c *Cursor) Point() *Vec2 {
	p := c.Pos
	return &p
}
