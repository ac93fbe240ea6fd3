package core

// Action represents a semantic game action, abstracted from physical key presses.
// The simulation only ever sees actions, never raw keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move up
	ActionDown           // S, Down arrow - move down
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionBoost          // Shift + direction - boosted movement
	ActionFire           // Space - fire primary weapon
	ActionEMP            // E - disable enemies (cost-gated)
	ActionShield         // F - raise shield (cost-gated)
	ActionGravity        // G - gravity field (cost-gated)
	ActionHyper          // H - hyper mode (cost-gated)
	ActionSummon         // O - summon boss
	ActionConfirm        // Enter - start game / confirm selection
	ActionPause          // P - pause/unpause
	ActionRestart        // R - restart after game over
	ActionBack           // Esc, B - back to menu
	ActionQuit           // Q, Ctrl+C - exit
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionBoost:   "Boost",
	ActionFire:    "Fire",
	ActionEMP:     "EMP",
	ActionShield:  "Shield",
	ActionGravity: "Gravity",
	ActionHyper:   "Hyper",
	ActionSummon:  "Summon",
	ActionConfirm: "Confirm",
	ActionPause:   "Pause",
	ActionRestart: "Restart",
	ActionBack:    "Back",
	ActionQuit:    "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// IsDirection reports whether the action is one of the four movement directions.
func (a Action) IsDirection() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}

// Opposite returns the opposing direction, or ActionNone for non-directions.
func (a Action) Opposite() Action {
	switch a {
	case ActionUp:
		return ActionDown
	case ActionDown:
		return ActionUp
	case ActionLeft:
		return ActionRight
	case ActionRight:
		return ActionLeft
	default:
		return ActionNone
	}
}

// InputFrame represents the input state during one simulation tick.
// Directions and Boost are "held" state; every other action is a key-down event.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf builds an input frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
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

// HoldTracker turns key-press events into held state.
// Terminals only report key presses (auto-repeated while a key is down) and
// never key releases, so a press keeps its action held for a number of ticks
// and a repeat refreshes it. Pressing a direction releases its opposite.
type HoldTracker struct {
	ttl  int
	left map[Action]int
}

// DefaultHoldTicks covers the typical initial key-repeat delay at 50 ticks/s.
const DefaultHoldTicks = 12

// NewHoldTracker creates a tracker holding each press for ttl ticks.
func NewHoldTracker(ttl int) *HoldTracker {
	if ttl < 1 {
		ttl = 1
	}
	return &HoldTracker{ttl: ttl, left: make(map[Action]int)}
}

// Press records a key press for a held action.
func (h *HoldTracker) Press(a Action) {
	if opp := a.Opposite(); opp != ActionNone {
		delete(h.left, opp)
	}
	h.left[a] = h.ttl
}

// Release drops every held action.
func (h *HoldTracker) Release() {
	for a := range h.left {
		delete(h.left, a)
	}
}

// Held reports whether an action is currently held.
func (h *HoldTracker) Held(a Action) bool {
	return h.left[a] > 0
}

// Apply sets every held action on the frame and ages the holds by one tick.
func (h *HoldTracker) Apply(f *InputFrame) {
	for a, n := range h.left {
		f.Set(a)
		if n <= 1 {
			delete(h.left, a)
		} else {
			h.left[a] = n - 1
		}
	}
}
