package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the engine to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, H, Left arrow - move ship left
	ActionRight          // D, L, Right arrow - move ship right
	ActionFire           // Space - shoot
	ActionPause          // P - pause/unpause
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - end the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Continuous reports whether the action is held (movement, firing)
// rather than triggered once.
func (a Action) Continuous() bool {
	return a == ActionLeft || a == ActionRight || a == ActionFire
}

// InputFrame is the set of actions held or triggered during one tick.
type InputFrame struct {
	bits uint8
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a as active in the frame.
func (f *InputFrame) Set(a Action) {
	if a > ActionNone && a <= ActionQuit {
		f.bits |= 1 << a
	}
}

// Has reports whether a is active in the frame.
func (f InputFrame) Has(a Action) bool {
	return a > ActionNone && a <= ActionQuit && f.bits&(1<<a) != 0
}

// Empty reports whether no action is active.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// KeyState turns key press events into per-tick key-down state.
//
// Terminals report presses (and auto-repeats) but never releases, so a
// continuous action counts as down until hold has elapsed since its last
// press. One-shot actions are reported by exactly one Poll.
type KeyState struct {
	hold    time.Duration
	lastHit map[Action]time.Time
	pending map[Action]bool
}

// NewKeyState creates a key state with the given hold window.
func NewKeyState(hold time.Duration) *KeyState {
	return &KeyState{
		hold:    hold,
		lastHit: make(map[Action]time.Time),
		pending: make(map[Action]bool),
	}
}

// Press records a key press event for the action.
func (k *KeyState) Press(a Action, at time.Time) {
	if a == ActionNone {
		return
	}
	if a.Continuous() {
		k.lastHit[a] = at
		// Opposite directions cancel: the newest press wins.
		switch a {
		case ActionLeft:
			delete(k.lastHit, ActionRight)
		case ActionRight:
			delete(k.lastHit, ActionLeft)
		}
		return
	}
	k.pending[a] = true
}

// IsDown reports whether the action is considered held at now.
func (k *KeyState) IsDown(a Action, now time.Time) bool {
	if !a.Continuous() {
		return k.pending[a]
	}
	at, ok := k.lastHit[a]
	if !ok {
		return false
	}
	return now.Sub(at) < k.hold
}

// Poll builds the input frame for one tick and consumes one-shot actions.
func (k *KeyState) Poll(now time.Time) InputFrame {
	frame := NewInputFrame()
	for a := range k.lastHit {
		if k.IsDown(a, now) {
			frame.Set(a)
		} else {
			delete(k.lastHit, a)
		}
	}
	for a := range k.pending {
		frame.Set(a)
		delete(k.pending, a)
	}
	return frame
}

// Reset forgets all held and pending actions.
func (k *KeyState) Reset() {
	clear(k.lastHit)
	clear(k.pending)
}
