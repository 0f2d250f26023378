package core

// SignalKind classifies input signals delivered to the engine.
type SignalKind int

const (
	// SignalNone is an unrecognized key. The engine must leave its state
	// untouched: no mutation, no movement tick.
	SignalNone SignalKind = iota
	// SignalTurn sets the heading and triggers exactly one movement tick.
	SignalTurn
	// SignalQuit terminates the game. No movement tick occurs.
	SignalQuit
)

// String returns a human-readable name for the signal kind.
func (k SignalKind) String() string {
	switch k {
	case SignalNone:
		return "none"
	case SignalTurn:
		return "turn"
	case SignalQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Signal is one decoded input event. The platform produces exactly one
// Signal per key press; the engine consumes it in Apply. Dir is only
// meaningful when Kind is SignalTurn.
type Signal struct {
	Kind SignalKind
	Dir  Direction
}

// Turn builds a direction-change signal.
func Turn(d Direction) Signal {
	return Signal{Kind: SignalTurn, Dir: d}
}

// Quit builds a termination signal.
func Quit() Signal {
	return Signal{Kind: SignalQuit}
}

// None builds an ignored-key signal.
func None() Signal {
	return Signal{Kind: SignalNone}
}
