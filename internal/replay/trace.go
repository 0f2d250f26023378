// Package replay records input signal traces and re-simulates them
// headlessly. The engine is deterministic given a seed, field bounds
// and a signal sequence, so a stored trace reproduces a full session.
package replay

import (
	"fmt"
	"strings"

	"github.com/slither-tui/slither/internal/config"
	"github.com/slither-tui/slither/internal/core"
	"github.com/slither-tui/slither/internal/engine"
)

// Signal encoding, one rune per applied signal.
const (
	runeRight = 'R'
	runeDown  = 'D'
	runeLeft  = 'L'
	runeUp    = 'U'
	runeQuit  = 'Q'
)

// Trace is an ordered record of the signals applied to an engine.
// None signals are never recorded since they do not mutate state.
type Trace struct {
	signals []core.Signal
}

// Record appends a signal to the trace. None signals are dropped.
func (t *Trace) Record(sig core.Signal) {
	if sig.Kind == core.SignalNone {
		return
	}
	t.signals = append(t.signals, sig)
}

// Len returns the number of recorded signals.
func (t *Trace) Len() int {
	return len(t.signals)
}

// Signals returns a copy of the recorded signals in order.
func (t *Trace) Signals() []core.Signal {
	out := make([]core.Signal, len(t.signals))
	copy(out, t.signals)
	return out
}

// Encode serializes the trace as one rune per signal: R, D, L and U
// for turns, Q for quit.
func (t *Trace) Encode() string {
	var sb strings.Builder
	sb.Grow(len(t.signals))

	for _, sig := range t.signals {
		switch sig.Kind {
		case core.SignalQuit:
			sb.WriteRune(runeQuit)
		case core.SignalTurn:
			switch sig.Dir {
			case core.DirRight:
				sb.WriteRune(runeRight)
			case core.DirDown:
				sb.WriteRune(runeDown)
			case core.DirLeft:
				sb.WriteRune(runeLeft)
			case core.DirUp:
				sb.WriteRune(runeUp)
			}
		}
	}
	return sb.String()
}

// Decode parses a trace previously produced by Encode.
func Decode(s string) (*Trace, error) {
	t := &Trace{signals: make([]core.Signal, 0, len(s))}

	for i, r := range s {
		switch r {
		case runeRight:
			t.signals = append(t.signals, core.Turn(core.DirRight))
		case runeDown:
			t.signals = append(t.signals, core.Turn(core.DirDown))
		case runeLeft:
			t.signals = append(t.signals, core.Turn(core.DirLeft))
		case runeUp:
			t.signals = append(t.signals, core.Turn(core.DirUp))
		case runeQuit:
			t.signals = append(t.signals, core.Quit())
		default:
			return nil, fmt.Errorf("replay: invalid trace rune %q at offset %d", r, i)
		}
	}
	return t, nil
}

// Simulate replays the trace through a fresh engine and returns the
// final snapshot. With the same runtime config the result matches the
// live session the trace was recorded from.
func Simulate(t *Trace, cfg core.RuntimeConfig, gcfg config.Game) engine.Snapshot {
	g := engine.New(cfg, gcfg)
	for _, sig := range t.signals {
		g.Apply(sig)
	}
	return g.Snapshot()
}
