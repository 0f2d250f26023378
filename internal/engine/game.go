// Package engine implements the snake state machine: one movement tick
// per input event, food consumption and growth, and a read-only
// snapshot for rendering. The engine is deterministic given a seed,
// field bounds and a signal sequence.
package engine

import (
	"math/rand"

	"github.com/slither-tui/slither/internal/config"
	"github.com/slither-tui/slither/internal/core"
)

// Game owns the sole mutable game state. It is created once per session
// and mutated only through Apply. The body is an ordered sequence of
// positions, head at index 0; after every completed tick its length
// equals targetLen.
type Game struct {
	bounds core.Bounds
	rng    *rand.Rand

	body      []core.Position
	targetLen int
	heading   core.Direction

	food      core.Position
	foodGlyph rune

	score      int
	terminated bool
	ticks      uint64

	maxSpawnAttempts int
}

// New creates a game in the Running state: a single-segment snake at a
// random position, heading right, score zero, and one food item
// spawned away from the body.
func New(cfg core.RuntimeConfig, gcfg config.Game) *Game {
	w := core.Max(cfg.FieldW, core.Max(gcfg.Field.MinWidth, 1))
	h := core.Max(cfg.FieldH, core.Max(gcfg.Field.MinHeight, 1))

	g := &Game{
		bounds:           core.Bounds{W: w, H: h},
		rng:              rand.New(rand.NewSource(cfg.Seed)),
		targetLen:        1,
		heading:          core.DirRight,
		foodGlyph:        gcfg.Glyphs.FoodRune(),
		maxSpawnAttempts: gcfg.Spawn.MaxAttempts,
	}
	if g.maxSpawnAttempts <= 0 {
		g.maxSpawnAttempts = 64
	}

	g.body = []core.Position{{
		X: g.rng.Intn(w),
		Y: g.rng.Intn(h),
	}}
	g.spawnFood()

	return g
}

// Bounds returns the play field extent.
func (g *Game) Bounds() core.Bounds {
	return g.bounds
}

// Apply consumes one input signal and settles fully before returning.
// While running, a turn signal overwrites the heading (reversal into
// the body is permitted; there is no opposite-direction guard) and
// performs exactly one movement tick, even when the direction is
// unchanged. Quit terminates and is idempotent. An unrecognized signal
// leaves every field untouched. Apply is total: it never fails.
func (g *Game) Apply(sig core.Signal) {
	if g.terminated {
		return
	}

	switch sig.Kind {
	case core.SignalQuit:
		g.terminated = true
	case core.SignalTurn:
		g.heading = sig.Dir
		g.tick()
	}
}

// tick advances the snake one cell: prepend the wrapped new head,
// resolve consumption against the post-move head, then trim the tail
// back to target length.
func (g *Game) tick() {
	g.ticks++

	newHead := g.bounds.Step(g.body[0], g.heading)
	g.body = append([]core.Position{newHead}, g.body...)

	if newHead == g.food {
		g.score++
		g.targetLen++
		g.spawnFood()
	}

	for len(g.body) > g.targetLen {
		g.body = g.body[:len(g.body)-1]
	}
}
