package engine

import "github.com/slither-tui/slither/internal/core"

// Snapshot is the read-only projection of engine state consumed by
// rendering and replay verification. Body is a copy, head at index 0;
// mutating a Snapshot cannot affect the engine.
type Snapshot struct {
	Body       []core.Position
	Heading    core.Direction
	Food       core.Position
	FoodGlyph  rune
	Score      int
	Terminated bool
	Ticks      uint64
}

// Snapshot returns the current game state as an immutable value.
func (g *Game) Snapshot() Snapshot {
	body := make([]core.Position, len(g.body))
	copy(body, g.body)

	return Snapshot{
		Body:       body,
		Heading:    g.heading,
		Food:       g.food,
		FoodGlyph:  g.foodGlyph,
		Score:      g.score,
		Terminated: g.terminated,
		Ticks:      g.ticks,
	}
}

// Head returns the head position, the first body segment.
func (s Snapshot) Head() core.Position {
	return s.Body[0]
}
