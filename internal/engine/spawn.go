package engine

import "github.com/slither-tui/slither/internal/core"

// spawnFood places food uniformly at random within bounds, avoiding the
// snake body. A bounded number of rejection draws is tried first; if
// every draw lands on the body, the free cells are enumerated and one
// is picked uniformly. The food position is left unchanged only when
// the body covers the entire field.
func (g *Game) spawnFood() {
	for i := 0; i < g.maxSpawnAttempts; i++ {
		p := core.Position{
			X: g.rng.Intn(g.bounds.W),
			Y: g.rng.Intn(g.bounds.H),
		}
		if !g.occupied(p) {
			g.food = p
			return
		}
	}

	free := g.freeCells()
	if len(free) == 0 {
		return
	}
	g.food = free[g.rng.Intn(len(free))]
}

// occupied reports whether the snake body covers p.
func (g *Game) occupied(p core.Position) bool {
	for _, seg := range g.body {
		if seg == p {
			return true
		}
	}
	return false
}

// freeCells enumerates every cell not covered by the body.
func (g *Game) freeCells() []core.Position {
	free := make([]core.Position, 0, g.bounds.Area()-len(g.body))
	for y := 0; y < g.bounds.H; y++ {
		for x := 0; x < g.bounds.W; x++ {
			p := core.Position{X: x, Y: y}
			if !g.occupied(p) {
				free = append(free, p)
			}
		}
	}
	return free
}
