package engine

import (
	"reflect"
	"testing"

	"github.com/slither-tui/slither/internal/config"
	"github.com/slither-tui/slither/internal/core"
)

// newTestGame builds a game with the exact requested bounds, without
// the default config's minimum-size clamping.
func newTestGame(w, h int, seed int64) *Game {
	gcfg := config.Default()
	gcfg.Field.MinWidth = 1
	gcfg.Field.MinHeight = 1
	return New(core.RuntimeConfig{FieldW: w, FieldH: h, Seed: seed}, gcfg)
}

func TestInitialState(t *testing.T) {
	g := newTestGame(40, 20, 7)

	snap := g.Snapshot()
	if snap.Terminated {
		t.Fatal("new game should be running")
	}
	if snap.Score != 0 {
		t.Errorf("initial score = %d, expected 0", snap.Score)
	}
	if snap.Heading != core.DirRight {
		t.Errorf("initial heading = %v, expected right", snap.Heading)
	}
	if len(snap.Body) != 1 {
		t.Errorf("initial body length = %d, expected 1", len(snap.Body))
	}
	if !g.bounds.Contains(snap.Head()) {
		t.Errorf("initial head %v out of bounds", snap.Head())
	}
	if !g.bounds.Contains(snap.Food) {
		t.Errorf("initial food %v out of bounds", snap.Food)
	}
	if snap.Food == snap.Head() {
		t.Error("initial food spawned on the snake")
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and signal sequence should produce
	// identical snapshots.
	g1 := newTestGame(80, 24, 12345)
	g2 := newTestGame(80, 24, 12345)

	dirs := []core.Direction{core.DirRight, core.DirDown, core.DirLeft, core.DirUp}
	for i := 0; i < 200; i++ {
		sig := core.Turn(dirs[(i/7)%len(dirs)])
		g1.Apply(sig)
		g2.Apply(sig)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("snapshots diverged:\n%+v\n%+v", s1, s2)
	}
}

func TestGrowthInvariant(t *testing.T) {
	// len(body) == targetLen must hold immediately after every tick
	// settles, across arbitrary signal sequences.
	g := newTestGame(12, 8, 99)

	// Chase the food greedily so consumption happens many times.
	for i := 0; i < 500; i++ {
		head, food := g.body[0], g.food
		dir := g.heading
		switch {
		case food.X > head.X:
			dir = core.DirRight
		case food.X < head.X:
			dir = core.DirLeft
		case food.Y > head.Y:
			dir = core.DirDown
		case food.Y < head.Y:
			dir = core.DirUp
		}

		g.Apply(core.Turn(dir))
		if len(g.body) != g.targetLen {
			t.Fatalf("after tick %d: len(body)=%d, targetLen=%d", i, len(g.body), g.targetLen)
		}
	}

	if g.score == 0 {
		t.Error("expected at least one consumption while chasing food")
	}
}

func TestScoreMonotonicity(t *testing.T) {
	g := newTestGame(10, 10, 3)

	dirs := []core.Direction{core.DirRight, core.DirDown, core.DirLeft, core.DirUp}
	for i := 0; i < 1000; i++ {
		dir := dirs[i%3]
		willEat := g.bounds.Step(g.body[0], dir) == g.food
		before := g.score

		g.Apply(core.Turn(dir))

		want := before
		if willEat {
			want++
		}
		if g.score != want {
			t.Fatalf("tick %d: score = %d, expected %d (willEat=%v)", i, g.score, want, willEat)
		}
	}
}

func TestConsumption(t *testing.T) {
	// body = [(5,5)], heading right, food at (6,5): one rightward tick
	// consumes, grows and respawns the food elsewhere.
	g := newTestGame(40, 20, 1)
	g.body = []core.Position{{X: 5, Y: 5}}
	g.targetLen = 1
	g.heading = core.DirRight
	g.food = core.Position{X: 6, Y: 5}

	g.Apply(core.Turn(core.DirRight))

	snap := g.Snapshot()
	if snap.Head() != (core.Position{X: 6, Y: 5}) {
		t.Errorf("head = %v, expected (6,5)", snap.Head())
	}
	if snap.Score != 1 {
		t.Errorf("score = %d, expected 1", snap.Score)
	}
	if g.targetLen != 2 {
		t.Errorf("targetLen = %d, expected 2", g.targetLen)
	}
	wantBody := []core.Position{{X: 6, Y: 5}, {X: 5, Y: 5}}
	if !reflect.DeepEqual(snap.Body, wantBody) {
		t.Errorf("body = %v, expected %v", snap.Body, wantBody)
	}
	if snap.Food == (core.Position{X: 6, Y: 5}) {
		t.Error("food was not respawned after consumption")
	}
}

func TestWrapAtLeftEdge(t *testing.T) {
	// Moving left from x=0 wraps to the right edge instead of
	// underflowing.
	g := newTestGame(168, 15, 2)
	g.body = []core.Position{{X: 0, Y: 0}}
	g.targetLen = 1
	g.food = core.Position{X: 50, Y: 7}

	g.Apply(core.Turn(core.DirLeft))

	snap := g.Snapshot()
	if snap.Head() != (core.Position{X: 167, Y: 0}) {
		t.Errorf("head = %v, expected (167,0)", snap.Head())
	}
	if snap.Score != 0 {
		t.Errorf("score = %d, expected 0", snap.Score)
	}
	if len(snap.Body) != 1 {
		t.Errorf("body length = %d, expected 1", len(snap.Body))
	}
}

func TestQuitPreservesState(t *testing.T) {
	g := newTestGame(40, 20, 5)
	g.Apply(core.Turn(core.DirDown))
	before := g.Snapshot()

	g.Apply(core.Quit())

	after := g.Snapshot()
	if !after.Terminated {
		t.Fatal("game should be terminated after quit")
	}
	if !reflect.DeepEqual(after.Body, before.Body) {
		t.Errorf("body changed on quit: %v vs %v", after.Body, before.Body)
	}
	if after.Food != before.Food || after.Score != before.Score {
		t.Error("food or score changed on quit")
	}
	if after.Ticks != before.Ticks {
		t.Errorf("quit performed a tick: %d vs %d", after.Ticks, before.Ticks)
	}
}

func TestQuitIdempotent(t *testing.T) {
	g := newTestGame(40, 20, 5)
	g.Apply(core.Turn(core.DirUp))

	g.Apply(core.Quit())
	first := g.Snapshot()

	g.Apply(core.Quit())
	second := g.Snapshot()

	if !reflect.DeepEqual(first, second) {
		t.Errorf("second quit changed state:\n%+v\n%+v", first, second)
	}
}

func TestTerminatedIgnoresSignals(t *testing.T) {
	g := newTestGame(40, 20, 5)
	g.Apply(core.Quit())
	before := g.Snapshot()

	g.Apply(core.Turn(core.DirUp))

	after := g.Snapshot()
	if !reflect.DeepEqual(before, after) {
		t.Errorf("turn after termination changed state:\n%+v\n%+v", before, after)
	}
	if !after.Terminated {
		t.Error("state should remain terminated")
	}
}

func TestNoneSignalIsNoOp(t *testing.T) {
	g := newTestGame(40, 20, 8)
	g.Apply(core.Turn(core.DirDown))
	before := g.Snapshot()
	beforeTarget := g.targetLen

	g.Apply(core.None())

	after := g.Snapshot()
	if !reflect.DeepEqual(before, after) {
		t.Errorf("none signal changed state:\n%+v\n%+v", before, after)
	}
	if g.targetLen != beforeTarget {
		t.Errorf("none signal changed targetLen: %d vs %d", g.targetLen, beforeTarget)
	}
}

func TestRepeatedDirectionStillTicks(t *testing.T) {
	// A turn signal matching the current heading still performs exactly
	// one movement tick.
	g := newTestGame(40, 20, 4)
	g.body = []core.Position{{X: 10, Y: 10}}
	g.targetLen = 1
	g.food = core.Position{X: 0, Y: 0}
	g.heading = core.DirRight

	g.Apply(core.Turn(core.DirRight))
	g.Apply(core.Turn(core.DirRight))

	snap := g.Snapshot()
	if snap.Head() != (core.Position{X: 12, Y: 10}) {
		t.Errorf("head = %v, expected (12,10)", snap.Head())
	}
	if snap.Ticks != 2 {
		t.Errorf("ticks = %d, expected 2", snap.Ticks)
	}
}

func TestReversalPermitted(t *testing.T) {
	// There is no opposite-direction guard: an immediate reversal moves
	// the head back over the previous cell.
	g := newTestGame(40, 20, 4)
	g.body = []core.Position{{X: 10, Y: 10}}
	g.targetLen = 1
	g.food = core.Position{X: 0, Y: 0}
	g.heading = core.DirRight

	g.Apply(core.Turn(core.DirRight))
	g.Apply(core.Turn(core.DirLeft))

	if got := g.Snapshot().Head(); got != (core.Position{X: 10, Y: 10}) {
		t.Errorf("head = %v, expected (10,10)", got)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	g := newTestGame(40, 20, 6)
	snap := g.Snapshot()

	snap.Body[0] = core.Position{X: -1, Y: -1}

	if g.body[0] == (core.Position{X: -1, Y: -1}) {
		t.Error("mutating a snapshot reached engine state")
	}
}
