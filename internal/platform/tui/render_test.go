package tui

import (
	"strings"
	"testing"

	"github.com/slither-tui/slither/internal/config"
	"github.com/slither-tui/slither/internal/core"
	"github.com/slither-tui/slither/internal/engine"
)

func TestDrawFrame(t *testing.T) {
	field := core.Bounds{W: 10, H: 5}
	screen := core.NewScreen(field.W+2, field.H+2+hudHeight)
	glyphs := config.Default().Glyphs

	snap := engine.Snapshot{
		Body:      []core.Position{{X: 3, Y: 2}, {X: 2, Y: 2}, {X: 1, Y: 2}},
		Food:      core.Position{X: 7, Y: 4},
		FoodGlyph: '*',
		Score:     2,
	}

	DrawFrame(screen, snap, field, glyphs)

	// HUD
	if !strings.Contains(screen.Row(0), "Score: 2") {
		t.Errorf("HUD row = %q, expected score text", screen.Row(0))
	}

	// Border corners
	if screen.Get(0, hudHeight) != '┌' || screen.Get(field.W+1, field.H+1+hudHeight) != '┘' {
		t.Error("border box missing")
	}

	// Field cell (fx, fy) maps to screen (fx+1, fy+1+hudHeight).
	head := screen.GetCell(3+1, 2+1+hudHeight)
	if head.Rune != glyphs.HeadRune() || head.Color != core.ColorBrightRed {
		t.Errorf("head cell = %+v", head)
	}

	body := screen.GetCell(2+1, 2+1+hudHeight)
	if body.Rune != glyphs.BodyRune() {
		t.Errorf("body cell = %+v", body)
	}

	food := screen.GetCell(7+1, 4+1+hudHeight)
	if food.Rune != '*' {
		t.Errorf("food cell = %+v", food)
	}
}

func TestDrawFrameHeadWinsOverBody(t *testing.T) {
	// After a reversal the head shares a cell with a body segment; the
	// head glyph must be the one displayed.
	field := core.Bounds{W: 10, H: 5}
	screen := core.NewScreen(field.W+2, field.H+2+hudHeight)
	glyphs := config.Default().Glyphs

	snap := engine.Snapshot{
		Body:      []core.Position{{X: 4, Y: 2}, {X: 5, Y: 2}, {X: 4, Y: 2}},
		Food:      core.Position{X: 0, Y: 0},
		FoodGlyph: '*',
	}

	DrawFrame(screen, snap, field, glyphs)

	cell := screen.GetCell(4+1, 2+1+hudHeight)
	if cell.Rune != glyphs.HeadRune() || cell.Color != core.ColorBrightRed {
		t.Errorf("overlapping cell = %+v, expected the head", cell)
	}
}

func TestRenderScreenShape(t *testing.T) {
	screen := core.NewScreen(8, 3)
	screen.SetColored(0, 0, 'a', core.ColorGreen)
	screen.SetColored(1, 0, 'b', core.ColorGreen)
	screen.SetColored(2, 0, 'c', core.ColorOrange)

	out := RenderScreen(screen)

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for _, want := range []string{"a", "b", "c"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestFieldForTerminal(t *testing.T) {
	gcfg := config.Default()

	field := fieldForTerminal(80, 24, gcfg)
	if field.W != 78 {
		t.Errorf("field width = %d, expected 78", field.W)
	}
	if field.H != 24-hudHeight-helpHeight-2 {
		t.Errorf("field height = %d", field.H)
	}

	// Tiny terminals clamp to the configured minimum.
	small := fieldForTerminal(5, 3, gcfg)
	if small.W < gcfg.Field.MinWidth || small.H < gcfg.Field.MinHeight {
		t.Errorf("field %+v below configured minimum", small)
	}
}
