package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if s.Get(3, 2) != 'X' {
		t.Errorf("Get(3,2) = %q, expected 'X'", s.Get(3, 2))
	}

	s.SetColored(4, 2, 'o', ColorGreen)
	cell := s.GetCell(4, 2)
	if cell.Rune != 'o' || cell.Color != ColorGreen {
		t.Errorf("GetCell(4,2) = %+v, expected colored 'o'", cell)
	}

	// Out of bounds writes are ignored, reads return blanks.
	s.Set(-1, 0, 'Z')
	s.Set(10, 0, 'Z')
	s.Set(0, 5, 'Z')
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' || s.Get(0, 5) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(1, 1, '#', ColorRed)

	s.Clear()

	cell := s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("cell after Clear = %+v", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hey")
	if s.Row(1) != "  hey     " {
		t.Errorf("Row(1) = %q", s.Row(1))
	}

	// Clipped at the right edge.
	s.DrawText(8, 0, "long")
	if s.Row(0) != "        lo" {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc")
	if s.Row(0) != "    abc    " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(0, 0, 6, 4)

	if s.Get(0, 0) != '┌' || s.Get(5, 0) != '┐' {
		t.Error("top corners missing")
	}
	if s.Get(0, 3) != '└' || s.Get(5, 3) != '┘' {
		t.Error("bottom corners missing")
	}
	if s.Get(2, 0) != '─' || s.Get(2, 3) != '─' {
		t.Error("horizontal edges missing")
	}
	if s.Get(0, 1) != '│' || s.Get(5, 2) != '│' {
		t.Error("vertical edges missing")
	}
	if s.Get(2, 1) != ' ' {
		t.Error("interior should stay blank")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(1, 1, 'A')
	s.Set(5, 3, 'B')

	s.Resize(4, 3)

	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("size = %dx%d after resize", s.Width(), s.Height())
	}
	if s.Get(1, 1) != 'A' {
		t.Error("content inside new bounds should be preserved")
	}

	s.Resize(8, 6)
	if s.Get(1, 1) != 'A' {
		t.Error("content should survive growing")
	}
	if s.Get(7, 5) != ' ' {
		t.Error("new cells should be blank")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	out := s.String()
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "a  " || lines[1] != "  b" {
		t.Errorf("String() = %q", out)
	}
}
