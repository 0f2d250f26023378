package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/slither-tui/slither/internal/config"
	"github.com/slither-tui/slither/internal/core"
	"github.com/slither-tui/slither/internal/engine"
)

// Frame layout constants.
const (
	hudHeight  = 1 // score line above the border
	helpHeight = 1 // key hint line below the frame
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// DrawFrame renders a snapshot into the screen buffer: score line on
// top, a border box around the play field, the food, then the snake
// with the head drawn distinctly from the body. The renderer only ever
// reads the snapshot; it cannot reach engine state.
func DrawFrame(dst *core.Screen, snap engine.Snapshot, field core.Bounds, glyphs config.Glyphs) {
	dst.Clear()

	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightYellow)

	dst.DrawBox(0, hudHeight, field.W+2, field.H+2)

	// Offsets from field coordinates to screen coordinates.
	offX := 1
	offY := hudHeight + 1

	dst.SetColored(offX+snap.Food.X, offY+snap.Food.Y, snap.FoodGlyph, core.ColorBrightYellow)

	// Body drawn tail-to-head so the head wins when a reversal overlaps
	// it with the first segment. Body color alternates by segment index.
	for i := len(snap.Body) - 1; i >= 1; i-- {
		seg := snap.Body[i]
		c := core.ColorGreen
		if i%2 != 0 {
			c = core.ColorOrange
		}
		dst.SetColored(offX+seg.X, offY+seg.Y, glyphs.BodyRune(), c)
	}

	head := snap.Body[0]
	dst.SetColored(offX+head.X, offY+head.Y, glyphs.HeadRune(), core.ColorBrightRed)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape
// sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
