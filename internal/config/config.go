// Package config provides YAML-based configuration for slither:
// display glyphs, food spawn tuning, and play field limits.
package config

// Game contains all tunable configuration for a slither session.
type Game struct {
	Glyphs Glyphs `yaml:"glyphs"`
	Spawn  Spawn  `yaml:"spawn"`
	Field  Field  `yaml:"field"`
}

// Glyphs defines the characters used to draw game elements.
// Display glyphs are chosen at render time from the body index; the
// engine never accumulates glyph text as state.
type Glyphs struct {
	Head string `yaml:"head"`
	Body string `yaml:"body"`
	Food string `yaml:"food"`
}

// Spawn defines food spawn behavior.
type Spawn struct {
	// MaxAttempts bounds the rejection-sampling draws tried before the
	// spawner falls back to enumerating free cells.
	MaxAttempts int `yaml:"max_attempts"`
}

// Field defines play field size limits.
type Field struct {
	MinWidth  int `yaml:"min_width"`
	MinHeight int `yaml:"min_height"`
}

// HeadRune returns the head glyph as a rune.
func (g Glyphs) HeadRune() rune {
	return firstRune(g.Head, 'X')
}

// BodyRune returns the body glyph as a rune.
func (g Glyphs) BodyRune() rune {
	return firstRune(g.Body, 'o')
}

// FoodRune returns the food glyph as a rune.
func (g Glyphs) FoodRune() rune {
	return firstRune(g.Food, '*')
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
