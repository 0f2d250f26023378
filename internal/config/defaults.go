package config

import (
	_ "embed"
)

//go:embed defaults/slither.yaml
var defaultGameYAML []byte

// Default returns the hardcoded default configuration, used as the
// last fallback when even the embedded YAML cannot be parsed.
func Default() Game {
	return Game{
		Glyphs: Glyphs{
			Head: "X",
			Body: "o",
			Food: "*",
		},
		Spawn: Spawn{
			MaxAttempts: 64,
		},
		Field: Field{
			MinWidth:  16,
			MinHeight: 8,
		},
	}
}
