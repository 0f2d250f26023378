package core

// RuntimeConfig contains configuration passed to the engine at creation.
// The engine uses it to size the play field and for deterministic
// simulation.
type RuntimeConfig struct {
	FieldW int   // Play field width in cells
	FieldH int   // Play field height in cells
	Seed   int64 // RNG seed; 0 means use current time in the platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		FieldW: 78,
		FieldH: 20,
		Seed:   0,
	}
}
