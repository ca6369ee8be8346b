package solver

// TieBreak selects how the engine chooses among equally constrained cells.
type TieBreak int

const (
	// TieLowestIndex picks the first candidate cell in board order.
	// Runs are fully reproducible without a seed.
	TieLowestIndex TieBreak = iota
	// TieRandom picks uniformly among the tied cells using the seed.
	TieRandom
)

// Options configures an Engine.
type Options struct {
	TieBreak TieBreak
	// Seed drives TieRandom. Zero means derive from the clock.
	Seed int64
	// Parallel races the branches of the root cell on separate goroutines.
	Parallel bool
}

// DefaultOptions returns the deterministic sequential configuration.
func DefaultOptions() Options {
	return Options{TieBreak: TieLowestIndex}
}
