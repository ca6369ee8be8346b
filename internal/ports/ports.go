package ports

import (
	"context"
	"time"

	"svw.info/kudoku/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver solves a constraint state and can test uniqueness.
// Implementations never mutate the input state.
type Solver interface {
	Solve(ctx context.Context, st *domain.State) (*domain.State, Stats, error)
	Unique(ctx context.Context, st *domain.State) (bool, Stats, error)
}

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty, diagonal bool) (*domain.Puzzle, Stats, error)
}

// Validator performs fast constraint checks over decided cells.
type Validator interface {
	Validate(ctx context.Context, st *domain.State) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next logical step up to a max strategy tier.
type Hinter interface {
	Hint(ctx context.Context, st *domain.State, max domain.StrategyTier) (domain.Hint, bool, error)
}
