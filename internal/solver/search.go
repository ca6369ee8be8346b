package solver

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"svw.info/kudoku/internal/domain"
	"svw.info/kudoku/internal/ports"
)

// Engine is a depth-first constraint solver. It propagates with Reduce
// at every node and branches on a most-constrained cell. The zero-value
// Options give deterministic sequential search.
type Engine struct {
	opt Options
}

// New returns an engine with the given options.
func New(opt Options) *Engine { return &Engine{opt: opt} }

// NewDefault returns a deterministic sequential engine.
func NewDefault() *Engine { return New(DefaultOptions()) }

// Solve returns a solved copy of st, leaving the input untouched.
// ErrUnsolvable means the state admits no solution; a context error
// means the search was cut short.
func (e *Engine) Solve(ctx context.Context, st *domain.State) (*domain.State, ports.Stats, error) {
	start := time.Now()
	if e.opt.Parallel {
		out, nodes, err := e.solveParallel(ctx, st)
		return out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
	}
	nodes := 0
	out, err := e.search(ctx, st.Clone(), e.newRand(), &nodes)
	return out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
}

// newRand returns the tie-break source, or nil for deterministic order.
func (e *Engine) newRand() *rand.Rand {
	if e.opt.TieBreak != TieRandom {
		return nil
	}
	seed := e.opt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func (e *Engine) search(ctx context.Context, st *domain.State, rng *rand.Rand, nodes *int) (*domain.State, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	*nodes++
	if err := Reduce(st); err != nil {
		return nil, err
	}
	if st.Complete() {
		return st, nil
	}
	cell := pickCell(st, rng)
	for _, d := range st.Candidates(cell).Digits() {
		child := st.Clone()
		child.Assign(cell, d)
		out, err := e.search(ctx, child, rng, nodes)
		if err == nil {
			return out, nil
		}
		if !errors.Is(err, ErrUnsolvable) {
			return nil, err
		}
	}
	return nil, ErrUnsolvable
}

// pickCell returns an unsolved cell with the fewest candidates. With a
// nil rng ties go to the lowest index; otherwise one of the tied cells
// is chosen uniformly.
func pickCell(st *domain.State, rng *rand.Rand) int {
	best := 10
	var ties []int
	for c := 0; c < 81; c++ {
		size := st.Candidates(c).Size()
		if size < 2 || size > best {
			continue
		}
		if size < best {
			best = size
			ties = ties[:0]
		}
		ties = append(ties, c)
	}
	if rng == nil {
		return ties[0]
	}
	return ties[rng.Intn(len(ties))]
}
