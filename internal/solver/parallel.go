package solver

import (
	"context"
	"errors"
	"math/rand"
	"sync/atomic"
	"time"

	"svw.info/kudoku/internal/domain"
)

// solveParallel races the candidate digits of the root branching cell
// on separate goroutines. Branches share no state except the sink,
// which synchronizes itself, so the first solved branch wins and the
// rest are canceled. Node counts from branches still running at return
// time are not included in the total.
func (e *Engine) solveParallel(ctx context.Context, st *domain.State) (*domain.State, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	root := st.Clone()
	if err := Reduce(root); err != nil {
		return nil, 1, err
	}
	if root.Complete() {
		return root, 1, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	seed := e.opt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cell := pickCell(root, nil)
	digits := root.Candidates(cell).Digits()

	type result struct {
		st  *domain.State
		err error
	}
	results := make(chan result, len(digits))
	var nodes atomic.Int64
	nodes.Add(1)

	for i, d := range digits {
		child := root.Clone()
		child.Assign(cell, d)
		var rng *rand.Rand
		if e.opt.TieBreak == TieRandom {
			rng = rand.New(rand.NewSource(seed + int64(i)))
		}
		go func(child *domain.State, rng *rand.Rand) {
			n := 0
			out, err := e.search(ctx, child, rng, &n)
			nodes.Add(int64(n))
			results <- result{st: out, err: err}
		}(child, rng)
	}

	// Every branch sends exactly once into the buffered channel, so an
	// early return leaks nothing.
	var firstErr error
	for range digits {
		res := <-results
		switch {
		case res.err == nil:
			return res.st, int(nodes.Load()), nil
		case errors.Is(res.err, ErrUnsolvable):
		default:
			if firstErr == nil {
				firstErr = res.err
				cancel()
			}
		}
	}
	if firstErr != nil {
		return nil, int(nodes.Load()), firstErr
	}
	return nil, int(nodes.Load()), ErrUnsolvable
}
