package solver

import (
	"context"
	"time"

	"svw.info/kudoku/internal/domain"
	"svw.info/kudoku/internal/ports"
)

// Unique reports whether st has exactly one solution. The search stops
// as soon as a second solution is found, so ambiguous states cost
// little more than solving them once. An unsolvable state is simply
// not unique, not an error.
func (e *Engine) Unique(ctx context.Context, st *domain.State) (bool, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	n, err := countSolutions(ctx, st.Clone(), 2, &nodes)
	stats := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err != nil {
		return false, stats, err
	}
	return n == 1, stats, nil
}

// countSolutions counts solutions of st up to limit. Branching is
// always deterministic here; tie-break options affect which solution
// Solve finds, never how many exist.
func countSolutions(ctx context.Context, st *domain.State, limit int, nodes *int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	*nodes++
	if err := Reduce(st); err != nil {
		return 0, nil
	}
	if st.Complete() {
		return 1, nil
	}
	cell := pickCell(st, nil)
	total := 0
	for _, d := range st.Candidates(cell).Digits() {
		child := st.Clone()
		child.Assign(cell, d)
		n, err := countSolutions(ctx, child, limit-total, nodes)
		if err != nil {
			return 0, err
		}
		total += n
		if total >= limit {
			break
		}
	}
	return total, nil
}
