package solver

import (
	"errors"

	"svw.info/kudoku/internal/domain"
)

// ErrUnsolvable reports that a state admits no solution.
var ErrUnsolvable = errors.New("puzzle is unsolvable")

// Reduce runs the propagation rules in order until a full pass makes no
// progress. Progress is measured by the number of solved cells, so pure
// candidate narrowing still counts the pass as a stall and control
// returns to the caller. A cell with no candidates left ends the run
// with ErrUnsolvable even when the pass solved other cells.
func Reduce(st *domain.State) error {
	rules := Rules()
	for {
		before := st.SolvedCount()
		for _, r := range rules {
			r.Apply(st)
			if _, dead := st.EmptyCell(); dead {
				return ErrUnsolvable
			}
		}
		if st.SolvedCount() == before {
			return nil
		}
	}
}
