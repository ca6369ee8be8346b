// Package hint suggests the next logical step for a human solver,
// in rising order of sophistication: naked singles, hidden singles,
// naked pairs, naked triples.
package hint

import (
	"context"
	"fmt"

	"svw.info/kudoku/internal/domain"
	"svw.info/kudoku/internal/solver"
)

// Adviser implements ports.Hinter on top of the solver's rules.
type Adviser struct{}

func New() *Adviser { return &Adviser{} }

// Hint returns the first applicable suggestion at or below the max
// tier. Scanning is in reading order, so the hint for a given state is
// stable across calls.
func (h *Adviser) Hint(ctx context.Context, st *domain.State, max domain.StrategyTier) (domain.Hint, bool, error) {
	// Work on effective candidates: one elimination round removes
	// every decided digit from its peers without firing the sink.
	work := st.Clone()
	work.SetSink(nil)
	solver.Eliminate{}.Apply(work)

	if hint, ok := nakedSingle(st, work); ok {
		return hint, true, nil
	}
	if hint, ok := hiddenSingle(st, work); ok {
		return hint, true, nil
	}
	if max >= domain.StrategyPairs {
		if hint, ok := nakedTuple(work, 2); ok {
			return hint, true, nil
		}
	}
	if max >= domain.StrategyTuples {
		if hint, ok := nakedTuple(work, 3); ok {
			return hint, true, nil
		}
	}
	return domain.Hint{}, false, nil
}

// nakedSingle finds an open cell whose effective candidates collapse
// to one digit.
func nakedSingle(orig, work *domain.State) (domain.Hint, bool) {
	for c := 0; c < 81; c++ {
		if orig.Candidates(c).Size() == 1 {
			continue
		}
		if d, ok := work.Candidates(c).Single(); ok {
			return domain.Hint{
				Message:  fmt.Sprintf("Only %d fits at %s", d, domain.CellName(c)),
				Cells:    []domain.CellCoord{domain.CoordOf(c)},
				Digits:   []int{d},
				Strategy: domain.StrategySingles,
			}, true
		}
	}
	return domain.Hint{}, false
}

// hiddenSingle finds a digit with exactly one remaining home in a group.
func hiddenSingle(orig, work *domain.State) (domain.Hint, bool) {
	topo := work.Topology()
	for gi := 0; gi < topo.NumGroups(); gi++ {
		group := topo.Group(gi)
		for d := 1; d <= 9; d++ {
			carrier := -1
			count := 0
			for _, c := range group {
				if work.Candidates(c).Has(d) {
					carrier = c
					count++
					if count > 1 {
						break
					}
				}
			}
			if count != 1 || orig.Candidates(carrier).Size() == 1 {
				continue
			}
			return domain.Hint{
				Message:  fmt.Sprintf("%s is the only place for %d in its %s", domain.CellName(carrier), d, topo.GroupKind(gi)),
				Cells:    []domain.CellCoord{domain.CoordOf(carrier)},
				Digits:   []int{d},
				Strategy: domain.StrategySingles,
			}, true
		}
	}
	return domain.Hint{}, false
}

// nakedTuple finds n cells of a group sharing an identical n-digit
// candidate set that still excludes something from a sibling cell.
func nakedTuple(work *domain.State, n int) (domain.Hint, bool) {
	topo := work.Topology()
	tier := domain.StrategyPairs
	name := "pair"
	if n > 2 {
		tier = domain.StrategyTuples
		name = "triple"
	}
	for gi := 0; gi < topo.NumGroups(); gi++ {
		group := topo.Group(gi)
		for _, c := range group {
			set := work.Candidates(c)
			if set.Size() != n {
				continue
			}
			var members []int
			for _, m := range group {
				if work.Candidates(m) == set {
					members = append(members, m)
				}
			}
			if len(members) != n || members[0] != c {
				continue
			}
			if !excludesSomething(work, group, members, set) {
				continue
			}
			cells := make([]domain.CellCoord, n)
			for i, m := range members {
				cells[i] = domain.CoordOf(m)
			}
			return domain.Hint{
				Message:  fmt.Sprintf("Naked %s %s: no other cell in that %s may hold these digits", name, set, topo.GroupKind(gi)),
				Cells:    cells,
				Digits:   set.Digits(),
				Strategy: tier,
			}, true
		}
	}
	return domain.Hint{}, false
}

// excludesSomething reports whether the tuple actually narrows any
// open sibling cell. A tuple that removes nothing is no hint.
func excludesSomething(work *domain.State, group, members []int, set domain.DigitSet) bool {
	for _, c := range group {
		if contains(members, c) {
			continue
		}
		cand := work.Candidates(c)
		if cand.Size() > 1 && cand&set != 0 {
			return true
		}
	}
	return false
}

func contains(cells []int, c int) bool {
	for _, x := range cells {
		if x == c {
			return true
		}
	}
	return false
}
