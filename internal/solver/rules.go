package solver

import (
	"fmt"

	"svw.info/kudoku/internal/domain"
)

// Rule is one propagation step. Apply narrows candidates in place and
// must be safe to run repeatedly on the same state.
type Rule interface {
	Name() string
	Apply(st *domain.State)
}

// Eliminate removes every decided digit from the candidates of its peers.
type Eliminate struct{}

func (Eliminate) Name() string { return "eliminate" }

func (Eliminate) Apply(st *domain.State) {
	type solved struct {
		cell  int
		digit int
	}
	// Snapshot first: Eliminate itself can decide cells, and those are
	// picked up on the next pass rather than mid-scan.
	var found []solved
	for c := 0; c < 81; c++ {
		if d, ok := st.Candidates(c).Single(); ok {
			found = append(found, solved{c, d})
		}
	}
	topo := st.Topology()
	for _, s := range found {
		for _, p := range topo.Peers(s.cell) {
			st.Eliminate(p, s.digit)
		}
	}
}

// OnlyChoice assigns a digit when it has exactly one possible home in a group.
type OnlyChoice struct{}

func (OnlyChoice) Name() string { return "only-choice" }

func (OnlyChoice) Apply(st *domain.State) {
	topo := st.Topology()
	for gi := 0; gi < topo.NumGroups(); gi++ {
		group := topo.Group(gi)
		for d := 1; d <= 9; d++ {
			carrier := -1
			count := 0
			for _, c := range group {
				if st.Candidates(c).Has(d) {
					carrier = c
					count++
					if count > 1 {
						break
					}
				}
			}
			if count == 1 && st.Candidates(carrier).Size() > 1 {
				st.Assign(carrier, d)
			}
		}
	}
}

// NakedTuple finds N cells in a group that share the same N candidates and
// removes those digits from the rest of the group. N=2 is the classic
// naked-pair rule.
type NakedTuple struct {
	N int
}

func (r NakedTuple) Name() string { return fmt.Sprintf("naked-tuple(%d)", r.N) }

func (r NakedTuple) Apply(st *domain.State) {
	topo := st.Topology()
	for gi := 0; gi < topo.NumGroups(); gi++ {
		group := topo.Group(gi)
		tuples := make(map[domain.DigitSet][]int)
		for _, c := range group {
			if set := st.Candidates(c); set.Size() == r.N {
				tuples[set] = append(tuples[set], c)
			}
		}
		for set, cells := range tuples {
			if len(cells) != r.N {
				continue
			}
			for _, c := range group {
				if contains(cells, c) {
					continue
				}
				for _, d := range set.Digits() {
					st.Eliminate(c, d)
				}
			}
		}
	}
}

func contains(cells []int, c int) bool {
	for _, x := range cells {
		if x == c {
			return true
		}
	}
	return false
}

var productionRules = []Rule{
	Eliminate{},
	OnlyChoice{},
	NakedTuple{N: 2},
}

// Rules returns the propagation pipeline applied by Reduce, in order.
func Rules() []Rule {
	return productionRules
}
