package validator

import (
	"context"

	"svw.info/kudoku/internal/domain"
)

// Checker scans every group of the state's topology for repeated
// decided digits. Open cells never conflict; a diagonal topology gets
// its diagonals checked like any other group.
type Checker struct{}

func New() *Checker { return &Checker{} }

func (v *Checker) Validate(ctx context.Context, st *domain.State) (bool, []domain.CellCoord, error) {
	topo := st.Topology()
	conf := make([]domain.CellCoord, 0, 8)
	for gi := 0; gi < topo.NumGroups(); gi++ {
		var seen domain.DigitSet
		for _, c := range topo.Group(gi) {
			d, ok := st.Candidates(c).Single()
			if !ok {
				continue
			}
			if seen.Has(d) {
				conf = append(conf, domain.CoordOf(c))
			}
			seen = seen.Add(d)
		}
	}
	return len(conf) == 0, conf, nil
}
