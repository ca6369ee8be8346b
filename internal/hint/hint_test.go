package hint

import (
	"context"
	"strings"
	"testing"

	"svw.info/kudoku/internal/domain"
)

func TestNakedSingleHint(t *testing.T) {
	st := domain.NewState(domain.NewTopology(false))
	// A1..A8 hold 1..8, so only 9 fits at A9.
	for c := 0; c < 8; c++ {
		st.Assign(c, c+1)
	}

	hint, ok, err := New().Hint(context.Background(), st, domain.StrategySingles)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if !ok {
		t.Fatalf("no hint found")
	}
	if hint.Strategy != domain.StrategySingles {
		t.Errorf("strategy = %v, want singles", hint.Strategy)
	}
	want := domain.CellCoord{Row: 0, Col: 8}
	if len(hint.Cells) != 1 || hint.Cells[0] != want {
		t.Errorf("cells = %v, want [%v]", hint.Cells, want)
	}
	if len(hint.Digits) != 1 || hint.Digits[0] != 9 {
		t.Errorf("digits = %v, want [9]", hint.Digits)
	}
	if !strings.Contains(hint.Message, "A9") {
		t.Errorf("message should name A9: %q", hint.Message)
	}
}

func TestHiddenSingleHint(t *testing.T) {
	st := domain.NewState(domain.NewTopology(false))
	// Candidate 7 is gone everywhere in row A except A1, but A1 still
	// holds nine candidates, so no naked single exists.
	for c := 1; c < 9; c++ {
		st.SetCandidates(c, domain.FullSet.Remove(7))
	}

	hint, ok, err := New().Hint(context.Background(), st, domain.StrategySingles)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if !ok {
		t.Fatalf("no hint found")
	}
	if len(hint.Digits) != 1 || hint.Digits[0] != 7 {
		t.Errorf("digits = %v, want [7]", hint.Digits)
	}
	want := domain.CellCoord{Row: 0, Col: 0}
	if len(hint.Cells) != 1 || hint.Cells[0] != want {
		t.Errorf("cells = %v, want [%v]", hint.Cells, want)
	}
	if !strings.Contains(hint.Message, "row") {
		t.Errorf("message should name the row: %q", hint.Message)
	}
}

func TestNakedPairHintNeedsPairTier(t *testing.T) {
	st := domain.NewState(domain.NewTopology(false))
	st.SetCandidates(0, domain.SetOf(1, 2))
	st.SetCandidates(1, domain.SetOf(1, 2))

	if _, ok, _ := New().Hint(context.Background(), st, domain.StrategySingles); ok {
		t.Fatalf("singles tier should not see the pair")
	}

	hint, ok, err := New().Hint(context.Background(), st, domain.StrategyPairs)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if !ok {
		t.Fatalf("pair not found at pairs tier")
	}
	if hint.Strategy != domain.StrategyPairs {
		t.Errorf("strategy = %v, want pairs", hint.Strategy)
	}
	if len(hint.Cells) != 2 {
		t.Errorf("cells = %v, want the two pair cells", hint.Cells)
	}
	if len(hint.Digits) != 2 || hint.Digits[0] != 1 || hint.Digits[1] != 2 {
		t.Errorf("digits = %v, want [1 2]", hint.Digits)
	}
}

func TestNakedTripleHint(t *testing.T) {
	st := domain.NewState(domain.NewTopology(false))
	for _, c := range []int{0, 1, 2} {
		st.SetCandidates(c, domain.SetOf(4, 5, 6))
	}

	if _, ok, _ := New().Hint(context.Background(), st, domain.StrategyPairs); ok {
		t.Fatalf("pairs tier should not see the triple")
	}

	hint, ok, err := New().Hint(context.Background(), st, domain.StrategyTuples)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if !ok {
		t.Fatalf("triple not found at tuples tier")
	}
	if hint.Strategy != domain.StrategyTuples {
		t.Errorf("strategy = %v, want tuples", hint.Strategy)
	}
	if len(hint.Cells) != 3 {
		t.Errorf("cells = %v, want the three triple cells", hint.Cells)
	}
}

func TestHintNoneOnSolvedGrid(t *testing.T) {
	const solved = "483921657967345821251876493548132976729564138136798245372689514814253769695417382"
	st, err := domain.Parse(solved, domain.NewTopology(false))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, ok, _ := New().Hint(context.Background(), st, domain.StrategyTuples); ok {
		t.Errorf("solved grid produced a hint")
	}
}
