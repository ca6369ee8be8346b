package solver

import (
	"errors"
	"testing"

	"svw.info/kudoku/internal/domain"
)

// Solvable by propagation alone, no branching needed.
const easyGrid = "..3.2.6..9..3.5..1..18.64....81.29..7.......8..67.82....26.95..8..2.3..9..5.1.3.."
const easySolution = "483921657967345821251876493548132976729564138136798245372689514814253769695417382"

// Stalls under propagation; only search cracks it.
const hardGrid = "4.....8.5.3..........7......2.....6.....8.4......1.......6.3.7.5..2.....1.4......"

func TestReduceSolvesEasyPuzzle(t *testing.T) {
	st, err := domain.Parse(easyGrid, domain.NewTopology(false))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if err := Reduce(st); err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	if !st.Complete() {
		t.Fatalf("propagation left %d cells open", 81-st.SolvedCount())
	}
	if got := domain.GridString(st); got != easySolution {
		t.Errorf("wrong solution:\n got %s\nwant %s", got, easySolution)
	}
}

func TestReduceStallsOnHardGrid(t *testing.T) {
	st, err := domain.Parse(hardGrid, domain.NewTopology(false))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if err := Reduce(st); err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	if st.Complete() {
		t.Fatalf("hard grid should stall, not solve")
	}
	// Givens survive the stall.
	for i, ch := range hardGrid {
		if ch == '.' {
			continue
		}
		if d, ok := st.Candidates(i).Single(); !ok || d != int(ch-'0') {
			t.Errorf("given %s = %v, want %c", domain.CellName(i), st.Candidates(i), ch)
		}
	}
}

func TestReduceStallsOnBlankBoard(t *testing.T) {
	st := domain.NewState(domain.NewTopology(false))
	for pass := 0; pass < 2; pass++ {
		if err := Reduce(st); err != nil {
			t.Fatalf("Reduce failed on pass %d: %v", pass, err)
		}
		for c := 0; c < 81; c++ {
			if st.Candidates(c) != domain.FullSet {
				t.Fatalf("pass %d narrowed %s to %v with nothing to go on",
					pass, domain.CellName(c), st.Candidates(c))
			}
		}
	}
}

func TestReduceDetectsContradiction(t *testing.T) {
	st := domain.NewState(domain.NewTopology(false))
	st.Assign(0, 5)
	st.Assign(1, 5)
	if err := Reduce(st); !errors.Is(err, ErrUnsolvable) {
		t.Fatalf("err = %v, want ErrUnsolvable", err)
	}
}

func TestReduceLeavesSolvedStateAlone(t *testing.T) {
	st, err := domain.Parse(easySolution, domain.NewTopology(false))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if err := Reduce(st); err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	if got := domain.GridString(st); got != easySolution {
		t.Errorf("Reduce corrupted a solved grid: %s", got)
	}
}
