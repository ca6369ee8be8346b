package validator

import (
	"context"
	"strings"
	"testing"

	"svw.info/kudoku/internal/domain"
)

const cleanGrid = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"

func TestValidateCleanGrid(t *testing.T) {
	st, err := domain.Parse(cleanGrid, domain.NewTopology(false))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ok, conf, err := New().Validate(context.Background(), st)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !ok || len(conf) != 0 {
		t.Errorf("clean grid flagged: %v", conf)
	}
}

func TestValidateRowConflict(t *testing.T) {
	grid := "5...5" + strings.Repeat(".", 76)
	st, err := domain.Parse(grid, domain.NewTopology(false))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ok, conf, err := New().Validate(context.Background(), st)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if ok {
		t.Fatalf("duplicate in row A not flagged")
	}
	want := domain.CellCoord{Row: 0, Col: 4}
	if len(conf) == 0 || conf[0] != want {
		t.Errorf("conflicts = %v, want first %v", conf, want)
	}
}

func TestValidateDiagonalConflict(t *testing.T) {
	// A1 and E5 share only the main diagonal.
	grid := "5" + strings.Repeat(".", 39) + "5" + strings.Repeat(".", 40)

	plain, err := domain.Parse(grid, domain.NewTopology(false))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if ok, conf, _ := New().Validate(context.Background(), plain); !ok {
		t.Errorf("plain topology flagged diagonal cells: %v", conf)
	}

	diag, err := domain.Parse(grid, domain.NewTopology(true))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ok, conf, _ := New().Validate(context.Background(), diag)
	if ok {
		t.Fatalf("diagonal duplicate not flagged")
	}
	want := domain.CellCoord{Row: 4, Col: 4}
	if len(conf) != 1 || conf[0] != want {
		t.Errorf("conflicts = %v, want [%v]", conf, want)
	}
}
