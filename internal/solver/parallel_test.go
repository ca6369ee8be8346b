package solver

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"svw.info/kudoku/internal/domain"
	"svw.info/kudoku/internal/validator"
)

func TestParallelMatchesSequential(t *testing.T) {
	// Both grids have a single solution, so the race winner is
	// irrelevant: parallel and sequential must agree exactly.
	for _, grid := range []string{classicGrid, easyGrid} {
		in, err := domain.Parse(grid, domain.NewTopology(false))
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		seq, _, err := NewDefault().Solve(context.Background(), in)
		if err != nil {
			t.Fatalf("sequential Solve failed: %v", err)
		}
		par, st, err := New(Options{Parallel: true}).Solve(context.Background(), in)
		if err != nil {
			t.Fatalf("parallel Solve failed: %v (nodes=%d)", err, st.Nodes)
		}
		if domain.GridString(par) != domain.GridString(seq) {
			t.Errorf("parallel and sequential disagree on %s...", grid[:9])
		}
	}
}

func TestParallelSolvesHardGrid(t *testing.T) {
	in, err := domain.Parse(hardGrid, domain.NewTopology(false))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	out, st, err := New(Options{Parallel: true}).Solve(ctx, in)
	if err != nil {
		t.Fatalf("Solve failed: %v (nodes=%d dur=%v)", err, st.Nodes, st.Duration)
	}
	if !out.Complete() {
		t.Fatalf("solution incomplete")
	}
	ok, conf, err := validator.New().Validate(ctx, out)
	if err != nil || !ok {
		t.Fatalf("invalid solution: err=%v conflicts=%v", err, conf)
	}
	t.Logf("Solved in %v, nodes=%d", st.Duration, st.Nodes)
}

func TestParallelUnsolvable(t *testing.T) {
	in, err := domain.Parse("55"+strings.Repeat(".", 79), domain.NewTopology(false))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	_, _, err = New(Options{Parallel: true}).Solve(context.Background(), in)
	if !errors.Is(err, ErrUnsolvable) {
		t.Fatalf("err = %v, want ErrUnsolvable", err)
	}
}

func TestParallelCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := New(Options{Parallel: true}).Solve(ctx, domain.NewState(domain.NewTopology(false)))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
