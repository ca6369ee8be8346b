package usecase

import (
	"context"
	"testing"

	"svw.info/kudoku/internal/domain"
	"svw.info/kudoku/internal/generator"
	"svw.info/kudoku/internal/hint"
	"svw.info/kudoku/internal/solver"
	"svw.info/kudoku/internal/validator"
)

func TestServiceNilGuards(t *testing.T) {
	u := &Service{}
	st := domain.NewState(domain.NewTopology(false))

	if _, _, err := u.Solve(context.Background(), st); err == nil {
		t.Errorf("Solve with nil solver should fail")
	}
	if _, _, err := u.Generate(context.Background(), 1, domain.Easy, false); err == nil {
		t.Errorf("Generate with nil generator should fail")
	}
	if _, _, err := u.Validate(context.Background(), st); err == nil {
		t.Errorf("Validate with nil validator should fail")
	}
	if _, _, err := u.Hint(context.Background(), st, domain.StrategySingles); err == nil {
		t.Errorf("Hint with nil hinter should fail")
	}
}

func TestServicePassthrough(t *testing.T) {
	eng := solver.NewDefault()
	u := NewService(eng, generator.New(eng), validator.New(), hint.New())

	const grid = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	st, err := domain.Parse(grid, domain.NewTopology(false))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	out, stats, err := u.Solve(context.Background(), st)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !out.Complete() {
		t.Errorf("solution incomplete")
	}
	if stats.Nodes == 0 {
		t.Errorf("stats report zero nodes")
	}

	ok, conf, err := u.Validate(context.Background(), out)
	if err != nil || !ok {
		t.Errorf("solution invalid: err=%v conflicts=%v", err, conf)
	}
}
