package usecase

import (
	"context"
	"errors"

	"svw.info/kudoku/internal/domain"
	"svw.info/kudoku/internal/ports"
)

// Service fronts the engine for the transport adapters.
type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Hinter: h}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, st *domain.State) (*domain.State, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, st)
}

func (u *Service) Generate(ctx context.Context, seed int64, d domain.Difficulty, diagonal bool) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, d, diagonal)
}

func (u *Service) Validate(ctx context.Context, st *domain.State) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, st)
}

func (u *Service) Hint(ctx context.Context, st *domain.State, max domain.StrategyTier) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, st, max)
}
