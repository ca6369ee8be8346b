package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"svw.info/kudoku/internal/domain"
	"svw.info/kudoku/internal/ports"
	"svw.info/kudoku/internal/solver"
)

// ErrBadFraction reports a hidden fraction outside [0,1].
var ErrBadFraction = errors.New("hidden fraction must be between 0 and 1")

func targetGivens(d domain.Difficulty) int {
	switch d {
	case domain.Easy:
		return 40
	case domain.Medium:
		return 34
	case domain.Hard:
		return 28
	default:
		return 24 // Expert
	}
}

// HiddenFraction maps a difficulty to the fraction of cells to hide.
func HiddenFraction(d domain.Difficulty) float64 {
	return float64(81-targetGivens(d)) / 81
}

// Full produces one complete solved grid. Different seeds explore the
// blank board along different branches, so the grids vary; the same
// seed always reproduces the same grid.
func (g *Generator) Full(ctx context.Context, diagonal bool, seed int64) (string, ports.Stats, error) {
	eng := solver.New(solver.Options{TieBreak: solver.TieRandom, Seed: seed})
	out, st, err := eng.Solve(ctx, domain.NewState(domain.NewTopology(diagonal)))
	if err != nil {
		return "", st, err
	}
	return domain.GridString(out), st, nil
}

// Hide blanks cells of grid until floor(len*fraction) cells are blank,
// choosing victims uniformly among the still-filled cells.
func Hide(grid string, fraction float64, rng *rand.Rand) (string, error) {
	if fraction < 0 || fraction > 1 {
		return "", fmt.Errorf("%w, got %g", ErrBadFraction, fraction)
	}
	return hideN(grid, int(float64(len(grid))*fraction), rng)
}

// hideN blanks filled cells until target cells are blank. Blanks
// already present count toward the target, so a grid that is blank
// enough comes back unchanged.
func hideN(grid string, target int, rng *rand.Rand) (string, error) {
	if len(grid) != 81 {
		return "", fmt.Errorf("%w, got %d", domain.ErrInvalidLength, len(grid))
	}
	cells := []byte(grid)
	blanks := 0
	var filled []int
	for i, ch := range cells {
		if ch == '.' || ch == '0' {
			blanks++
		} else {
			filled = append(filled, i)
		}
	}
	rng.Shuffle(len(filled), func(i, j int) { filled[i], filled[j] = filled[j], filled[i] })
	for _, pos := range filled {
		if blanks >= target {
			break
		}
		cells[pos] = '.'
		blanks++
	}
	return string(cells), nil
}

// Puzzle generates a puzzle by hiding fraction of a fresh full grid.
// With requireUnique set, hidden cells are restored one at a time
// until the puzzle admits exactly one solution again.
func (g *Generator) Puzzle(ctx context.Context, diagonal bool, fraction float64, seed int64, requireUnique bool) (*domain.Puzzle, ports.Stats, error) {
	if fraction < 0 || fraction > 1 {
		return nil, ports.Stats{}, fmt.Errorf("%w, got %g", ErrBadFraction, fraction)
	}
	return g.puzzle(ctx, diagonal, int(float64(81)*fraction), seed, requireUnique)
}

func (g *Generator) puzzle(ctx context.Context, diagonal bool, blanks int, seed int64, requireUnique bool) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	full, st, err := g.Full(ctx, diagonal, rng.Int63())
	if err != nil {
		return nil, ports.Stats{Nodes: st.Nodes, Duration: time.Since(start)}, err
	}
	nodes := st.Nodes

	grid, err := hideN(full, blanks, rng)
	if err != nil {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
	}

	if requireUnique {
		var n int
		grid, n, err = g.restoreUnique(ctx, grid, full, diagonal, rng)
		nodes += n
		if err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
	}

	p := &domain.Puzzle{
		Grid:     grid,
		Solution: full,
		Seed:     seed,
		Diagonal: diagonal,
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// restoreUnique puts hidden cells back, picked at random, until the
// solver reports a unique solution. The full grid itself is unique, so
// the loop always terminates.
func (g *Generator) restoreUnique(ctx context.Context, grid, full string, diagonal bool, rng *rand.Rand) (string, int, error) {
	topo := domain.NewTopology(diagonal)
	cells := []byte(grid)
	var hidden []int
	for i, ch := range cells {
		if ch == '.' || ch == '0' {
			hidden = append(hidden, i)
		}
	}
	nodes := 0
	for {
		st, err := domain.Parse(string(cells), topo)
		if err != nil {
			return "", nodes, err
		}
		unique, s, err := g.Solver.Unique(ctx, st)
		nodes += s.Nodes
		if err != nil {
			return "", nodes, err
		}
		if unique {
			return string(cells), nodes, nil
		}
		j := rng.Intn(len(hidden))
		pos := hidden[j]
		cells[pos] = full[pos]
		hidden[j] = hidden[len(hidden)-1]
		hidden = hidden[:len(hidden)-1]
	}
}

// Generate implements ports.Generator: a unique-solution puzzle with
// the number of givens the difficulty prescribes, or more when
// uniqueness demands restoring cells.
func (g *Generator) Generate(ctx context.Context, seed int64, diff domain.Difficulty, diagonal bool) (*domain.Puzzle, ports.Stats, error) {
	p, st, err := g.puzzle(ctx, diagonal, 81-targetGivens(diff), seed, true)
	if err != nil {
		return nil, st, err
	}
	p.Difficulty = diff
	return p, st, nil
}
