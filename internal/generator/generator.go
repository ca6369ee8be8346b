// Package generator builds puzzles by solving a blank board with
// randomized tie-breaking and then hiding cells from the solution.
package generator

import "svw.info/kudoku/internal/ports"

// Generator creates puzzles. The injected solver performs the
// uniqueness checks when a puzzle must have exactly one solution.
type Generator struct {
	Solver ports.Solver
}

// New wires a generator around the given solver.
func New(s ports.Solver) *Generator {
	return &Generator{Solver: s}
}
