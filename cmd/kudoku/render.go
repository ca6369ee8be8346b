package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/kudoku/internal/domain"
	"svw.info/kudoku/internal/solver"
)

var (
	renderDiagonal bool
	renderReduce   bool
)

func init() {
	renderCmd := &cobra.Command{
		Use:   "render [grid]",
		Short: "Show the candidate view of a puzzle",
		Long: `Show every cell with its remaining candidate digits. With
--reduce the constraint rules run to a fixed point first, so the
view reflects what pure propagation can already settle.

Examples:
  kudoku render ..3.2.6..9..3.5..1..18.64....81.29..7.......8..67.82....26.95..8..2.3..9..5.1.3..
  kudoku render --reduce 4.....8.5.3..........7......2.....6.....8.4......1.......6.3.7.5..2.....1.4......`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRender,
	}

	renderCmd.Flags().BoolVarP(&renderDiagonal, "diagonal", "d", false, "Treat both main diagonals as units")
	renderCmd.Flags().BoolVar(&renderReduce, "reduce", false, "Propagate constraints before rendering")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	grid, err := readGrid(args)
	if err != nil {
		return err
	}
	st, err := domain.Parse(grid, domain.NewTopology(renderDiagonal))
	if err != nil {
		return err
	}
	if renderReduce {
		if err := solver.Reduce(st); err != nil {
			return err
		}
	}
	fmt.Print(domain.Render(st))
	return nil
}
