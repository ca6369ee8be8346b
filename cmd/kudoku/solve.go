package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/kudoku/internal/domain"
	"svw.info/kudoku/internal/solver"
)

var (
	solveDiagonal bool
	solveParallel bool
	solveRandom   bool
	solveSeed     int64
	solveTrace    bool
	solveTimeout  time.Duration
	solveProfile  bool
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [grid|file]",
		Short: "Solve a puzzle given as an 81-character grid",
		Long: `Solve a puzzle. The grid is 81 characters, rows top to bottom,
'.' or '0' for blanks. The argument is either the grid itself or a
file holding one; with no argument the grid is read from stdin.

Examples:
  kudoku solve 53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79
  kudoku solve puzzle.txt
  cat puzzle.txt | kudoku solve --trace
  kudoku solve -d 2.............62....1....7...6..8...3...9...7...6..4...4....8....52.............3`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().BoolVarP(&solveDiagonal, "diagonal", "d", false, "Treat both main diagonals as units")
	solveCmd.Flags().BoolVar(&solveParallel, "parallel", false, "Race the root branches on goroutines")
	solveCmd.Flags().BoolVar(&solveRandom, "random", false, "Random tie-break among equally constrained cells")
	solveCmd.Flags().Int64Var(&solveSeed, "seed", 0, "Seed for the random tie-break, 0 = clock")
	solveCmd.Flags().BoolVar(&solveTrace, "trace", false, "Print every assignment the solver makes")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 30*time.Second, "Abort the search after this long")
	solveCmd.Flags().BoolVar(&solveProfile, "profile", false, "Write a CPU profile for this run")

	rootCmd.AddCommand(solveCmd)
}

// readGrid takes the grid from the argument, from the file the
// argument names, or from stdin.
func readGrid(args []string) (string, error) {
	if len(args) == 1 {
		if data, err := os.ReadFile(args[0]); err == nil {
			return strings.TrimSpace(string(data)), nil
		}
		return strings.TrimSpace(args[0]), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	if solveProfile {
		defer profile.Start().Stop()
	}
	grid, err := readGrid(args)
	if err != nil {
		return err
	}
	st, err := domain.Parse(grid, domain.NewTopology(solveDiagonal))
	if err != nil {
		return err
	}

	var sink *domain.MemorySink
	if solveTrace {
		sink = &domain.MemorySink{}
		st.SetSink(sink)
	}

	opt := solver.Options{Parallel: solveParallel, Seed: solveSeed}
	if solveRandom {
		opt.TieBreak = solver.TieRandom
	}

	ctx, cancel := context.WithTimeout(context.Background(), solveTimeout)
	defer cancel()

	out, stats, err := solver.New(opt).Solve(ctx, st)
	if errors.Is(err, solver.ErrUnsolvable) {
		fmt.Println("no solution")
		return nil
	}
	if err != nil {
		return err
	}

	if solveTrace {
		for i, a := range sink.Log() {
			fmt.Printf("%3d: %s=%d\n", i+1, domain.CellName(a.Cell), a.Digit())
		}
	}
	fmt.Print(domain.Render(out))
	log.WithFields(logrus.Fields{"nodes": stats.Nodes, "dur": stats.Duration}).Debug("solved")
	return nil
}
