package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/kudoku/internal/domain"
	"svw.info/kudoku/internal/generator"
	"svw.info/kudoku/internal/solver"
)

var (
	genNumber     int
	genDifficulty string
	genFraction   float64
	genDiagonal   bool
	genSeed       int64
	genUnique     bool
	genSolution   bool
	genTimeout    time.Duration
	genProfile    bool
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Sudoku puzzles",
		Long: `Generate one or more puzzles, one grid per line.

Examples:
  kudoku gen --difficulty hard
  kudoku gen -n 5 --difficulty easy --solution
  kudoku gen --fraction 0.6 --seed 42
  kudoku gen -d --difficulty expert`,
		RunE: runGen,
	}

	genCmd.Flags().IntVarP(&genNumber, "number", "n", 1, "Number of puzzles to generate")
	genCmd.Flags().StringVar(&genDifficulty, "difficulty", "medium", "easy|medium|hard|expert")
	genCmd.Flags().Float64Var(&genFraction, "fraction", 0, "Fraction of cells to hide, overrides difficulty")
	genCmd.Flags().BoolVarP(&genDiagonal, "diagonal", "d", false, "Generate with diagonal units")
	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "Generation seed, 0 = clock")
	genCmd.Flags().BoolVar(&genUnique, "unique", true, "Keep restoring cells until the solution is unique")
	genCmd.Flags().BoolVar(&genSolution, "solution", false, "Print the solution after each puzzle")
	genCmd.Flags().DurationVar(&genTimeout, "timeout", 10*time.Second, "Generation timeout per puzzle")
	genCmd.Flags().BoolVar(&genProfile, "profile", false, "Write a CPU profile for this run")

	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	if genProfile {
		defer profile.Start().Stop()
	}
	diff := domain.ParseDifficulty(genDifficulty)
	fraction := generator.HiddenFraction(diff)
	if cmd.Flags().Changed("fraction") {
		fraction = genFraction
	}
	seed := genSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := generator.New(solver.NewDefault())
	for i := 0; i < genNumber; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), genTimeout)
		p, stats, err := g.Puzzle(ctx, genDiagonal, fraction, seed+int64(i), genUnique)
		cancel()
		if err != nil {
			return fmt.Errorf("generate puzzle %d: %w", i+1, err)
		}
		fmt.Println(p.Grid)
		if genSolution {
			fmt.Println(p.Solution)
		}
		log.WithFields(logrus.Fields{
			"seed":  p.Seed,
			"nodes": stats.Nodes,
			"dur":   stats.Duration,
		}).Debug("generated")
	}
	return nil
}
