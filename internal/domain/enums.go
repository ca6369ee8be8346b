package domain

import "strings"

// Difficulty labels target puzzle generation & grading.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "expert"
	}
}

// ParseDifficulty maps a label to a Difficulty, defaulting to Medium.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy
	case "hard":
		return Hard
	case "expert":
		return Expert
	default:
		return Medium
	}
}

// StrategyTier limits hinting/logic complexity used.
type StrategyTier int

const (
	StrategySingles StrategyTier = iota // naked and hidden singles
	StrategyPairs                       // naked pairs
	StrategyTuples                      // naked triples and beyond
)

// ParseTier maps a label to a StrategyTier, defaulting to singles.
func ParseTier(s string) StrategyTier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pairs":
		return StrategyPairs
	case "tuples", "triples":
		return StrategyTuples
	default:
		return StrategySingles
	}
}
