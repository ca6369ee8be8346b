package domain

// CellCoord identifies a cell by zero-based row and column.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint describes a strategy suggestion for the UI.
type Hint struct {
	Message  string       `json:"message,omitempty"`
	Cells    []CellCoord  `json:"cells,omitempty"`
	Digits   []int        `json:"digits,omitempty"`
	Strategy StrategyTier `json:"strategy,omitempty"`
}

// Puzzle bundles a generated grid with its solution and the parameters
// it was built from.
type Puzzle struct {
	Grid       string     `json:"grid"`
	Solution   string     `json:"solution,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Diagonal   bool       `json:"diagonal,omitempty"`
}
