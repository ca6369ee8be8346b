package domain

// Cells are indexed 0..80 in reading order, row*9+col. Rows are named
// A-I top to bottom and columns 1-9 left to right.

const (
	rowNames = "ABCDEFGHI"
	colNames = "123456789"
)

// CellName returns the textual coordinate of a cell, "A1" through "I9".
func CellName(cell int) string {
	return string(rowNames[cell/9]) + string(colNames[cell%9])
}

// CoordOf converts a cell index to row/column coordinates.
func CoordOf(cell int) CellCoord { return CellCoord{Row: cell / 9, Col: cell % 9} }

// Topology is the static structure of the board: every group of nine
// cells that must hold each digit exactly once, plus the derived
// per-cell group and peer tables. A Topology never changes after
// construction, so states built on it share the same value.
type Topology struct {
	diagonal bool
	groups   [][]int
	byCell   [81][]int // indices of the groups containing each cell
	peers    [81][]int // cells sharing a group, sorted, self excluded
}

// NewTopology builds the group and peer tables. With diagonal set the
// two main diagonals join the usual rows, columns and boxes, giving 29
// groups instead of 27. Groups are laid out rows first, then columns,
// boxes, and finally the diagonals.
func NewTopology(diagonal bool) *Topology {
	t := &Topology{diagonal: diagonal}

	for r := 0; r < 9; r++ {
		g := make([]int, 9)
		for c := 0; c < 9; c++ {
			g[c] = r*9 + c
		}
		t.addGroup(g)
	}
	for c := 0; c < 9; c++ {
		g := make([]int, 9)
		for r := 0; r < 9; r++ {
			g[r] = r*9 + c
		}
		t.addGroup(g)
	}
	for br := 0; br < 9; br += 3 {
		for bc := 0; bc < 9; bc += 3 {
			g := make([]int, 0, 9)
			for r := br; r < br+3; r++ {
				for c := bc; c < bc+3; c++ {
					g = append(g, r*9+c)
				}
			}
			t.addGroup(g)
		}
	}
	if diagonal {
		main := make([]int, 9)
		anti := make([]int, 9)
		for i := 0; i < 9; i++ {
			main[i] = i*9 + i
			anti[i] = i*9 + (8 - i)
		}
		t.addGroup(main)
		t.addGroup(anti)
	}

	var shared [81][81]bool
	for _, g := range t.groups {
		for _, a := range g {
			for _, b := range g {
				if a != b {
					shared[a][b] = true
				}
			}
		}
	}
	for c := 0; c < 81; c++ {
		for p := 0; p < 81; p++ {
			if shared[c][p] {
				t.peers[c] = append(t.peers[c], p)
			}
		}
	}
	return t
}

func (t *Topology) addGroup(cells []int) {
	idx := len(t.groups)
	t.groups = append(t.groups, cells)
	for _, c := range cells {
		t.byCell[c] = append(t.byCell[c], idx)
	}
}

// Diagonal reports whether the diagonal groups are active.
func (t *Topology) Diagonal() bool { return t.diagonal }

// NumGroups returns the number of groups, 27 or 29 with diagonals.
func (t *Topology) NumGroups() int { return len(t.groups) }

// Group returns the cells of group i. The slice must not be modified.
func (t *Topology) Group(i int) []int { return t.groups[i] }

// GroupKind names the kind of group i: row, column, box or diagonal.
func (t *Topology) GroupKind(i int) string {
	switch {
	case i < 9:
		return "row"
	case i < 18:
		return "column"
	case i < 27:
		return "box"
	default:
		return "diagonal"
	}
}

// GroupsOf returns the indices of the groups containing cell. The
// slice must not be modified.
func (t *Topology) GroupsOf(cell int) []int { return t.byCell[cell] }

// Peers returns the cells sharing at least one group with cell, in
// increasing order and excluding cell itself. The slice must not be
// modified.
func (t *Topology) Peers(cell int) []int { return t.peers[cell] }
