package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidLength rejects grids that are not 81 characters.
	ErrInvalidLength = errors.New("grid must be 81 characters")
	// ErrInvalidChar rejects characters outside '1'-'9', '.' and '0'.
	ErrInvalidChar = errors.New("invalid character in grid")
)

// Parse builds a State from an 81-character grid in reading order. A
// digit becomes a singleton candidate set; '.' or '0' leaves the full
// set in place.
func Parse(grid string, topo *Topology) (*State, error) {
	if len(grid) != 81 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidLength, len(grid))
	}
	st := NewState(topo)
	for i := 0; i < 81; i++ {
		switch ch := grid[i]; {
		case ch == '.' || ch == '0':
			// open cell
		case ch >= '1' && ch <= '9':
			st.cells[i] = Singleton(int(ch - '0'))
		default:
			return nil, fmt.Errorf("%w: %q at %s", ErrInvalidChar, ch, CellName(i))
		}
	}
	return st, nil
}

// GridString serializes the state back to 81 characters, with '.' for
// any cell not yet down to a single candidate.
func GridString(st *State) string {
	var b strings.Builder
	b.Grow(81)
	for i := 0; i < 81; i++ {
		if d, ok := st.cells[i].Single(); ok {
			b.WriteByte(byte('0' + d))
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// Render draws the candidate view of the state, each cell showing its
// remaining digits, with separators between boxes.
func Render(st *State) string {
	width := 0
	for i := 0; i < 81; i++ {
		if n := st.cells[i].Size(); n > width {
			width = n
		}
	}
	width++
	bar := strings.Repeat("-", width*3)
	sep := bar + "+" + bar + "+" + bar

	var b strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.WriteString(center(st.cells[r*9+c].String(), width))
			if c == 2 || c == 5 {
				b.WriteByte('|')
			}
		}
		b.WriteByte('\n')
		if r == 2 || r == 5 {
			b.WriteString(sep)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func center(s string, width int) string {
	pad := width - len(s)
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
