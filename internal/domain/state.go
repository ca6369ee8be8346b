package domain

// State maps every cell to its remaining candidate digits. A cell with
// one candidate is solved; a cell with none makes the whole state
// contradictory; all 81 down to one candidate is a complete board.
// Clones copy the candidate array and share the topology and sink, so
// search branches never see each other's writes.
type State struct {
	cells [81]DigitSet
	topo  *Topology
	sink  AssignmentSink
}

// NewState returns a state with every digit still open in every cell.
func NewState(topo *Topology) *State {
	s := &State{topo: topo}
	for i := range s.cells {
		s.cells[i] = FullSet
	}
	return s
}

// Clone copies the candidate array; topology and sink are shared.
func (s *State) Clone() *State {
	c := *s
	return &c
}

// Topology returns the group structure the state was built on.
func (s *State) Topology() *Topology { return s.topo }

// SetSink installs the observer notified whenever a cell is narrowed
// to a single candidate. A nil sink disables notification.
func (s *State) SetSink(sink AssignmentSink) { s.sink = sink }

// Candidates returns the remaining digits for cell.
func (s *State) Candidates(cell int) DigitSet { return s.cells[cell] }

// SetCandidates overwrites the candidate set of cell without notifying
// the sink. Meant for loading grids and building test positions.
func (s *State) SetCandidates(cell int, set DigitSet) { s.cells[cell] = set }

// Assign collapses cell to the single digit d. The sink fires when the
// cell previously held more than one candidate.
func (s *State) Assign(cell, d int) {
	was := s.cells[cell].Size()
	s.cells[cell] = Singleton(d)
	if was > 1 {
		s.notify(cell)
	}
}

// Eliminate removes d from the candidates of cell. The sink fires when
// the removal leaves exactly one candidate.
func (s *State) Eliminate(cell, d int) {
	old := s.cells[cell]
	next := old.Remove(d)
	if next == old {
		return
	}
	s.cells[cell] = next
	if old.Size() > 1 && next.Size() == 1 {
		s.notify(cell)
	}
}

func (s *State) notify(cell int) {
	if s.sink != nil {
		s.sink.Assigned(cell, s.cells)
	}
}

// SolvedCount returns how many cells hold exactly one candidate.
func (s *State) SolvedCount() int {
	n := 0
	for _, set := range s.cells {
		if set.Size() == 1 {
			n++
		}
	}
	return n
}

// Complete reports whether every cell is down to one candidate.
func (s *State) Complete() bool { return s.SolvedCount() == 81 }

// EmptyCell returns the first cell with no candidates left, if any.
func (s *State) EmptyCell() (int, bool) {
	for i, set := range s.cells {
		if set == 0 {
			return i, true
		}
	}
	return 0, false
}
