package domain

import "sync"

// Assignment is one visualization event: the cell that was narrowed to
// a single digit, with a snapshot of every candidate set at that
// moment.
type Assignment struct {
	Cell  int
	Board [81]DigitSet
}

// Digit returns the value the cell was narrowed to.
func (a Assignment) Digit() int {
	d, _ := a.Board[a.Cell].Single()
	return d
}

// AssignmentSink observes forced and guessed single-candidate
// assignments as propagation and search progress.
type AssignmentSink interface {
	Assigned(cell int, board [81]DigitSet)
}

// MemorySink records assignments in arrival order. Safe for concurrent
// use, so parallel search branches can share one sink.
type MemorySink struct {
	mu  sync.Mutex
	log []Assignment
}

func (m *MemorySink) Assigned(cell int, board [81]DigitSet) {
	m.mu.Lock()
	m.log = append(m.log, Assignment{Cell: cell, Board: board})
	m.mu.Unlock()
}

// Log returns a copy of the recorded assignments.
func (m *MemorySink) Log() []Assignment {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Assignment, len(m.log))
	copy(out, m.log)
	return out
}

// Len returns the number of recorded assignments.
func (m *MemorySink) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.log)
}
