package timeline

import (
	"sync"
	"time"

	"github.com/aayushbajaj/keyoverlay/internal/keys"
)

// Key is a tracked key and the label drawn on its cap.
type Key struct {
	Code  keys.Code
	Label string
}

// Column is the live state of one tracked key.
type Column struct {
	Key     Key
	Pressed bool
	Events  History
	Presses uint64
}

// ColumnState is a copy of a Column taken under the read lock.
type ColumnState struct {
	Key     Key
	Pressed bool
	Events  []time.Time // newest first
	Presses uint64
}

// Store owns the ordered set of columns. The set is fixed at construction.
type Store struct {
	mu    sync.RWMutex
	cols  []Column
	index map[keys.Code]int
}

// NewStore creates one column per key in display order. A code listed twice
// is tracked by its first column only.
func NewStore(tracked []Key) *Store {
	s := &Store{
		cols:  make([]Column, len(tracked)),
		index: make(map[keys.Code]int, len(tracked)),
	}
	for i, k := range tracked {
		s.cols[i].Key = k
		if _, dup := s.index[k.Code]; !dup {
			s.index[k.Code] = i
		}
	}
	return s
}

// Len returns the number of columns.
func (s *Store) Len() int { return len(s.cols) }

// Keys returns the tracked keys in display order.
func (s *Store) Keys() []Key {
	out := make([]Key, len(s.cols))
	for i := range s.cols {
		out[i] = s.cols[i].Key
	}
	return out
}

// Apply records a press (pressed=true) or release for code at time at.
// It reports whether the store changed: untracked codes and repeats of the
// current state are ignored.
func (s *Store) Apply(code keys.Code, pressed bool, at time.Time) bool {
	i, ok := s.index[code]
	if !ok {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	col := &s.cols[i]
	if col.Pressed == pressed {
		return false
	}
	col.Pressed = pressed
	col.Events.Push(at)
	if pressed {
		col.Presses++
	}
	return true
}

// Snapshot copies every column into dst, reusing its slices, and returns it.
func (s *Store) Snapshot(dst []ColumnState) []ColumnState {
	if cap(dst) < len(s.cols) {
		dst = make([]ColumnState, len(s.cols))
	}
	dst = dst[:len(s.cols)]

	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.cols {
		col := &s.cols[i]
		st := &dst[i]
		st.Key = col.Key
		st.Pressed = col.Pressed
		st.Presses = col.Presses
		st.Events = col.Events.AppendTo(st.Events[:0])
	}
	return dst
}

// ResetCounters zeroes the per-key press counters.
func (s *Store) ResetCounters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cols {
		s.cols[i].Presses = 0
	}
}
