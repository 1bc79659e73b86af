// Package journal holds the append-only journal store and the posting
// engine that commits validated batches into it.
package journal

import (
	"sync"

	"github.com/saldo-dev/saldo/internal/model"
)

// Store is the append-only sequence of posted journal lines. Lines are
// never updated or deleted; the only controlled mutation of history is the
// registry's rename cascade via RewriteAccountCode.
type Store struct {
	mu    sync.RWMutex
	lines []model.JournalLine
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Append adds lines as a unit. Callers hand over ownership of the slice's
// contents; no partial append is observable.
func (s *Store) Append(lines []model.JournalLine) {
	if len(lines) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, lines...)
}

// All returns a snapshot of every line in append order.
func (s *Store) All() []model.JournalLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.JournalLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Len returns the number of posted lines.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lines)
}

// RewriteAccountCode repoints every line referencing oldCode to newCode.
// This is the rename-cascade side channel used by the account registry; it
// is not part of the posting surface. Returns the number of lines changed.
func (s *Store) RewriteAccountCode(oldCode, newCode string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	for i := range s.lines {
		if s.lines[i].AccountCode == oldCode {
			s.lines[i].AccountCode = newCode
			n++
		}
	}
	return n
}

// CountByCode returns how many lines reference code.
func (s *Store) CountByCode(code string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int
	for i := range s.lines {
		if s.lines[i].AccountCode == code {
			n++
		}
	}
	return n
}
