// Package history keeps the undo stack of reversible deletions.
package history

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/heartmarshall/manuver-backend/internal/domain"
)

var (
	// ErrEmpty is returned by Undo when there is nothing to undo.
	ErrEmpty = errors.New("history: nothing to undo")
	// ErrBusy is returned by Undo while another undo is still running.
	ErrBusy = errors.New("history: undo already in progress")
)

// Entry is one reversible deletion.
type Entry struct {
	Action domain.HistoryAction
	Item   domain.RecordWithItems
	seq    uint64
}

// RestoreFunc re-creates a deleted record. The entry is consumed only if it
// returns nil.
type RestoreFunc func(ctx context.Context, item domain.RecordWithItems) error

// Stack is a LIFO of deletions. It is safe for concurrent use; at most one
// Undo runs at a time.
type Stack struct {
	restore  RestoreFunc
	maxDepth int

	mu      sync.Mutex
	entries []Entry
	undoing bool
	nextSeq uint64
}

// New creates a Stack. maxDepth <= 0 means unbounded; otherwise the oldest
// entry is evicted once the stack grows past maxDepth.
func New(restore RestoreFunc, maxDepth int) *Stack {
	return &Stack{restore: restore, maxDepth: maxDepth}
}

// RecordDeletion pushes a deletion. Call it only after the delete has been
// confirmed by the store.
func (s *Stack) RecordDeletion(item domain.RecordWithItems) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSeq++
	s.entries = append(s.entries, Entry{
		Action: domain.HistoryActionDelete,
		Item:   item,
		seq:    s.nextSeq,
	})
	if s.maxDepth > 0 && len(s.entries) > s.maxDepth {
		s.entries = slices.Delete(s.entries, 0, len(s.entries)-s.maxDepth)
	}
}

// Undo restores the most recent deletion. It returns ErrEmpty or ErrBusy
// without side effects when there is nothing to do. A failing restore leaves
// the entry on the stack and returns the restore error.
func (s *Stack) Undo(ctx context.Context) (Entry, error) {
	s.mu.Lock()
	if s.undoing {
		s.mu.Unlock()
		return Entry{}, ErrBusy
	}
	if len(s.entries) == 0 {
		s.mu.Unlock()
		return Entry{}, ErrEmpty
	}
	top := s.entries[len(s.entries)-1]
	s.undoing = true
	s.mu.Unlock()

	err := s.restore(ctx, top.Item)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.undoing = false
	if err != nil {
		return top, fmt.Errorf("restore record %s: %w", top.Item.Record.ID, err)
	}
	// Deletions pushed while the restore ran sit above top; remove top by identity.
	if i := slices.IndexFunc(s.entries, func(e Entry) bool { return e.seq == top.seq }); i >= 0 {
		s.entries = slices.Delete(s.entries, i, i+1)
	}
	return top, nil
}

// Len returns the number of pending entries.
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// CanUndo reports whether Undo would attempt a restore right now.
func (s *Stack) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries) > 0 && !s.undoing
}

// Undoing reports whether a restore is in flight.
func (s *Stack) Undoing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.undoing
}

// Entries returns the pending entries, oldest first.
func (s *Stack) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.entries)
}
