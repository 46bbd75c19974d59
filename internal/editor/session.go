// Package editor owns the live edit session: the current timeline, its
// undo/redo history, and the command surface the CLI and collaborators use.
//
// Mutations are single-writer and atomic: validation happens before any
// state changes, the replacement timeline is built from the pre-mutation
// list, and only then is it installed. Reads may run concurrently with each
// other; a single reader/writer mutex guards all timeline access.
package editor

import (
	"fmt"
	"sync"
	"time"

	"cutline/internal/history"
	"cutline/internal/timeline"
)

// Session is the segment store for one media file.
type Session struct {
	mu   sync.RWMutex
	list timeline.List
	hist *history.Manager
}

// New returns an empty session whose history is capped at historyDepth
// (non-positive values use the default cap).
func New(historyDepth int) *Session {
	return &Session{hist: history.New(historyDepth)}
}

// Initialize replaces the timeline with a single segment covering
// [0, total) and clears all history. Fails with ErrInvalidDuration when the
// total is not positive, leaving the session untouched.
func (s *Session) Initialize(total time.Duration) error {
	list, err := timeline.NewList(total)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.list = list
	s.hist.Clear()
	return nil
}

// Restore replaces the session state wholesale with a previously persisted
// timeline and history stacks. Every list is validated before anything is
// installed; corrupt input is rejected, never repaired.
func (s *Session) Restore(list timeline.List, undo, redo []timeline.List) error {
	if err := list.Validate(); err != nil {
		return fmt.Errorf("restore timeline: %w", err)
	}
	for i, snap := range undo {
		if err := snap.Validate(); err != nil {
			return fmt.Errorf("restore undo snapshot %d: %w", i, err)
		}
	}
	for i, snap := range redo {
		if err := snap.Validate(); err != nil {
			return fmt.Errorf("restore redo snapshot %d: %w", i, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.list = list.Clone()
	s.hist.Restore(undo, redo)
	return nil
}

// DeleteRange removes the virtual interval [virtualStart, virtualEnd) from
// the timeline. The range is validated first (ErrInvalidRange,
// ErrOutOfBounds), both endpoints are mapped to source time on the
// pre-mutation timeline, the pre-mutation state is pushed onto the undo
// stack, and the replacement list is installed atomically.
func (s *Session) DeleteRange(virtualStart, virtualEnd time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if virtualStart < 0 || virtualStart >= virtualEnd {
		return fmt.Errorf("%w: [%s, %s)", timeline.ErrInvalidRange, virtualStart, virtualEnd)
	}
	if total := s.list.TotalDuration(); virtualEnd > total {
		return fmt.Errorf("%w: end %s past total %s", timeline.ErrOutOfBounds, virtualEnd, total)
	}

	sourceStart := s.list.VirtualToSource(virtualStart)
	sourceEnd := s.list.VirtualToSource(virtualEnd)

	s.hist.Push(s.list)
	s.list = s.list.Remove(sourceStart, sourceEnd)
	return nil
}

// Undo restores the most recent pre-mutation snapshot. It is a safe no-op
// when no history exists; the return value reports whether anything changed.
func (s *Session) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	restored, ok := s.hist.Undo(s.list)
	if ok {
		s.list = restored
	}
	return ok
}

// Redo re-applies the most recently undone mutation. Safe no-op when the
// redo stack is empty.
func (s *Session) Redo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	restored, ok := s.hist.Redo(s.list)
	if ok {
		s.list = restored
	}
	return ok
}

// CanUndo reports whether an undo snapshot is available.
func (s *Session) CanUndo() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hist.CanUndo()
}

// CanRedo reports whether a redo snapshot is available.
func (s *Session) CanRedo() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hist.CanRedo()
}

// TotalDuration returns the virtual timeline length.
func (s *Session) TotalDuration() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list.TotalDuration()
}

// SegmentCount returns the number of kept segments.
func (s *Session) SegmentCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.list)
}

// Segments returns an independent copy of the current timeline.
func (s *Session) Segments() timeline.List {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list.Clone()
}

// VirtualToSource maps a virtual position to source time against the current
// timeline.
func (s *Session) VirtualToSource(virtual time.Duration) time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list.VirtualToSource(virtual)
}

// SourceToVirtual maps a source position to virtual time; the second return
// value is false for positions inside deleted regions.
func (s *Session) SourceToVirtual(source time.Duration) (time.Duration, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list.SourceToVirtual(source)
}

// History returns deep copies of the undo and redo stacks for persistence.
func (s *Session) History() (undo, redo []timeline.List) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hist.Snapshot()
}
