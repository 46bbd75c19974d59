// Package history keeps bounded undo/redo snapshot stacks for the edit
// session. Snapshots are full deep copies of the timeline: correctness is
// favored over memory economy, and the depth cap keeps the total bounded.
package history

import "cutline/internal/timeline"

// DefaultDepth is the undo stack cap used when no depth is configured.
const DefaultDepth = 50

// Manager owns the undo and redo stacks. It is not safe for concurrent use;
// the editor session serializes access.
type Manager struct {
	depth int
	undo  []timeline.List
	redo  []timeline.List
}

// New returns a manager capped at the given depth. Non-positive depths fall
// back to DefaultDepth.
func New(depth int) *Manager {
	if depth <= 0 {
		depth = DefaultDepth
	}
	return &Manager{depth: depth}
}

// Push records the pre-mutation timeline on the undo stack and invalidates
// any redo history. When the stack is at capacity the oldest snapshot is
// discarded first.
func (m *Manager) Push(current timeline.List) {
	if len(m.undo) >= m.depth {
		drop := len(m.undo) - m.depth + 1
		m.undo = append(m.undo[:0], m.undo[drop:]...)
	}
	m.undo = append(m.undo, current.Clone())
	m.redo = m.redo[:0]
}

// Undo pops the most recent snapshot, pushing a copy of the current timeline
// onto the redo stack. With no history it returns the current timeline
// unchanged and reports false.
func (m *Manager) Undo(current timeline.List) (timeline.List, bool) {
	if len(m.undo) == 0 {
		return current, false
	}
	m.redo = append(m.redo, current.Clone())
	top := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	return top, true
}

// Redo is the mirror of Undo over the redo stack.
func (m *Manager) Redo(current timeline.List) (timeline.List, bool) {
	if len(m.redo) == 0 {
		return current, false
	}
	m.undo = append(m.undo, current.Clone())
	top := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]
	return top, true
}

// CanUndo reports whether an undo snapshot is available.
func (m *Manager) CanUndo() bool { return len(m.undo) > 0 }

// CanRedo reports whether a redo snapshot is available.
func (m *Manager) CanRedo() bool { return len(m.redo) > 0 }

// UndoDepth returns the current undo stack size.
func (m *Manager) UndoDepth() int { return len(m.undo) }

// RedoDepth returns the current redo stack size.
func (m *Manager) RedoDepth() int { return len(m.redo) }

// Clear empties both stacks. Used when a new session is loaded.
func (m *Manager) Clear() {
	m.undo = m.undo[:0]
	m.redo = m.redo[:0]
}

// Snapshot returns deep copies of both stacks, oldest first, for session
// persistence.
func (m *Manager) Snapshot() (undo, redo []timeline.List) {
	undo = cloneStack(m.undo)
	redo = cloneStack(m.redo)
	return undo, redo
}

// Restore replaces both stacks with deep copies of the provided snapshots,
// truncating oldest entries past the depth cap.
func (m *Manager) Restore(undo, redo []timeline.List) {
	m.undo = capStack(cloneStack(undo), m.depth)
	m.redo = capStack(cloneStack(redo), m.depth)
}

func cloneStack(stack []timeline.List) []timeline.List {
	if stack == nil {
		return nil
	}
	out := make([]timeline.List, len(stack))
	for i, list := range stack {
		out[i] = list.Clone()
	}
	return out
}

func capStack(stack []timeline.List, depth int) []timeline.List {
	if len(stack) <= depth {
		return stack
	}
	return stack[len(stack)-depth:]
}
