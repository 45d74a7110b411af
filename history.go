package easel

// History is a branch-pruning undo/redo timeline of State snapshots.
//
// Every Write replaces the live state immediately. A write is recorded on the
// timeline only when it is flagged undoable AND it differs from the last
// recorded snapshot under the recordable-difference projection (pages and
// selection; zoom is ignored — see statesEquivalent). Writing after an undo
// truncates the redo tail: classic linear undo with branch discard.
//
// All operations are total. Undo at the start and redo at the end are no-ops;
// nothing here ever returns an error.
type History struct {
	present State
	states  []State
	ptr     int
}

// NewHistory creates a history whose first recorded snapshot is the initial
// state.
func NewHistory(initial State) *History {
	return &History{
		present: initial,
		states:  []State{initial.Clone()},
	}
}

// Present returns the live state. The returned value shares backing arrays
// with the history; callers MUST NOT mutate it.
func (h *History) Present() State {
	return h.present
}

// Write replaces the live state with next. When undoable is true and next
// meaningfully differs from the last recorded snapshot, the redo tail is
// discarded, a deep copy of next is appended, and the pointer advances.
// Non-undoable writes (gesture previews, view changes) only touch the live
// state.
func (h *History) Write(next State, undoable bool) {
	h.present = next
	if !undoable || statesEquivalent(next, h.states[h.ptr]) {
		return
	}
	h.states = append(h.states[:h.ptr+1], next.Clone())
	h.ptr++
}

// WriteFn applies fn to the live state and writes the result. A gesture
// commit typically passes the identity function: the per-move previews
// already produced the final geometry, and the commit only re-confirms it as
// an undoable entry (which the difference check drops if the gesture was a
// no-op).
func (h *History) WriteFn(fn func(State) State, undoable bool) {
	h.Write(fn(h.present), undoable)
}

// Undo steps the pointer back one snapshot and restores it as the live state.
// No-op at the start of the timeline. The restore bypasses the difference
// check: undo always lands exactly on a prior snapshot.
func (h *History) Undo() {
	if h.ptr == 0 {
		return
	}
	h.ptr--
	h.present = h.states[h.ptr].Clone()
}

// Redo steps the pointer forward one snapshot and restores it as the live
// state. No-op at the end of the timeline.
func (h *History) Redo() {
	if h.ptr >= len(h.states)-1 {
		return
	}
	h.ptr++
	h.present = h.states[h.ptr].Clone()
}

// CanUndo reports whether a prior snapshot exists.
func (h *History) CanUndo() bool { return h.ptr > 0 }

// CanRedo reports whether a later snapshot exists.
func (h *History) CanRedo() bool { return h.ptr < len(h.states)-1 }

// Len returns the number of recorded snapshots.
func (h *History) Len() int { return len(h.states) }
