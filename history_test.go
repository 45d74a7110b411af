package easel

import "testing"

// testState builds a one-page document with a fixed page id so snapshots can
// be compared field by field.
func testState(elements ...Element) State {
	return State{
		Pages:        []Page{{ID: "page-1", Name: "Page 1", Elements: elements}},
		ActivePageID: "page-1",
		Zoom:         1,
	}
}

// moved returns a copy of st with the first element shifted by dx.
func moved(st State, dx float64) State {
	out := st.Clone()
	out.Pages[0].Elements[0].X += dx
	return out
}

func TestHistoryStartsWithoutUndoRedo(t *testing.T) {
	h := NewHistory(testState(testElement("a", 0, 0, 10, 10)))
	if h.CanUndo() {
		t.Error("CanUndo = true on a fresh history")
	}
	if h.CanRedo() {
		t.Error("CanRedo = true on a fresh history")
	}
	if h.Len() != 1 {
		t.Errorf("Len = %d, want 1", h.Len())
	}
}

func TestHistoryUndoableWriteRecords(t *testing.T) {
	s0 := testState(testElement("a", 0, 0, 10, 10))
	h := NewHistory(s0)
	h.Write(moved(s0, 50), true)

	if !h.CanUndo() {
		t.Fatal("CanUndo = false after a differing undoable write")
	}
	assertNear(t, "present X", h.Present().Pages[0].Elements[0].X, 50)

	h.Undo()
	assertNear(t, "undone X", h.Present().Pages[0].Elements[0].X, 0)
	if !h.CanRedo() {
		t.Fatal("CanRedo = false after undo")
	}

	h.Redo()
	assertNear(t, "redone X", h.Present().Pages[0].Elements[0].X, 50)
}

func TestHistoryNonUndoableWriteNeverRecords(t *testing.T) {
	s0 := testState(testElement("a", 0, 0, 10, 10))
	h := NewHistory(s0)
	h.Write(moved(s0, 50), false)

	if h.CanUndo() {
		t.Error("CanUndo = true after a non-undoable write")
	}
	// The live state still advanced.
	assertNear(t, "present X", h.Present().Pages[0].Elements[0].X, 50)
	if h.Len() != 1 {
		t.Errorf("Len = %d, want 1", h.Len())
	}
}

func TestHistoryEquivalentWriteDropped(t *testing.T) {
	s0 := testState(testElement("a", 0, 0, 10, 10))
	h := NewHistory(s0)
	h.Write(s0.Clone(), true)

	if h.CanUndo() {
		t.Error("CanUndo = true after writing an equivalent state")
	}
}

func TestHistoryZoomChangeNotRecorded(t *testing.T) {
	s0 := testState(testElement("a", 0, 0, 10, 10))
	h := NewHistory(s0)
	next := s0.Clone()
	next.Zoom = 2.5
	h.Write(next, true)

	if h.CanUndo() {
		t.Error("CanUndo = true after a zoom-only write")
	}
	assertNear(t, "present zoom", h.Present().Zoom, 2.5)
}

func TestHistorySelectionChangeRecorded(t *testing.T) {
	s0 := testState(testElement("a", 0, 0, 10, 10))
	h := NewHistory(s0)
	next := s0.Clone()
	next.SelectedIDs = []string{"a"}
	h.Write(next, true)

	if !h.CanUndo() {
		t.Error("CanUndo = false after a selection change")
	}
}

func TestHistorySelectionOrderIgnored(t *testing.T) {
	s0 := testState(testElement("a", 0, 0, 10, 10), testElement("b", 50, 0, 10, 10))
	s0.SelectedIDs = []string{"a", "b"}
	h := NewHistory(s0)

	next := s0.Clone()
	next.SelectedIDs = []string{"b", "a"}
	h.Write(next, true)

	if h.CanUndo() {
		t.Error("CanUndo = true after reordering the selection")
	}
}

func TestHistoryBranchPruning(t *testing.T) {
	s0 := testState(testElement("a", 0, 0, 10, 10))
	h := NewHistory(s0)
	h.Write(moved(s0, 10), true)
	h.Write(moved(s0, 20), true)
	if h.Len() != 3 {
		t.Fatalf("Len = %d, want 3", h.Len())
	}

	h.Undo()
	h.Undo()
	if !h.CanRedo() {
		t.Fatal("CanRedo = false after two undos")
	}

	// Writing from an undone position discards the redo tail.
	h.Write(moved(s0, 99), true)
	if h.CanRedo() {
		t.Error("CanRedo = true after writing over the redo tail")
	}
	if h.Len() != 2 {
		t.Errorf("Len = %d, want 2", h.Len())
	}
	assertNear(t, "present X", h.Present().Pages[0].Elements[0].X, 99)

	// Redo is a no-op at the end of the pruned timeline.
	h.Redo()
	assertNear(t, "after no-op redo", h.Present().Pages[0].Elements[0].X, 99)
}

func TestHistoryUndoAtStartIsNoop(t *testing.T) {
	s0 := testState(testElement("a", 7, 0, 10, 10))
	h := NewHistory(s0)
	h.Undo()
	h.Undo()
	assertNear(t, "X", h.Present().Pages[0].Elements[0].X, 7)
	if h.CanRedo() {
		t.Error("CanRedo = true after no-op undos")
	}
}

func TestHistoryGestureCommitPattern(t *testing.T) {
	// A gesture streams non-undoable previews and finishes with an undoable
	// identity write; exactly one entry must land on the timeline.
	s0 := testState(testElement("a", 0, 0, 10, 10))
	h := NewHistory(s0)

	for dx := 1.0; dx <= 40; dx++ {
		h.Write(moved(s0, dx), false)
	}
	h.WriteFn(func(s State) State { return s }, true)

	if h.Len() != 2 {
		t.Fatalf("Len = %d, want 2", h.Len())
	}
	h.Undo()
	assertNear(t, "undone X", h.Present().Pages[0].Elements[0].X, 0)
	h.Redo()
	assertNear(t, "redone X", h.Present().Pages[0].Elements[0].X, 40)
}

func TestHistoryNoopGestureCommitDropped(t *testing.T) {
	// An identity commit with no preceding previews must not grow the timeline.
	s0 := testState(testElement("a", 0, 0, 10, 10))
	h := NewHistory(s0)
	h.WriteFn(func(s State) State { return s }, true)

	if h.CanUndo() {
		t.Error("CanUndo = true after a no-op gesture commit")
	}
}

func TestHistoryUndoRestoresDeepCopy(t *testing.T) {
	s0 := testState(testElement("a", 0, 0, 10, 10))
	h := NewHistory(s0)
	h.Write(moved(s0, 50), true)
	h.Undo()

	// Mutating the restored state must not corrupt the recorded snapshot.
	live := h.Present()
	live.Pages[0].Elements[0].X = 12345
	h.Redo()
	h.Undo()
	assertNear(t, "snapshot X", h.Present().Pages[0].Elements[0].X, 0)
}

func BenchmarkHistoryWrite(b *testing.B) {
	elements := make([]Element, 50)
	for i := range elements {
		elements[i] = testElement(string(rune('a'+i)), float64(i)*10, 0, 40, 30)
	}
	s0 := testState(elements...)
	h := NewHistory(s0)
	next := moved(s0, 5)
	b.ReportAllocs()
	for b.Loop() {
		h.Write(next, false)
	}
}
