package easel

// Document mutations invoked by the surrounding editor UI (toolbars, panels,
// shortcuts). Each routes through the history with the appropriate undoable
// flag; none of them may run while rewriting geometry mid-gesture, which the
// single-threaded calling convention guarantees.

// AddElement appends an element to the active page and selects it. Undoable.
func (e *Editor) AddElement(el Element) {
	st := e.history.Present()
	page, ok := st.ActivePage()
	if !ok {
		return
	}
	elements := append(cloneElements(page.Elements), el)
	next := st.withActiveElements(elements)
	next.SelectedIDs = []string{el.ID}
	e.write(next, true)
}

// DeleteSelection removes every selected element from the active page and
// clears the selection. Undoable. No-op when nothing is selected.
func (e *Editor) DeleteSelection() {
	st := e.history.Present()
	page, ok := st.ActivePage()
	if !ok || len(st.SelectedIDs) == 0 {
		return
	}
	var kept []Element
	for _, el := range page.Elements {
		if !st.IsSelected(el.ID) {
			kept = append(kept, el)
		}
	}
	next := st.withActiveElements(kept)
	next.SelectedIDs = nil
	e.write(next, true)
}

// BringForward moves each selected element one position later in the page
// sequence (toward the top of the stack), preserving the relative order of
// the selection. Undoable.
func (e *Editor) BringForward() {
	e.reorderSelection(+1)
}

// SendBackward moves each selected element one position earlier in the page
// sequence (toward the bottom of the stack). Undoable.
func (e *Editor) SendBackward() {
	e.reorderSelection(-1)
}

func (e *Editor) reorderSelection(dir int) {
	st := e.history.Present()
	page, ok := st.ActivePage()
	if !ok || len(st.SelectedIDs) == 0 {
		return
	}
	elements := cloneElements(page.Elements)
	if dir > 0 {
		// Walk from the top so a contiguous selected run does not leapfrog itself.
		for i := len(elements) - 2; i >= 0; i-- {
			if st.IsSelected(elements[i].ID) && !st.IsSelected(elements[i+1].ID) {
				elements[i], elements[i+1] = elements[i+1], elements[i]
			}
		}
	} else {
		for i := 1; i < len(elements); i++ {
			if st.IsSelected(elements[i].ID) && !st.IsSelected(elements[i-1].ID) {
				elements[i], elements[i-1] = elements[i-1], elements[i]
			}
		}
	}
	e.write(st.withActiveElements(elements), true)
}

// AddPage appends an empty page, makes it active, and clears the selection.
// Undoable. Returns the new page's id.
func (e *Editor) AddPage(name string) string {
	st := e.history.Present()
	page := NewPage(name)
	next := st
	next.Pages = append(append([]Page(nil), st.Pages...), page)
	next.ActivePageID = page.ID
	next.SelectedIDs = nil
	e.write(next, true)
	return page.ID
}

// RemovePage deletes the page with the given id. Removing the active page
// activates its predecessor (or the new first page). The last remaining page
// cannot be removed; that call is a no-op, keeping ActivePageID always valid.
func (e *Editor) RemovePage(id string) {
	st := e.history.Present()
	if len(st.Pages) <= 1 {
		debugf("refusing to remove the last page")
		return
	}
	idx := -1
	for i := range st.Pages {
		if st.Pages[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	next := st
	next.Pages = append(append([]Page(nil), st.Pages[:idx]...), st.Pages[idx+1:]...)
	if st.ActivePageID == id {
		active := idx - 1
		if active < 0 {
			active = 0
		}
		next.ActivePageID = next.Pages[active].ID
		next.SelectedIDs = nil
	}
	e.write(next, true)
}

// SetActivePage switches the active page and clears the selection (selected
// ids may only reference elements on the active page). Unknown ids are
// ignored. The switch is recorded only insofar as it changes the selection;
// the difference projection tracks pages and selection, not navigation.
func (e *Editor) SetActivePage(id string) {
	st := e.history.Present()
	if st.ActivePageID == id {
		return
	}
	found := false
	for i := range st.Pages {
		if st.Pages[i].ID == id {
			found = true
			break
		}
	}
	if !found {
		debugf("SetActivePage: unknown page id %q", id)
		return
	}
	next := st
	next.ActivePageID = id
	next.SelectedIDs = nil
	e.write(next, true)
}

// Select replaces the selection with the given element ids, filtered to
// elements that exist on the active page. Undoable.
func (e *Editor) Select(ids ...string) {
	st := e.history.Present()
	page, ok := st.ActivePage()
	if !ok {
		return
	}
	var next []string
	for _, id := range ids {
		if _, exists := page.ElementByID(id); exists {
			next = append(next, id)
		}
	}
	out := st
	out.SelectedIDs = next
	e.write(out, true)
}

// ClearSelection empties the selection. Undoable (and dropped by the
// difference check when the selection was already empty).
func (e *Editor) ClearSelection() {
	st := e.history.Present()
	if len(st.SelectedIDs) == 0 {
		return
	}
	next := st
	next.SelectedIDs = nil
	e.write(next, true)
}

// SetZoom replaces the document zoom factor. Zoom must be positive; other
// values are ignored. The write is routed like any other, but the history's
// difference projection excludes zoom, so zooming never grows the undo stack.
func (e *Editor) SetZoom(zoom float64) {
	if zoom <= 0 {
		return
	}
	st := e.history.Present()
	if st.Zoom == zoom {
		return
	}
	next := st
	next.Zoom = zoom
	e.write(next, true)
}

// Undo steps the document back one recorded snapshot. No-op at the start of
// the timeline.
func (e *Editor) Undo() {
	e.history.Undo()
	e.fireChange()
}

// Redo steps the document forward one recorded snapshot. No-op at the end.
func (e *Editor) Redo() {
	e.history.Redo()
	e.fireChange()
}

// CanUndo reports whether Undo would change the document.
func (e *Editor) CanUndo() bool { return e.history.CanUndo() }

// CanRedo reports whether Redo would change the document.
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }
