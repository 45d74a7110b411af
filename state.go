package easel

// State is the whole-document snapshot: pages, the active page, the selection,
// and the zoom factor. It is a value type; deep copies are made with Clone.
// Snapshots handed out by the History MUST NOT be mutated by callers — build a
// new State and write it instead.
type State struct {
	Pages        []Page
	ActivePageID string
	SelectedIDs  []string
	Zoom         float64
}

// NewState creates a document with one empty page, no selection, and zoom 1.
func NewState() State {
	page := NewPage("Page 1")
	return State{
		Pages:        []Page{page},
		ActivePageID: page.ID,
		Zoom:         1,
	}
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	out := s
	out.Pages = make([]Page, len(s.Pages))
	for i := range s.Pages {
		out.Pages[i] = s.Pages[i].Clone()
	}
	if s.SelectedIDs != nil {
		out.SelectedIDs = make([]string, len(s.SelectedIDs))
		copy(out.SelectedIDs, s.SelectedIDs)
	}
	return out
}

// activePageIndex returns the index of the active page, or -1.
func (s State) activePageIndex() int {
	for i := range s.Pages {
		if s.Pages[i].ID == s.ActivePageID {
			return i
		}
	}
	return -1
}

// ActivePage returns the active page, if any.
func (s State) ActivePage() (Page, bool) {
	if i := s.activePageIndex(); i >= 0 {
		return s.Pages[i], true
	}
	return Page{}, false
}

// IsSelected reports whether the given element id is in the selection.
func (s State) IsSelected(id string) bool {
	for _, sid := range s.SelectedIDs {
		if sid == id {
			return true
		}
	}
	return false
}

// SelectedElements returns the selected elements on the active page in page
// order. Stale ids (elements deleted since selection) are filtered out rather
// than reported as errors.
func (s State) SelectedElements() []Element {
	page, ok := s.ActivePage()
	if !ok || len(s.SelectedIDs) == 0 {
		return nil
	}
	var out []Element
	for i := range page.Elements {
		if s.IsSelected(page.Elements[i].ID) {
			out = append(out, page.Elements[i])
		}
	}
	return out
}

// SelectedUnlocked returns the selected elements that may be transformed.
// Locked elements are excluded before any gesture begins.
func (s State) SelectedUnlocked() []Element {
	var out []Element
	for _, el := range s.SelectedElements() {
		if !el.Locked {
			out = append(out, el)
		}
	}
	return out
}

// withActiveElements returns a copy of the state with the active page's
// element list replaced. The input state is not modified. If there is no
// active page the state is returned unchanged.
func (s State) withActiveElements(elements []Element) State {
	idx := s.activePageIndex()
	if idx < 0 {
		return s
	}
	out := s
	out.Pages = make([]Page, len(s.Pages))
	copy(out.Pages, s.Pages)
	out.Pages[idx].Elements = elements
	return out
}

// --- Recordable-difference projection ---

// statesEquivalent reports whether two states are structurally equal on the
// projection the History records: the page sequence and the selection set,
// nothing else. Zoom, pan, and the active-page id are deliberately excluded
// so that view navigation never pollutes the undo stack (snapshots still
// carry those fields and undo restores them wholesale). Selection is compared
// as a set; its ordering carries no meaning.
func statesEquivalent(a, b State) bool {
	if !pagesEqual(a.Pages, b.Pages) {
		return false
	}
	return selectionsEqual(a.SelectedIDs, b.SelectedIDs)
}

func pagesEqual(a, b []Page) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Name != b[i].Name {
			return false
		}
		if len(a[i].Elements) != len(b[i].Elements) {
			return false
		}
		for j := range a[i].Elements {
			// Element holds only comparable fields, so struct equality is a
			// deep structural comparison.
			if a[i].Elements[j] != b[i].Elements[j] {
				return false
			}
		}
	}
	return true
}

func selectionsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	set := make(map[string]struct{}, len(a))
	for _, id := range a {
		set[id] = struct{}{}
	}
	for _, id := range b {
		if _, ok := set[id]; !ok {
			return false
		}
	}
	return true
}
