package easel

import "testing"

func TestNewStateHasOneActivePage(t *testing.T) {
	st := NewState()
	if len(st.Pages) != 1 {
		t.Fatalf("len(Pages) = %d, want 1", len(st.Pages))
	}
	if st.ActivePageID != st.Pages[0].ID {
		t.Error("ActivePageID does not reference the first page")
	}
	assertNear(t, "Zoom", st.Zoom, 1)
	if _, ok := st.ActivePage(); !ok {
		t.Error("ActivePage not found")
	}
}

func TestStateCloneIsDeep(t *testing.T) {
	st := testState(testElement("a", 0, 0, 10, 10))
	st.SelectedIDs = []string{"a"}

	clone := st.Clone()
	clone.Pages[0].Elements[0].X = 999
	clone.Pages[0].Name = "renamed"
	clone.SelectedIDs[0] = "z"

	assertNear(t, "original X", st.Pages[0].Elements[0].X, 0)
	if st.Pages[0].Name != "Page 1" {
		t.Errorf("original page name = %q, want %q", st.Pages[0].Name, "Page 1")
	}
	if st.SelectedIDs[0] != "a" {
		t.Errorf("original selection = %q, want %q", st.SelectedIDs[0], "a")
	}
}

func TestSelectedElementsFiltersStaleIDs(t *testing.T) {
	st := testState(testElement("a", 0, 0, 10, 10))
	st.SelectedIDs = []string{"a", "deleted-long-ago"}

	sel := st.SelectedElements()
	if len(sel) != 1 {
		t.Fatalf("len(sel) = %d, want 1", len(sel))
	}
	if sel[0].ID != "a" {
		t.Errorf("sel[0].ID = %q, want %q", sel[0].ID, "a")
	}
}

func TestSelectedUnlockedExcludesLocked(t *testing.T) {
	a := testElement("a", 0, 0, 10, 10)
	b := testElement("b", 50, 0, 10, 10)
	b.Locked = true
	st := testState(a, b)
	st.SelectedIDs = []string{"a", "b"}

	sel := st.SelectedUnlocked()
	if len(sel) != 1 || sel[0].ID != "a" {
		t.Errorf("SelectedUnlocked = %v, want just %q", sel, "a")
	}
}

func TestWithActiveElementsLeavesOriginalUntouched(t *testing.T) {
	st := testState(testElement("a", 0, 0, 10, 10))
	next := st.withActiveElements([]Element{testElement("b", 5, 5, 20, 20)})

	if st.Pages[0].Elements[0].ID != "a" {
		t.Error("original page elements were replaced")
	}
	if next.Pages[0].Elements[0].ID != "b" {
		t.Error("new state does not carry the replacement elements")
	}
}

func TestActivePageMissing(t *testing.T) {
	st := testState()
	st.ActivePageID = "no-such-page"
	if _, ok := st.ActivePage(); ok {
		t.Error("ActivePage found for a dangling id")
	}
}

func TestStatesEquivalent(t *testing.T) {
	base := testState(testElement("a", 0, 0, 10, 10), testElement("b", 50, 0, 10, 10))
	base.SelectedIDs = []string{"a", "b"}

	tests := []struct {
		name   string
		mutate func(*State)
		want   bool
	}{
		{"identical clone", func(*State) {}, true},
		{"zoom only", func(s *State) { s.Zoom = 3 }, true},
		{"selection reordered", func(s *State) { s.SelectedIDs = []string{"b", "a"} }, true},
		{"element moved", func(s *State) { s.Pages[0].Elements[0].X = 1 }, false},
		{"element recolored", func(s *State) { s.Pages[0].Elements[1].Fill = Color{R: 1, A: 1} }, false},
		{"selection shrunk", func(s *State) { s.SelectedIDs = []string{"a"} }, false},
		{"page renamed", func(s *State) { s.Pages[0].Name = "other" }, false},
		{"page added", func(s *State) { s.Pages = append(s.Pages, NewPage("extra")) }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			other := base.Clone()
			tc.mutate(&other)
			if got := statesEquivalent(base, other); got != tc.want {
				t.Errorf("statesEquivalent = %v, want %v", got, tc.want)
			}
		})
	}
}
