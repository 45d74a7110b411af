// Package easel is the interaction core of a 2D design canvas: selection,
// group transforms (drag, resize, rotate), and undo/redo over whole-document
// snapshots.
//
// The document is a [State]: pages of rectangular elements (shapes, text,
// images) plus the active page, the selection, and the zoom factor. An
// [Editor] owns the state and turns pointer input into transforms:
//
//	state := easel.NewState()
//	ed := easel.NewEditor(state)
//
//	box := easel.NewShape("box", easel.ShapeRectangle, 100, 100, 200, 150)
//	ed.AddElement(box)
//
//	// Drag the box 50 units right with a scripted gesture.
//	ed.InjectDrag(150, 150, 200, 150, 4)
//
//	ed.Undo() // back where it started
//
// # Gestures
//
// A gesture runs from pointer-down to pointer-up. Pointer-down over a
// selection handle or an element body captures a point-in-time snapshot of
// the selected geometry in a [Session]; every pointer-move rewrites the live
// state from that snapshot (a throwaway preview, never recorded); pointer-up
// commits exactly one undoable entry. Dragging moves the group, resizing
// scales it uniformly from the grabbed edge or corner, and rotating spins it
// rigidly around the group center.
//
// # History
//
// [History] keeps a branch-pruning timeline of snapshots. Only writes that
// change the pages or the selection are recorded — zooming and panning never
// pollute the undo stack — and writing after an undo discards the redo tail.
//
// # Running
//
// The package is headless by design: the Editor's pointer entry points can be
// driven by any event source, including the Inject helpers in tests. For an
// interactive window, [Run] wires the ebiten-backed [Driver], a [Viewport]
// with tweened zoom/pan (via [gween]), and the overlay [Renderer]:
//
//	easel.Run(ed, easel.RunConfig{Title: "My Studio", Width: 1280, Height: 800})
//
// [gween]: https://github.com/tanema/gween
package easel
