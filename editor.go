package easel

import "math"

// PointerContext carries pointer event data in canvas space (screen
// coordinates with the pan offset removed, not yet divided by zoom).
type PointerContext struct {
	Point     Point
	Button    MouseButton
	Modifiers KeyModifiers
}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type changeHandler struct {
	id uint32
	fn func(State)
}

type handlerRegistry struct {
	pointerMove []pointerHandler
	pointerUp   []pointerHandler
	change      []changeHandler
	nextID      uint32
}

// CallbackHandle allows removing a registered editor callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires. Removing an
// already-removed or zero handle is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPointerMove:
		h.reg.pointerMove = removePointerHandler(h.reg.pointerMove, h.id)
	case EventPointerUp:
		h.reg.pointerUp = removePointerHandler(h.reg.pointerUp, h.id)
	case EventChange:
		h.reg.change = removeChangeHandler(h.reg.change, h.id)
	}
}

func removePointerHandler(s []pointerHandler, id uint32) []pointerHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeChangeHandler(s []changeHandler, id uint32) []changeHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = changeHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Editor ---

const (
	// defaultHandleHitSize is the edge length (screen pixels) of the square
	// hit area around each selection handle. Divided by zoom before page-space
	// comparison so handles stay grabbable at any zoom.
	defaultHandleHitSize = 12.0
	// defaultRotateHandleOffset is the screen-pixel gap between the top of the
	// selection frame and the rotate handle.
	defaultRotateHandleOffset = 24.0
)

// Editor owns the document history, the single active transform session, and
// the callback registry. It is strictly single-threaded: all methods must be
// called from the one event-dispatching goroutine, and at most one gesture is
// in progress at any instant.
type Editor struct {
	history  *History
	handlers handlerRegistry

	session    *Session
	moveHandle CallbackHandle
	upHandle   CallbackHandle

	// dispatch scratch buffers; handlers may remove themselves mid-dispatch
	// (the gesture's up handler does), so dispatch iterates over a copy.
	moveBuf []pointerHandler
	upBuf   []pointerHandler

	// HandleHitSize and RotateHandleOffset tune handle hit testing in screen
	// pixels. The renderer reads the same values so the picture matches the
	// behavior.
	HandleHitSize      float64
	RotateHandleOffset float64
}

// NewEditor creates an editor over the given initial document state.
func NewEditor(initial State) *Editor {
	return &Editor{
		history:            NewHistory(initial),
		HandleHitSize:      defaultHandleHitSize,
		RotateHandleOffset: defaultRotateHandleOffset,
	}
}

// State returns the live document state. The returned value shares backing
// arrays with the history; callers MUST NOT mutate it.
func (e *Editor) State() State {
	return e.history.Present()
}

// History returns the underlying undo/redo timeline for inspection. Mutate
// the document through the Editor so change callbacks fire.
func (e *Editor) History() *History {
	return e.history
}

// TransformActive reports whether a gesture is currently in progress.
func (e *Editor) TransformActive() bool {
	return e.session != nil
}

// --- Callback registration ---

// OnPointerMove registers a callback fired on every pointer move dispatched
// to the editor.
func (e *Editor) OnPointerMove(fn func(PointerContext)) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.pointerMove = append(e.handlers.pointerMove, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, event: EventPointerMove}
}

// OnPointerUp registers a callback fired on every pointer release dispatched
// to the editor.
func (e *Editor) OnPointerUp(fn func(PointerContext)) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.pointerUp = append(e.handlers.pointerUp, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, event: EventPointerUp}
}

// OnChange registers a callback fired after every live-state replacement:
// writes, undos, and redos alike.
func (e *Editor) OnChange(fn func(State)) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.change = append(e.handlers.change, changeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, event: EventChange}
}

func (e *Editor) fireChange() {
	st := e.history.Present()
	for _, h := range e.handlers.change {
		h.fn(st)
	}
}

// write routes every mutation through the history and notifies listeners.
func (e *Editor) write(next State, undoable bool) {
	e.history.Write(next, undoable)
	e.fireChange()
}

// --- Pointer state machine ---

// PointerDown begins an interaction at the given canvas-space point.
// Priority order: selection handles first (resize corners and edges, then the
// rotate handle), element bodies next (topmost in stacking order), empty
// canvas last (clears the selection). Only the left button interacts.
func (e *Editor) PointerDown(p Point, button MouseButton, mods KeyModifiers) {
	if button != MouseButtonLeft {
		return
	}
	st := e.history.Present()
	zoom := st.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	pagePt := Point{X: p.X / zoom, Y: p.Y / zoom}

	if sel := st.SelectedUnlocked(); len(sel) > 0 {
		bounds := ComputeBounds(sel)
		if edge, ok := e.hitResizeHandle(bounds, pagePt, zoom); ok {
			e.beginTransform(ActionResize, p, edge)
			return
		}
		if e.hitRotateHandle(bounds, pagePt, zoom) {
			e.beginTransform(ActionRotate, p, 0)
			return
		}
	}

	if el, ok := topElementAt(st, pagePt); ok {
		e.selectForPointer(el, mods&ModShift != 0)
		if !el.Locked && e.history.Present().IsSelected(el.ID) {
			e.beginTransform(ActionDrag, p, 0)
		}
		return
	}

	e.ClearSelection()
}

// PointerMove dispatches a pointer move to registered callbacks. While a
// gesture is active, the session's own move callback turns this into a
// non-undoable preview write.
func (e *Editor) PointerMove(p Point) {
	ctx := PointerContext{Point: p}
	e.moveBuf = append(e.moveBuf[:0], e.handlers.pointerMove...)
	for _, h := range e.moveBuf {
		h.fn(ctx)
	}
}

// PointerUp dispatches a pointer release. The active gesture's up callback
// commits and tears the session down.
func (e *Editor) PointerUp(p Point) {
	ctx := PointerContext{Point: p}
	e.upBuf = append(e.upBuf[:0], e.handlers.pointerUp...)
	for _, h := range e.upBuf {
		h.fn(ctx)
	}
}

// CancelGesture ends the active gesture through the same cleanup path as a
// pointer release: the last previewed geometry stands as the committed state
// (rollback, when wanted, is an Undo away), and the gesture's callbacks are
// released exactly once. No-op without an active gesture.
func (e *Editor) CancelGesture() {
	e.endTransform()
}

// --- Transform session orchestration ---

// beginTransform starts a gesture over the current unlocked selection and
// acquires the gesture-scoped move/up callbacks. A gesture arriving while one
// is still active supersedes it: the stale gesture is committed and torn down
// first, so its callbacks can never outlive it.
func (e *Editor) beginTransform(action Action, pointer Point, edge Edge) {
	if e.session != nil {
		debugf("gesture superseded before release")
		e.endTransform()
	}
	st := e.history.Present()
	selected := st.SelectedUnlocked()
	if len(selected) == 0 {
		return
	}
	e.session = NewSession(action, pointer, st.Zoom, selected, edge)
	e.moveHandle = e.OnPointerMove(func(ctx PointerContext) {
		e.updateTransform(ctx.Point)
	})
	e.upHandle = e.OnPointerUp(func(PointerContext) {
		e.endTransform()
	})
}

// updateTransform emits one non-undoable preview write for the current
// pointer position. Continuous pointer motion therefore never touches the
// undo timeline.
func (e *Editor) updateTransform(p Point) {
	if e.session == nil {
		return
	}
	st := e.history.Present()
	page, ok := st.ActivePage()
	if !ok {
		return
	}
	next := st.withActiveElements(e.session.Transform(p, st.Zoom, page.Elements))
	e.write(next, false)
}

// endTransform is the single cleanup routine for every gesture exit path:
// pointer-up, cancellation, and supersession by a new gesture. It releases
// the gesture-scoped callbacks exactly once and commits one undoable identity
// write — the previews already produced the final geometry, and the history's
// difference check drops the commit when the gesture changed nothing.
func (e *Editor) endTransform() {
	if e.session == nil {
		return
	}
	e.session = nil
	e.moveHandle.Remove()
	e.upHandle.Remove()
	e.moveHandle = CallbackHandle{}
	e.upHandle = CallbackHandle{}
	e.history.WriteFn(func(s State) State { return s }, true)
	e.fireChange()
}

// --- Hit testing ---

// handleAnchor is one grabbable handle position on the selection frame.
type handleAnchor struct {
	edge Edge
	x, y float64
}

// resizeAnchors returns the eight handle positions for a selection frame:
// four corners, then four edge midpoints.
func resizeAnchors(b Bounds) [8]handleAnchor {
	cx := b.MinX + b.Width/2
	cy := b.MinY + b.Height/2
	return [8]handleAnchor{
		{EdgeTop | EdgeLeft, b.MinX, b.MinY},
		{EdgeTop | EdgeRight, b.MaxX(), b.MinY},
		{EdgeBottom | EdgeLeft, b.MinX, b.MaxY()},
		{EdgeBottom | EdgeRight, b.MaxX(), b.MaxY()},
		{EdgeTop, cx, b.MinY},
		{EdgeBottom, cx, b.MaxY()},
		{EdgeLeft, b.MinX, cy},
		{EdgeRight, b.MaxX(), cy},
	}
}

// hitResizeHandle tests the page-space point against the eight resize handles
// of the selection frame. Corners are listed first so they win where a corner
// and edge handle could both match.
func (e *Editor) hitResizeHandle(b Bounds, p Point, zoom float64) (Edge, bool) {
	half := e.HandleHitSize / zoom / 2
	for _, a := range resizeAnchors(b) {
		if math.Abs(p.X-a.x) <= half && math.Abs(p.Y-a.y) <= half {
			return a.edge, true
		}
	}
	return 0, false
}

// rotateAnchor returns the page-space position of the rotate handle: centered
// above the top edge of the selection frame.
func (e *Editor) rotateAnchor(b Bounds, zoom float64) Point {
	return Point{X: b.MinX + b.Width/2, Y: b.MinY - e.RotateHandleOffset/zoom}
}

// hitRotateHandle tests the page-space point against the rotate handle.
func (e *Editor) hitRotateHandle(b Bounds, p Point, zoom float64) bool {
	a := e.rotateAnchor(b, zoom)
	half := e.HandleHitSize / zoom / 2
	return math.Abs(p.X-a.X) <= half && math.Abs(p.Y-a.Y) <= half
}

// topElementAt returns the topmost visible element under the page-space point
// on the active page, honoring ZIndex with sequence order as tie-break.
func topElementAt(st State, p Point) (Element, bool) {
	page, ok := st.ActivePage()
	if !ok {
		return Element{}, false
	}
	order := page.stackOrder()
	for i := len(order) - 1; i >= 0; i-- {
		el := page.Elements[order[i]]
		if !el.Visible {
			continue
		}
		if el.HitTest(p) {
			return el, true
		}
	}
	return Element{}, false
}

// selectForPointer updates the selection for a pointer-down on an element.
// Plain click selects just that element (a click on an already-selected
// element keeps the group selection so a group drag can begin). Shift-click
// toggles membership.
func (e *Editor) selectForPointer(el Element, additive bool) {
	st := e.history.Present()
	var next []string
	switch {
	case additive && st.IsSelected(el.ID):
		for _, id := range st.SelectedIDs {
			if id != el.ID {
				next = append(next, id)
			}
		}
	case additive:
		next = append(append(next, st.SelectedIDs...), el.ID)
	case st.IsSelected(el.ID):
		return
	default:
		next = []string{el.ID}
	}
	out := st
	out.SelectedIDs = next
	e.write(out, true)
}
