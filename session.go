package easel

import "math"

// Session is the ephemeral state of one transform gesture, from pointer-down
// to pointer-up. It captures a point-in-time deep copy of the selected
// elements' geometry and their group bounds; the live document may change
// underneath it (elements deleted mid-gesture are simply skipped on the next
// Transform), but the captured snapshot never does.
//
// A Session performs no writes itself: Transform is a pure function from the
// current pointer position to a replacement element list. The Editor owns the
// one-active-session rule, the per-move preview writes, and the terminal
// undoable commit.
type Session struct {
	action Action
	edge   Edge

	// start is the pointer-down position divided by the zoom at that moment.
	start Point

	// initial maps element id to its deep-copied geometry at gesture start.
	initial map[string]Element

	// bounds is the group box of the selection at gesture start.
	bounds Bounds
}

// NewSession captures the gesture-start snapshot. selected must be the
// non-empty set of unlocked selected elements (the caller filters locked
// elements out first). No document state is touched.
func NewSession(action Action, pointer Point, zoom float64, selected []Element, edge Edge) *Session {
	if zoom <= 0 {
		zoom = 1
	}
	initial := make(map[string]Element, len(selected))
	for _, el := range selected {
		initial[el.ID] = el
	}
	return &Session{
		action:  action,
		edge:    edge,
		start:   Point{X: pointer.X / zoom, Y: pointer.Y / zoom},
		initial: initial,
		bounds:  ComputeBounds(selected),
	}
}

// Action returns the gesture kind this session was started with.
func (s *Session) Action() Action { return s.action }

// Transform computes the replacement element list for the current pointer
// position. Selected elements are recomputed from their initial snapshot;
// everything else is passed through unchanged. The input slice is not
// modified.
func (s *Session) Transform(pointer Point, zoom float64, elements []Element) []Element {
	if zoom <= 0 {
		zoom = 1
	}
	cur := Point{X: pointer.X / zoom, Y: pointer.Y / zoom}
	dx := cur.X - s.start.X
	dy := cur.Y - s.start.Y

	var frame resizeFrame
	var angleDelta float64
	var pivot Point
	switch s.action {
	case ActionResize:
		frame = s.resizeFrame(dx, dy)
	case ActionRotate:
		pivot = s.bounds.Center()
		startAngle := math.Atan2(s.start.Y-pivot.Y, s.start.X-pivot.X)
		curAngle := math.Atan2(cur.Y-pivot.Y, cur.X-pivot.X)
		angleDelta = (curAngle - startAngle) * 180 / math.Pi
	}

	out := make([]Element, len(elements))
	for i, el := range elements {
		init, ok := s.initial[el.ID]
		if !ok {
			out[i] = el
			continue
		}
		switch s.action {
		case ActionDrag:
			el.X = init.X + dx
			el.Y = init.Y + dy
			el.Width, el.Height = init.Width, init.Height
			el.Rotation = init.Rotation
		case ActionResize:
			el = frame.apply(el, init)
		case ActionRotate:
			center := RotatePoint(init.Center(), pivot, angleDelta)
			el.Rotation = init.Rotation + angleDelta
			el.Width, el.Height = init.Width, init.Height
			el.X = center.X - init.Width/2
			el.Y = center.Y - init.Height/2
		}
		out[i] = el
	}
	return out
}

// resizeFrame is the scaled-and-repositioned group box for one resize update.
// Elements map their offset within the initial box through (scaleX, scaleY)
// and re-add it to the new origin: a uniform group scale, not per-element
// independent resize. Element rotation is left untouched — rotated elements
// are scaled by their bounding geometry only.
type resizeFrame struct {
	origin         Point
	initial        Bounds
	scaleX, scaleY float64
}

// resizeFrame adjusts the sides named by the grabbed edge flags and derives
// the group scale factors. Sizes are clamped to MinElementSize; a zero
// initial dimension falls back to a scale of 1 rather than propagating an
// infinite factor.
func (s *Session) resizeFrame(dx, dy float64) resizeFrame {
	box := s.bounds
	newX, newY := box.MinX, box.MinY
	newW, newH := box.Width, box.Height

	if s.edge&EdgeRight != 0 {
		newW = math.Max(MinElementSize, box.Width+dx)
	}
	if s.edge&EdgeLeft != 0 {
		newW = math.Max(MinElementSize, box.Width-dx)
		newX = box.MinX + dx
	}
	if s.edge&EdgeBottom != 0 {
		newH = math.Max(MinElementSize, box.Height+dy)
	}
	if s.edge&EdgeTop != 0 {
		newH = math.Max(MinElementSize, box.Height-dy)
		newY = box.MinY + dy
	}

	scaleX := 1.0
	if box.Width != 0 {
		scaleX = newW / box.Width
	}
	scaleY := 1.0
	if box.Height != 0 {
		scaleY = newH / box.Height
	}
	return resizeFrame{
		origin:  Point{X: newX, Y: newY},
		initial: box,
		scaleX:  scaleX,
		scaleY:  scaleY,
	}
}

// apply recomputes one element's geometry within the frame from its initial
// snapshot.
func (f resizeFrame) apply(el, init Element) Element {
	el.X = f.origin.X + (init.X-f.initial.MinX)*f.scaleX
	el.Y = f.origin.Y + (init.Y-f.initial.MinY)*f.scaleY
	el.Width = init.Width * f.scaleX
	el.Height = init.Height * f.scaleY
	el.Rotation = init.Rotation
	return el
}
