package easel

// Synthetic pointer input for scripted drivers and headless tests. Events are
// applied synchronously in canvas coordinates, feeding the same pointer state
// machine as real input, so a test exercises exactly the production path.

// InjectPress applies a left-button pointer press at the given canvas
// coordinates.
func (e *Editor) InjectPress(x, y float64) {
	e.PointerDown(Point{X: x, Y: y}, MouseButtonLeft, 0)
}

// InjectMove applies a pointer move at the given canvas coordinates.
func (e *Editor) InjectMove(x, y float64) {
	e.PointerMove(Point{X: x, Y: y})
}

// InjectRelease applies a pointer release at the given canvas coordinates.
func (e *Editor) InjectRelease(x, y float64) {
	e.PointerUp(Point{X: x, Y: y})
}

// InjectClick is a convenience for a press followed by a release at the same
// coordinates.
func (e *Editor) InjectClick(x, y float64) {
	e.InjectPress(x, y)
	e.InjectRelease(x, y)
}

// InjectDrag applies a full drag sequence: press at (fromX, fromY), steps
// linearly interpolated intermediate moves, and release at (toX, toY).
// Minimum steps is 1.
func (e *Editor) InjectDrag(fromX, fromY, toX, toY float64, steps int) {
	if steps < 1 {
		steps = 1
	}
	e.InjectPress(fromX, fromY)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		e.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	e.InjectRelease(toX, toY)
}
