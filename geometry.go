package easel

import "math"

// ComputeBounds returns the axis-aligned box enclosing every element's
// unrotated rectangle. Individual element rotation is intentionally ignored:
// the box bounds element positions and extents, not rotated silhouettes, so
// that the selection frame and resize math stay stable while elements spin.
// An empty input yields the degenerate zero box.
func ComputeBounds(elements []Element) Bounds {
	if len(elements) == 0 {
		return Bounds{}
	}
	minX := math.Inf(1)
	minY := math.Inf(1)
	maxX := math.Inf(-1)
	maxY := math.Inf(-1)
	for i := range elements {
		el := &elements[i]
		minX = math.Min(minX, el.X)
		minY = math.Min(minY, el.Y)
		maxX = math.Max(maxX, el.X+el.Width)
		maxY = math.Max(maxY, el.Y+el.Height)
	}
	return Bounds{MinX: minX, MinY: minY, Width: maxX - minX, Height: maxY - minY}
}

// RotatePoint rotates p about pivot by angleDeg degrees in screen space
// (Y increases downward):
//
//	θ  = angleDeg * π / 180
//	nx = cosθ*(px-cx) + sinθ*(py-cy) + cx
//	ny = cosθ*(py-cy) - sinθ*(px-cx) + cy
//
// This is not the textbook counter-clockwise rotation; the sign convention
// matches the Y-down coordinate system and every rotation in the package
// depends on it. RotatePoint(p, pivot, -a) inverts RotatePoint(p, pivot, a).
func RotatePoint(p, pivot Point, angleDeg float64) Point {
	sin, cos := math.Sincos(angleDeg * math.Pi / 180)
	dx := p.X - pivot.X
	dy := p.Y - pivot.Y
	return Point{
		X: cos*dx + sin*dy + pivot.X,
		Y: cos*dy - sin*dx + pivot.Y,
	}
}
