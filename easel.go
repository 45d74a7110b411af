package easel

// MinElementSize is the smallest width or height (in page units) an element
// may be driven to during an interactive resize. Requests below it are
// clamped, never rejected.
const MinElementSize = 10.0

// Point is a 2D coordinate in page space. The coordinate system has its
// origin at the top-left, with Y increasing downward. Pointer positions
// arriving from a screen are divided by the current zoom before they become
// page-space Points.
type Point struct {
	X, Y float64
}

// Bounds is an axis-aligned bounding box in page space.
// Width and Height are never negative.
type Bounds struct {
	MinX, MinY, Width, Height float64
}

// MaxX returns the right edge of the box.
func (b Bounds) MaxX() float64 { return b.MinX + b.Width }

// MaxY returns the bottom edge of the box.
func (b Bounds) MaxY() float64 { return b.MinY + b.Height }

// Center returns the midpoint of the box.
func (b Bounds) Center() Point {
	return Point{X: b.MinX + b.Width/2, Y: b.MinY + b.Height/2}
}

// Contains reports whether the point lies inside the box.
// Points on the edge are considered inside.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MinX+b.Width &&
		p.Y >= b.MinY && p.Y <= b.MinY+b.Height
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default element fill.
var ColorWhite = Color{1, 1, 1, 1}

// Action identifies the kind of transform gesture in progress.
type Action uint8

const (
	ActionDrag   Action = iota // move the selection without changing size or rotation
	ActionResize               // scale the selection as a group from a grabbed edge or corner
	ActionRotate               // spin the selection rigidly around the group center
)

// Edge is a bitmask of the box sides grabbed at the start of a resize.
// Corner handles combine two flags (e.g. EdgeTop | EdgeLeft).
type Edge uint8

const (
	EdgeLeft Edge = 1 << iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// ElementType distinguishes the payload carried by an Element.
type ElementType uint8

const (
	ElementShape ElementType = iota // solid shape (ShapeKind + Fill)
	ElementText                     // text content with font size
	ElementImage                    // external image reference (Src)
)

// ShapeKind selects the geometry of a shape element.
type ShapeKind uint8

const (
	ShapeRectangle ShapeKind = iota
	ShapeEllipse
)

// EventType identifies a kind of editor callback.
type EventType uint8

const (
	EventPointerMove EventType = iota // fires on every pointer move dispatched to the editor
	EventPointerUp                    // fires on every pointer release dispatched to the editor
	EventChange                       // fires after every live-state replacement
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)
