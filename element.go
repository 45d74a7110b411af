package easel

import "github.com/google/uuid"

// NewID returns a fresh unique identifier for elements and pages.
// IDs are immutable for the lifetime of the object they name.
func NewID() string {
	return uuid.NewString()
}

// Element is one placed object on a page: a shape, a text block, or an image.
// A single flat struct is used for all element types to keep snapshots cheap
// value copies (no reference fields besides the payload strings).
//
// Geometry is the unrotated rectangle (X, Y, Width, Height) plus Rotation in
// degrees around the element's own center. Width and Height are positive at
// rest; an active resize clamps them to MinElementSize.
type Element struct {
	// Identity
	ID   string
	Name string
	Type ElementType

	// Geometry
	X, Y          float64
	Width, Height float64
	Rotation      float64

	// Visibility & interaction
	Visible bool
	Locked  bool

	// Explicit stacking order. Preserved verbatim across transforms;
	// ties fall back to sequence order within the page.
	ZIndex int

	// Shape payload (ElementShape)
	Shape ShapeKind
	Fill  Color

	// Text payload (ElementText)
	Text     string
	FontSize float64

	// Image payload (ElementImage)
	Src string
}

// elementDefaults sets the common default field values shared by all constructors.
func elementDefaults(el *Element) {
	el.ID = NewID()
	el.Visible = true
	el.Fill = ColorWhite
}

// NewShape creates a shape element with the given kind and geometry.
func NewShape(name string, kind ShapeKind, x, y, w, h float64) Element {
	el := Element{Name: name, Type: ElementShape, Shape: kind, X: x, Y: y, Width: w, Height: h}
	elementDefaults(&el)
	return el
}

// NewText creates a text element with the given content and geometry.
func NewText(name, content string, x, y, w, h float64) Element {
	el := Element{Name: name, Type: ElementText, Text: content, FontSize: 16, X: x, Y: y, Width: w, Height: h}
	elementDefaults(&el)
	return el
}

// NewImage creates an image element referencing an external source.
func NewImage(name, src string, x, y, w, h float64) Element {
	el := Element{Name: name, Type: ElementImage, Src: src, X: x, Y: y, Width: w, Height: h}
	elementDefaults(&el)
	return el
}

// Center returns the element's pivot: the center of its unrotated rectangle.
func (el Element) Center() Point {
	return Point{X: el.X + el.Width/2, Y: el.Y + el.Height/2}
}

// HitTest reports whether the page-space point lies inside the element's
// rotated rectangle. The point is rotated into the element's unrotated frame
// around the element center, then tested against the plain rectangle.
func (el Element) HitTest(p Point) bool {
	local := p
	if el.Rotation != 0 {
		local = RotatePoint(p, el.Center(), -el.Rotation)
	}
	return local.X >= el.X && local.X <= el.X+el.Width &&
		local.Y >= el.Y && local.Y <= el.Y+el.Height
}

// cloneElements returns a deep copy of the element list. Element has value
// semantics, so copying the backing array is a full snapshot.
func cloneElements(elements []Element) []Element {
	if elements == nil {
		return nil
	}
	out := make([]Element, len(elements))
	copy(out, elements)
	return out
}

// Page is an ordered sequence of elements plus identity. Sequence position is
// the implicit z-order; explicit ZIndex values refine it without being
// rewritten by the editor.
type Page struct {
	ID       string
	Name     string
	Elements []Element
}

// NewPage creates an empty page.
func NewPage(name string) Page {
	return Page{ID: NewID(), Name: name}
}

// Clone returns a deep copy of the page.
func (p Page) Clone() Page {
	out := p
	out.Elements = cloneElements(p.Elements)
	return out
}

// ElementByID returns the element with the given id, if present.
func (p Page) ElementByID(id string) (Element, bool) {
	for i := range p.Elements {
		if p.Elements[i].ID == id {
			return p.Elements[i], true
		}
	}
	return Element{}, false
}

// indexOf returns the sequence index of the element with the given id, or -1.
func (p Page) indexOf(id string) int {
	for i := range p.Elements {
		if p.Elements[i].ID == id {
			return i
		}
	}
	return -1
}

// stackOrder returns element indices sorted bottom-to-top: ascending ZIndex,
// sequence order breaking ties. The page itself is not reordered.
func (p Page) stackOrder() []int {
	order := make([]int, len(p.Elements))
	for i := range order {
		order[i] = i
	}
	// Insertion sort keeps the tie-break stable and avoids an allocation-heavy
	// sort.SliceStable for the short lists pages hold in practice.
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && p.Elements[order[j]].ZIndex < p.Elements[order[j-1]].ZIndex; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
	return order
}
