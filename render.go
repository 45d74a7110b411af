package easel

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// selectionStrokeWidth is the screen-pixel thickness of the selection frame.
	selectionStrokeWidth = 1.5
	// handleDrawSize is the screen-pixel edge length of a drawn handle square,
	// slightly smaller than its hit area.
	handleDrawSize = 8.0
	// placeholderAlpha dims text and image elements, whose payloads this
	// renderer does not rasterize.
	placeholderAlpha = 0.35
)

// Renderer draws the active page and the selection overlay (frame, resize
// handles, rotate handle) to an ebiten image. All geometry is drawn as
// white-pixel quads transformed by GeoM; painting real text and image
// payloads to pixels is outside this package's scope, so those elements
// appear as translucent placeholder quads.
type Renderer struct {
	// SelectionColor tints the selection frame and handle outlines.
	SelectionColor Color
	// HandleFill fills the interior of handle squares.
	HandleFill Color

	whitePixel *ebiten.Image
}

// NewRenderer creates a renderer with the default overlay colors.
func NewRenderer() *Renderer {
	return &Renderer{
		SelectionColor: Color{R: 0.25, G: 0.55, B: 1, A: 1},
		HandleFill:     ColorWhite,
	}
}

// white returns the shared 1x1 white image, created on first use so that
// pure-logic callers (and tests) never allocate GPU resources.
func (r *Renderer) white() *ebiten.Image {
	if r.whitePixel == nil {
		r.whitePixel = ebiten.NewImage(1, 1)
		r.whitePixel.Fill(ColorWhite.toRGBA())
	}
	return r.whitePixel
}

// Draw renders the active page of st through the viewport, then the selection
// overlay on top. The editor supplies the handle metrics so the picture
// matches the hit testing.
func (r *Renderer) Draw(screen *ebiten.Image, st State, vp *Viewport, ed *Editor) {
	page, ok := st.ActivePage()
	if !ok {
		return
	}
	for _, idx := range page.stackOrder() {
		el := page.Elements[idx]
		if !el.Visible {
			continue
		}
		r.drawElement(screen, el, vp)
	}
	r.drawSelection(screen, st, vp, ed)
}

// drawElement draws one element as a rotated quad in page space.
func (r *Renderer) drawElement(screen *ebiten.Image, el Element, vp *Viewport) {
	fill := el.Fill
	if el.Type != ElementShape {
		fill.A *= placeholderAlpha
	}

	var op ebiten.DrawImageOptions
	g := &op.GeoM
	g.Scale(el.Width, el.Height)
	g.Translate(-el.Width/2, -el.Height/2)
	// Positive easel rotation is counter-clockwise on a Y-down screen
	// (RotatePoint's convention); GeoM.Rotate goes the other way.
	g.Rotate(-el.Rotation * math.Pi / 180)
	c := el.Center()
	g.Translate(c.X, c.Y)
	g.Scale(vp.Zoom, vp.Zoom)
	g.Translate(vp.OffsetX, vp.OffsetY)

	a := float32(fill.A)
	op.ColorScale.Scale(float32(fill.R)*a, float32(fill.G)*a, float32(fill.B)*a, a)
	screen.DrawImage(r.white(), &op)
}

// drawSelection draws the group frame around the selection plus the resize
// and rotate handles for the transformable (unlocked) subset.
func (r *Renderer) drawSelection(screen *ebiten.Image, st State, vp *Viewport, ed *Editor) {
	sel := st.SelectedElements()
	if len(sel) == 0 {
		return
	}
	b := ComputeBounds(sel)
	sx, sy := vp.PageToScreen(Point{X: b.MinX, Y: b.MinY})
	sw := b.Width * vp.Zoom
	sh := b.Height * vp.Zoom
	r.strokeRect(screen, sx, sy, sw, sh, selectionStrokeWidth, r.SelectionColor)

	unlocked := st.SelectedUnlocked()
	if len(unlocked) == 0 {
		return
	}
	hb := ComputeBounds(unlocked)
	zoom := st.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	for _, a := range resizeAnchors(hb) {
		hx, hy := vp.PageToScreen(Point{X: a.x, Y: a.y})
		r.drawHandle(screen, hx, hy)
	}

	rot := ed.rotateAnchor(hb, zoom)
	rx, ry := vp.PageToScreen(rot)
	_, topY := vp.PageToScreen(Point{X: hb.MinX + hb.Width/2, Y: hb.MinY})
	r.fillRect(screen, rx-selectionStrokeWidth/2, ry, selectionStrokeWidth, topY-ry, r.SelectionColor)
	r.drawHandle(screen, rx, ry)
}

// drawHandle draws one handle square centered at the screen position.
func (r *Renderer) drawHandle(screen *ebiten.Image, cx, cy float64) {
	half := handleDrawSize / 2
	r.fillRect(screen, cx-half, cy-half, handleDrawSize, handleDrawSize, r.HandleFill)
	r.strokeRect(screen, cx-half, cy-half, handleDrawSize, handleDrawSize, 1, r.SelectionColor)
}

// fillRect draws an axis-aligned screen-space quad.
func (r *Renderer) fillRect(screen *ebiten.Image, x, y, w, h float64, c Color) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	a := float32(c.A)
	op.ColorScale.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
	screen.DrawImage(r.white(), &op)
}

// strokeRect outlines an axis-aligned screen-space rectangle with four thin
// quads.
func (r *Renderer) strokeRect(screen *ebiten.Image, x, y, w, h, thickness float64, c Color) {
	r.fillRect(screen, x, y, w, thickness, c)
	r.fillRect(screen, x, y+h-thickness, w, thickness, c)
	r.fillRect(screen, x, y, thickness, h, c)
	r.fillRect(screen, x+w-thickness, y, thickness, h, c)
}

// clamp01 clamps v to [0, 1].
func clamp01(v float64) float64 {
	return math.Max(0, math.Min(v, 1))
}

// toRGBA converts an easel Color to a premultiplied color.Color.
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image.Fill.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}
