package easel

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// panAnim holds active pan-to tweens for viewport X and Y.
type panAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Viewport maps between screen space and page space: a zoom factor plus a
// screen-space pan offset of the page origin. Conversions come in two depths:
// ScreenToCanvas removes only the pan (canvas points are what the Editor's
// pointer entry points take — the transform session divides by zoom itself),
// and ScreenToPage additionally divides by zoom.
type Viewport struct {
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// OffsetX and OffsetY are the screen-space position of the page origin.
	OffsetX, OffsetY float64
	// MinZoom and MaxZoom clamp SetZoom and ZoomAt.
	MinZoom, MaxZoom float64

	zoomTween *gween.Tween
	panTween  *panAnim
}

// NewViewport creates a viewport with no pan, zoom 1, and the default
// [0.1, 8] zoom range.
func NewViewport() *Viewport {
	return &Viewport{Zoom: 1, MinZoom: 0.1, MaxZoom: 8}
}

// ScreenToCanvas removes the pan offset from a screen coordinate. The result
// is still scaled by zoom.
func (v *Viewport) ScreenToCanvas(sx, sy float64) Point {
	return Point{X: sx - v.OffsetX, Y: sy - v.OffsetY}
}

// ScreenToPage converts a screen coordinate to page space.
func (v *Viewport) ScreenToPage(sx, sy float64) Point {
	c := v.ScreenToCanvas(sx, sy)
	return Point{X: c.X / v.Zoom, Y: c.Y / v.Zoom}
}

// PageToScreen converts a page-space point to screen coordinates.
func (v *Viewport) PageToScreen(p Point) (sx, sy float64) {
	return p.X*v.Zoom + v.OffsetX, p.Y*v.Zoom + v.OffsetY
}

// SetZoom sets the zoom factor, clamped to [MinZoom, MaxZoom].
func (v *Viewport) SetZoom(zoom float64) {
	v.Zoom = math.Max(v.MinZoom, math.Min(zoom, v.MaxZoom))
}

// ZoomAt multiplies the zoom by factor while keeping the page point under the
// screen position (sx, sy) fixed — wheel zoom anchored at the cursor.
func (v *Viewport) ZoomAt(factor, sx, sy float64) {
	anchor := v.ScreenToPage(sx, sy)
	v.SetZoom(v.Zoom * factor)
	v.OffsetX = sx - anchor.X*v.Zoom
	v.OffsetY = sy - anchor.Y*v.Zoom
}

// Pan shifts the viewport by a screen-space delta.
func (v *Viewport) Pan(dx, dy float64) {
	v.OffsetX += dx
	v.OffsetY += dy
}

// ZoomTo animates the zoom factor to the given value over duration seconds.
// The target is clamped to the zoom range up front.
func (v *Viewport) ZoomTo(zoom float64, duration float32, easeFn ease.TweenFunc) {
	target := math.Max(v.MinZoom, math.Min(zoom, v.MaxZoom))
	v.zoomTween = gween.New(float32(v.Zoom), float32(target), duration, easeFn)
}

// PanTo animates the pan offset to the given screen-space position over
// duration seconds.
func (v *Viewport) PanTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	v.panTween = &panAnim{
		tweenX: gween.New(float32(v.OffsetX), float32(x), duration, easeFn),
		tweenY: gween.New(float32(v.OffsetY), float32(y), duration, easeFn),
	}
}

// Update advances active zoom and pan animations by dt seconds. Call once per
// frame; a frame with no active animation is near-zero cost.
func (v *Viewport) Update(dt float32) {
	if v.zoomTween != nil {
		val, done := v.zoomTween.Update(dt)
		v.Zoom = float64(val)
		if done {
			v.zoomTween = nil
		}
	}
	if v.panTween != nil {
		if !v.panTween.doneX {
			val, done := v.panTween.tweenX.Update(dt)
			v.OffsetX = float64(val)
			v.panTween.doneX = done
		}
		if !v.panTween.doneY {
			val, done := v.panTween.tweenY.Update(dt)
			v.OffsetY = float64(val)
			v.panTween.doneY = done
		}
		if v.panTween.doneX && v.panTween.doneY {
			v.panTween = nil
		}
	}
}

// Animating reports whether a zoom or pan animation is in progress.
func (v *Viewport) Animating() bool {
	return v.zoomTween != nil || v.panTween != nil
}
