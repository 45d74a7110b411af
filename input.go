package easel

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// zoomWheelFactor is the zoom multiplier applied per wheel notch.
const zoomWheelFactor = 1.1

// Driver polls ebiten input once per frame and feeds the editor's pointer
// state machine and the viewport. It owns the screen→canvas conversion and
// the keyboard shortcuts; the editor itself never touches ebiten.
type Driver struct {
	editor   *Editor
	viewport *Viewport

	prevLeft   bool
	prevMiddle bool
	lastX      float64
	lastY      float64

	prevUndo   bool
	prevRedo   bool
	prevDelete bool
	prevEscape bool
}

// NewDriver creates a driver wiring the given editor and viewport.
func NewDriver(editor *Editor, viewport *Viewport) *Driver {
	return &Driver{editor: editor, viewport: viewport}
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

// Update processes one frame of input. Call from your game's Update.
func (d *Driver) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))
	d.viewport.Update(dt)

	mods := readModifiers()
	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)

	d.processWheel(sx, sy)
	d.processPan(sx, sy)
	d.processPointer(sx, sy, mods)
	d.processKeys(mods)

	d.lastX = sx
	d.lastY = sy
}

// processWheel applies cursor-anchored wheel zoom and mirrors the resulting
// zoom into the document so the transform math sees it.
func (d *Driver) processWheel(sx, sy float64) {
	_, wheelY := ebiten.Wheel()
	if wheelY == 0 {
		return
	}
	d.viewport.ZoomAt(math.Pow(zoomWheelFactor, wheelY), sx, sy)
	d.editor.SetZoom(d.viewport.Zoom)
}

// processPan pans the viewport while the middle button is held.
func (d *Driver) processPan(sx, sy float64) {
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if middle && d.prevMiddle {
		d.viewport.Pan(sx-d.lastX, sy-d.lastY)
	}
	d.prevMiddle = middle
}

// processPointer runs press/move/release edge detection for the left button
// and forwards events in canvas coordinates.
func (d *Driver) processPointer(sx, sy float64, mods KeyModifiers) {
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	p := d.viewport.ScreenToCanvas(sx, sy)

	switch {
	case left && !d.prevLeft:
		d.editor.PointerDown(p, MouseButtonLeft, mods)
	case left && d.prevLeft:
		if sx != d.lastX || sy != d.lastY {
			d.editor.PointerMove(p)
		}
	case !left && d.prevLeft:
		d.editor.PointerUp(p)
	}
	d.prevLeft = left
}

// processKeys handles the editing shortcuts: undo/redo, delete selection,
// and escape (cancels an active gesture, otherwise clears the selection).
func (d *Driver) processKeys(mods KeyModifiers) {
	ctrl := mods&(ModCtrl|ModMeta) != 0
	shift := mods&ModShift != 0

	undo := ctrl && !shift && ebiten.IsKeyPressed(ebiten.KeyZ)
	if undo && !d.prevUndo {
		d.editor.Undo()
	}
	d.prevUndo = undo

	redo := ctrl && (shift && ebiten.IsKeyPressed(ebiten.KeyZ) || ebiten.IsKeyPressed(ebiten.KeyY))
	if redo && !d.prevRedo {
		d.editor.Redo()
	}
	d.prevRedo = redo

	del := ebiten.IsKeyPressed(ebiten.KeyDelete) || ebiten.IsKeyPressed(ebiten.KeyBackspace)
	if del && !d.prevDelete {
		d.editor.DeleteSelection()
	}
	d.prevDelete = del

	esc := ebiten.IsKeyPressed(ebiten.KeyEscape)
	if esc && !d.prevEscape {
		if d.editor.TransformActive() {
			d.editor.CancelGesture()
		} else {
			d.editor.ClearSelection()
		}
	}
	d.prevEscape = esc
}
