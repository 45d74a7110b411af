package easel

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window for Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ClearColor fills the screen each frame before the page is drawn.
	ClearColor Color
	// Debug enables diagnostic warnings on stderr (see SetDebug).
	Debug bool
}

// game adapts an editor, viewport, driver, and renderer to ebiten.Game.
type game struct {
	editor   *Editor
	viewport *Viewport
	driver   *Driver
	renderer *Renderer
	cfg      RunConfig
}

func (g *game) Update() error {
	g.driver.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.ClearColor.toRGBA())
	g.renderer.Draw(screen, g.editor.State(), g.viewport, g.editor)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and runs the editor with the default input driver and
// renderer until the window is closed. For full control over the game loop,
// wire Driver, Renderer, and Viewport into your own ebiten.Game instead.
func Run(editor *Editor, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 800
	}
	if cfg.Title == "" {
		cfg.Title = "easel"
	}
	SetDebug(cfg.Debug)

	viewport := NewViewport()
	viewport.Zoom = editor.State().Zoom

	g := &game{
		editor:   editor,
		viewport: viewport,
		driver:   NewDriver(editor, viewport),
		renderer: NewRenderer(),
		cfg:      cfg,
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("easel: run game: %w", err)
	}
	return nil
}
