package main

import (
	"time"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/cashflow/game"
	"github.com/plus3/cashflow/game/debugui"
)

const (
	boardOffset     = 20
	sidePanelWidth  = 220
	debugPanelWidth = 420

	// Key repeat, in ticks at 60 TPS.
	repeatDelay = 10
	repeatRate  = 3

	maxFrameDelta = 250 * time.Millisecond
)

// Game adapts a game.Controller to ebiten.Game.
type Game struct {
	controller *game.Controller
	lastUpdate time.Time

	backend *ebitenbackend.EbitenBackend
	overlay *debugui.Overlay
}

func newGame(c *game.Controller) *Game {
	return &Game{controller: c}
}

func (g *Game) screenSize() (int, int) {
	cfg := g.controller.Config()
	width := boardOffset*2 + cfg.BoardCols*cfg.CellSize + sidePanelWidth
	height := boardOffset*2 + cfg.BoardRows*cfg.CellSize
	return width, height
}

func (g *Game) Update() error {
	if g.backend != nil {
		g.backend.BeginFrame()
		defer g.backend.EndFrame()
		g.overlay.Render()
	}

	now := time.Now()
	delta := time.Duration(0)
	if !g.lastUpdate.IsZero() {
		delta = min(now.Sub(g.lastUpdate), maxFrameDelta)
	}
	g.lastUpdate = now

	if g.backend == nil || !debugui.CaptureState().WantCaptureKeyboard {
		g.handleInput()
	}

	g.controller.Tick(delta)
	return nil
}

func (g *Game) handleInput() {
	c := g.controller

	if c.State() != game.Running {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
			c.Start()
		}
		return
	}

	if repeating(ebiten.KeyLeft) {
		c.Move(-1)
	}
	if repeating(ebiten.KeyRight) {
		c.Move(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		c.Rotate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		c.HardDrop()
	}
	c.SetSoftDrop(ebiten.IsKeyPressed(ebiten.KeyDown))

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		c.Start()
	}
}

// repeating reports a press on the first tick and then at repeatRate once
// the key has been held for repeatDelay ticks.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatRate == 0
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawSnapshot(screen, g.controller.Snapshot(), g.controller.Ghost())

	if g.backend != nil {
		g.backend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.screenSize()
}
