package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/cashflow/game"
)

var (
	backgroundColor = color.RGBA{0x12, 0x14, 0x1a, 0xff}
	frameColor      = color.RGBA{0x60, 0x60, 0x60, 0xff}
	ghostColor      = color.RGBA{0xff, 0xff, 0xff, 0x30}
	excessColor     = color.RGBA{0xf0, 0xc0, 0x30, 0xff}
	overdraftColor  = color.RGBA{0xe0, 0x40, 0x40, 0xff}
	warningColor    = color.RGBA{0xe0, 0x40, 0x40, 0x40}

	kindColors = map[game.Kind]color.RGBA{
		game.Inflow:  {0x3a, 0x7b, 0xd5, 0xff},
		game.Outflow: {0xd0, 0x4a, 0x3a, 0xff},
	}
)

func drawSnapshot(screen *ebiten.Image, snap game.Snapshot, ghost []game.Coord) {
	screen.Fill(backgroundColor)

	cs := float32(snap.CellSize)
	boardW := float32(snap.Cols) * cs
	boardH := float32(snap.Rows) * cs
	ox, oy := float32(boardOffset), float32(boardOffset)

	if snap.Warning {
		vector.DrawFilledRect(screen, ox, oy, boardW, boardH, warningColor, false)
	}
	vector.StrokeRect(screen, ox-2, oy-2, boardW+4, boardH+4, 2, frameColor, false)

	for r, row := range snap.Grid {
		for c, kind := range row {
			if kind != 0 {
				drawCell(screen, ox+float32(c)*cs, oy+float32(r)*cs, cs, kindColors[kind])
			}
		}
	}

	if p := snap.Piece; p != nil {
		for _, cell := range ghost {
			vector.DrawFilledRect(screen, ox+float32(cell.Col)*cs, oy+float32(cell.Row)*cs, cs, cs, ghostColor, false)
		}
		for _, cell := range p.Cells {
			if cell.Row >= 0 {
				drawCell(screen, ox+float32(cell.Col)*cs, oy+float32(cell.Row)*cs, cs, kindColors[p.Kind])
			}
		}
	}

	if snap.Band == nil {
		vector.StrokeLine(screen, ox, oy+float32(snap.ExcessLine), ox+boardW, oy+float32(snap.ExcessLine), 1, excessColor, false)
		vector.StrokeLine(screen, ox, oy+float32(snap.OverdraftLine), ox+boardW, oy+float32(snap.OverdraftLine), 1, overdraftColor, false)
	}

	drawPanel(screen, snap, int(ox+boardW)+20, boardOffset)
}

func drawCell(screen *ebiten.Image, x, y, size float32, clr color.RGBA) {
	vector.DrawFilledRect(screen, x, y, size, size, clr, false)
	vector.StrokeRect(screen, x, y, size, size, 1, color.Black, false)
}

func drawPanel(screen *ebiten.Image, snap game.Snapshot, x, y int) {
	lines := []string{
		"CASHFLOW",
		"",
		fmt.Sprintf("Rules:   %s", snap.Variant),
		fmt.Sprintf("Time:    %.1fs", snap.Elapsed.Seconds()),
		fmt.Sprintf("Blocks:  %d", snap.BlocksPlaced),
	}

	if snap.Band != nil {
		lines = append(lines,
			fmt.Sprintf("Balance: %.0f%%", snap.Balance),
			fmt.Sprintf("Band:    %.0f-%.0f", snap.Band.Lo, snap.Band.Hi),
		)
	} else {
		lines = append(lines, fmt.Sprintf("Cleared: %d", snap.RowsCleared))
		if snap.Warning {
			lines = append(lines, fmt.Sprintf("WARNING  %.1fs", snap.WarningRemaining.Seconds()))
		} else if !snap.HasSafeLayer {
			lines = append(lines, "Build a solid row", "above the red line")
		}
	}

	switch snap.State {
	case game.Idle:
		lines = append(lines, "", "Press Enter to start")
	case game.Ended:
		lines = append(lines, "", "GAME OVER", snap.Cause.String(), "Press R to restart")
	}

	lines = append(lines, "",
		"Left/Right  move",
		"Up/Z        rotate",
		"Space       drop",
	)
	if snap.Band == nil {
		lines = append(lines, "Down        fast")
	}

	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x, y+i*16)
	}
}
