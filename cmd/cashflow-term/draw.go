package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/cashflow/game"
)

const (
	boardX = 2
	boardY = 1
	// Each board cell is two terminal columns wide.
	cellWidth = 2
)

var (
	frameStyle     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	ghostStyle     = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	warningStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	excessStyle    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	overdraftStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)

	kindStyles = map[game.Kind]tcell.Style{
		game.Inflow:  tcell.StyleDefault.Foreground(tcell.ColorBlue),
		game.Outflow: tcell.StyleDefault.Foreground(tcell.ColorRed),
	}
)

func (t *Terminal) draw() {
	s := t.screen
	s.Clear()

	snap := t.controller.Snapshot()
	right := boardX + 1 + snap.Cols*cellWidth

	for r := -1; r <= snap.Rows; r++ {
		s.SetContent(boardX, boardY+1+r, '│', nil, frameStyle)
		s.SetContent(right, boardY+1+r, '│', nil, frameStyle)
	}
	for x := boardX; x <= right; x++ {
		s.SetContent(x, boardY+1+snap.Rows, '─', nil, frameStyle)
	}

	if snap.Band == nil {
		t.drawMarker(right+1, snap.ExcessLine/snap.CellSize, excessStyle)
		t.drawMarker(right+1, snap.OverdraftLine/snap.CellSize, overdraftStyle)
	}

	for r, row := range snap.Grid {
		for c, kind := range row {
			if kind != 0 {
				t.drawCell(r, c, '█', kindStyles[kind])
			}
		}
	}

	if p := snap.Piece; p != nil {
		for _, cell := range t.controller.Ghost() {
			t.drawCell(cell.Row, cell.Col, '░', ghostStyle)
		}
		for _, cell := range p.Cells {
			if cell.Row >= 0 {
				t.drawCell(cell.Row, cell.Col, '█', kindStyles[p.Kind])
			}
		}
	}

	t.drawPanel(snap, right+4)
	s.Show()
}

func (t *Terminal) drawCell(row, col int, ch rune, style tcell.Style) {
	x := boardX + 1 + col*cellWidth
	y := boardY + 1 + row
	for i := range cellWidth {
		t.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (t *Terminal) drawMarker(x, row int, style tcell.Style) {
	t.screen.SetContent(x, boardY+1+row, '◀', nil, style)
}

func (t *Terminal) drawText(x, y int, style tcell.Style, text string) {
	for i, ch := range []rune(text) {
		t.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (t *Terminal) drawPanel(snap game.Snapshot, x int) {
	y := boardY + 1
	line := func(style tcell.Style, format string, args ...any) {
		t.drawText(x, y, style, fmt.Sprintf(format, args...))
		y++
	}

	line(textStyle, "CASHFLOW (%s)", snap.Variant)
	y++
	line(textStyle, "Time    %.1fs", snap.Elapsed.Seconds())
	line(textStyle, "Blocks  %d", snap.BlocksPlaced)

	if snap.Band != nil {
		line(textStyle, "Balance %.0f%%  [%.0f-%.0f]", snap.Balance, snap.Band.Lo, snap.Band.Hi)
		line(textStyle, "%s", balanceBar(snap.Balance, *snap.Band, 20))
	} else {
		line(textStyle, "Cleared %d", snap.RowsCleared)
		switch {
		case snap.Warning:
			line(warningStyle, "WARNING %.1fs", snap.WarningRemaining.Seconds())
		case !snap.HasSafeLayer:
			line(textStyle, "Build a solid row above the red marker")
		}
	}

	y++
	switch snap.State {
	case game.Idle:
		line(textStyle, "Press Enter to start")
	case game.Ended:
		line(warningStyle, "GAME OVER: %s", snap.Cause)
		line(textStyle, "Press r to restart, q to quit")
	}

	y++
	line(frameStyle, "←/→ move   ↑/z rotate   space drop")
	if snap.Band == nil {
		line(frameStyle, "↓ fast     q quit")
	}
}

// balanceBar draws the band as '=' and the balance as '|' on a width-wide track.
func balanceBar(balance float64, band game.Band, width int) string {
	bar := make([]rune, width)
	for i := range bar {
		pos := float64(i) / float64(width-1) * 100
		if band.Contains(pos) {
			bar[i] = '='
		} else {
			bar[i] = '·'
		}
	}
	bar[int(balance/100*float64(width-1))] = '|'
	return "[" + string(bar) + "]"
}
