package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/cashflow/game"
)

// SessionInspector shows the controller's lifecycle, metrics and active piece
// and offers buttons to restart or reset the session.
type SessionInspector struct {
	showGrid bool
}

func NewSessionInspector() *SessionInspector {
	return &SessionInspector{}
}

func (si *SessionInspector) Render(c *game.Controller) {
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	snap := c.Snapshot()

	imgui.Text(fmt.Sprintf("Variant: %s", snap.Variant))
	imgui.Text(fmt.Sprintf("State: %s", snap.State))
	if snap.State == game.Ended {
		imgui.Text(fmt.Sprintf("Cause: %s", snap.Cause))
	}
	imgui.Text(fmt.Sprintf("Elapsed: %s", snap.Elapsed.Truncate(time.Millisecond)))
	imgui.Text(fmt.Sprintf("Blocks Placed: %d", snap.BlocksPlaced))

	if imgui.Button("Start") {
		c.Start()
	}
	imgui.SameLine()
	if imgui.Button("Reset") {
		c.Reset()
	}

	imgui.Separator()
	if snap.Band != nil {
		imgui.Text(fmt.Sprintf("Balance: %.0f%% (band %.0f-%.0f)", snap.Balance, snap.Band.Lo, snap.Band.Hi))
		si.drawBalanceBar(snap.Balance, *snap.Band)
	} else {
		imgui.Text(fmt.Sprintf("Rows Cleared: %d", snap.RowsCleared))
		imgui.Text(fmt.Sprintf("Excess Line: %d  Overdraft Line: %d", snap.ExcessLine, snap.OverdraftLine))
		imgui.Text(fmt.Sprintf("Safe Layer: %t", snap.HasSafeLayer))
		if snap.Warning {
			imgui.Text(fmt.Sprintf("Warning: %.1fs left", snap.WarningRemaining.Seconds()))
		} else {
			imgui.Text("Warning: none")
		}
	}

	if imgui.TreeNodeStr("Active Piece") {
		if p := snap.Piece; p != nil {
			imgui.Text(fmt.Sprintf("Kind: %s", p.Kind))
			imgui.Text(fmt.Sprintf("Position: col %d, row %d (y=%d)", p.Col, p.Row, p.Row*snap.CellSize))
			imgui.Text(fmt.Sprintf("Rotation: %d", p.Rotation))
			for _, cell := range p.Cells {
				imgui.BulletText(fmt.Sprintf("(%d, %d)", cell.Row, cell.Col))
			}
		} else {
			imgui.Text("none")
		}
		imgui.TreePop()
	}

	imgui.Checkbox("Show Grid", &si.showGrid)
	if si.showGrid {
		for _, line := range gridLines(snap.Grid) {
			imgui.Text(line)
		}
	}

	imgui.End()
}

func (si *SessionInspector) drawBalanceBar(balance float64, band game.Band) {
	const width, height = 200.0, 10.0

	drawList := imgui.WindowDrawList()
	pos := imgui.CursorScreenPos()

	background := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.2, 0.2, 1))
	safe := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.3, 0.6))
	marker := imgui.ColorU32Vec4(imgui.NewVec4(0.9, 0.8, 0.2, 1))

	drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+width, pos.Y+height), background)
	lo := pos.X + float32(band.Lo/100)*width
	hi := pos.X + float32(band.Hi/100)*width
	drawList.AddRectFilled(imgui.NewVec2(lo, pos.Y), imgui.NewVec2(hi, pos.Y+height), safe)
	x := pos.X + float32(balance/100)*width
	drawList.AddRectFilled(imgui.NewVec2(x-1, pos.Y), imgui.NewVec2(x+1, pos.Y+height), marker)

	imgui.Dummy(imgui.NewVec2(width, height))
}

// gridLines renders the board as text, one line per row: '.' empty,
// '+' inflow, '-' outflow.
func gridLines(grid [][]game.Kind) []string {
	lines := make([]string, len(grid))
	for r, row := range grid {
		buf := make([]byte, len(row))
		for c, kind := range row {
			switch kind {
			case game.Inflow:
				buf[c] = '+'
			case game.Outflow:
				buf[c] = '-'
			default:
				buf[c] = '.'
			}
		}
		lines[r] = string(buf)
	}
	return lines
}
