package game

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// Board is the well of placed cells. Rows are stored sparsely: a row index
// missing from the map is entirely empty.
type Board struct {
	cols     int
	rows     int
	cellSize int
	grid     *intmap.Map[int, []Kind]
}

// Zone carries the vertical bands used to classify a placement.
// Lines are pixel offsets from the top of the well.
type Zone struct {
	ExcessLine        int
	OverdraftLine     int
	GracePeriodBlocks int
	BlocksPlaced      int
}

// Placement reports what a single Board.Place wrote.
type Placement struct {
	Kind      Kind
	CellCount int
	Cells     []Coord

	// Zone flags are only computed when Place receives a zone.
	TouchedAboveExcessLine    bool
	TouchedBelowOverdraftLine bool
}

// Rows returns the distinct board rows the placement wrote to, ascending.
func (p Placement) Rows() []int {
	var rows []int
	for _, c := range p.Cells {
		if !slices.Contains(rows, c.Row) {
			rows = append(rows, c.Row)
		}
	}
	slices.Sort(rows)
	return rows
}

// NewBoard creates an empty board.
func NewBoard(cols, rows, cellSize int) *Board {
	return &Board{
		cols:     cols,
		rows:     rows,
		cellSize: cellSize,
		grid:     intmap.New[int, []Kind](rows),
	}
}

func (b *Board) Cols() int { return b.cols }

func (b *Board) Rows() int { return b.rows }

func (b *Board) CellSize() int { return b.cellSize }

// At returns the kind stored at (row, col), or false for empty or out-of-range cells.
func (b *Board) At(row, col int) (Kind, bool) {
	if col < 0 || col >= b.cols {
		return 0, false
	}
	cells, ok := b.grid.Get(row)
	if !ok || cells[col] == 0 {
		return 0, false
	}
	return cells[col], true
}

// Filled reports whether (row, col) holds a placed cell.
func (b *Board) Filled(row, col int) bool {
	_, ok := b.At(row, col)
	return ok
}

// IsLanded reports whether the piece cannot move down one more row.
func (b *Board) IsLanded(p *Piece) bool {
	return p.Collides(b, 0, 1)
}

// Place copies the piece's occupied cells into the grid tagged with its kind.
// Cells that fall outside the grid are dropped. When zone is non-nil the
// placement is also classified against the excess and overdraft lines.
func (b *Board) Place(p *Piece, zone *Zone) Placement {
	placement := Placement{Kind: p.Kind}

	for _, c := range p.Cells() {
		if c.Row < 0 || c.Row >= b.rows || c.Col < 0 || c.Col >= b.cols {
			continue
		}

		cells, ok := b.grid.Get(c.Row)
		if !ok {
			cells = make([]Kind, b.cols)
			b.grid.Put(c.Row, cells)
		}
		cells[c.Col] = p.Kind

		placement.CellCount++
		placement.Cells = append(placement.Cells, c)

		if zone == nil {
			continue
		}
		y := c.Row * b.cellSize
		if y < zone.ExcessLine {
			placement.TouchedAboveExcessLine = true
		}
		if y > zone.OverdraftLine && zone.BlocksPlaced >= zone.GracePeriodBlocks {
			placement.TouchedBelowOverdraftLine = true
		}
	}

	return placement
}

// IsSolid reports whether every column of the row is occupied.
func (b *Board) IsSolid(row int) bool {
	cells, ok := b.grid.Get(row)
	if !ok {
		return false
	}
	for _, k := range cells {
		if k == 0 {
			return false
		}
	}
	return true
}

// ClearSolidRows removes every solid row and returns how many were removed.
// Rows are processed in ascending order; for each one, every row above it
// moves down one position, overwriting the cleared row.
func (b *Board) ClearSolidRows() int {
	var solid []int
	for y := range b.rows {
		if b.IsSolid(y) {
			solid = append(solid, y)
		}
	}

	for i := 0; i < len(solid); i++ {
		cleared := solid[i]
		b.shiftDown(cleared)

		for k := i + 1; k < len(solid); k++ {
			if solid[k] < cleared {
				solid[k]++
			}
		}
	}

	return len(solid)
}

// shiftDown overwrites row with the row above it, all the way to the top,
// leaving row 0 empty.
func (b *Board) shiftDown(row int) {
	for y := row; y > 0; y-- {
		if above, ok := b.grid.Get(y - 1); ok {
			b.grid.Put(y, above)
		} else {
			b.grid.Del(y)
		}
	}
	b.grid.Del(0)
}

// HasSolidRowAbove reports whether any row with index < row is solid.
func (b *Board) HasSolidRowAbove(row int) bool {
	for y := 0; y < row && y < b.rows; y++ {
		if b.IsSolid(y) {
			return true
		}
	}
	return false
}

// TopOccupiedRowPixelY returns the smallest pixel offset among placed cells.
// The falling piece is not included. Returns false when the board is empty.
func (b *Board) TopOccupiedRowPixelY() (int, bool) {
	for y := range b.rows {
		cells, ok := b.grid.Get(y)
		if !ok {
			continue
		}
		for _, k := range cells {
			if k != 0 {
				return y * b.cellSize, true
			}
		}
	}
	return 0, false
}

// FilledRows returns how many rows hold at least one cell.
func (b *Board) FilledRows() int {
	return b.grid.Len()
}

// FilledCells returns the total number of placed cells.
func (b *Board) FilledCells() int {
	total := 0
	for y := range b.rows {
		cells, ok := b.grid.Get(y)
		if !ok {
			continue
		}
		for _, k := range cells {
			if k != 0 {
				total++
			}
		}
	}
	return total
}

// Grid returns a dense copy of the board for rendering. Empty cells hold the
// zero Kind.
func (b *Board) Grid() [][]Kind {
	out := make([][]Kind, b.rows)
	for y := range out {
		out[y] = make([]Kind, b.cols)
		if cells, ok := b.grid.Get(y); ok {
			copy(out[y], cells)
		}
	}
	return out
}

// Reset empties the board.
func (b *Board) Reset() {
	b.grid.Clear()
}
