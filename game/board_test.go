package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardPlace(t *testing.T) {
	for rotation := range 4 {
		board := NewBoard(10, 20, 30)
		p := &Piece{Shape: Shapes[3], Kind: Outflow, Col: 2, Row: 5, Rotation: rotation}

		placement := board.Place(p, nil)

		assert.Equal(t, p.RotatedShape().CellCount(), placement.CellCount)
		assert.Equal(t, Outflow, placement.Kind)
		assert.Equal(t, placement.CellCount, board.FilledCells())
		for _, c := range p.Cells() {
			kind, ok := board.At(c.Row, c.Col)
			require.True(t, ok, "cell %v should be filled", c)
			assert.Equal(t, Outflow, kind)
		}
		assert.False(t, placement.TouchedAboveExcessLine)
		assert.False(t, placement.TouchedBelowOverdraftLine)
	}
}

func TestBoardPlaceZoneFlags(t *testing.T) {
	zone := &Zone{ExcessLine: 150, OverdraftLine: 450, GracePeriodBlocks: 2}

	t.Run("above excess line", func(t *testing.T) {
		board := NewBoard(10, 20, 30)
		placement := board.Place(unitAt(Inflow, 4, 0), zone)
		assert.True(t, placement.TouchedAboveExcessLine)

		placement = board.Place(unitAt(Inflow, 5, 0), zone)
		assert.False(t, placement.TouchedAboveExcessLine, "y=150 sits on the line")
	})

	t.Run("below overdraft line honours grace period", func(t *testing.T) {
		board := NewBoard(10, 20, 30)

		early := *zone
		early.BlocksPlaced = 1
		placement := board.Place(unitAt(Inflow, 16, 0), &early)
		assert.False(t, placement.TouchedBelowOverdraftLine)

		late := *zone
		late.BlocksPlaced = 2
		placement = board.Place(unitAt(Inflow, 16, 1), &late)
		assert.True(t, placement.TouchedBelowOverdraftLine)

		placement = board.Place(unitAt(Inflow, 15, 1), &late)
		assert.False(t, placement.TouchedBelowOverdraftLine, "y=450 sits on the line")
	})
}

func TestPlacementRows(t *testing.T) {
	board := NewBoard(10, 20, 30)
	ell := &Piece{Shape: Shapes[4], Kind: Inflow, Col: 0, Row: 10}

	placement := board.Place(ell, nil)
	assert.Equal(t, []int{10, 11, 12}, placement.Rows())

	placement = board.Place(&Piece{Shape: Shapes[1], Kind: Inflow, Col: 2, Row: 19}, nil)
	assert.Equal(t, []int{19}, placement.Rows())
}

func TestBoardPlaceDropsOutOfRangeCells(t *testing.T) {
	board := NewBoard(10, 20, 30)
	bar := &Piece{Shape: Shapes[1], Kind: Inflow, Col: 8, Row: 0}

	placement := board.Place(bar, nil)
	assert.Equal(t, 2, placement.CellCount)
	assert.Equal(t, 2, board.FilledCells())
}

func TestBoardIsLanded(t *testing.T) {
	board := NewBoard(10, 20, 30)
	p := unitAt(Inflow, 18, 3)
	assert.False(t, board.IsLanded(p))

	p.Row = 19
	assert.True(t, board.IsLanded(p))

	fill(board, Inflow, Coord{Row: 10, Col: 3})
	p.Row = 9
	assert.True(t, board.IsLanded(p))
}

func TestClearSolidRowsSingle(t *testing.T) {
	board := NewBoard(10, 20, 30)
	fill(board, Outflow, Coord{Row: 10, Col: 3}, Coord{Row: 14, Col: 0}, Coord{Row: 17, Col: 5})
	fillRow(board, 15)
	require.Equal(t, 4, board.FilledRows())

	cleared := board.ClearSolidRows()

	assert.Equal(t, 1, cleared)
	assert.Equal(t, 3, board.FilledRows())
	assert.False(t, board.Filled(10, 3))
	assert.True(t, board.Filled(11, 3), "rows above move down one")
	assert.True(t, board.Filled(15, 0), "row directly above takes the cleared slot")
	assert.True(t, board.Filled(17, 5), "rows below are untouched")
	assert.False(t, board.IsSolid(15))
}

func TestClearSolidRowsMultiple(t *testing.T) {
	t.Run("adjacent", func(t *testing.T) {
		board := NewBoard(10, 20, 30)
		fill(board, Inflow, Coord{Row: 17, Col: 2}, Coord{Row: 17, Col: 7})
		fillRow(board, 18)
		fillRow(board, 19)

		assert.Equal(t, 2, board.ClearSolidRows())
		assert.Equal(t, 1, board.FilledRows())
		assert.True(t, board.Filled(19, 2))
		assert.True(t, board.Filled(19, 7))
		assert.Equal(t, 2, board.FilledCells())
	})

	t.Run("separated", func(t *testing.T) {
		board := NewBoard(10, 20, 30)
		fill(board, Inflow, Coord{Row: 11, Col: 4}, Coord{Row: 15, Col: 6})
		fillRow(board, 12)
		fillRow(board, 19)

		assert.Equal(t, 2, board.ClearSolidRows())
		assert.True(t, board.Filled(13, 4))
		assert.True(t, board.Filled(16, 6))
		assert.Equal(t, 2, board.FilledCells())
	})

	t.Run("nothing solid", func(t *testing.T) {
		board := NewBoard(10, 20, 30)
		fillRow(board, 19, 4)
		assert.Equal(t, 0, board.ClearSolidRows())
		assert.Equal(t, 9, board.FilledCells())
	})
}

func TestHasSolidRowAbove(t *testing.T) {
	board := NewBoard(10, 20, 30)
	assert.False(t, board.HasSolidRowAbove(20))

	fillRow(board, 15)
	assert.False(t, board.HasSolidRowAbove(15))
	assert.True(t, board.HasSolidRowAbove(16))

	fillRow(board, 8, 0)
	assert.False(t, board.HasSolidRowAbove(15))
}

func TestTopOccupiedRowPixelY(t *testing.T) {
	board := NewBoard(10, 20, 30)

	_, ok := board.TopOccupiedRowPixelY()
	assert.False(t, ok)

	fill(board, Inflow, Coord{Row: 17, Col: 0}, Coord{Row: 12, Col: 9})
	top, ok := board.TopOccupiedRowPixelY()
	assert.True(t, ok)
	assert.Equal(t, 360, top)
}

func TestBoardGridIsACopy(t *testing.T) {
	board := NewBoard(10, 20, 30)
	fill(board, Outflow, Coord{Row: 3, Col: 4})

	grid := board.Grid()
	assert.Len(t, grid, 20)
	assert.Len(t, grid[0], 10)
	assert.Equal(t, Outflow, grid[3][4])
	assert.Equal(t, Kind(0), grid[3][5])

	grid[3][4] = Inflow
	kind, _ := board.At(3, 4)
	assert.Equal(t, Outflow, kind)

	board.Reset()
	assert.Equal(t, 0, board.FilledCells())
	assert.Equal(t, 0, board.FilledRows())
}
