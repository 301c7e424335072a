package game

import "time"

// PieceView is the render-facing copy of the active piece.
type PieceView struct {
	Kind     Kind
	Col      int
	Row      int
	Rotation int
	Shape    Shape
	Cells    []Coord
}

// Snapshot is everything a frontend needs to draw one frame. It shares no
// memory with the controller.
type Snapshot struct {
	State   State
	Cause   EndCause
	Variant string

	Cols     int
	Rows     int
	CellSize int
	Grid     [][]Kind
	Piece    *PieceView

	Elapsed      time.Duration
	Balance      float64
	Band         *Band
	BlocksPlaced int
	RowsCleared  int

	HasSafeLayer     bool
	Warning          bool
	WarningRemaining time.Duration
	ExcessLine       int
	OverdraftLine    int
}

// Snapshot copies the current board, piece and session metrics.
func (c *Controller) Snapshot() Snapshot {
	s := c.session
	snap := Snapshot{
		State:        s.State,
		Cause:        s.Cause,
		Variant:      c.rules.Name(),
		Cols:         c.cfg.BoardCols,
		Rows:         c.cfg.BoardRows,
		CellSize:     c.cfg.CellSize,
		Grid:         s.Board.Grid(),
		Elapsed:      s.Elapsed,
		Balance:      s.Balance,
		BlocksPlaced: s.BlocksPlaced,
		RowsCleared:  s.RowsCleared,
		HasSafeLayer: s.HasSafeLayer,
	}

	if c.cfg.BalanceBand != nil {
		band := *c.cfg.BalanceBand
		snap.Band = &band
	} else {
		snap.ExcessLine = c.cfg.ExcessLine()
		snap.OverdraftLine = c.cfg.OverdraftLine()
	}

	snap.WarningRemaining, snap.Warning = s.WarningRemaining()

	if p := s.Piece; p != nil {
		snap.Piece = &PieceView{
			Kind:     p.Kind,
			Col:      p.Col,
			Row:      p.Row,
			Rotation: p.Rotation,
			Shape:    p.RotatedShape(),
			Cells:    p.Cells(),
		}
	}

	return snap
}

// Ghost returns the cells the active piece would occupy if dropped now.
func (c *Controller) Ghost() []Coord {
	p := c.session.Piece
	if p == nil {
		return nil
	}
	ghost := *p
	for ghost.Fall(c.session.Board) {
	}
	return ghost.Cells()
}
