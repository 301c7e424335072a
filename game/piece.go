package game

// Coord addresses one grid position.
type Coord struct {
	Row, Col int
}

// Piece is the falling shape owned by the controller until it lands.
// Col and Row locate the top-left corner of the rotated shape's bounding box.
type Piece struct {
	Shape    Shape
	Kind     Kind
	Col      int
	Row      int
	Rotation int
}

// RotatedShape returns the base shape turned to the piece's current rotation.
func (p *Piece) RotatedShape() Shape {
	return p.ShapeAt(p.Rotation)
}

// ShapeAt returns the base shape turned to the given rotation without
// touching the piece, so candidates can be probed before committing.
func (p *Piece) ShapeAt(rotation int) Shape {
	return p.Shape.Rotate(rotation)
}

// PixelY returns the vertical offset of the piece in board units.
func (p *Piece) PixelY(cellSize int) int {
	return p.Row * cellSize
}

// Collides reports whether the piece, shifted by (dCol, dRow) at its current
// rotation, would leave the well or overlap a filled cell.
func (p *Piece) Collides(board *Board, dCol, dRow int) bool {
	return p.CollidesAt(board, dCol, dRow, p.Rotation)
}

// CollidesAt is Collides with an explicit rotation.
func (p *Piece) CollidesAt(board *Board, dCol, dRow, rotation int) bool {
	return collides(p.ShapeAt(rotation), p.Col+dCol, p.Row+dRow, board)
}

func collides(shape Shape, col, row int, board *Board) bool {
	for i := range shape {
		for j, filled := range shape[i] {
			if !filled {
				continue
			}

			x := col + j
			y := row + i

			if x < 0 || x >= board.Cols() || y >= board.Rows() {
				return true
			}

			if y >= 0 && board.Filled(y, x) {
				return true
			}
		}
	}

	return false
}

// Move shifts the piece dx columns. Blocked moves are silently rejected.
func (p *Piece) Move(board *Board, dx int) bool {
	if p.Collides(board, dx, 0) {
		return false
	}
	p.Col += dx
	return true
}

// Rotate turns the piece one quarter clockwise in place. There are no wall
// kicks: if the rotated shape collides the piece is left unchanged.
func (p *Piece) Rotate(board *Board) bool {
	next := (p.Rotation + 1) % 4
	if p.CollidesAt(board, 0, 0, next) {
		return false
	}
	p.Rotation = next
	return true
}

// Fall moves the piece down one row unless it has landed.
func (p *Piece) Fall(board *Board) bool {
	if p.Collides(board, 0, 1) {
		return false
	}
	p.Row++
	return true
}

// Cells returns the board coordinates the piece occupies.
func (p *Piece) Cells() []Coord {
	shape := p.RotatedShape()
	cells := make([]Coord, 0, shape.CellCount())
	for i := range shape {
		for j, filled := range shape[i] {
			if filled {
				cells = append(cells, Coord{Row: p.Row + i, Col: p.Col + j})
			}
		}
	}
	return cells
}
