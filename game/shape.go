package game

// Shape is an immutable occupancy matrix indexed as [row][col].
// Methods never modify the receiver; rotations return fresh matrices.
type Shape [][]bool

// Shapes is the fixed catalog pieces are drawn from.
var Shapes = []Shape{
	{ // Unit
		{true},
	},
	{ // Bar
		{true, true, true, true},
	},
	{ // Square
		{true, true},
		{true, true},
	},
	{ // Tee
		{true, true, true},
		{false, true, false},
	},
	{ // Ell
		{true, false},
		{true, false},
		{true, true},
	},
	{ // Ess
		{false, true, true},
		{true, true, false},
	},
	{ // Plus
		{false, true, false},
		{true, true, true},
		{false, true, false},
	},
}

// Rows returns the number of rows in the shape.
func (s Shape) Rows() int {
	return len(s)
}

// Cols returns the number of columns in the shape.
func (s Shape) Cols() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// CellCount returns the number of occupied entries.
func (s Shape) CellCount() int {
	count := 0
	for _, row := range s {
		for _, filled := range row {
			if filled {
				count++
			}
		}
	}
	return count
}

// Rotate returns the shape turned n quarter turns clockwise.
// Each turn is a transpose followed by reversing every row.
func (s Shape) Rotate(n int) Shape {
	n = ((n % 4) + 4) % 4

	rotated := s.clone()
	for range n {
		rotated = rotated.transpose().reverseRows()
	}
	return rotated
}

// Equal reports whether both shapes have the same dimensions and occupancy.
func (s Shape) Equal(other Shape) bool {
	if s.Rows() != other.Rows() || s.Cols() != other.Cols() {
		return false
	}
	for i := range s {
		for j := range s[i] {
			if s[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

func (s Shape) clone() Shape {
	out := make(Shape, len(s))
	for i := range s {
		out[i] = make([]bool, len(s[i]))
		copy(out[i], s[i])
	}
	return out
}

func (s Shape) transpose() Shape {
	rows, cols := s.Rows(), s.Cols()
	out := make(Shape, cols)
	for j := range cols {
		out[j] = make([]bool, rows)
		for i := range rows {
			out[j][i] = s[i][j]
		}
	}
	return out
}

func (s Shape) reverseRows() Shape {
	out := make(Shape, len(s))
	for i, row := range s {
		reversed := make([]bool, len(row))
		for j, v := range row {
			reversed[len(row)-1-j] = v
		}
		out[i] = reversed
	}
	return out
}

// maxExtent returns the largest dimension the shape can take in any rotation.
func (s Shape) maxExtent() int {
	return max(s.Rows(), s.Cols())
}
