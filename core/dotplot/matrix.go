// core/dotplot/matrix.go
package dotplot

// Cell is the match state of one grid coordinate.
type Cell uint8

const (
	NoMatch Cell = iota
	ForwardMatch
	ReverseComplementMatch
)

func (c Cell) String() string {
	switch c {
	case NoMatch:
		return "none"
	case ForwardMatch:
		return "forward"
	case ReverseComplementMatch:
		return "revcomp"
	}
	return "unknown"
}

// Matrix is a square grid of cells stored row-major: y selects the row
// (sequence 2 axis) and x the column (sequence 1 axis). It keeps the lengths
// of both input sequences for renderers that label axes.
type Matrix struct {
	Size int
	Len1 int
	Len2 int

	cells []Cell
}

// Counts tallies the non-empty cells of a matrix.
type Counts struct {
	Forward           int
	ReverseComplement int
}

// NewMatrix allocates a size×size matrix with every cell set to NoMatch.
func NewMatrix(size, len1, len2 int) *Matrix {
	if size < 0 {
		size = 0
	}
	return &Matrix{Size: size, Len1: len1, Len2: len2, cells: make([]Cell, size*size)}
}

func (m *Matrix) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.Size && y < m.Size
}

// At returns the cell at (x, y); coordinates outside the grid read as NoMatch.
func (m *Matrix) At(x, y int) Cell {
	if !m.inBounds(x, y) {
		return NoMatch
	}
	return m.cells[y*m.Size+x]
}

// Set overwrites the cell at (x, y). Out-of-grid coordinates are dropped and
// Set reports false.
func (m *Matrix) Set(x, y int, c Cell) bool {
	if !m.inBounds(x, y) {
		return false
	}
	m.cells[y*m.Size+x] = c
	return true
}

// Row returns row y. The slice aliases the matrix.
func (m *Matrix) Row(y int) []Cell {
	if y < 0 || y >= m.Size {
		return nil
	}
	return m.cells[y*m.Size : (y+1)*m.Size]
}

func (m *Matrix) Counts() Counts {
	var c Counts
	for _, v := range m.cells {
		switch v {
		case ForwardMatch:
			c.Forward++
		case ReverseComplementMatch:
			c.ReverseComplement++
		}
	}
	return c
}

// Equal reports whether both matrices have the same size, lengths and cells.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.Size != o.Size || m.Len1 != o.Len1 || m.Len2 != o.Len2 {
		return false
	}
	for i := range m.cells {
		if m.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}
