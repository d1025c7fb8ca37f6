package tetris

import (
	"fmt"
	"strings"
)

// Dimensions of the classic playing field. The two top rows are where pieces
// spawn.
const (
	DefaultRows    = 22
	DefaultColumns = 10
)

// Grid is the field of locked pieces. Each cell holds the Piece that was
// locked there or EmptyPiece. The falling piece is never stored in the Grid.
type Grid struct {
	rows, cols int
	cells      []Piece
}

// NewGrid creates an empty grid. NewGrid panics if either dimension is not
// positive.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("invalid grid size %dx%d", rows, cols))
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Piece, rows*cols),
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g *Grid) Columns() int { return g.cols }

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid) index(row, col int) int {
	if !g.inBounds(row, col) {
		panic(fmt.Sprintf("cell (%d,%d) out of range for %dx%d grid", row, col, g.rows, g.cols))
	}
	return row*g.cols + col
}

// At returns the piece locked at a cell. At panics for cells out of range.
func (g *Grid) At(row, col int) Piece {
	return g.cells[g.index(row, col)]
}

// Set stores a piece in a cell. Set panics for cells out of range.
func (g *Grid) Set(row, col int, p Piece) {
	g.cells[g.index(row, col)] = p
}

// IsEmpty returns whether the cell is inside the grid and unoccupied.
// Cells out of range are never empty, so IsEmpty doubles as a collision test.
func (g *Grid) IsEmpty(row, col int) bool {
	return g.inBounds(row, col) && g.cells[row*g.cols+col] == EmptyPiece
}

// IsRowFull returns whether every cell of the row is occupied.
func (g *Grid) IsRowFull(row int) bool {
	for _, p := range g.row(row) {
		if p == EmptyPiece {
			return false
		}
	}
	return true
}

// IsRowEmpty returns whether no cell of the row is occupied.
func (g *Grid) IsRowEmpty(row int) bool {
	for _, p := range g.row(row) {
		if p != EmptyPiece {
			return false
		}
	}
	return true
}

func (g *Grid) row(row int) []Piece {
	start := g.index(row, 0)
	return g.cells[start : start+g.cols]
}

// ClearFullRows removes every full row and drops the rows above them by the
// number of rows removed beneath them. It returns the number of rows removed.
func (g *Grid) ClearFullRows() int {
	cleared := 0
	for r := g.rows - 1; r >= 0; r-- {
		switch {
		case g.IsRowFull(r):
			clear(g.row(r))
			cleared++
		case cleared > 0:
			copy(g.row(r+cleared), g.row(r))
			clear(g.row(r))
		}
	}
	return cleared
}

// Cells returns a copy of the grid as rows of cells.
func (g *Grid) Cells() [][]Piece {
	cells := make([][]Piece, g.rows)
	for r := range cells {
		cells[r] = append([]Piece(nil), g.row(r)...)
	}
	return cells
}

// String returns the grid with occupied cells drawn as their piece letter and
// empty cells as '.'.
func (g *Grid) String() string {
	var buf strings.Builder
	for r := 0; r < g.rows; r++ {
		for _, p := range g.row(r) {
			if p == EmptyPiece {
				buf.WriteByte('.')
			} else {
				buf.WriteString(p.String())
			}
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}
