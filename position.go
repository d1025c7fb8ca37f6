package tetris

import "fmt"

// Position is a (row, column) pair on the grid. Row 0 is the top row.
type Position struct {
	Row, Col int
}

// Add returns the sum of two positions.
func (p Position) Add(other Position) Position {
	return Position{Row: p.Row + other.Row, Col: p.Col + other.Col}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
