package tetris

import "strings"

// Tetromino is a Piece placed on the grid: which rotation state it is in and
// the offset its tiles are relative to. The zero rotation and spawn offset are
// restored by Reset.
//
// Tetromino does no bounds or collision checking. Callers test the result of
// a move or rotation against a Grid and undo it if it does not fit.
type Tetromino struct {
	Piece    Piece
	rotation int
	offset   Position
}

// NewTetromino returns the piece in its spawn placement.
func NewTetromino(p Piece) Tetromino {
	t := Tetromino{Piece: p}
	t.Reset()
	return t
}

// Rotation returns the index of the current rotation state.
func (t Tetromino) Rotation() int {
	return t.rotation
}

// Offset returns the position the tiles are relative to.
func (t Tetromino) Offset() Position {
	return t.offset
}

// TilePositions returns the four grid positions occupied by the piece.
func (t Tetromino) TilePositions() [4]Position {
	tiles := t.Piece.Tiles(t.rotation)
	for i := range tiles {
		tiles[i] = tiles[i].Add(t.offset)
	}
	return tiles
}

// RotateClockwise advances to the next rotation state.
func (t *Tetromino) RotateClockwise() {
	t.rotation = (t.rotation + 1) % t.Piece.RotationStates()
}

// RotateCounterClockwise goes back to the previous rotation state.
func (t *Tetromino) RotateCounterClockwise() {
	if t.rotation == 0 {
		t.rotation = t.Piece.RotationStates() - 1
		return
	}
	t.rotation--
}

// Move translates the piece by the given number of rows and columns.
func (t *Tetromino) Move(rows, cols int) {
	t.offset.Row += rows
	t.offset.Col += cols
}

// Reset puts the piece back in rotation state 0 at its spawn offset.
func (t *Tetromino) Reset() {
	t.rotation = 0
	t.offset = t.Piece.SpawnOffset()
}

// String draws the current rotation state in its bounding box.
func (t Tetromino) String() string {
	tiles := t.Piece.Tiles(t.rotation)
	minR, minC, maxR, maxC := tiles[0].Row, tiles[0].Col, tiles[0].Row, tiles[0].Col
	for _, p := range tiles[1:] {
		minR, maxR = min(minR, p.Row), max(maxR, p.Row)
		minC, maxC = min(minC, p.Col), max(maxC, p.Col)
	}

	var buf strings.Builder
	for r := minR; r <= maxR; r++ {
		if r > minR {
			buf.WriteByte('\n')
		}
		for c := minC; c <= maxC; c++ {
			filled := false
			for _, p := range tiles {
				if p.Row == r && p.Col == c {
					filled = true
					break
				}
			}
			if filled {
				buf.WriteRune('□')
			} else {
				buf.WriteRune('_')
			}
		}
	}
	return buf.String()
}
