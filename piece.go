package tetris

import (
	"fmt"
	"math/bits"
)

// Piece represents a tetrimino or empty piece. The numeric value of a
// non-empty Piece is its id: the value written into grid cells when the piece
// locks.
type Piece uint8

// Possible pieces.
const (
	EmptyPiece Piece = iota
	I
	J
	L
	O
	S
	T
	Z
)

// NonemptyPieces is an ordered array of non-empty pieces.
var NonemptyPieces = [7]Piece{I, J, L, O, S, T, Z}

// ID returns the grid cell value of the piece.
func (p Piece) ID() int {
	return int(p)
}

func (p Piece) String() string {
	switch p {
	case EmptyPiece:
		return "Ɛ"
	case I:
		return "I"
	case J:
		return "J"
	case L:
		return "L"
	case O:
		return "O"
	case S:
		return "S"
	case T:
		return "T"
	case Z:
		return "Z"
	}
	panic("Unknown piece")
}

// GameString returns a string depiction of what the piece looks like when it
// spawns.
func (p Piece) GameString() string {
	switch p {
	case EmptyPiece:
		return ""
	case I:
		return "□□□□"
	case J:
		return "□__\n□□□"
	case L:
		return "__□\n□□□"
	case O:
		return "□□\n□□"
	case S:
		return "_□□\n□□_"
	case T:
		return "_□_\n□□□"
	case Z:
		return "□□_\n_□□"
	}
	panic("Unknown piece")
}

// PieceFromRune returns the piece named by r or EmptyPiece.
func PieceFromRune(r rune) Piece {
	switch r {
	case 'I', 'i':
		return I
	case 'J', 'j':
		return J
	case 'L', 'l':
		return L
	case 'O', 'o':
		return O
	case 'S', 's':
		return S
	case 'T', 't':
		return T
	case 'Z', 'z':
		return Z
	}
	return EmptyPiece
}

// shape is the fixed geometry of a piece: the four tile offsets of every
// rotation state, relative to the piece's offset, and where it spawns.
type shape struct {
	states [][4]Position
	spawn  Position
}

var shapes = [8]shape{
	I: {
		states: [][4]Position{
			{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
			{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
			{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
			{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		},
		// One row above the grid so the first row of tiles is row 0.
		spawn: Position{-1, 3},
	},
	J: {
		states: [][4]Position{
			{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
			{{0, 1}, {0, 2}, {1, 1}, {2, 1}},
			{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
			{{0, 1}, {1, 1}, {2, 1}, {2, 0}},
		},
		spawn: Position{0, 3},
	},
	L: {
		states: [][4]Position{
			{{0, 2}, {1, 0}, {1, 1}, {1, 2}},
			{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
			{{1, 0}, {1, 1}, {1, 2}, {2, 0}},
			{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		},
		spawn: Position{0, 3},
	},
	O: {
		states: [][4]Position{
			{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		},
		spawn: Position{0, 4},
	},
	S: {
		states: [][4]Position{
			{{0, 1}, {0, 2}, {1, 0}, {1, 1}},
			{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
			{{1, 1}, {1, 2}, {2, 0}, {2, 1}},
			{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		},
		spawn: Position{0, 3},
	},
	T: {
		states: [][4]Position{
			{{0, 1}, {1, 0}, {1, 1}, {1, 2}},
			{{0, 1}, {1, 1}, {1, 2}, {2, 1}},
			{{1, 0}, {1, 1}, {1, 2}, {2, 1}},
			{{0, 1}, {1, 0}, {1, 1}, {2, 1}},
		},
		spawn: Position{0, 3},
	},
	Z: {
		states: [][4]Position{
			{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
			{{0, 2}, {1, 1}, {1, 2}, {2, 1}},
			{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
			{{0, 1}, {1, 0}, {1, 1}, {2, 0}},
		},
		spawn: Position{0, 3},
	},
}

func (p Piece) shape() shape {
	if p == EmptyPiece || p > Z {
		panic(fmt.Sprintf("no shape for piece %d", uint8(p)))
	}
	return shapes[p]
}

// RotationStates returns the number of distinct orientations of the piece.
func (p Piece) RotationStates() int {
	return len(p.shape().states)
}

// SpawnOffset returns the offset the piece starts at when it is activated.
func (p Piece) SpawnOffset() Position {
	return p.shape().spawn
}

// Tiles returns the tile offsets of a rotation state relative to the piece's
// offset. rotation is taken modulo RotationStates.
func (p Piece) Tiles(rotation int) [4]Position {
	states := p.shape().states
	n := len(states)
	return states[((rotation%n)+n)%n]
}

// PieceSet represents a set of pieces.
// Duplicates and EmptyPieces are not recorded.
type PieceSet uint8

// NewPieceSet creates a new PieceSet from the specified Pieces.
func NewPieceSet(pieces ...Piece) PieceSet {
	var ps PieceSet
	for _, p := range pieces {
		ps = ps.Add(p)
	}
	return ps
}

// Add returns a PieceSet with a certain Piece added.
func (ps PieceSet) Add(p Piece) PieceSet {
	if p == EmptyPiece {
		return ps
	}
	return ps | (1 << p)
}

// Contains returns whether the PieceSet contains the piece.
func (ps PieceSet) Contains(p Piece) bool {
	return p != EmptyPiece && ps&(1<<p) != 0
}

// Len returns the number of items in the PieceSet.
func (ps PieceSet) Len() int {
	return bits.OnesCount8(uint8(ps))
}

// ToSlice returns the Pieces in the set in NonemptyPieces order.
func (ps PieceSet) ToSlice() []Piece {
	if ps == 0 {
		return nil
	}
	slice := make([]Piece, 0, ps.Len())
	for _, piece := range NonemptyPieces {
		if ps.Contains(piece) {
			slice = append(slice, piece)
		}
	}
	return slice
}

func (ps PieceSet) String() string {
	return fmt.Sprint(ps.ToSlice())
}

// Inverted returns a PieceSet that contains all Pieces *not* contained in this
// PieceSet.
func (ps PieceSet) Inverted() PieceSet {
	return (ps ^ 255) &^ (1 << EmptyPiece)
}

// Union returns a PieceSet with the Pieces of both sets.
func (ps PieceSet) Union(other PieceSet) PieceSet {
	return ps | other
}
