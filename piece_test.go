package tetris

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPieceIDs(t *testing.T) {
	want := map[Piece]int{I: 1, J: 2, L: 3, O: 4, S: 5, T: 6, Z: 7}
	got := make(map[Piece]int)
	for _, p := range NonemptyPieces {
		got[p] = p.ID()
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ID() mismatch(-want +got):\n%s", diff)
	}
}

func TestPieceFromRune(t *testing.T) {
	for _, p := range NonemptyPieces {
		if got := PieceFromRune(rune(p.String()[0])); got != p {
			t.Errorf("PieceFromRune(%q) got %v, want %v", p.String(), got, p)
		}
	}
	if got := PieceFromRune('x'); got != EmptyPiece {
		t.Errorf("PieceFromRune('x') got %v, want %v", got, EmptyPiece)
	}
}

func TestRotationStates(t *testing.T) {
	for _, p := range NonemptyPieces {
		want := 4
		if p == O {
			want = 1
		}
		if got := p.RotationStates(); got != want {
			t.Errorf("%v.RotationStates() got %d, want %d", p, got, want)
		}
	}
}

func TestTilesAreDistinct(t *testing.T) {
	for _, p := range NonemptyPieces {
		for r := 0; r < p.RotationStates(); r++ {
			seen := make(map[Position]bool)
			for _, pos := range p.Tiles(r) {
				if seen[pos] {
					t.Errorf("%v rotation %d repeats tile %v", p, r, pos)
				}
				seen[pos] = true
			}
		}
	}
}

func TestSpawnOffset(t *testing.T) {
	tests := []struct {
		piece Piece
		want  Position
	}{
		{piece: I, want: Position{-1, 3}},
		{piece: J, want: Position{0, 3}},
		{piece: L, want: Position{0, 3}},
		{piece: O, want: Position{0, 4}},
		{piece: S, want: Position{0, 3}},
		{piece: T, want: Position{0, 3}},
		{piece: Z, want: Position{0, 3}},
	}
	for _, test := range tests {
		t.Run(test.piece.String(), func(t *testing.T) {
			if got := test.piece.SpawnOffset(); got != test.want {
				t.Errorf("SpawnOffset() got %v, want %v", got, test.want)
			}
		})
	}
}

// Every piece spawns within the two top rows of the grid.
func TestSpawnInTopRows(t *testing.T) {
	for _, p := range NonemptyPieces {
		for _, pos := range NewTetromino(p).TilePositions() {
			if pos.Row < 0 || pos.Row > 1 || pos.Col < 0 || pos.Col >= DefaultColumns {
				t.Errorf("%v spawns a tile at %v", p, pos)
			}
		}
	}
}

func TestGameStringMatchesSpawnState(t *testing.T) {
	for _, p := range NonemptyPieces {
		if diff := cmp.Diff(p.GameString(), NewTetromino(p).String()); diff != "" {
			t.Errorf("%v spawn state mismatch(-want +got):\n%s", p, diff)
		}
	}
}

func TestTilesWrapRotation(t *testing.T) {
	if diff := cmp.Diff(T.Tiles(0), T.Tiles(4)); diff != "" {
		t.Errorf("Tiles(4) mismatch(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(T.Tiles(3), T.Tiles(-1)); diff != "" {
		t.Errorf("Tiles(-1) mismatch(-want +got):\n%s", diff)
	}
}

func TestToSlice(t *testing.T) {
	tests := []struct {
		desc  string
		input []Piece
		want  []Piece
	}{
		{
			desc: "No pieces",
		},
		{
			desc:  "EmptyPiece and O should not include the EmptyPiece",
			input: []Piece{EmptyPiece, O},
			want:  []Piece{O},
		},
		{
			desc:  "3 Pieces",
			input: []Piece{S, O, I},
			want:  []Piece{I, O, S},
		},
		{
			desc:  "Duplicate Piece",
			input: []Piece{I, I, S},
			want:  []Piece{I, S},
		},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			ps := NewPieceSet(test.input...)
			got := ps.ToSlice()
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("ToSlice() mismatch(-want +got):\n%s", diff)
			}
		})
	}
}

func TestLen(t *testing.T) {
	tests := []struct {
		desc   string
		pieces []Piece
		want   int
	}{
		{
			desc: "No pieces",
			want: 0,
		},
		{
			desc:   "Beginning and end of range",
			pieces: []Piece{EmptyPiece, Z},
			want:   1,
		},
		{
			desc:   "Duplicate Piece",
			pieces: []Piece{I, I, S},
			want:   2,
		},
		{
			desc:   "All pieces",
			pieces: NonemptyPieces[:],
			want:   7,
		},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			ps := NewPieceSet(test.pieces...)
			if got := ps.Len(); got != test.want {
				t.Errorf("Len() got %d, want %d", got, test.want)
			}
		})
	}
}

func TestInverted(t *testing.T) {
	tests := []struct {
		desc     string
		pieceSet PieceSet
		want     PieceSet
	}{
		{
			desc:     "Three pieces",
			pieceSet: NewPieceSet(I, O, S),
			want:     NewPieceSet(T, L, J, Z),
		},
		{
			desc: "No Pieces",
			want: NewPieceSet(NonemptyPieces[:]...),
		},
		{
			desc:     "All Pieces",
			pieceSet: NewPieceSet(NonemptyPieces[:]...),
		},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			if got := test.pieceSet.Inverted(); got != test.want {
				t.Errorf("Inverted() got %v, want %v", got, test.want)
			}
		})
	}
}

func TestContains(t *testing.T) {
	ps := NewPieceSet(S, T)
	for _, p := range NonemptyPieces {
		want := p == S || p == T
		if got := ps.Contains(p); got != want {
			t.Errorf("Contains(%v) got %t, want %t", p, got, want)
		}
	}
	if ps.Contains(EmptyPiece) {
		t.Error("Contains(EmptyPiece) got true, want false")
	}
}

func TestUnion(t *testing.T) {
	got := NewPieceSet(I, O).Union(NewPieceSet(O, Z))
	if diff := cmp.Diff([]Piece{I, O, Z}, got.ToSlice()); diff != "" {
		t.Errorf("Union() mismatch(-want +got):\n%s", diff)
	}
}
