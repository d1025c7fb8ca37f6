package tetris

// Randomizer picks a uniformly random int in [0, n). *math/rand/v2.Rand
// satisfies Randomizer.
type Randomizer interface {
	IntN(n int) int
}

// Source deals an endless sequence of pieces in which no piece is followed by
// the same piece.
type Source struct {
	rnd  Randomizer
	next Piece
}

// NewSource creates a Source with a random first piece.
func NewSource(rnd Randomizer) *Source {
	return &Source{
		rnd:  rnd,
		next: randPiece(rnd),
	}
}

func randPiece(rnd Randomizer) Piece {
	return NonemptyPieces[rnd.IntN(len(NonemptyPieces))]
}

// PeekNext returns the piece the next call to Next will deal.
func (s *Source) PeekNext() Piece {
	return s.next
}

// Next deals the previewed piece in its spawn placement and previews a new
// piece, drawing again until it differs from the one dealt.
func (s *Source) Next() Tetromino {
	dealt := s.next
	for s.next == dealt {
		s.next = randPiece(s.rnd)
	}
	return NewTetromino(dealt)
}
