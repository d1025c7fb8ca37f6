package tetris

import (
	"errors"
	"fmt"
)

// tetrisBonus is added on top of the line count when a single lock clears
// four rows.
const tetrisBonus = 4

// ScoreStore persists the highest score between games.
type ScoreStore interface {
	// Load returns the stored score. A store with no record returns 0 and a
	// nil error.
	Load() (int, error)
	Save(score int) error
}

// State is the phase of a game.
type State uint8

// Game states. GameOver is terminal.
const (
	Active State = iota
	GameOver
)

func (s State) String() string {
	switch s {
	case Active:
		return "Active"
	case GameOver:
		return "Game_Over"
	}
	return "Unknown"
}

// Game is a single game session: the grid, the falling piece, the piece
// source and the score. A Game is not safe for concurrent use; commands are
// expected to arrive one at a time from a single input/timer loop.
type Game struct {
	grid    *Grid
	current Tetromino
	source  *Source
	store   ScoreStore

	score     int
	highScore int
	lines     int
	state     State
	err       error
}

// NewGame starts a game on an empty DefaultRows x DefaultColumns grid. The
// high score is read from store; a store that fails to load counts as having
// no record and the failure is reported by Err.
func NewGame(store ScoreStore, rnd Randomizer) *Game {
	g := &Game{
		grid:   NewGrid(DefaultRows, DefaultColumns),
		source: NewSource(rnd),
		store:  store,
	}
	high, err := store.Load()
	if err != nil {
		g.err = fmt.Errorf("load high score: %w", err)
		high = 0
	}
	g.highScore = max(high, 0)
	g.current = g.source.Next()
	return g
}

// MoveLeft moves the falling piece one column left if it fits.
func (g *Game) MoveLeft() { g.Apply(Left) }

// MoveRight moves the falling piece one column right if it fits.
func (g *Game) MoveRight() { g.Apply(Right) }

// RotateClockwise rotates the falling piece if the new orientation fits.
// There are no wall kicks: a rotation that does not fit is undone.
func (g *Game) RotateClockwise() { g.Apply(RotateCW) }

// RotateCounterClockwise is the mirror of RotateClockwise.
func (g *Game) RotateCounterClockwise() { g.Apply(RotateCCW) }

// MoveDown moves the falling piece one row down. If it cannot move down it is
// locked into the grid, full rows are cleared and scored, and either the game
// ends or the next piece is dealt. Gravity ticks and soft drops both use
// MoveDown.
func (g *Game) MoveDown() { g.Apply(SoftDrop) }

// Apply performs an action. Actions after the game is over are ignored.
func (g *Game) Apply(a Action) {
	if g.state == GameOver {
		return
	}
	switch a {
	case Left, Right, RotateCW, RotateCCW:
		g.transform(a)
		if !g.fits() {
			g.transform(a.Inverse())
		}
	case SoftDrop:
		g.current.Move(1, 0)
		if !g.fits() {
			g.current.Move(-1, 0)
			g.lock()
		}
	}
}

func (g *Game) transform(a Action) {
	switch a {
	case Left:
		g.current.Move(0, -1)
	case Right:
		g.current.Move(0, 1)
	case RotateCW:
		g.current.RotateClockwise()
	case RotateCCW:
		g.current.RotateCounterClockwise()
	}
}

// fits returns whether every tile of the falling piece is on an empty cell.
func (g *Game) fits() bool {
	for _, p := range g.current.TilePositions() {
		if !g.grid.IsEmpty(p.Row, p.Col) {
			return false
		}
	}
	return true
}

func (g *Game) lock() {
	for _, p := range g.current.TilePositions() {
		g.grid.Set(p.Row, p.Col, g.current.Piece)
	}

	cleared := g.grid.ClearFullRows()
	g.lines += cleared
	g.score += cleared
	if cleared == 4 {
		g.score += tetrisBonus
	}

	// Anything left in the two spawn rows means the next piece has no room.
	if !g.grid.IsRowEmpty(0) || !g.grid.IsRowEmpty(1) {
		g.state = GameOver
		if g.score > g.highScore {
			g.highScore = g.score
			if err := g.store.Save(g.score); err != nil {
				g.err = errors.Join(g.err, fmt.Errorf("save high score: %w", err))
			}
		}
		return
	}
	g.current = g.source.Next()
}

// Rows returns the number of grid rows.
func (g *Game) Rows() int { return g.grid.Rows() }

// Columns returns the number of grid columns.
func (g *Game) Columns() int { return g.grid.Columns() }

// Cell returns the locked piece at a cell, or EmptyPiece.
func (g *Game) Cell(row, col int) Piece { return g.grid.At(row, col) }

// Cells returns a copy of the locked cells.
func (g *Game) Cells() [][]Piece { return g.grid.Cells() }

// Current returns the falling piece. After the game is over it is the piece
// that locked last.
func (g *Game) Current() Tetromino { return g.current }

// NextPiece returns the piece that will fall after the current one.
func (g *Game) NextPiece() Piece { return g.source.PeekNext() }

// Score returns the score of this game.
func (g *Game) Score() int { return g.score }

// HighScore returns the best score, including this game once it is over.
func (g *Game) HighScore() int { return g.highScore }

// LinesCleared returns the number of rows cleared in this game.
func (g *Game) LinesCleared() int { return g.lines }

// State returns the game phase.
func (g *Game) State() State { return g.state }

// IsOver returns whether the game has ended.
func (g *Game) IsOver() bool { return g.state == GameOver }

// Err returns the errors from loading or saving the high score, if any.
// These never stop the game.
func (g *Game) Err() error { return g.err }

func (g *Game) String() string {
	return fmt.Sprintf("State: %s Score: %d High: %d Current: %s%v Next: %s\n%s",
		g.state, g.score, g.highScore, g.current.Piece, g.current.TilePositions(), g.NextPiece(), g.grid)
}
