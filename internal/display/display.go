// Package display holds what the front-ends share about showing a game:
// piece colours and the text of the score panel.
package display

import (
	"image/color"

	tetris "github.com/sandrochkuaseli/Tetris"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PointsPerScore scales the engine score for display: one cleared row is
// shown as 100 points.
const PointsPerScore = 100

// Colors maps each piece to the colour its cells are drawn in.
var Colors = map[tetris.Piece]color.RGBA{
	tetris.EmptyPiece: {R: 0, G: 0, B: 0, A: 255},

	tetris.I: {R: 0, G: 230, B: 230, A: 255},
	tetris.J: {R: 0, G: 122, B: 170, A: 255},
	tetris.L: {R: 255, G: 96, B: 0, A: 255},
	tetris.O: {R: 255, G: 190, B: 0, A: 255},
	tetris.S: {R: 0, G: 178, B: 75, A: 255},
	tetris.T: {R: 144, G: 0, B: 166, A: 255},
	tetris.Z: {R: 230, G: 0, B: 0, A: 255},
}

// Panel formats the score panel of a game.
type Panel struct {
	printer *message.Printer
}

// NewPanel creates a Panel that groups digits the way tag's language does.
func NewPanel(tag language.Tag) *Panel {
	return &Panel{printer: message.NewPrinter(tag)}
}

// Points formats an engine score as displayed points.
func (p *Panel) Points(score int) string {
	return p.printer.Sprintf("%d", score*PointsPerScore)
}

// Lines returns the lines of the score panel, top to bottom.
func (p *Panel) Lines(g *tetris.Game, level int) []string {
	return []string{
		"Score: " + p.Points(g.Score()),
		"Highscore: " + p.Points(g.HighScore()),
		p.printer.Sprintf("Lines: %d", g.LinesCleared()),
		p.printer.Sprintf("Level: %d", level),
	}
}

// GameOver returns the message shown when a game ends.
func (p *Panel) GameOver(g *tetris.Game) string {
	return "GAME OVER, your score was " + p.Points(g.Score())
}
