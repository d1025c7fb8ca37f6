// Package board draws a game in the terminal and drives it from the keyboard
// and the gravity timer.
package board

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	tetris "github.com/sandrochkuaseli/Tetris"
	"github.com/sandrochkuaseli/Tetris/internal/display"
	"github.com/sandrochkuaseli/Tetris/speed"
	"golang.org/x/text/language"
)

const (
	cellWidth = 2
	padTop    = 1
	padLeft   = 2
	panelGap  = 4
)

const (
	verRune = '┃'
	hozRune = '━'
	botLeft = '┗'
	botRght = '┛'
)

var actionKeys = map[tcell.Key]tetris.Action{
	tcell.KeyLeft:  tetris.Left,
	tcell.KeyRight: tetris.Right,
	tcell.KeyDown:  tetris.SoftDrop,
	tcell.KeyUp:    tetris.RotateCW,
}

var actionRunes = map[rune]tetris.Action{
	'z': tetris.RotateCCW,
	'x': tetris.RotateCW,
}

// Board represents the terminal front-end and the game it is showing.
type Board struct {
	screen   tcell.Screen
	style    tcell.Style
	panel    *display.Panel
	newGame  func() *tetris.Game
	interval time.Duration

	game   *tetris.Game
	speed  *speed.Schedule
	paused bool
}

// New initialises the terminal and starts a game from newGame. interval is the
// starting gravity interval of every game.
func New(newGame func() *tetris.Game, interval time.Duration) (*Board, error) {
	tcell.SetEncodingFallback(tcell.EncodingFallbackASCII)

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	return newBoard(screen, newGame, interval)
}

func newBoard(screen tcell.Screen, newGame func() *tetris.Game, interval time.Duration) (*Board, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}

	b := Board{
		screen:   screen,
		style:    tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite),
		panel:    display.NewPanel(language.English),
		newGame:  newGame,
		interval: interval,
	}
	b.restart()

	return &b, nil
}

// Shutdown restores the terminal.
func (b *Board) Shutdown() {
	b.screen.Fini()
}

// Run handles keys and gravity ticks until the player quits. All game
// commands are issued from the calling goroutine.
func (b *Board) Run() {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go b.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(b.speed.Interval())
	defer ticker.Stop()

	b.draw()
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			switch ev := event.(type) {
			case *tcell.EventResize:
				b.screen.Sync()
			case *tcell.EventKey:
				if b.handleKey(ev, ticker) {
					return
				}
			}

		case <-ticker.C:
			if b.paused || b.game.IsOver() {
				continue
			}
			b.game.MoveDown()
			if b.speed.Update(b.game.Score()) {
				ticker.Reset(b.speed.Interval())
			}
			if b.game.IsOver() {
				b.logGameOver()
			}
		}
		b.draw()
	}
}

// handleKey applies a key press and returns whether the player quit.
func (b *Board) handleKey(ev *tcell.EventKey, ticker *time.Ticker) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'p':
			if !b.game.IsOver() {
				b.paused = !b.paused
			}
			return false
		case 'r':
			b.restart()
			ticker.Reset(b.speed.Interval())
			return false
		}
	}

	if b.paused || b.game.IsOver() {
		return false
	}

	action, ok := actionKeys[ev.Key()]
	if !ok && ev.Key() == tcell.KeyRune {
		action, ok = actionRunes[ev.Rune()]
	}
	if !ok {
		return false
	}

	b.game.Apply(action)
	if action == tetris.SoftDrop && b.game.IsOver() {
		b.logGameOver()
	}
	return false
}

func (b *Board) restart() {
	b.game = b.newGame()
	b.speed = speed.New(b.interval)
	b.paused = false
}

func (b *Board) logGameOver() {
	log.Printf("game over: score=%d high=%d lines=%d level=%d",
		b.game.Score(), b.game.HighScore(), b.game.LinesCleared(), b.speed.Level())
	if err := b.game.Err(); err != nil {
		log.Printf("high score: %v", err)
	}
}

// =============================================================================

func (b *Board) draw() {
	b.screen.Clear()

	rows, cols := b.game.Rows(), b.game.Columns()
	width := cols * cellWidth

	// Walls and floor.
	for r := 0; r < rows; r++ {
		b.screen.SetContent(padLeft-1, padTop+r, verRune, nil, b.style)
		b.screen.SetContent(padLeft+width, padTop+r, verRune, nil, b.style)
	}
	b.screen.SetContent(padLeft-1, padTop+rows, botLeft, nil, b.style)
	for w := 0; w < width; w++ {
		b.screen.SetContent(padLeft+w, padTop+rows, hozRune, nil, b.style)
	}
	b.screen.SetContent(padLeft+width, padTop+rows, botRght, nil, b.style)

	for r, row := range b.game.Cells() {
		for c, p := range row {
			if p != tetris.EmptyPiece {
				b.drawCell(r, c, p)
			}
		}
	}

	current := b.game.Current()
	for _, pos := range current.TilePositions() {
		if pos.Row >= 0 {
			b.drawCell(pos.Row, pos.Col, current.Piece)
		}
	}

	panelX := padLeft + width + panelGap
	y := padTop
	for _, line := range b.panel.Lines(b.game, b.speed.Level()) {
		b.print(panelX, y, line)
		y++
	}

	y++
	b.print(panelX, y, "Next:")
	next := b.game.NextPiece()
	for _, pos := range next.Tiles(0) {
		b.fill(panelX+pos.Col*cellWidth, y+1+pos.Row, next)
	}

	y += 5
	for _, help := range []string{"←/→ move   ↓ drop", "↑/x rotate  z back", "<p> pause  <r> restart", "<q> quit"} {
		b.print(panelX, y, help)
		y++
	}

	switch {
	case b.game.IsOver():
		b.print(padLeft, padTop+rows+2, b.panel.GameOver(b.game))
	case b.paused:
		b.print(padLeft+width/2-3, padTop+rows/2, "PAUSED")
	}

	b.screen.Show()
}

func (b *Board) drawCell(row, col int, p tetris.Piece) {
	b.fill(padLeft+col*cellWidth, padTop+row, p)
}

func (b *Board) fill(x, y int, p tetris.Piece) {
	c := display.Colors[p]
	style := b.style.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	for w := 0; w < cellWidth; w++ {
		b.screen.SetContent(x+w, y, ' ', nil, style)
	}
}

func (b *Board) print(x, y int, str string) {
	for _, c := range str {
		var comb []rune
		w := runewidth.RuneWidth(c)
		if w == 0 {
			comb = []rune{c}
			c = ' '
			w = 1
		}
		b.screen.SetContent(x, y, c, comb, b.style)
		x += w
	}
}
