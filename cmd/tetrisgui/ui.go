package main

import (
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	tetris "github.com/sandrochkuaseli/Tetris"
	"github.com/sandrochkuaseli/Tetris/internal/display"
	"github.com/sandrochkuaseli/Tetris/speed"
	"golang.org/x/text/language"
)

const (
	cellSize   = 30
	tileBorder = 2
	panelWidth = 385
	panelX     = tetris.DefaultColumns*cellSize + 20

	screenWidth  = tetris.DefaultColumns*cellSize + panelWidth
	screenHeight = tetris.DefaultRows * cellSize

	// Held movement keys repeat after repeatDelay, every repeatRate.
	repeatDelay = 200 * time.Millisecond
	repeatRate  = 50 * time.Millisecond
)

var (
	background = color.RGBA{R: 204, G: 204, B: 204, A: 255}
	gridColor  = color.RGBA{R: 40, G: 40, B: 40, A: 255}
)

// heldKeys repeat while held down.
var heldKeys = map[ebiten.Key]tetris.Action{
	ebiten.KeyArrowLeft:  tetris.Left,
	ebiten.KeyArrowRight: tetris.Right,
	ebiten.KeyArrowDown:  tetris.SoftDrop,
}

// pressKeys act once per press.
var pressKeys = map[ebiten.Key]tetris.Action{
	ebiten.KeyArrowUp: tetris.RotateCW,
	ebiten.KeyX:       tetris.RotateCW,
	ebiten.KeyZ:       tetris.RotateCCW,
}

// ui is the windowed front-end. It implements ebiten.Game.
type ui struct {
	newGame  func() *tetris.Game
	interval time.Duration
	tick     time.Duration
	panel    *display.Panel

	game    *tetris.Game
	speed   *speed.Schedule
	elapsed time.Duration
	paused  bool
}

func newUI(newGame func() *tetris.Game, interval time.Duration, tps int) *ui {
	u := &ui{
		newGame:  newGame,
		interval: interval,
		tick:     time.Second / time.Duration(tps),
		panel:    display.NewPanel(language.English),
	}
	u.restart()
	return u
}

func (u *ui) restart() {
	u.game = u.newGame()
	u.speed = speed.New(u.interval)
	u.elapsed = 0
	u.paused = false
}

// Update reads the keyboard and advances the game by one tick.
func (u *ui) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		u.restart()
		return nil
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		if !u.game.IsOver() {
			u.paused = !u.paused
		}
		return nil
	}

	var actions []tetris.Action
	for key, action := range heldKeys {
		if repeats(inpututil.KeyPressDuration(key), u.tick) {
			actions = append(actions, action)
		}
	}
	for key, action := range pressKeys {
		if inpututil.IsKeyJustPressed(key) {
			actions = append(actions, action)
		}
	}
	u.step(actions)
	return nil
}

// repeats returns whether a key held for the given number of ticks should
// act on this tick.
func repeats(ticks int, tick time.Duration) bool {
	if ticks <= 0 {
		return false
	}
	if ticks == 1 {
		return true
	}
	delay := int(repeatDelay / tick)
	rate := max(int(repeatRate/tick), 1)
	return ticks > delay && (ticks-delay)%rate == 0
}

// step applies the actions of one tick, then gravity.
func (u *ui) step(actions []tetris.Action) {
	if u.paused || u.game.IsOver() {
		return
	}
	for _, a := range actions {
		u.game.Apply(a)
		if u.game.IsOver() {
			u.logGameOver()
			return
		}
	}

	u.elapsed += u.tick
	if u.elapsed < u.speed.Interval() {
		return
	}
	u.elapsed = 0
	u.game.MoveDown()
	u.speed.Update(u.game.Score())
	if u.game.IsOver() {
		u.logGameOver()
	}
}

func (u *ui) logGameOver() {
	log.Printf("game over: score=%d high=%d lines=%d level=%d",
		u.game.Score(), u.game.HighScore(), u.game.LinesCleared(), u.speed.Level())
	if err := u.game.Err(); err != nil {
		log.Printf("high score: %v", err)
	}
}

// Draw renders the grid, the falling piece and the score panel.
func (u *ui) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	vector.DrawFilledRect(screen, 0, 0, float32(u.game.Columns()*cellSize), float32(u.game.Rows()*cellSize), gridColor, false)

	for r, row := range u.game.Cells() {
		for c, p := range row {
			if p != tetris.EmptyPiece {
				drawTile(screen, c*cellSize, r*cellSize, p)
			}
		}
	}
	current := u.game.Current()
	for _, pos := range current.TilePositions() {
		drawTile(screen, pos.Col*cellSize, pos.Row*cellSize, current.Piece)
	}

	y := 10
	for _, line := range u.panel.Lines(u.game, u.speed.Level()) {
		ebitenutil.DebugPrintAt(screen, line, panelX, y)
		y += 20
	}

	y += 10
	ebitenutil.DebugPrintAt(screen, "Next:", panelX, y)
	next := u.game.NextPiece()
	for _, pos := range next.Tiles(0) {
		drawTile(screen, panelX+pos.Col*cellSize, y+20+pos.Row*cellSize, next)
	}

	y += 120
	for _, help := range []string{"Left/Right: move", "Down: drop", "Up/X: rotate, Z: rotate back", "P: pause  R: restart  Q: quit"} {
		ebitenutil.DebugPrintAt(screen, help, panelX, y)
		y += 20
	}

	switch {
	case u.game.IsOver():
		ebitenutil.DebugPrintAt(screen, u.panel.GameOver(u.game), panelX, y+20)
	case u.paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", panelX, y+20)
	}
}

func drawTile(screen *ebiten.Image, x, y int, p tetris.Piece) {
	vector.DrawFilledRect(screen,
		float32(x+tileBorder), float32(y+tileBorder),
		cellSize-2*tileBorder, cellSize-2*tileBorder,
		display.Colors[p], false)
}

// Layout keeps a fixed logical screen size.
func (u *ui) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
