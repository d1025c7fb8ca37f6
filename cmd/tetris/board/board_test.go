package board

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	tetris "github.com/sandrochkuaseli/Tetris"
	"github.com/sandrochkuaseli/Tetris/scorestore"
)

func newTestBoard(t *testing.T) *Board {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")

	rnd := rand.New(rand.NewPCG(1, 2))
	b, err := newBoard(screen, func() *tetris.Game {
		return tetris.NewGame(scorestore.NewMemory(0), rnd)
	}, time.Hour)
	if err != nil {
		t.Fatalf("newBoard failed: %v", err)
	}
	t.Cleanup(b.Shutdown)
	screen.SetSize(80, 30)
	return b
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// screenText returns the characters on row y.
func screenText(b *Board, y int) string {
	sim := b.screen.(tcell.SimulationScreen)
	cells, width, _ := sim.GetContents()
	var buf strings.Builder
	for x := 0; x < width; x++ {
		for _, r := range cells[y*width+x].Runes {
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

func TestHandleKeyMoves(t *testing.T) {
	b := newTestBoard(t)
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	start := b.game.Current().Offset()
	if quit := b.handleKey(key(tcell.KeyLeft), ticker); quit {
		t.Fatal("KeyLeft quit the game")
	}
	if got := b.game.Current().Offset(); got.Col != start.Col-1 {
		t.Errorf("offset after KeyLeft got %v, want column %d", got, start.Col-1)
	}

	b.handleKey(key(tcell.KeyDown), ticker)
	if got := b.game.Current().Offset(); got.Row != start.Row+1 {
		t.Errorf("offset after KeyDown got %v, want row %d", got, start.Row+1)
	}
}

func TestHandleKeyPause(t *testing.T) {
	b := newTestBoard(t)
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	b.handleKey(runeKey('p'), ticker)
	if !b.paused {
		t.Fatal("'p' did not pause")
	}
	start := b.game.Current()
	b.handleKey(key(tcell.KeyRight), ticker)
	if b.game.Current() != start {
		t.Error("a move was applied while paused")
	}

	b.handleKey(runeKey('p'), ticker)
	if b.paused {
		t.Error("second 'p' did not resume")
	}
}

func TestHandleKeyRestart(t *testing.T) {
	b := newTestBoard(t)
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	old := b.game
	for !old.IsOver() {
		b.handleKey(key(tcell.KeyDown), ticker)
	}
	b.handleKey(runeKey('r'), ticker)
	if b.game == old || b.game.IsOver() {
		t.Error("'r' did not start a new game")
	}
}

func TestHandleKeyQuit(t *testing.T) {
	b := newTestBoard(t)
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for _, ev := range []*tcell.EventKey{runeKey('q'), key(tcell.KeyEscape)} {
		if !b.handleKey(ev, ticker) {
			t.Errorf("%v did not quit", ev.Name())
		}
	}
}

func TestDrawPanel(t *testing.T) {
	b := newTestBoard(t)
	b.draw()

	if got := screenText(b, padTop); !strings.Contains(got, "Score: 0") {
		t.Errorf("row %d got %q, want the score", padTop, got)
	}
	if got := screenText(b, padTop+b.game.Rows()); !strings.Contains(got, string(hozRune)) {
		t.Errorf("row %d got %q, want the floor", padTop+b.game.Rows(), got)
	}
}
