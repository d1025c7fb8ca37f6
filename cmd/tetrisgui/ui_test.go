package main

import (
	"math/rand/v2"
	"testing"
	"time"

	tetris "github.com/sandrochkuaseli/Tetris"
	"github.com/sandrochkuaseli/Tetris/scorestore"
)

func newTestUI(interval time.Duration) *ui {
	rnd := rand.New(rand.NewPCG(1, 2))
	return newUI(func() *tetris.Game {
		return tetris.NewGame(scorestore.NewMemory(0), rnd)
	}, interval, 60)
}

func TestRepeats(t *testing.T) {
	tick := time.Second / 60
	tests := []struct {
		ticks int
		want  bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{12, false},
		{13, false},
		{15, true},
		{16, false},
		{18, true},
	}
	for _, test := range tests {
		if got := repeats(test.ticks, tick); got != test.want {
			t.Errorf("repeats(%d) = %t, want %t", test.ticks, got, test.want)
		}
	}
}

func TestStepGravity(t *testing.T) {
	u := newTestUI(100 * time.Millisecond)
	start := u.game.Current().Offset()

	for i := 0; i < 6; i++ {
		u.step(nil)
	}
	if got := u.game.Current().Offset(); got != start {
		t.Fatalf("piece moved before the interval elapsed: %v, want %v", got, start)
	}
	u.step(nil)
	if got := u.game.Current().Offset(); got.Row != start.Row+1 {
		t.Errorf("after one interval row = %d, want %d", got.Row, start.Row+1)
	}
}

func TestStepActions(t *testing.T) {
	u := newTestUI(time.Hour)
	start := u.game.Current().Offset()

	u.step([]tetris.Action{tetris.Left, tetris.Left, tetris.Right})
	if got := u.game.Current().Offset(); got.Col != start.Col-1 {
		t.Errorf("col = %d, want %d", got.Col, start.Col-1)
	}
}

func TestStepPaused(t *testing.T) {
	u := newTestUI(time.Nanosecond)
	start := u.game.Current().Offset()

	u.paused = true
	u.step([]tetris.Action{tetris.Left})
	if got := u.game.Current().Offset(); got != start {
		t.Errorf("paused game moved to %v, want %v", got, start)
	}

	u.restart()
	if u.paused {
		t.Error("restart left the game paused")
	}
}
