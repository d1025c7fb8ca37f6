// This package plays the game in a window.
package main

import (
	"context"
	"flag"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	tetris "github.com/sandrochkuaseli/Tetris"
	"github.com/sandrochkuaseli/Tetris/scorestore"
	"github.com/sandrochkuaseli/Tetris/speed"
)

var (
	scoreFile = flag.String("score_file", scorestore.DefaultFile, "File the highest score is kept in. If empty-string, the score is only kept while the program runs.")
	seed      = flag.Uint64("seed", 0, "Seed for the piece randomizer. 0 picks a random seed.")
	interval  = flag.Duration("interval", speed.DefaultInterval, "Time between gravity ticks at the start of a game.")
)

func main() {
	flag.Parse()

	store, release, err := scorestore.Open(context.Background(), scorestore.Config{File: *scoreFile})
	if err != nil {
		log.Fatalf("open score store: %v", err)
	}
	defer release(context.Background())

	rnd := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	if *seed != 0 {
		rnd = rand.New(rand.NewPCG(*seed, *seed))
	}
	newGame := func() *tetris.Game {
		g := tetris.NewGame(store, rnd)
		if err := g.Err(); err != nil {
			log.Printf("starting without a high score: %v", err)
		}
		return g
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Tetris")
	if err := ebiten.RunGame(newUI(newGame, *interval, ebiten.TPS())); err != nil {
		log.Fatalf("ebiten.RunGame: %v", err)
	}
}
