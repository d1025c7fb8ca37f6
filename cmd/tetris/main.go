// This package plays the game in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"time"

	tetris "github.com/sandrochkuaseli/Tetris"
	"github.com/sandrochkuaseli/Tetris/cmd/tetris/board"
	"github.com/sandrochkuaseli/Tetris/scorestore"
	"github.com/sandrochkuaseli/Tetris/speed"
)

var (
	scoreFile = flag.String("score_file", scorestore.DefaultFile, "File the highest score is kept in. If empty-string, the score is only kept while the program runs.")
	mongoURI  = flag.String("mongo_uri", "", "If set, the highest score is kept in MongoDB instead of score_file.")
	mongoDB   = flag.String("mongo_db", "tetris", "MongoDB database of the score collection.")
	mongoColl = flag.String("mongo_collection", "high_scores", "MongoDB collection of score documents.")
	player    = flag.String("player", "default", "Whose highest score to use from MongoDB.")
	seed      = flag.Uint64("seed", 0, "Seed for the piece randomizer. 0 picks a random seed.")
	interval  = flag.Duration("interval", speed.DefaultInterval, "Time between gravity ticks at the start of a game.")
	logFile   = flag.String("log_file", "", "File to append logs to. If empty-string, logs are discarded while the game is on screen.")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	logs, err := openLog(*logFile)
	if err != nil {
		return err
	}
	defer logs.Close()

	// The terminal belongs to the board from here on.
	log.SetOutput(logs)
	defer log.SetOutput(os.Stderr)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, release, err := scorestore.Open(ctx, scorestore.Config{
		File:            *scoreFile,
		MongoURI:        *mongoURI,
		MongoDB:         *mongoDB,
		MongoCollection: *mongoColl,
		Player:          *player,
	})
	if err != nil {
		return fmt.Errorf("open score store: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := release(ctx); err != nil {
			log.Printf("release score store: %v", err)
		}
	}()

	rnd := newRand(*seed)
	newGame := func() *tetris.Game {
		g := tetris.NewGame(store, rnd)
		if err := g.Err(); err != nil {
			log.Printf("starting without a high score: %v", err)
		}
		return g
	}

	b, err := board.New(newGame, *interval)
	if err != nil {
		return fmt.Errorf("new board: %w", err)
	}
	defer b.Shutdown()

	b.Run()
	return nil
}

// openLog opens path for appending, or a sink that discards everything if
// path is empty.
func openLog(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0666)
	if err != nil {
		return nil, fmt.Errorf("os.OpenFile: %w", err)
	}
	return f, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}
