// Package speed paces gravity: how often a front-end should move the falling
// piece down as the score grows.
package speed

import "time"

// Defaults for a new game.
const (
	DefaultInterval   = 500 * time.Millisecond
	DefaultCheckpoint = 15
)

const minInterval = time.Millisecond

// Schedule is the gravity interval of one game. Each time the score reaches
// the checkpoint the interval shrinks by a factor of 1.5 and the next
// checkpoint is set at twice the old one plus five.
type Schedule struct {
	interval   time.Duration
	checkpoint int
	level      int
}

// New creates a Schedule starting at interval with the first checkpoint at
// DefaultCheckpoint. A non-positive interval means DefaultInterval.
func New(interval time.Duration) *Schedule {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Schedule{
		interval:   interval,
		checkpoint: DefaultCheckpoint,
		level:      1,
	}
}

// Interval returns the time between gravity ticks.
func (s *Schedule) Interval() time.Duration {
	return s.interval
}

// Level returns 1 plus the number of checkpoints passed.
func (s *Schedule) Level() int {
	return s.level
}

// Checkpoint returns the score at which the game speeds up next.
func (s *Schedule) Checkpoint() int {
	return s.checkpoint
}

// Update advances at most one checkpoint for score and returns whether the
// interval changed. It is meant to be called after every gravity tick, so a
// score that jumps past several checkpoints catches up over several ticks.
func (s *Schedule) Update(score int) bool {
	if score < s.checkpoint {
		return false
	}
	s.interval = max(time.Duration(float64(s.interval)/1.5), minInterval)
	s.checkpoint = 2*s.checkpoint + 5
	s.level++
	return true
}
