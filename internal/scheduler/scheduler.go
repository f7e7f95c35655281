// Package scheduler paces snake ticks. Scheduler is the timer-free state
// machine shared by every front end; Loop drives it with a real timer.
package scheduler

import (
	"time"

	"github.com/vovakirdan/gridsnake/internal/snake"
)

// Game is the part of snake.Game the scheduler drives.
type Game interface {
	Start()
	SetDirection(d snake.Direction) snake.InputResult
	Advance() snake.Result
	TickInterval() time.Duration
	Snapshot() snake.Snapshot
}

// Generation identifies one session. It changes on every Start, so a tick
// scheduled for an older session can be recognised and dropped.
type Generation uint64

// Schedule asks the caller to deliver a tick for Gen after Delay.
type Schedule struct {
	Gen   Generation
	Delay time.Duration
}

// Outcome describes a delivered tick.
type Outcome struct {
	Result snake.Result
	// Next is valid only when Continue is true.
	Next     Schedule
	Continue bool
}

// Scheduler gates ticks on the activation edge and stamps them with the
// session generation. It is not safe for concurrent use; all calls must come
// from the goroutine that owns the game.
type Scheduler struct {
	game    Game
	gen     Generation
	ticking bool
}

// New creates a scheduler for game. Nothing ticks until Start and the first
// accepted direction.
func New(game Game) *Scheduler {
	return &Scheduler{game: game}
}

// Start resets the game and invalidates every outstanding tick.
func (s *Scheduler) Start() Generation {
	s.gen++
	s.ticking = false
	s.game.Start()
	return s.gen
}

// Steer forwards a direction request. When the request is the activation
// edge it returns the first tick to schedule.
func (s *Scheduler) Steer(d snake.Direction) (Schedule, bool) {
	if s.game.SetDirection(d) != snake.Activated {
		return Schedule{}, false
	}
	s.ticking = true
	return s.next(), true
}

// Fire delivers a tick. It returns false for ticks from an older generation
// or while the scheduler is idle; the game is left untouched then.
// A GameOver result stops ticking until the next Start.
func (s *Scheduler) Fire(gen Generation) (Outcome, bool) {
	if gen != s.gen || !s.ticking {
		return Outcome{}, false
	}

	res := s.game.Advance()
	if res == snake.GameOver {
		s.ticking = false
		return Outcome{Result: res}, true
	}
	// The interval is read after Advance since eating shortens it.
	return Outcome{Result: res, Next: s.next(), Continue: true}, true
}

func (s *Scheduler) next() Schedule {
	return Schedule{Gen: s.gen, Delay: s.game.TickInterval()}
}

// Ticking reports whether ticks are being accepted.
func (s *Scheduler) Ticking() bool {
	return s.ticking
}

// Generation returns the current session generation.
func (s *Scheduler) Generation() Generation {
	return s.gen
}

// Snapshot returns the game snapshot.
func (s *Scheduler) Snapshot() snake.Snapshot {
	return s.game.Snapshot()
}
