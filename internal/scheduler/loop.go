package scheduler

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/snake"
)

// Renderer receives a snapshot after every Start and every delivered tick.
type Renderer interface {
	Render(snap snake.Snapshot)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(snap snake.Snapshot)

// Render calls f(snap).
func (f RendererFunc) Render(snap snake.Snapshot) {
	f(snap)
}

// EventKind tells Start and direction events apart.
type EventKind int

const (
	EventStart EventKind = iota
	EventDirection
)

// Event is an input delivered to a Loop.
type Event struct {
	Kind      EventKind
	Direction snake.Direction
}

// StartEvent requests a new session.
func StartEvent() Event {
	return Event{Kind: EventStart}
}

// DirectionEvent requests a direction change.
func DirectionEvent(d snake.Direction) Event {
	return Event{Kind: EventDirection, Direction: d}
}

// Loop is a single-goroutine event loop around a Scheduler. Input events and
// timer expiries are handled one at a time, so the game needs no locking.
type Loop struct {
	sched    *Scheduler
	renderer Renderer
	logger   *log.Logger
}

// NewLoop creates a loop for game. A nil logger discards log output.
func NewLoop(game Game, renderer Renderer, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loop{
		sched:    New(game),
		renderer: renderer,
		logger:   logger,
	}
}

// Run processes events until the channel is closed (returns nil) or ctx is
// done (returns ctx.Err()).
func (l *Loop) Run(ctx context.Context, events <-chan Event) error {
	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending Schedule
	)

	stop := func() {
		if timer != nil {
			timer.Stop()
		}
		timerC = nil
	}
	arm := func(s Schedule) {
		pending = s
		if timer == nil {
			timer = time.NewTimer(s.Delay)
		} else {
			timer.Reset(s.Delay)
		}
		timerC = timer.C
	}
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev.Kind {
			case EventStart:
				stop()
				gen := l.sched.Start()
				l.logger.Debug("session started", "generation", gen)
				l.renderer.Render(l.sched.Snapshot())
			case EventDirection:
				s, activated := l.sched.Steer(ev.Direction)
				if activated {
					l.logger.Debug("activated", "direction", ev.Direction, "delay", s.Delay)
					arm(s)
				}
			}

		case <-timerC:
			timerC = nil
			out, ok := l.sched.Fire(pending.Gen)
			if !ok {
				l.logger.Debug("dropped stale tick", "generation", pending.Gen)
				continue
			}
			snap := l.sched.Snapshot()
			l.renderer.Render(snap)
			if !out.Continue {
				l.logger.Info("game over", "score", snap.Score, "length", len(snap.Body), "ticks", snap.Tick)
				continue
			}
			if out.Result == snake.FoodEaten {
				l.logger.Debug("food eaten", "score", snap.Score, "interval", snap.TickInterval)
			}
			arm(out.Next)
		}
	}
}
