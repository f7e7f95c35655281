package snake

import "time"

// StateType represents the session phase.
type StateType string

const (
	StateReady    StateType = "ready" // never started
	StateWaiting  StateType = "waiting"
	StatePlaying  StateType = "playing"
	StateGameOver StateType = "game_over"
)

// Snapshot is a read-only copy of the game for renderers and score displays.
type Snapshot struct {
	Tick               uint64
	TileCount          int
	Body               []Point // Head first; owned by the snapshot
	Food               Point
	Score              int
	Direction          Direction
	Pending            Direction
	TickInterval       time.Duration
	Running            bool
	AwaitingFirstInput bool
	State              StateType
}

// Head returns the head cell.
func (s Snapshot) Head() Point {
	if len(s.Body) == 0 {
		return NoFood
	}
	return s.Body[0]
}

// HasFood reports whether food is on the grid.
func (s Snapshot) HasFood() bool {
	return s.Food != NoFood
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case !g.started:
		state = StateReady
	case !g.running:
		state = StateGameOver
	case g.awaiting:
		state = StateWaiting
	}

	body := make([]Point, len(g.body))
	copy(body, g.body)

	return Snapshot{
		Tick:               g.tick,
		TileCount:          g.cfg.Grid.TileCount,
		Body:               body,
		Food:               g.food,
		Score:              g.score,
		Direction:          g.direction,
		Pending:            g.pending,
		TickInterval:       g.interval,
		Running:            g.running,
		AwaitingFirstInput: g.awaiting,
		State:              state,
	}
}
