// Package snake implements the rules of single-player grid snake: the body,
// the food, the buffered direction input and the per-tick update. It has no
// notion of time or drawing; a scheduler calls Advance and a renderer reads
// Snapshot.
package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/gridsnake/internal/config"
)

// Point represents a grid cell.
type Point struct {
	X, Y int
}

// Add returns the point one step away in direction d.
func (p Point) Add(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// NoFood marks the food slot as empty. Used only when the body fills the grid.
var NoFood = Point{X: -1, Y: -1}

// Result is the outcome of a single Advance.
type Result int

const (
	Continued Result = iota
	FoodEaten
	GameOver
)

func (r Result) String() string {
	switch r {
	case Continued:
		return "continued"
	case FoodEaten:
		return "food_eaten"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// InputResult is the outcome of SetDirection.
type InputResult int

const (
	// Rejected means the request was ignored: DirNone, a reversal, or no running game.
	Rejected InputResult = iota
	// Queued means the request replaced the pending direction.
	Queued
	// Activated is Queued plus the activation edge: the first accepted input
	// after Start. The caller should begin ticking.
	Activated
)

func (r InputResult) String() string {
	switch r {
	case Rejected:
		return "rejected"
	case Queued:
		return "queued"
	case Activated:
		return "activated"
	default:
		return "unknown"
	}
}

// Game holds one snake session.
type Game struct {
	cfg config.SnakeConfig
	rng *rand.Rand

	tick     uint64
	score    int
	interval time.Duration

	// Snake state
	body      []Point   // Head at index 0
	direction Direction // Committed, applied on the last tick
	pending   Direction // Buffered for the next tick

	food Point

	// Game state flags
	started  bool // Start has been called at least once
	running  bool
	awaiting bool // Waiting for the first accepted input after Start
}

// New creates a game with the given rules. The game stays in the ready state
// until Start is called.
func New(cfg config.SnakeConfig, seed int64) *Game {
	return &Game{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(seed)),
		interval: cfg.InitialInterval(),
		food:     NoFood,
	}
}

// Start resets the session: a single segment in the centre, no direction,
// zero score, the initial interval, fresh food, and waiting for input.
func (g *Game) Start() {
	center := g.cfg.Grid.TileCount / 2
	g.body = []Point{{X: center, Y: center}}
	g.direction = DirNone
	g.pending = DirNone
	g.tick = 0
	g.score = 0
	g.interval = g.cfg.InitialInterval()
	g.started = true
	g.running = true
	g.awaiting = true
	g.spawnFood()
}

// SetDirection queues a direction for the next tick.
//
// A request is rejected when it is DirNone, when no game is running, or when
// it reverses the committed direction. Reversal is judged against the
// committed direction only, so while the snake has not moved yet any
// direction is accepted. Repeated calls before a tick keep the latest
// accepted value.
func (g *Game) SetDirection(d Direction) InputResult {
	if d == DirNone || !g.running {
		return Rejected
	}
	if g.direction != DirNone && d == g.direction.Opposite() {
		return Rejected
	}

	g.pending = d
	if g.awaiting {
		g.awaiting = false
		return Activated
	}
	return Queued
}

// Advance runs one tick. Order: commit the pending direction, check walls,
// check the body, then move and eat.
func (g *Game) Advance() Result {
	if !g.running {
		return GameOver
	}
	g.tick++

	g.direction = g.pending
	if g.direction == DirNone {
		return Continued
	}

	newHead := g.body[0].Add(g.direction)

	if !g.inBounds(newHead) {
		g.running = false
		return GameOver
	}

	// The old head becomes body. The tail still counts even though it would
	// vacate this tick.
	for _, seg := range g.body[1:] {
		if seg == newHead {
			g.running = false
			return GameOver
		}
	}

	g.body = append(g.body, Point{})
	copy(g.body[1:], g.body)
	g.body[0] = newHead

	if newHead == g.food {
		g.score += g.cfg.Scoring.PointsPerFood
		g.interval = max(g.cfg.MinInterval(), g.interval-g.cfg.Step())
		g.spawnFood()
		return FoodEaten
	}

	g.body = g.body[:len(g.body)-1]
	return Continued
}

func (g *Game) inBounds(p Point) bool {
	n := g.cfg.Grid.TileCount
	return p.X >= 0 && p.X < n && p.Y >= 0 && p.Y < n
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p Point) bool {
	for _, seg := range g.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Running reports whether a session is in progress. It is false before the
// first Start and after a game over.
func (g *Game) Running() bool {
	return g.running
}

// AwaitingFirstInput reports whether the session is waiting for its
// activation edge.
func (g *Game) AwaitingFirstInput() bool {
	return g.awaiting
}

// TickInterval returns the current delay between ticks.
func (g *Game) TickInterval() time.Duration {
	return g.interval
}

// TileCount returns the grid side length.
func (g *Game) TileCount() int {
	return g.cfg.Grid.TileCount
}
