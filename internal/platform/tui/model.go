package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/platform/render"
	"github.com/vovakirdan/gridsnake/internal/scheduler"
	"github.com/vovakirdan/gridsnake/internal/snake"
)

// helpHeight is the number of rows reserved below the board for key help.
const helpHeight = 1

// dragStart is where a left-button press began, in screen cells.
type dragStart struct {
	x, y int
}

// Model is the Bubble Tea model for one snake session.
// Ticks are delivered as TickMsg through tea.Tick, so the game is only ever
// touched from Update.
type Model struct {
	game     *snake.Game
	sched    *scheduler.Scheduler
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     *KeyMapper
	help     help.Model
	drag     *dragStart
	logger   *log.Logger
	showHelp bool
	quitting bool
}

// NewModel creates a model in the ready state. A nil logger discards output.
func NewModel(rules config.SnakeConfig, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game := snake.New(rules, cfg.Seed)
	boardH, showHelp := splitHeight(cfg.ScreenH, rules.Grid.TileCount)
	return Model{
		game:     game,
		sched:    scheduler.New(game),
		screen:   core.NewScreen(cfg.ScreenW, boardH),
		config:   cfg,
		keys:     NewKeyMapper(),
		help:     help.New(),
		logger:   logger,
		showHelp: showHelp,
	}
}

// splitHeight returns the rows given to the board screen and whether the
// help line fits below it. The help line is dropped before the board is.
func splitHeight(h, tileCount int) (int, bool) {
	_, minH := render.MinSize(tileCount)
	if h-helpHeight >= minH {
		return h - helpHeight, true
	}
	return max(h, 0), false
}

// Init sets the window title. Nothing ticks until a game is started and
// steered.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Snake")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.MapKey(msg))

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		boardH, showHelp := splitHeight(msg.Height, m.game.TileCount())
		m.screen.Resize(msg.Width, boardH)
		m.showHelp = showHelp
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

func (m Model) handleAction(a core.Action) (tea.Model, tea.Cmd) {
	switch a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case core.ActionStart:
		// Start does nothing mid-game; Restart is the explicit way over.
		if !m.game.Running() {
			m.start()
		}
		return m, nil
	case core.ActionRestart:
		m.start()
		return m, nil
	}
	if a.IsDirectional() {
		return m, m.steer(snake.DirectionFromAction(a))
	}
	return m, nil
}

// start begins a new session. Ticks from the previous one are dropped by
// the scheduler when they arrive.
func (m Model) start() {
	gen := m.sched.Start()
	m.logger.Info("game started", "generation", gen)
}

// steer returns the first tick command when the direction activates the game.
func (m Model) steer(d snake.Direction) tea.Cmd {
	s, ok := m.sched.Steer(d)
	if !ok {
		return nil
	}
	m.logger.Debug("game activated", "direction", d, "interval", s.Delay)
	return tickCmd(s)
}

// handleMouse turns a left-button drag into a direction.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		// Only drags that begin on the board count as swipes.
		layout := render.ComputeLayout(m.screen.Width(), m.screen.Height(), m.game.TileCount())
		if layout.TooSmall || !layout.Board.Contains(msg.X, msg.Y) {
			m.drag = nil
			return m, nil
		}
		m.drag = &dragStart{x: msg.X, y: msg.Y}
		return m, nil

	case tea.MouseActionRelease:
		if m.drag == nil {
			return m, nil
		}
		dx, dy := render.SwipeDelta(msg.X-m.drag.x, msg.Y-m.drag.y)
		m.drag = nil
		if !m.game.Running() {
			return m, nil
		}
		a := core.ResolveSwipe(dx, dy)
		if !a.IsDirectional() {
			return m, nil
		}
		return m, m.steer(snake.DirectionFromAction(a))
	}

	return m, nil
}

// handleTick advances the game and schedules the next tick.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	out, ok := m.sched.Fire(msg.Gen)
	if !ok {
		m.logger.Debug("stale tick dropped", "generation", msg.Gen)
		return m, nil
	}

	switch out.Result {
	case snake.FoodEaten:
		m.logger.Debug("food eaten", "score", m.game.Score(), "interval", out.Next.Delay)
	case snake.GameOver:
		m.logger.Info("game over", "score", m.game.Score())
	}

	if !out.Continue {
		return m, nil
	}
	return m, tickCmd(out.Next)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	render.Board(m.screen, m.sched.Snapshot())
	if !m.showHelp {
		return RenderScreen(m.screen)
	}
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys())
}

// Snapshot returns the game snapshot.
func (m Model) Snapshot() snake.Snapshot {
	return m.sched.Snapshot()
}

// Run starts the Bubble Tea program for a local session.
func Run(rules config.SnakeConfig, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(rules, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Swipe input
	)

	_, err := p.Run()
	return err
}
