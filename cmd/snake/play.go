package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD  - Steer (the first move starts the clock)
  Mouse drag   - Steer by swiping
  Space/Enter  - Start a game
  R            - Restart
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Examples:
  snake play
  snake play --seed 42
  snake play --config ./my-snake.yaml --log-file snake.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	rules, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}

	w, closeLog, err := logWriter(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	logger, err := newLogger(w, "snake")
	if err != nil {
		return err
	}

	// Get terminal size; the first WindowSizeMsg corrects it anyway.
	cfg := core.DefaultConfig()
	if width, height, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
		cfg.ScreenW, cfg.ScreenH = width, height
	}
	cfg.Seed = flagSeed

	logger.Info("starting game", "tiles", rules.Grid.TileCount, "seed", cfg.Seed)
	if err := tui.Run(rules, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
