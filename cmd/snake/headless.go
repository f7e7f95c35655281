package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/platform/render"
	"github.com/vovakirdan/gridsnake/internal/scheduler"
	"github.com/vovakirdan/gridsnake/internal/snake"
)

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Drive a game from stdin",
	Long: `Run a game without a terminal UI. Commands are read from stdin, one
per line, and every frame is printed to stdout as plain text.

Commands:
  start                 - Start (or restart) a game
  up, down, left, right - Steer (w, s, a, d also work)
  wait <ms>             - Pause reading input
  quit                  - Stop

End of input also stops the game.

Examples:
  printf 'start\nright\nwait 2000\n' | snake headless --seed 1`,
	Args: cobra.NoArgs,
	RunE: runHeadless,
}

// commandKind classifies a headless input line.
type commandKind int

const (
	cmdEvent commandKind = iota
	cmdWait
	cmdQuit
	cmdSkip
)

type headlessCommand struct {
	kind  commandKind
	event scheduler.Event
	wait  time.Duration
}

var directionWords = map[string]snake.Direction{
	"up": snake.DirUp, "w": snake.DirUp,
	"down": snake.DirDown, "s": snake.DirDown,
	"left": snake.DirLeft, "a": snake.DirLeft,
	"right": snake.DirRight, "d": snake.DirRight,
}

// parseCommand parses one input line. Blank lines and # comments are skipped.
func parseCommand(line string) (headlessCommand, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return headlessCommand{kind: cmdSkip}, nil
	}

	switch word := fields[0]; word {
	case "start":
		return headlessCommand{kind: cmdEvent, event: scheduler.StartEvent()}, nil
	case "quit", "q":
		return headlessCommand{kind: cmdQuit}, nil
	case "wait":
		if len(fields) != 2 {
			return headlessCommand{}, errors.New("wait needs a duration in milliseconds")
		}
		ms, err := strconv.Atoi(fields[1])
		if err != nil || ms < 0 {
			return headlessCommand{}, fmt.Errorf("invalid wait duration %q", fields[1])
		}
		return headlessCommand{kind: cmdWait, wait: time.Duration(ms) * time.Millisecond}, nil
	default:
		d, ok := directionWords[word]
		if !ok {
			return headlessCommand{}, fmt.Errorf("unknown command %q", word)
		}
		return headlessCommand{kind: cmdEvent, event: scheduler.DirectionEvent(d)}, nil
	}
}

func runHeadless(cmd *cobra.Command, _ []string) error {
	rules, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}

	w, closeLog, err := logWriter(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	logger, err := newLogger(w, "snake")
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer := render.NewTextRenderer(cmd.OutOrStdout(), rules.Grid.TileCount)
	loop := scheduler.NewLoop(snake.New(rules, seed), renderer, logger)

	events := make(chan scheduler.Event)
	go readCommands(ctx, cmd.InOrStdin(), events, logger)

	logger.Info("headless game ready", "tiles", rules.Grid.TileCount, "seed", seed)
	if err := loop.Run(ctx, events); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return renderer.Err()
}

// readCommands feeds parsed stdin lines to events and closes it at end of
// input or on quit.
func readCommands(ctx context.Context, r io.Reader, events chan<- scheduler.Event, logger *log.Logger) {
	defer close(events)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		c, err := parseCommand(scanner.Text())
		if err != nil {
			logger.Warn("skipping input", "line", scanner.Text(), "error", err)
			continue
		}

		switch c.kind {
		case cmdQuit:
			return
		case cmdWait:
			select {
			case <-time.After(c.wait):
			case <-ctx.Done():
				return
			}
		case cmdEvent:
			select {
			case events <- c.event:
			case <-ctx.Done():
				return
			}
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Error("reading input", "error", err)
	}
}
