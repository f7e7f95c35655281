// snake is a grid snake game for the terminal.
//
// Usage:
//
//	snake play               - Play in this terminal
//	snake serve              - Start SSH server for remote play
//	snake headless           - Drive a game from stdin, print frames to stdout
//	snake config             - Print the effective rules as YAML
//
// Global flags:
//
//	--config <path>     - Rules file (default: search ~/.snake/configs, ./configs)
//	--seed <value>      - Set RNG seed for reproducible food placement
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--log-file <path>   - Log destination for play (default: discarded)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the grid game in your terminal",
	Long: `Snake is the classic grid game: steer the snake to the food,
grow, and avoid the walls and your own tail.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  headless  - Read moves from stdin and print frames
  config    - Print the effective rules

Examples:
  snake play
  snake play --seed 42
  snake serve --ssh :2222
  echo "start" | snake headless`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(headlessCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// logWriter returns the --log-file destination, or fallback when unset.
// The returned close function is never nil.
func logWriter(fallback io.Writer) (io.Writer, func() error, error) {
	if flagLogFile == "" {
		return fallback, func() error { return nil }, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, f.Close, nil
}
