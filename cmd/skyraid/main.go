// skyraid is a top-down arcade shooter played in the terminal.
//
// Usage:
//
//	skyraid list               - List available variants
//	skyraid play <variant>     - Play a variant
//	skyraid menu               - Pick variants interactively
//	skyraid serve              - Start SSH server for remote play
//	skyraid sim <variant>      - Run a headless simulation and print its hash
//	skyraid config             - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 50)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import variants to register them
	_ "github.com/vovakirdan/skyraid/internal/games/shooter"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyraid",
	Short: "Skyraid - a top-down arcade shooter for your terminal",
	Long: `Skyraid is a top-down arcade shooter that runs in your terminal.

Fly a ship up a scrolling field, destroy descending enemies, dodge their
bombs and, in the full variant, take down the boss that waits at the end
of the last round.

Available commands:
  list     - Show all variants
  play     - Play a specific variant directly
  menu     - Interactive variant picker menu
  serve    - Start SSH server for remote play
  sim      - Headless deterministic run
  config   - Print the default configuration

Examples:
  skyraid list
  skyraid play full
  skyraid menu
  skyraid serve --ssh :2222
  skyraid sim full --seed 42 --ticks 3000`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 50, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger for a command. Interactive commands own the
// terminal, so without --log-file their output is discarded.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	w, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "skyraid",
	})
	return logger, closer, nil
}

// mustLogger is newLogger for command handlers.
func mustLogger(fallback io.Writer) (*log.Logger, func()) {
	logger, closer, err := newLogger(fallback)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger, closer
}
