package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyraid/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start skyraid with a variant picker menu",
	Long: `Start skyraid in interactive menu mode.

Use arrow keys or j/k to navigate, left/right to change difficulty and
Enter to start. Esc on a paused or finished game returns to the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Select variant
  Q               - Quit

Examples:
  skyraid menu
  skyraid menu --fps 30
  skyraid menu --log-file skyraid.log --log-level debug`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := mustLogger(io.Discard)
	defer closeLog()

	if err := tui.RunSession(terminalConfig(), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
