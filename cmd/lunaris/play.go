package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lunaris/internal/platform/tui"
	"github.com/vovakirdan/lunaris/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode in the terminal",
	Long: `Start playing the specified mode in the terminal.

The mouse is the first pointer; WASD or the arrow keys steer a second
cursor.

Controls:
  Mouse        - Move pointer 1
  WASD/Arrows  - Move pointer 2
  P/Space      - Pause
  R            - Restart (after game over)
  B/Esc        - Leave (after game over or while paused)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  lunaris play striker
  lunaris play blitz --difficulty hard
  lunaris play zen --config ./my-lunaris.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	modeID := args[0]
	if !registry.Exists(modeID) {
		return fmt.Errorf("unknown mode %q (run 'lunaris list' to see available modes)", modeID)
	}

	svc, err := openServices(true, false)
	if err != nil {
		return err
	}
	defer svc.Close()

	width, height := terminalSize()
	if err := tui.Run(modeID, svc.env(), width, height); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
