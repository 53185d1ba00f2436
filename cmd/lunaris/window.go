package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lunaris/internal/platform/window"
	"github.com/vovakirdan/lunaris/internal/registry"
)

var windowCmd = &cobra.Command{
	Use:   "window <mode>",
	Short: "Play a mode in a desktop window",
	Long: `Open a desktop window and play the specified mode.

Controls:
  Mouse     - Move pointer 1
  Arrows    - Move pointer 2
  P/Space   - Pause
  R         - Restart (after game over)
  B/Esc     - Close (after game over)
  Q         - Quit

Examples:
  lunaris window striker
  lunaris window hardcore --seed 7`,
	Args: cobra.ExactArgs(1),
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, args []string) error {
	modeID := args[0]
	if !registry.Exists(modeID) {
		return fmt.Errorf("unknown mode %q (run 'lunaris list' to see available modes)", modeID)
	}

	svc, err := openServices(true, true)
	if err != nil {
		return err
	}
	defer svc.Close()

	sess, err := svc.env().NewSession(modeID)
	if err != nil {
		return err
	}
	defer sess.Close()

	title := "Lunaris - " + strings.ToUpper(modeID)
	if err := window.Run(sess, title); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}
