package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lunaris/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Lunaris with a mode picker menu",
	Long: `Start Lunaris in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
After a run ends, press B to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - High scores
  C            - Cycle skins
  Q            - Quit

Examples:
  lunaris menu
  lunaris menu --fps 30
  lunaris menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	svc, err := openServices(true, false)
	if err != nil {
		return err
	}
	defer svc.Close()

	width, height := terminalSize()
	return tui.RunApp(svc.env(), width, height)
}
