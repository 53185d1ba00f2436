// lunaris is a reflex target game for the terminal, the desktop and SSH.
//
// Usage:
//
//	lunaris list              - List available modes
//	lunaris play <mode>       - Play a mode in the terminal
//	lunaris menu              - Start the menu to pick modes interactively
//	lunaris window <mode>     - Play a mode in a desktop window
//	lunaris serve             - Start SSH server for remote play
//	lunaris scores <mode>     - Show high scores for a mode
//	lunaris skins [id]        - List skins or equip one
//	lunaris buddy             - Serve the companion chat endpoint
//	lunaris config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.lunaris/scores.db)
//	--config <path>       - Load a custom YAML config
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/lunaris/internal/modes"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagInitials   string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lunaris",
	Short: "Lunaris - hit the targets before they fade",
	Long: `Lunaris is a reflex game: targets grow and fade on the field and you
hit them with the mouse or a keyboard cursor.

Available commands:
  list     - Show all available modes
  play     - Play a specific mode in the terminal
  menu     - Interactive mode picker
  window   - Play a mode in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores
  skins    - List or equip skins
  buddy    - Serve the companion chat endpoint
  config   - Print the effective configuration

Examples:
  lunaris list
  lunaris play striker
  lunaris window blitz --difficulty hard
  lunaris serve --ssh :2222
  lunaris scores zen`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lunaris/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagInitials, "initials", "", "Initials recorded with your scores")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(skinsCmd)
	rootCmd.AddCommand(buddyCmd)
	rootCmd.AddCommand(configCmd)
}
