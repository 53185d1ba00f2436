package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lunaris/internal/skin"
	"github.com/vovakirdan/lunaris/internal/storage"
)

var skinsCmd = &cobra.Command{
	Use:   "skins [id]",
	Short: "List skins or equip one",
	Long: `Without arguments, lists the built-in skins and marks the equipped one.
With a skin ID, equips it for future runs.

Examples:
  lunaris skins
  lunaris skins midas`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSkins,
}

func runSkins(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	mgr := skin.NewManager(store)

	if len(args) == 1 {
		if err := mgr.Equip(strings.ToUpper(args[0])); err != nil {
			return err
		}
		fmt.Printf("Equipped %s.\n", mgr.Current().Name)
		return nil
	}

	current := mgr.Current()
	fmt.Println("Skins:")
	fmt.Println()
	for _, s := range skin.All() {
		marker := " "
		if s.ID == current.ID {
			marker = "*"
		}
		fmt.Printf("  %s %-6s  %s\n", marker, s.ID, s.Name)
	}
	fmt.Println()
	fmt.Println("Run 'lunaris skins <id>' to equip a skin.")
	return nil
}
