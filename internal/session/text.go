package session

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/lunaris/internal/engine"
	"github.com/vovakirdan/lunaris/internal/storage"
)

// HUDLine formats the status line shown above the playfield.
func HUDLine(h engine.HUD, best int, skinName string) string {
	parts := []string{h.Mode, fmt.Sprintf("SCORE %d", h.Score)}
	if h.Combo > 0 {
		combo := fmt.Sprintf("COMBO %d", h.Combo)
		if h.Multiplier > 1 {
			combo += fmt.Sprintf(" x%d", h.Multiplier)
		}
		parts = append(parts, combo)
	}
	switch {
	case h.Infinite:
		parts = append(parts, "LIVES ∞")
	case !h.Timed:
		parts = append(parts, "LIVES "+strings.Repeat("♥", max(h.Lives, 0)))
	}
	if h.Timed {
		parts = append(parts, fmt.Sprintf("TIME %.1fs", h.TimeLeft))
	}
	if best > 0 {
		parts = append(parts, fmt.Sprintf("BEST %d", best))
	}
	if skinName != "" {
		parts = append(parts, skinName)
	}
	return strings.Join(parts, "  ")
}

// GameOverLines formats the end-of-run summary with the leaderboard.
// The last line lists the keys; frontends share the same bindings.
func GameOverLines(h engine.HUD, best int, board []storage.ScoreEntry) []string {
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("%s  SCORE %d", h.Mode, h.Score),
		fmt.Sprintf("BEST %d", best),
	}
	if len(board) > 0 {
		lines = append(lines, "", "TOP SCORES")
		for i, e := range board {
			lines = append(lines, fmt.Sprintf("%d. %-3s %6d", i+1, e.Initials, e.Score))
		}
	}
	return append(lines, "", "R: Restart  B: Menu  Q: Quit")
}
