// Package hud builds the text shown over the playfield by the desktop
// front-end.
package hud

import (
	"fmt"

	"github.com/tomz197/spaceimpact/internal/loop/sim"
)

// Status returns the one-line in-game status bar.
func Status(snap *sim.Snapshot) string {
	line := fmt.Sprintf("Score: %d  Lives: %d", snap.Score, snap.Lives)
	switch snap.Mode {
	case sim.ModeLevel:
		line += fmt.Sprintf("  Level: %d  Target: %d", snap.Level, snap.LevelTarget)
	case sim.ModeEndless:
		line += "  Endless"
	}
	if snap.Boss != nil {
		line += fmt.Sprintf("  Boss: %d", snap.Boss.HP)
	}
	if snap.DoubleShot {
		line += "  Double shot"
	}
	return line
}

// Overlay returns the centered text block for the current phase. blink
// toggles the prompt lines.
func Overlay(snap *sim.Snapshot, blink bool) []string {
	switch snap.Phase {
	case sim.PhaseMenu:
		lines := []string{
			"SPACE IMPACT",
			"",
			"1  Level mode",
			"2  Endless mode",
			"",
			"Arrows move, R restart, M menu, Esc quit",
			"",
		}
		if blink {
			lines = append(lines, "Press 1 or 2 to launch")
		}
		if len(snap.Leaderboard) > 0 {
			lines = append(lines, "", fmt.Sprintf("Endless high score: %d", snap.Leaderboard[0]))
		}
		return lines

	case sim.PhaseCountdown:
		if snap.Countdown == nil {
			return nil
		}
		title := fmt.Sprintf("LEVEL %d", snap.Level)
		if snap.Mode == sim.ModeEndless {
			title = "ENDLESS"
		}
		return []string{title, "", snap.Countdown.Label}

	case sim.PhaseGameOver:
		lines := []string{"GAME OVER", "", fmt.Sprintf("Score: %d", snap.Score)}
		if snap.Mode == sim.ModeLevel {
			lines = append(lines, fmt.Sprintf("Reached level %d", snap.Level))
		} else {
			lines = append(lines, "", "High scores")
			for i, score := range snap.Leaderboard {
				lines = append(lines, fmt.Sprintf("%2d. %8d", i+1, score))
			}
		}
		lines = append(lines, "")
		if blink {
			lines = append(lines, "R to restart, M for menu")
		}
		return lines
	}
	return nil
}
