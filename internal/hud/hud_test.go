package hud

import (
	"slices"
	"strings"
	"testing"

	"github.com/tomz197/spaceimpact/internal/loop/sim"
	"github.com/tomz197/spaceimpact/internal/object"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		snap sim.Snapshot
		want string
	}{
		{
			"level",
			sim.Snapshot{Mode: sim.ModeLevel, Score: 40, Lives: 2, Level: 1, LevelTarget: 200},
			"Score: 40  Lives: 2  Level: 1  Target: 200",
		},
		{
			"endless with double shot",
			sim.Snapshot{Mode: sim.ModeEndless, Score: 5, Lives: 3, DoubleShot: true},
			"Score: 5  Lives: 3  Endless  Double shot",
		},
		{
			"boss",
			sim.Snapshot{Mode: sim.ModeLevel, Score: 200, Lives: 1, Level: 1, LevelTarget: 200, Boss: &object.Boss{HP: 12}},
			"Score: 200  Lives: 1  Level: 1  Target: 200  Boss: 12",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Status(&tt.snap); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOverlay(t *testing.T) {
	menu := sim.Snapshot{Phase: sim.PhaseMenu, Leaderboard: []int{700}}
	lines := Overlay(&menu, true)
	if !slices.Contains(lines, "Press 1 or 2 to launch") || !slices.Contains(lines, "Endless high score: 700") {
		t.Fatalf("menu overlay %q", lines)
	}
	if slices.Contains(Overlay(&menu, false), "Press 1 or 2 to launch") {
		t.Fatal("prompt should blink off")
	}

	countdown := sim.Snapshot{Phase: sim.PhaseCountdown, Mode: sim.ModeLevel, Level: 2, Countdown: &sim.Countdown{Remaining: 0, Label: "GO!"}}
	if got := Overlay(&countdown, true); !slices.Equal(got, []string{"LEVEL 2", "", "GO!"}) {
		t.Fatalf("countdown overlay %q", got)
	}

	over := sim.Snapshot{Phase: sim.PhaseGameOver, Mode: sim.ModeEndless, Score: 150, Leaderboard: []int{500, 150}}
	text := strings.Join(Overlay(&over, true), "\n")
	for _, want := range []string{"GAME OVER", "Score: 150", " 1.      500", " 2.      150", "R to restart"} {
		if !strings.Contains(text, want) {
			t.Errorf("game over overlay missing %q:\n%s", want, text)
		}
	}

	if Overlay(&sim.Snapshot{Phase: sim.PhasePlaying}, true) != nil {
		t.Fatal("no overlay while playing")
	}
}
