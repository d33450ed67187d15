package sim

import (
	"slices"
	"strconv"

	"github.com/google/uuid"
	"github.com/tomz197/spaceimpact/internal/object"
)

// Countdown is what the countdown screen shows.
type Countdown struct {
	Remaining int    // Whole seconds left, <= 0 once it is time to go
	Label     string // "3", "2", "1" or "GO!"
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// Slices are copies; mutating them does not affect the simulation.
type Snapshot struct {
	Phase Phase
	Mode  Mode
	RunID uuid.UUID

	Score       int
	Lives       int
	Level       int
	LevelTarget int
	GameOver    bool

	DoubleShot      bool
	DoubleShotTicks int

	Countdown   *Countdown // nil outside the countdown
	Leaderboard []int

	Ship       object.Ship
	Bullets    []object.Bullet
	Enemies    []object.Enemy
	Boss       *object.Boss // nil when absent
	Powerups   []object.Powerup
	Explosions []object.Explosion
	Stars      []object.Star
}

// Snapshot captures the current frame.
func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:       c.phase,
		Mode:        c.mode,
		Leaderboard: slices.Clone(c.leaderboard),
		Stars:       slices.Clone(c.stars),
	}

	if c.phase == PhaseCountdown {
		remaining := c.CountdownRemaining()
		label := "GO!"
		if remaining > 0 {
			label = strconv.Itoa(remaining)
		}
		snap.Countdown = &Countdown{Remaining: remaining, Label: label}
	}

	r := c.run
	if r == nil {
		return snap
	}

	snap.RunID = r.RunID
	snap.Score = r.Score
	snap.Lives = r.Lives
	snap.Level = r.Level
	snap.LevelTarget = r.LevelTarget
	snap.GameOver = r.GameOver
	snap.DoubleShot = r.DoubleShot
	snap.DoubleShotTicks = r.DoubleShotTicks
	snap.Ship = r.Ship
	snap.Bullets = slices.Clone(r.Bullets)
	snap.Enemies = slices.Clone(r.Enemies)
	snap.Powerups = slices.Clone(r.Powerups)
	snap.Explosions = slices.Clone(r.Explosions)
	if r.Boss != nil {
		boss := *r.Boss
		snap.Boss = &boss
	}
	return snap
}
