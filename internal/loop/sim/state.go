// Package sim holds the simulation of a run and the state machine around it.
// Nothing in this package reads a clock or draws; time is passed in by the
// caller and renderers consume Snapshots.
package sim

import (
	"github.com/google/uuid"
	"github.com/tomz197/spaceimpact/internal/loop/config"
	"github.com/tomz197/spaceimpact/internal/object"
	"github.com/tomz197/spaceimpact/internal/physics"
)

// Mode selects the rules of a run.
type Mode int

const (
	ModeNone    Mode = iota // No run chosen (menu)
	ModeLevel               // Fixed levels ending in a boss
	ModeEndless             // Difficulty follows score; scores go to the leaderboard
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeLevel:
		return "level"
	case ModeEndless:
		return "endless"
	default:
		return "none"
	}
}

// SimulationState is everything that belongs to a single run. It is created
// when a mode is selected and replaced wholesale on restart.
type SimulationState struct {
	RunID uuid.UUID
	Mode  Mode

	Score       int
	Lives       int
	Level       int
	LevelTarget int
	GameOver    bool

	DoubleShot      bool
	DoubleShotTicks int // Remaining ticks, > 0 iff DoubleShot

	Ship       object.Ship
	Bullets    []object.Bullet
	Enemies    []object.Enemy
	Boss       *object.Boss // nil outside a boss encounter
	Powerups   []object.Powerup
	Explosions []object.Explosion

	fireTimer    int
	enemyTimer   int
	powerupTimer int
	spawnAllowed bool

	rng    object.Rand
	events []Event
	grid   *physics.SpatialGrid // Enemy broad-phase, rebuilt each tick
}

// NewSimulationState creates a fresh run in the given mode.
func NewSimulationState(mode Mode, rng object.Rand) *SimulationState {
	return &SimulationState{
		RunID:        uuid.New(),
		Mode:         mode,
		Lives:        config.InitialLives,
		Level:        config.InitialLevel,
		LevelTarget:  levelTarget(config.InitialLevel),
		Ship:         object.NewShip(),
		spawnAllowed: true,
		rng:          rng,
	}
}

// SpawnAllowed reports whether ordinary enemies may spawn (no boss present).
func (s *SimulationState) SpawnAllowed() bool {
	return s.spawnAllowed
}

// FireInterval returns the number of ticks between shots.
func (s *SimulationState) FireInterval() int {
	if s.DoubleShot {
		return config.DoubleFireInterval
	}
	return config.FireInterval
}

func levelTarget(level int) int {
	return config.LevelTargetScore * level
}
