package sim

import (
	"math"

	"github.com/tomz197/spaceimpact/internal/loop/config"
	"github.com/tomz197/spaceimpact/internal/object"
)

// Difficulty returns the multiplier used to scale enemy speed and HP.
// It is computed from the live level or score on every call.
func (s *SimulationState) Difficulty() float64 {
	switch s.Mode {
	case ModeLevel:
		return math.Max(0, float64(s.Level-1)) * config.LevelDifficultyStep
	case ModeEndless:
		return math.Floor(float64(s.Score)/config.EndlessScoreStep) * config.EndlessDifficultyStep
	default:
		return 0
	}
}

// spawn advances the spawn timers and creates enemies and powerups when they
// expire. Enemy spawning is held back while a boss is present, but its timer
// keeps running.
func (s *SimulationState) spawn() {
	s.enemyTimer++
	if s.enemyTimer > config.EnemySpawnInterval && s.spawnAllowed {
		s.Enemies = append(s.Enemies, object.NewEnemyAtEdge(s.rng, s.Difficulty()))
		s.enemyTimer = 0
	}

	s.powerupTimer++
	if s.powerupTimer > config.PowerupSpawnInterval {
		s.Powerups = append(s.Powerups, object.NewPowerupAtEdge(s.rng))
		s.powerupTimer = 0
	}
}

// awardPoints adds to the score. In level mode, reaching the level target
// with no boss present starts the boss encounter immediately.
func (s *SimulationState) awardPoints(points int) {
	s.Score += points
	if s.Mode == ModeLevel && s.Boss == nil && s.Score >= s.LevelTarget {
		s.spawnBoss()
	}
}

// spawnBoss starts a boss encounter for the current level.
func (s *SimulationState) spawnBoss() {
	s.Boss = object.NewBoss(s.Level)
	s.spawnAllowed = false
	s.emit(Event{Type: EventBossSpawned})
}

// defeatBoss ends the boss encounter. The bonus is awarded while the boss is
// still present so it cannot start another encounter by itself.
func (s *SimulationState) defeatBoss() {
	s.awardPoints(config.ScoreBoss)
	s.Boss = nil
	s.spawnAllowed = true
	s.emit(Event{Type: EventBossDefeated, Points: config.ScoreBoss})

	if s.Mode == ModeLevel {
		s.Level++
		s.LevelTarget = levelTarget(s.Level)
		s.emit(Event{Type: EventLevelUp})
	}
}
