// Package config centralizes all tunable game parameters.
package config

import "time"

// Playfield - the fixed logical coordinate space.
// Actual rendering scales to fit the terminal or window.
const (
	PlayfieldWidth  = 640
	PlayfieldHeight = 368
)

// Player ship
const (
	ShipWidth  = 32
	ShipHeight = 32
	ShipSpeed  = 4
	ShipStartX = 40
)

// Bullets and auto-fire
const (
	BulletWidth        = 8
	BulletHeight       = 6
	BulletSpeed        = 6
	FireInterval       = 20 // Ticks between shots
	DoubleFireInterval = 12 // Ticks between shots while double-shot is active
)

// Spawning cadence (ticks)
const (
	EnemySpawnInterval   = 60
	PowerupSpawnInterval = 500
)

// Boss
const (
	BossSize         = 128
	BossSpeed        = 1
	BossBaseHP       = 25
	BossHPPerLevel   = 10
	BossRightMargin  = 100 // Boss never approaches closer than this to the right edge
	LevelTargetScore = 200 // Level target is LevelTargetScore * level
)

// Difficulty scaling
const (
	LevelDifficultyStep   = 0.4
	EndlessDifficultyStep = 0.25
	EndlessScoreStep      = 200
)

// Scoring
const (
	ScoreEnemy    = 5
	ScoreMiniBoss = 15
	ScoreBoss     = 100
)

// Run defaults
const (
	InitialLives = 3
	InitialLevel = 1
)

// Powerups and effects
const (
	PowerupSize        = 20
	PowerupSpeed       = 2
	DoubleShotDuration = 600 // Ticks
	ExplosionTicks     = 20
)

// Background
const (
	StarCount = 120
)

// Countdown before a run starts
const (
	CountdownSeconds  = 3
	CountdownDuration = CountdownSeconds * time.Second
)

// Leaderboard
const (
	LeaderboardSize = 10
)

// Client rendering
const (
	ClientTargetFPS = 60
	MenuBlinkPeriod = 500 * time.Millisecond
)

// Max render resolution - terminals larger than this get a centered, bordered playfield.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 46
)

// Inactivity (SSH sessions)
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Lobby server (SSH)
const (
	ServerTickRate         = 10
	ServerTickTime         = time.Second / ServerTickRate
	ShutdownDisplaySeconds = 5.0
	ShutdownTimeout        = 15 * time.Second
	HighScoreBannerSeconds = 4.0
)
