package object

import (
	"github.com/tomz197/spaceimpact/internal/loop/config"
	"github.com/tomz197/spaceimpact/internal/physics"
)

// Boss is the single high-HP adversary of a boss encounter.
type Boss struct {
	physics.Rect
	Speed float64
	HP    int

	// Attack-pattern hooks. Carried with the boss but not yet driven.
	PhaseTimer int
	ShootTimer int
}

// BossHP returns the hit points of the boss guarding the given level.
func BossHP(level int) int {
	return config.BossBaseHP + (level-1)*config.BossHPPerLevel
}

// NewBoss creates the boss for a level at the right edge, vertically centered.
func NewBoss(level int) *Boss {
	return &Boss{
		Rect: physics.Rect{
			X: Playfield.W,
			Y: Playfield.H/2 - config.BossSize/2,
			W: config.BossSize,
			H: config.BossSize,
		},
		Speed: config.BossSpeed,
		HP:    BossHP(level),
	}
}

// Bounds returns the boss's collision box.
func (b *Boss) Bounds() physics.Rect {
	return b.Rect
}

// Update moves the boss left until it reaches its holding position.
func (b *Boss) Update() {
	b.X -= b.Speed
	if minX := Playfield.W - b.W - config.BossRightMargin; b.X < minX {
		b.X = minX
	}
}
