package object

import (
	"github.com/tomz197/spaceimpact/internal/loop/config"
	"github.com/tomz197/spaceimpact/internal/physics"
)

// PowerupKind identifies the effect a powerup grants.
type PowerupKind int

const (
	PowerupLife PowerupKind = iota
	PowerupDoubleShot
)

// String returns the powerup name.
func (k PowerupKind) String() string {
	switch k {
	case PowerupLife:
		return "life"
	case PowerupDoubleShot:
		return "double"
	default:
		return "unknown"
	}
}

// Powerup drifts left and grants its effect when the ship touches it.
type Powerup struct {
	physics.Rect
	Kind  PowerupKind
	Speed float64
}

// NewPowerupAtEdge creates a random powerup at the right edge of the playfield.
func NewPowerupAtEdge(rng Rand) Powerup {
	kind := PowerupLife
	if rng.Float64() >= 0.5 {
		kind = PowerupDoubleShot
	}
	return Powerup{
		Rect: physics.Rect{
			X: Playfield.W,
			Y: spawnY(rng, config.PowerupSize),
			W: config.PowerupSize,
			H: config.PowerupSize,
		},
		Kind:  kind,
		Speed: config.PowerupSpeed,
	}
}

// Bounds returns the powerup's collision box.
func (p *Powerup) Bounds() physics.Rect {
	return p.Rect
}

// Update moves the powerup left. Returns true once it has left the playfield.
func (p *Powerup) Update() bool {
	p.X -= p.Speed
	return offLeft(p.Rect)
}
