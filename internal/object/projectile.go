package object

import (
	"github.com/tomz197/spaceimpact/internal/loop/config"
	"github.com/tomz197/spaceimpact/internal/physics"
)

// Bullet is a projectile fired by the player. It travels right and is
// consumed by the first thing it hits.
type Bullet struct {
	physics.Rect
	Speed float64
}

// NewBullet creates a bullet with its top-left corner at (x, y).
func NewBullet(x, y float64) Bullet {
	return Bullet{
		Rect:  physics.Rect{X: x, Y: y, W: config.BulletWidth, H: config.BulletHeight},
		Speed: config.BulletSpeed,
	}
}

// Bounds returns the bullet's collision box.
func (b *Bullet) Bounds() physics.Rect {
	return b.Rect
}

// Update moves the bullet. Returns true once it has left the playfield.
func (b *Bullet) Update() bool {
	b.X += b.Speed
	return b.X > Playfield.W
}
