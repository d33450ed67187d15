package object

import (
	"github.com/tomz197/spaceimpact/internal/loop/config"
	"github.com/tomz197/spaceimpact/internal/physics"
)

// Explosion is a short-lived visual marker left where an enemy was destroyed.
type Explosion struct {
	physics.Rect
	Timer int // Ticks remaining
}

// NewExplosion creates an explosion covering the given rectangle.
func NewExplosion(r physics.Rect) Explosion {
	return Explosion{Rect: r, Timer: config.ExplosionTicks}
}

// Update counts the explosion down. Returns true once it has expired.
func (e *Explosion) Update() bool {
	e.Timer--
	return e.Timer <= 0
}

// Star is a background dot scrolling right to left.
type Star struct {
	X, Y  float64
	Size  float64
	Speed float64
}

// NewStarfield creates count stars scattered over the playfield.
func NewStarfield(rng Rand, count int) []Star {
	stars := make([]Star, count)
	for i := range stars {
		stars[i] = Star{
			X:     rng.Float64() * Playfield.W,
			Y:     rng.Float64() * Playfield.H,
			Size:  rng.Float64()*2 + 1,
			Speed: rng.Float64()*1.5 + 0.5,
		}
	}
	return stars
}

// Update scrolls the star; once past the left edge it wraps to the right
// edge at a new random height.
func (s *Star) Update(rng Rand) {
	s.X -= s.Speed
	if s.X < 0 {
		s.X = Playfield.W
		s.Y = rng.Float64() * Playfield.H
	}
}
