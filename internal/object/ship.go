package object

import (
	"github.com/tomz197/spaceimpact/internal/loop/config"
	"github.com/tomz197/spaceimpact/internal/physics"
)

// Ship is the player-controlled craft. It may move anywhere vertically but
// never past the horizontal midline of the playfield.
type Ship struct {
	physics.Rect
	Speed float64 // Units per tick
}

// NewShip creates a ship at its starting position.
func NewShip() Ship {
	s := Ship{
		Rect:  physics.Rect{W: config.ShipWidth, H: config.ShipHeight},
		Speed: config.ShipSpeed,
	}
	s.Reset()
	return s
}

// Reset moves the ship back to its starting position.
func (s *Ship) Reset() {
	s.X = config.ShipStartX
	s.Y = Playfield.H/2 - s.H/2
}

// Bounds returns the ship's collision box.
func (s *Ship) Bounds() physics.Rect {
	return s.Rect
}

// Move applies held directions and clamps the ship to its allowed area.
func (s *Ship) Move(in Input) {
	maxY := Playfield.H - s.H
	maxX := Playfield.W/2 - s.W

	if in.Up {
		s.Y = physics.Clamp(s.Y-s.Speed, 0, maxY)
	}
	if in.Down {
		s.Y = physics.Clamp(s.Y+s.Speed, 0, maxY)
	}
	if in.Left {
		s.X = physics.Clamp(s.X-s.Speed, 0, maxX)
	}
	if in.Right {
		s.X = physics.Clamp(s.X+s.Speed, 0, maxX)
	}
}

// Fire returns the bullets emitted by one fire event from the ship's nose.
// Double-shot fires two bullets offset towards the top and bottom of the hull.
func (s *Ship) Fire(double bool) []Bullet {
	x := s.X + s.W
	if double {
		return []Bullet{
			NewBullet(x, s.Y+6),
			NewBullet(x, s.Y+s.H-12),
		}
	}
	return []Bullet{NewBullet(x, s.Y+s.H/2-config.BulletHeight/2)}
}
