// Package object defines the entities that live on the playfield.
package object

import (
	"github.com/tomz197/spaceimpact/internal/input"
	"github.com/tomz197/spaceimpact/internal/loop/config"
	"github.com/tomz197/spaceimpact/internal/physics"
)

// Input is an alias for the input package's Input type.
type Input = input.Input

// Rand is the source of randomness used for spawning.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Playfield is the logical rectangle all entities move within.
var Playfield = physics.Rect{
	W: config.PlayfieldWidth,
	H: config.PlayfieldHeight,
}

// Bounded is implemented by every entity with a collision box.
type Bounded interface {
	Bounds() physics.Rect
}

// spawnY returns a uniform-random y such that an entity of height h fits
// inside the playfield.
func spawnY(rng Rand, h float64) float64 {
	return rng.Float64() * (Playfield.H - h)
}

// offLeft reports whether r has fully left the playfield on the left.
func offLeft(r physics.Rect) bool {
	return r.X+r.W < 0
}
