package object

import (
	"math"
	"time"

	"github.com/tomz197/spaceimpact/internal/physics"
)

// EnemyKind represents the variant of an enemy.
type EnemyKind int

const (
	EnemyNormal EnemyKind = iota
	EnemyFast
	EnemyZigZag
	EnemyMiniBoss
)

// String returns the variant name.
func (k EnemyKind) String() string {
	switch k {
	case EnemyNormal:
		return "normal"
	case EnemyFast:
		return "fast"
	case EnemyZigZag:
		return "zigzag"
	case EnemyMiniBoss:
		return "miniboss"
	default:
		return "unknown"
	}
}

// enemyStats holds the base properties of a variant and how they scale with
// the difficulty multiplier.
type enemyStats struct {
	size       float64
	speed      float64
	speedScale float64
	hp         int
	hpScale    float64
}

var enemyTable = map[EnemyKind]enemyStats{
	EnemyNormal:   {size: 28, speed: 2, speedScale: 1, hp: 1},
	EnemyFast:     {size: 20, speed: 3.5, speedScale: 1.2, hp: 1},
	EnemyZigZag:   {size: 24, speed: 2, speedScale: 1, hp: 2},
	EnemyMiniBoss: {size: 44, speed: 1.2, speedScale: 0.3, hp: 6, hpScale: 2},
}

// Cumulative probability bands used to pick a variant.
const (
	normalBand = 0.55
	fastBand   = 0.78
	zigzagBand = 0.95
)

// zigzag oscillation parameters
const (
	zigzagPeriodMillis = 200.0
	zigzagAmplitude    = 2.0
)

// Enemy is a hostile craft moving right to left.
type Enemy struct {
	physics.Rect
	Kind  EnemyKind
	Speed float64
	HP    int
	Phase float64 // Oscillation phase, zigzag only
}

// KindForRoll maps a uniform draw in [0,1) to a variant.
func KindForRoll(u float64) EnemyKind {
	switch {
	case u < normalBand:
		return EnemyNormal
	case u < fastBand:
		return EnemyFast
	case u < zigzagBand:
		return EnemyZigZag
	default:
		return EnemyMiniBoss
	}
}

// NewEnemy creates an enemy of the given kind at (x, y), scaled by the
// difficulty multiplier.
func NewEnemy(kind EnemyKind, x, y, difficulty float64) Enemy {
	st := enemyTable[kind]
	return Enemy{
		Rect:  physics.Rect{X: x, Y: y, W: st.size, H: st.size},
		Kind:  kind,
		Speed: st.speed + difficulty*st.speedScale,
		HP:    st.hp + int(math.Floor(difficulty*st.hpScale)),
	}
}

// NewEnemyAtEdge picks a random variant and places it at the right edge of
// the playfield.
func NewEnemyAtEdge(rng Rand, difficulty float64) Enemy {
	kind := KindForRoll(rng.Float64())
	st := enemyTable[kind]
	e := NewEnemy(kind, Playfield.W, spawnY(rng, st.size), difficulty)
	if kind == EnemyZigZag {
		e.Phase = rng.Float64() * 2 * math.Pi
	}
	return e
}

// Bounds returns the enemy's collision box.
func (e *Enemy) Bounds() physics.Rect {
	return e.Rect
}

// Update moves the enemy left; zigzag enemies also oscillate vertically as a
// function of elapsed time. Returns true once the enemy has left the playfield.
func (e *Enemy) Update(elapsed time.Duration) bool {
	e.X -= e.Speed
	if e.Kind == EnemyZigZag {
		ms := float64(elapsed.Milliseconds())
		e.Y += math.Sin(ms/zigzagPeriodMillis+e.Phase) * zigzagAmplitude
	}
	return offLeft(e.Rect)
}
