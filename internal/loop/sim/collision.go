package sim

import (
	"time"

	"github.com/tomz197/spaceimpact/internal/loop/config"
	"github.com/tomz197/spaceimpact/internal/object"
	"github.com/tomz197/spaceimpact/internal/physics"
)

// collisionCellSize bounds the centre distance at which a bullet can overlap
// the largest enemy.
const collisionCellSize = 48

// touches reports whether two entities overlap.
func touches(a, b object.Bounded) bool {
	return physics.Overlaps(a.Bounds(), b.Bounds())
}

// enemyScore returns the score for destroying an enemy.
func enemyScore(kind object.EnemyKind) int {
	if kind == object.EnemyMiniBoss {
		return config.ScoreMiniBoss
	}
	return config.ScoreEnemy
}

// updateBullets moves bullets and resolves their hits. A bullet damages the
// first enemy it overlaps and, independently, the boss; it is consumed if
// it hit either. Destroyed enemies are compacted after the pass.
func (s *SimulationState) updateBullets() {
	s.indexEnemies()

	kept := s.Bullets[:0]
	killed := false
	for _, b := range s.Bullets {
		if b.Update() {
			continue
		}
		hitEnemy, kill := s.bulletHitsEnemy(&b)
		killed = killed || kill
		hitBoss := s.bulletHitsBoss(&b)
		if hitEnemy || hitBoss {
			continue
		}
		kept = append(kept, b)
	}
	s.Bullets = kept

	if killed {
		alive := s.Enemies[:0]
		for _, e := range s.Enemies {
			if e.HP > 0 {
				alive = append(alive, e)
			}
		}
		s.Enemies = alive
	}
}

// indexEnemies rebuilds the enemy grid for this tick's bullet pass.
func (s *SimulationState) indexEnemies() {
	if s.grid == nil {
		s.grid = physics.NewSpatialGrid(object.Playfield.W, object.Playfield.H, collisionCellSize)
	}
	s.grid.Clear()
	for i := range s.Enemies {
		x, y := s.Enemies[i].Center()
		s.grid.Insert(x, y, i)
	}
}

// bulletHitsEnemy applies a bullet to the first live enemy, in collection
// order, that it overlaps.
func (s *SimulationState) bulletHitsEnemy(b *object.Bullet) (hit, kill bool) {
	first := -1
	x, y := b.Center()
	s.grid.QueryAround(x, y, func(i int) bool {
		e := &s.Enemies[i]
		if e.HP > 0 && (first < 0 || i < first) && touches(b, e) {
			first = i
		}
		return false
	})
	if first < 0 {
		return false, false
	}

	e := &s.Enemies[first]
	e.HP--
	if e.HP > 0 {
		return true, false
	}
	s.Explosions = append(s.Explosions, object.NewExplosion(e.Rect))
	points := enemyScore(e.Kind)
	s.emit(Event{Type: EventEnemyDestroyed, Points: points, Detail: e.Kind.String()})
	s.awardPoints(points)
	return true, true
}

// bulletHitsBoss applies a bullet to the boss if it overlaps.
func (s *SimulationState) bulletHitsBoss(b *object.Bullet) bool {
	if s.Boss == nil || !touches(b, s.Boss) {
		return false
	}
	s.Boss.HP--
	if s.Boss.HP <= 0 {
		s.defeatBoss()
	}
	return true
}

// updateEnemies moves enemies and resolves ship contact. Returns false if
// the run ended during the pass; enemies after the fatal one are left
// untouched.
func (s *SimulationState) updateEnemies(elapsed time.Duration) bool {
	kept := s.Enemies[:0]
	for i := 0; i < len(s.Enemies); i++ {
		e := s.Enemies[i]
		if e.Update(elapsed) {
			continue
		}
		if touches(&e, &s.Ship) {
			if s.loseLife() {
				kept = append(kept, s.Enemies[i+1:]...)
				s.Enemies = kept
				return false
			}
			continue
		}
		kept = append(kept, e)
	}
	s.Enemies = kept
	return true
}

// loseLife removes a life. Returns true if that was the last one.
func (s *SimulationState) loseLife() bool {
	s.Lives--
	if s.Lives <= 0 {
		s.Lives = 0
		s.GameOver = true
		s.emit(Event{Type: EventLifeLost})
		s.emit(Event{Type: EventGameOver})
		return true
	}
	s.emit(Event{Type: EventLifeLost})
	return false
}
