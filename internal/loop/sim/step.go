package sim

import (
	"time"

	"github.com/tomz197/spaceimpact/internal/loop/config"
	"github.com/tomz197/spaceimpact/internal/object"
)

// Step advances the run by one tick. elapsed is the wall-clock time since the
// program started and drives the zigzag oscillation.
//
// The returned events are only valid until the next call to Step.
// Step does nothing once the run is over.
func (s *SimulationState) Step(in object.Input, elapsed time.Duration) []Event {
	s.events = s.events[:0]
	if s.GameOver {
		return nil
	}

	s.Ship.Move(in)
	s.autoFire()
	s.spawn()
	s.updateBullets()

	if !s.updateEnemies(elapsed) {
		// Run ended mid-pass; everything else stays where it was.
		return s.events
	}

	s.updatePowerups()
	s.updateBoss()
	s.updateDoubleShot()
	s.updateExplosions()

	return s.events
}

// autoFire emits bullets from the ship whenever the fire cooldown expires.
func (s *SimulationState) autoFire() {
	s.fireTimer++
	if s.fireTimer > s.FireInterval() {
		s.Bullets = append(s.Bullets, s.Ship.Fire(s.DoubleShot)...)
		s.fireTimer = 0
	}
}

// updatePowerups moves powerups and applies the ones the ship touches.
func (s *SimulationState) updatePowerups() {
	kept := s.Powerups[:0] // reuse backing array
	for _, p := range s.Powerups {
		gone := p.Update()
		if touches(&p, &s.Ship) {
			s.applyPowerup(p.Kind)
			continue
		}
		if !gone {
			kept = append(kept, p)
		}
	}
	s.Powerups = kept
}

// applyPowerup grants a powerup's effect. Collecting double-shot while it is
// active refreshes the duration.
func (s *SimulationState) applyPowerup(kind object.PowerupKind) {
	switch kind {
	case object.PowerupLife:
		s.Lives++
	case object.PowerupDoubleShot:
		s.DoubleShot = true
		s.DoubleShotTicks = config.DoubleShotDuration
	}
	s.emit(Event{Type: EventPowerupCollected, Detail: kind.String()})
}

// updateBoss moves the boss towards its holding position.
func (s *SimulationState) updateBoss() {
	if s.Boss != nil {
		s.Boss.Update()
	}
}

// updateDoubleShot counts down the double-shot effect.
func (s *SimulationState) updateDoubleShot() {
	if !s.DoubleShot {
		return
	}
	s.DoubleShotTicks--
	if s.DoubleShotTicks <= 0 {
		s.DoubleShotTicks = 0
		s.DoubleShot = false
	}
}

// updateExplosions counts down explosions and drops the expired ones.
func (s *SimulationState) updateExplosions() {
	kept := s.Explosions[:0]
	for _, e := range s.Explosions {
		if !e.Update() {
			kept = append(kept, e)
		}
	}
	s.Explosions = kept
}
