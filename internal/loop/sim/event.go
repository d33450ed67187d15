package sim

// EventType identifies something notable that happened during a tick.
type EventType int

const (
	EventEnemyDestroyed EventType = iota
	EventBossSpawned
	EventBossDefeated
	EventLevelUp
	EventLifeLost
	EventPowerupCollected
	EventGameOver
)

// String returns the event name.
func (t EventType) String() string {
	switch t {
	case EventEnemyDestroyed:
		return "enemy destroyed"
	case EventBossSpawned:
		return "boss spawned"
	case EventBossDefeated:
		return "boss defeated"
	case EventLevelUp:
		return "level up"
	case EventLifeLost:
		return "life lost"
	case EventPowerupCollected:
		return "powerup collected"
	case EventGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Event is emitted by Step. Fields not relevant to the type are zero.
type Event struct {
	Type   EventType
	Score  int    // Score after the event
	Points int    // Points awarded by this event
	Lives  int    // Lives after the event
	Level  int    // Level after the event
	Detail string // Enemy or powerup kind
}

func (s *SimulationState) emit(e Event) {
	e.Score = s.Score
	e.Lives = s.Lives
	e.Level = s.Level
	s.events = append(s.events, e)
}
