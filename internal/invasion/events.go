package invasion

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventShotFired EventKind = iota
	EventEnemyDestroyed
	EventBossHit
	EventBossDestroyed
	EventLifeLost
	EventHostileExpired
	EventWaveStarted
	EventBossWaveCleared
	EventGameOver
	EventRestarted
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventShotFired:
		return "shot_fired"
	case EventEnemyDestroyed:
		return "enemy_destroyed"
	case EventBossHit:
		return "boss_hit"
	case EventBossDestroyed:
		return "boss_destroyed"
	case EventLifeLost:
		return "life_lost"
	case EventHostileExpired:
		return "hostile_expired"
	case EventWaveStarted:
		return "wave_started"
	case EventBossWaveCleared:
		return "boss_wave_cleared"
	case EventGameOver:
		return "game_over"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// LossCause tells why a life was lost.
type LossCause int

const (
	CauseNone        LossCause = iota
	CauseFallThrough           // An enemy reached the bottom
	CauseContact               // The player touched a hostile
)

func (c LossCause) String() string {
	switch c {
	case CauseFallThrough:
		return "fall_through"
	case CauseContact:
		return "contact"
	default:
		return "none"
	}
}

// Event is one entry of a tick's event log.
type Event struct {
	Kind   EventKind `msgpack:"kind"`
	Entity EntityID  `msgpack:"entity,omitempty"`
	Wave   int       `msgpack:"wave,omitempty"`
	Points int       `msgpack:"points,omitempty"`
	Health int       `msgpack:"health,omitempty"` // Boss health after EventBossHit
	Lives  int       `msgpack:"lives,omitempty"`  // Lives after EventLifeLost
	Cause  LossCause `msgpack:"cause,omitempty"`
}
