package invasion

import "github.com/vovakirdan/tui-invasion/internal/core"

// Visual is the render hint for an entity.
type Visual int

const (
	VisualNormal       Visual = iota
	VisualInvulnerable        // Player inside the contact window
	VisualEnraged             // Boss low on health
)

// EntityView is one entity as the renderer sees it.
type EntityView struct {
	Kind   Kind     `msgpack:"kind"`
	Box    core.Box `msgpack:"box"`
	Visual Visual   `msgpack:"visual"`
}

// HUD holds the heads-up display fields.
type HUD struct {
	Score      int  `msgpack:"score"`
	Wave       int  `msgpack:"wave"`
	Lives      int  `msgpack:"lives"`
	BossHealth int  `msgpack:"boss_health"`
	HasBoss    bool `msgpack:"has_boss"`
}

// Snapshot is the complete render handoff for one tick.
// Uses plain fields only so it can be serialized for traces.
type Snapshot struct {
	Tick     uint64       `msgpack:"tick"`
	Width    float64      `msgpack:"width"`
	Height   float64      `msgpack:"height"`
	Entities []EntityView `msgpack:"entities"`
	HUD      HUD          `msgpack:"hud"`
	State    SessionState `msgpack:"state"`
	Paused   bool         `msgpack:"paused"`
	Message  string       `msgpack:"message,omitempty"`
}

// GameOver reports whether the snapshot was taken after game over.
func (s Snapshot) GameOver() bool {
	return s.State == StateGameOver
}

// Snapshot captures the current state for the renderer.
func (s *Session) Snapshot() Snapshot {
	now := s.clock.Now()
	snap := Snapshot{
		Tick:     s.tick,
		Width:    s.area.Width,
		Height:   s.area.Height,
		Entities: make([]EntityView, 0, s.registry.Len()),
		HUD: HUD{
			Score: s.score,
			Wave:  s.director.Wave(),
			Lives: s.Lives(),
		},
		State:  s.state,
		Paused: s.paused,
	}
	if s.Announcing() {
		snap.Message = s.message
	}

	for _, e := range s.registry.All() {
		view := EntityView{Kind: e.Kind(), Box: e.Bounds()}
		switch e.Kind() {
		case KindPlayer:
			if s.collisions.Invulnerable(now) {
				view.Visual = VisualInvulnerable
			}
		case KindBoss:
			if boss := s.registry.Boss(); boss != nil && boss.Enraged() {
				view.Visual = VisualEnraged
			}
		}
		snap.Entities = append(snap.Entities, view)
	}

	if boss := s.registry.Boss(); boss != nil {
		snap.HUD.HasBoss = true
		snap.HUD.BossHealth = boss.Health
	}

	return snap
}
