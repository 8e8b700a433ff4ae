package invasion

// OutcomeKind classifies what happened to an entity during a movement pass.
type OutcomeKind int

const (
	OutcomeLifeLost          OutcomeKind = iota // An enemy fell through; the player pays a life
	OutcomeHostileExpired                       // A hostile left the area and was removed
	OutcomeProjectileExpired                    // A projectile left the top edge and was removed
	OutcomeBossReentered                        // The boss fell through and wrapped to the top
)

// Outcome is one side effect produced by the movement pass.
// The session consumes outcomes; the movement system never touches
// score or lives itself.
type Outcome struct {
	Kind   OutcomeKind
	Entity EntityID
	Of     Kind
}

// MovementSystem advances hostiles and projectiles by one tick and applies
// the off-screen policies. Player movement is input-driven (see Session.Move).
type MovementSystem struct {
	area Area
}

// NewMovementSystem creates a movement system for the given play area.
func NewMovementSystem(area Area) *MovementSystem {
	return &MovementSystem{area: area}
}

// Advance moves every hostile and projectile in reg and removes those that
// left the area. Outcomes are returned in registry order.
func (m *MovementSystem) Advance(reg *Registry) []Outcome {
	var outcomes []Outcome

	for _, h := range reg.Hostiles() {
		h.Advance(m.area)
		b := h.Bounds()

		if b.Y > m.area.Height {
			switch h.OnFallThrough(m.area) {
			case FallPenalty:
				reg.Remove(h.ID())
				outcomes = append(outcomes,
					Outcome{Kind: OutcomeLifeLost, Entity: h.ID(), Of: h.Kind()},
					Outcome{Kind: OutcomeHostileExpired, Entity: h.ID(), Of: h.Kind()},
				)
			case FallReenter:
				outcomes = append(outcomes, Outcome{Kind: OutcomeBossReentered, Entity: h.ID(), Of: h.Kind()})
			}
			continue
		}

		if b.Right() < 0 || b.X > m.area.Width {
			reg.Remove(h.ID())
			outcomes = append(outcomes, Outcome{Kind: OutcomeHostileExpired, Entity: h.ID(), Of: h.Kind()})
		}
	}

	for _, p := range reg.Projectiles() {
		p.Advance()
		if p.Bounds().Bottom() < 0 {
			reg.Remove(p.ID())
			outcomes = append(outcomes, Outcome{Kind: OutcomeProjectileExpired, Entity: p.ID(), Of: KindProjectile})
		}
	}

	return outcomes
}
