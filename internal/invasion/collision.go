package invasion

import "time"

// Hit records one projectile consumed against one hostile.
type Hit struct {
	Projectile EntityID
	Hostile    EntityID
	Of         Kind
	Result     HitResult
}

// CollisionReport is everything the resolver did during one tick.
type CollisionReport struct {
	Hits    []Hit
	Contact bool // The player touched a hostile and loses a life
}

// Points returns the score earned by the hits in the report.
func (c CollisionReport) Points() int {
	total := 0
	for _, h := range c.Hits {
		if h.Result.Destroyed {
			total += h.Result.Points
		}
	}
	return total
}

// CollisionResolver detects and resolves projectile-hostile and
// player-hostile overlaps. It owns the contact invulnerability deadline.
type CollisionResolver struct {
	invulnerableUntil time.Duration
	armed             bool
}

// NewCollisionResolver creates a resolver with no active invulnerability.
func NewCollisionResolver() *CollisionResolver {
	return &CollisionResolver{}
}

// Reset clears the invulnerability window.
func (c *CollisionResolver) Reset() {
	c.invulnerableUntil = 0
	c.armed = false
}

// Invulnerable reports whether contact damage is suppressed at now.
func (c *CollisionResolver) Invulnerable(now time.Duration) bool {
	return c.armed && now < c.invulnerableUntil
}

// Resolve runs both collision passes against reg at time now.
//
// Each projectile credits at most one hostile: the first live hostile it
// overlaps in registry order. A contact between the player and any number
// of hostiles counts once and starts the invulnerability window.
func (c *CollisionResolver) Resolve(reg *Registry, now time.Duration) CollisionReport {
	var report CollisionReport

	for _, p := range reg.Projectiles() {
		pb := p.Bounds()
		for _, h := range reg.Hostiles() {
			if !pb.Intersects(h.Bounds()) {
				continue
			}

			reg.Remove(p.ID())
			hit := Hit{
				Projectile: p.ID(),
				Hostile:    h.ID(),
				Of:         h.Kind(),
				Result:     h.TakeHit(),
			}
			if hit.Result.Destroyed {
				reg.Remove(h.ID())
			}
			report.Hits = append(report.Hits, hit)
			break
		}
	}

	player := reg.Player()
	if player == nil || c.Invulnerable(now) {
		return report
	}
	pb := player.Bounds()
	for _, h := range reg.Hostiles() {
		if pb.Intersects(h.Bounds()) {
			report.Contact = true
			c.invulnerableUntil = now + ContactCooldown
			c.armed = true
			break
		}
	}

	return report
}
