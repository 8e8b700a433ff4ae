package invasion

import "fmt"

// Registry owns every live entity of a session.
//
// Entities are kept in insertion order; collision resolution breaks ties by
// that order. The player is tracked separately as a singleton.
type Registry struct {
	nextID   EntityID
	player   *Player
	entities []Entity
	boss     *Boss
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entities: make([]Entity, 0, 32),
	}
}

// assign gives e a fresh identity.
func (r *Registry) assign(e Entity) {
	if e.ID() != 0 && r.Contains(e.ID()) {
		panic(fmt.Sprintf("invasion: entity %d already registered", e.ID()))
	}
	r.nextID++
	e.setID(r.nextID)
}

// SetPlayer registers p as the session's player, replacing any previous one.
func (r *Registry) SetPlayer(p *Player) {
	r.assign(p)
	r.player = p
}

// Player returns the registered player, or nil.
func (r *Registry) Player() *Player {
	return r.player
}

// Add registers a hostile or projectile and returns its identity.
// Registering a second boss is an invariant violation.
func (r *Registry) Add(e Entity) EntityID {
	switch v := e.(type) {
	case *Player:
		r.SetPlayer(v)
		return v.ID()
	case *Boss:
		if r.boss != nil {
			panic("invasion: a boss is already registered")
		}
		r.boss = v
	}
	r.assign(e)
	r.entities = append(r.entities, e)
	return e.ID()
}

// Remove drops the entity with the given identity.
// Removing an unknown or already removed entity is a no-op.
func (r *Registry) Remove(id EntityID) {
	if id == 0 {
		return
	}
	if r.player != nil && r.player.ID() == id {
		r.player = nil
		return
	}
	for i, e := range r.entities {
		if e.ID() != id {
			continue
		}
		if r.boss != nil && r.boss.ID() == id {
			r.boss = nil
		}
		r.entities = append(r.entities[:i], r.entities[i+1:]...)
		return
	}
}

// Contains reports whether an entity with the given identity is live.
func (r *Registry) Contains(id EntityID) bool {
	if r.player != nil && r.player.ID() == id {
		return true
	}
	for _, e := range r.entities {
		if e.ID() == id {
			return true
		}
	}
	return false
}

// All returns every live entity: the player first, then the rest in
// insertion order. The returned slice is a copy.
func (r *Registry) All() []Entity {
	all := make([]Entity, 0, len(r.entities)+1)
	if r.player != nil {
		all = append(all, r.player)
	}
	return append(all, r.entities...)
}

// Hostiles returns live enemies and the boss in insertion order.
func (r *Registry) Hostiles() []Hostile {
	var out []Hostile
	for _, e := range r.entities {
		if h, ok := e.(Hostile); ok {
			out = append(out, h)
		}
	}
	return out
}

// Projectiles returns live projectiles in insertion order.
func (r *Registry) Projectiles() []*Projectile {
	var out []*Projectile
	for _, e := range r.entities {
		if p, ok := e.(*Projectile); ok {
			out = append(out, p)
		}
	}
	return out
}

// HostileCount returns the number of live hostiles.
func (r *Registry) HostileCount() int {
	n := 0
	for _, e := range r.entities {
		if _, ok := e.(Hostile); ok {
			n++
		}
	}
	return n
}

// Boss returns the live boss, or nil.
func (r *Registry) Boss() *Boss {
	return r.boss
}

// Len returns the number of live entities including the player.
func (r *Registry) Len() int {
	n := len(r.entities)
	if r.player != nil {
		n++
	}
	return n
}

// Clear drops every entity, the player included. Identities keep
// increasing so stale references never match a new entity.
func (r *Registry) Clear() {
	clear(r.entities)
	r.entities = r.entities[:0]
	r.player = nil
	r.boss = nil
}
