// Package invasion implements the game session engine for the alien
// invasion shooter: entities, movement, collisions, wave progression and
// the score/lives lifecycle. It never draws; the platform renders Snapshots.
package invasion

import (
	"time"

	"github.com/vovakirdan/tui-invasion/internal/core"
)

// Entity dimensions and speeds in play-area pixels (per tick).
const (
	PlayerWidth  = 50
	PlayerHeight = 40
	PlayerSpeed  = 8
	PlayerLives  = 3
	PlayerMargin = 20 // Gap between player bottom and play-area bottom

	EnemyWidth  = 40
	EnemyHeight = 30

	BossWidth       = 120
	BossHeight      = 80
	BossFallSpeed   = 1
	BossStrafeSpeed = 2
	BossHealth      = 10
	BossEntryY      = -100
	BossEnragedAt   = 3 // Health at or below which the boss is drawn enraged

	ProjectileWidth  = 4
	ProjectileHeight = 16
	ProjectileSpeed  = 15
)

// Timing windows.
const (
	ShotCooldown     = 200 * time.Millisecond
	ContactCooldown  = 500 * time.Millisecond
	AnnounceDuration = 1500 * time.Millisecond
)

// Score values.
const (
	EnemyPoints = 100
	BossPoints  = 500
)

// EntityID identifies a live entity. Zero means "not registered".
type EntityID uint64

// Kind tags the entity variant.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindBoss
	KindProjectile
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindBoss:
		return "boss"
	case KindProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// Entity is anything the registry tracks.
type Entity interface {
	ID() EntityID
	Kind() Kind
	Bounds() core.Box

	setID(id EntityID)
}

// Area is the play area in pixels. The origin is the top-left corner.
type Area struct {
	Width  float64
	Height float64
}

// body holds the state shared by all entities.
type body struct {
	id  EntityID
	box core.Box
}

// ID returns the registry identity.
func (b *body) ID() EntityID { return b.id }

// Bounds returns the bounding box.
func (b *body) Bounds() core.Box { return b.box }

func (b *body) setID(id EntityID) { b.id = id }

// FallOutcome tells the movement system what happens when a hostile's
// top edge passes the bottom of the play area.
type FallOutcome int

const (
	FallPenalty FallOutcome = iota // Destroyed, player loses a life
	FallReenter                    // Wrapped back above the play area
)

// HitResult describes the effect of one projectile hit on a hostile.
type HitResult struct {
	Destroyed bool
	Points    int // Awarded only when Destroyed
	Remaining int // Health left after the hit
}

// Hostile is an enemy-aligned entity: a regular Enemy or the Boss.
type Hostile interface {
	Entity

	// Advance moves the hostile by one tick inside the area.
	Advance(area Area)

	// OnFallThrough handles the hostile's top edge passing the bottom.
	OnFallThrough(area Area) FallOutcome

	// TakeHit applies one projectile hit.
	TakeHit() HitResult
}

// Player is the ship controlled by the user.
type Player struct {
	body
	Speed    float64
	Lives    int
	lastShot time.Duration // Clock reading of the last successful shot
	hasShot  bool
}

// NewPlayer creates a player centered at the bottom of the area.
func NewPlayer(area Area) *Player {
	x := area.Width/2 - PlayerWidth/2
	y := area.Height - PlayerMargin - PlayerHeight
	return &Player{
		body:  body{box: core.NewBox(x, y, PlayerWidth, PlayerHeight)},
		Speed: PlayerSpeed,
		Lives: PlayerLives,
	}
}

// Kind returns KindPlayer.
func (p *Player) Kind() Kind { return KindPlayer }

// canShoot reports whether the fire cooldown has elapsed at now.
func (p *Player) canShoot(now time.Duration) bool {
	return !p.hasShot || now-p.lastShot >= ShotCooldown
}

// markShot records a successful shot at now.
func (p *Player) markShot(now time.Duration) {
	p.lastShot = now
	p.hasShot = true
}

// Move shifts the player horizontally, clamped to the area.
func (p *Player) Move(dir Direction, area Area) {
	p.box.X = core.ClampF(p.box.X+float64(dir)*p.Speed, 0, area.Width-p.box.W)
}

// LoseLife removes one life without going below zero.
func (p *Player) LoseLife() {
	if p.Lives > 0 {
		p.Lives--
	}
}

// Enemy is a regular invader falling straight down.
type Enemy struct {
	body
	Speed float64
}

// NewEnemy creates an enemy at (x, y) with the given fall speed.
func NewEnemy(x, y, speed float64) *Enemy {
	if speed < 0 {
		panic("invasion: negative enemy speed")
	}
	return &Enemy{
		body:  body{box: core.NewBox(x, y, EnemyWidth, EnemyHeight)},
		Speed: speed,
	}
}

// Kind returns KindEnemy.
func (e *Enemy) Kind() Kind { return KindEnemy }

// Advance moves the enemy down.
func (e *Enemy) Advance(Area) {
	e.box.Y += e.Speed
}

// OnFallThrough costs the player a life.
func (e *Enemy) OnFallThrough(Area) FallOutcome {
	return FallPenalty
}

// TakeHit destroys the enemy.
func (e *Enemy) TakeHit() HitResult {
	return HitResult{Destroyed: true, Points: EnemyPoints, Remaining: 0}
}

// Boss is the slow, strafing hostile that appears every fifth wave.
type Boss struct {
	body
	Speed     float64
	Direction int // +1 right, -1 left
	Health    int
}

// NewBoss creates a boss centered horizontally above the area.
func NewBoss(area Area) *Boss {
	x := area.Width/2 - BossWidth/2
	return &Boss{
		body:      body{box: core.NewBox(x, BossEntryY, BossWidth, BossHeight)},
		Speed:     BossFallSpeed,
		Direction: 1,
		Health:    BossHealth,
	}
}

// Kind returns KindBoss.
func (b *Boss) Kind() Kind { return KindBoss }

// Advance moves the boss down and sideways, reflecting off the side edges.
func (b *Boss) Advance(area Area) {
	b.box.Y += b.Speed
	b.box.X += float64(b.Direction) * BossStrafeSpeed

	if b.box.X <= 0 {
		b.box.X = 0
		b.Direction = 1
	} else if b.box.Right() >= area.Width {
		b.box.X = area.Width - b.box.W
		b.Direction = -1
	}
}

// OnFallThrough wraps the boss back above the area.
func (b *Boss) OnFallThrough(Area) FallOutcome {
	b.box.Y = BossEntryY
	return FallReenter
}

// TakeHit removes one point of health; the last one destroys the boss.
func (b *Boss) TakeHit() HitResult {
	if b.Health > 0 {
		b.Health--
	}
	if b.Health == 0 {
		return HitResult{Destroyed: true, Points: BossPoints}
	}
	return HitResult{Remaining: b.Health}
}

// Enraged reports whether the boss is low on health.
func (b *Boss) Enraged() bool {
	return b.Health <= BossEnragedAt
}

// Projectile is a player shot travelling straight up.
type Projectile struct {
	body
	Speed float64
}

// NewProjectile creates a projectile whose bottom-center sits at (cx, bottom).
func NewProjectile(cx, bottom float64) *Projectile {
	return &Projectile{
		body:  body{box: core.NewBox(cx-ProjectileWidth/2, bottom-ProjectileHeight, ProjectileWidth, ProjectileHeight)},
		Speed: ProjectileSpeed,
	}
}

// Kind returns KindProjectile.
func (p *Projectile) Kind() Kind { return KindProjectile }

// Advance moves the projectile up.
func (p *Projectile) Advance() {
	p.box.Y -= p.Speed
}

// Direction is a horizontal movement intent.
type Direction int

const (
	DirLeft  Direction = -1
	DirNone  Direction = 0
	DirRight Direction = 1
)
