package invasion

import (
	"time"

	"github.com/vovakirdan/tui-invasion/internal/core"
)

// SessionState is the top-level state of a session.
type SessionState int

const (
	StateRunning SessionState = iota
	StateGameOver
)

// String returns a human-readable name for the state.
func (s SessionState) String() string {
	if s == StateGameOver {
		return "game_over"
	}
	return "running"
}

// Config holds the parameters a session is created with.
type Config struct {
	Width            float64       // Play-area width in pixels
	Height           float64       // Play-area height in pixels
	TickRate         int           // Ticks per second
	Seed             int64         // RNG seed when no RNG option is given
	AnnounceDuration time.Duration // How long wave banners hold the simulation
}

// DefaultConfig returns the classic 800x600 play area at 60 ticks per second.
func DefaultConfig() Config {
	return Config{
		Width:            800,
		Height:           600,
		TickRate:         60,
		AnnounceDuration: AnnounceDuration,
	}
}

// Option customizes a Session.
type Option func(*Session)

// WithRNG substitutes the random source used for spawning.
func WithRNG(rng RNG) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithClock substitutes the elapsed-time source.
func WithClock(clock Clock) Option {
	return func(s *Session) {
		s.clock = clock
	}
}

// StepResult is returned by Session.Step after each tick.
type StepResult struct {
	Tick   uint64
	State  core.GameState
	Events []Event // Everything that happened since the previous Step, in order
}

// Session is one single-player game: it owns the registry and drives the
// per-tick sequence input -> movement -> collision -> wave director.
type Session struct {
	cfg        Config
	area       Area
	registry   *Registry
	movement   *MovementSystem
	collisions *CollisionResolver
	director   *Director
	rng        RNG
	clock      Clock

	tick         uint64
	state        SessionState
	score        int
	paused       bool
	quit         bool
	message      string
	messageUntil time.Duration
	events       []Event
}

// NewSession creates a running session with the opening wave spawned.
func NewSession(cfg Config, opts ...Option) *Session {
	area := Area{Width: cfg.Width, Height: cfg.Height}
	s := &Session{
		cfg:        cfg,
		area:       area,
		registry:   NewRegistry(),
		movement:   NewMovementSystem(area),
		collisions: NewCollisionResolver(),
		director:   NewDirector(area),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = NewRNG(cfg.Seed)
	}
	if s.clock == nil {
		s.clock = NewTickClock(cfg.TickRate)
	}
	s.reset()
	return s
}

// reset replaces the player and the registry contents with a fresh game.
func (s *Session) reset() {
	s.registry.Clear()
	s.registry.SetPlayer(NewPlayer(s.area))
	s.collisions.Reset()
	s.director.Reset(s.registry, s.rng)
	s.state = StateRunning
	s.score = 0
	s.paused = false
	s.message = ""
	s.messageUntil = 0
}

// Step advances the session by one fixed tick.
func (s *Session) Step(in core.InputFrame) StepResult {
	if adv, ok := s.clock.(interface{ Advance() }); ok {
		adv.Advance()
	}
	s.tick++

	if in.Has(core.ActionQuit) {
		s.Quit()
	}
	if s.quit {
		return s.result()
	}

	if s.state == StateGameOver {
		if in.Has(core.ActionRestart) {
			s.Restart()
		}
		return s.result()
	}

	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused || s.Announcing() {
		return s.result()
	}
	s.message = ""

	switch {
	case in.Has(core.ActionLeft):
		s.Move(DirLeft)
	case in.Has(core.ActionRight):
		s.Move(DirRight)
	}
	if in.Has(core.ActionFire) {
		s.Shoot()
	}

	for _, o := range s.movement.Advance(s.registry) {
		s.applyOutcome(o)
	}
	if s.checkGameOver() {
		return s.result()
	}

	now := s.clock.Now()
	s.applyCollisions(s.collisions.Resolve(s.registry, now))
	if s.checkGameOver() {
		return s.result()
	}

	if change, ok := s.director.Update(s.registry, s.rng); ok {
		s.applyWaveChange(change, now)
	}

	return s.result()
}

// result packages the tick's state and drains the event log.
func (s *Session) result() StepResult {
	res := StepResult{
		Tick:   s.tick,
		State:  s.State(),
		Events: s.events,
	}
	s.events = nil
	return res
}

// active reports whether gameplay commands are accepted right now.
func (s *Session) active() bool {
	return s.state == StateRunning && !s.quit && !s.paused && !s.Announcing()
}

// Shoot fires a projectile from the top center of the player.
// It is a no-op while the fire cooldown runs or gameplay is held.
func (s *Session) Shoot() bool {
	if !s.active() {
		return false
	}
	p := s.registry.Player()
	now := s.clock.Now()
	if !p.canShoot(now) {
		return false
	}
	b := p.Bounds()
	id := s.registry.Add(NewProjectile(b.CenterX(), b.Y))
	p.markShot(now)
	s.emit(Event{Kind: EventShotFired, Entity: id})
	return true
}

// Move shifts the player one step in the given direction, clamped to the
// play area.
func (s *Session) Move(dir Direction) {
	if !s.active() || dir == DirNone {
		return
	}
	s.registry.Player().Move(dir, s.area)
}

// Restart starts a new game. It only works after game over.
func (s *Session) Restart() bool {
	if s.state != StateGameOver || s.quit {
		return false
	}
	s.reset()
	s.emit(Event{Kind: EventRestarted, Wave: s.director.Wave()})
	return true
}

// Quit ends the session; the platform stops ticking once it sees Quitting.
func (s *Session) Quit() {
	s.quit = true
}

// Quitting reports whether Quit was requested.
func (s *Session) Quitting() bool {
	return s.quit
}

// Announcing reports whether a wave banner currently holds the simulation.
func (s *Session) Announcing() bool {
	return s.message != "" && s.clock.Now() < s.messageUntil
}

// applyOutcome turns a movement outcome into session effects.
func (s *Session) applyOutcome(o Outcome) {
	switch o.Kind {
	case OutcomeLifeLost:
		s.loseLife(CauseFallThrough, o.Entity)
	case OutcomeHostileExpired:
		s.emit(Event{Kind: EventHostileExpired, Entity: o.Entity})
	}
}

// applyCollisions credits hits and contact damage.
func (s *Session) applyCollisions(report CollisionReport) {
	for _, hit := range report.Hits {
		switch {
		case hit.Of == KindBoss && hit.Result.Destroyed:
			s.score += hit.Result.Points
			s.emit(Event{Kind: EventBossDestroyed, Entity: hit.Hostile, Points: hit.Result.Points, Wave: s.director.Wave()})
		case hit.Of == KindBoss:
			s.emit(Event{Kind: EventBossHit, Entity: hit.Hostile, Health: hit.Result.Remaining})
		case hit.Result.Destroyed:
			s.score += hit.Result.Points
			s.emit(Event{Kind: EventEnemyDestroyed, Entity: hit.Hostile, Points: hit.Result.Points})
		}
	}
	if report.Contact {
		s.loseLife(CauseContact, 0)
	}
}

// applyWaveChange logs a director transition and starts its banner.
func (s *Session) applyWaveChange(change WaveChange, now time.Duration) {
	if change.BossCleared {
		s.emit(Event{Kind: EventBossWaveCleared, Wave: change.Wave})
		return
	}
	s.emit(Event{Kind: EventWaveStarted, Wave: change.Wave, Points: change.Spawned})
	if text := change.Announcement(); text != "" && s.cfg.AnnounceDuration > 0 {
		s.message = text
		s.messageUntil = now + s.cfg.AnnounceDuration
	}
}

func (s *Session) loseLife(cause LossCause, from EntityID) {
	p := s.registry.Player()
	p.LoseLife()
	s.emit(Event{Kind: EventLifeLost, Entity: from, Lives: p.Lives, Cause: cause})
}

// checkGameOver switches to game over once the player has no lives left.
func (s *Session) checkGameOver() bool {
	if s.registry.Player().Lives > 0 {
		return false
	}
	s.state = StateGameOver
	s.emit(Event{Kind: EventGameOver, Points: s.score, Wave: s.director.Wave()})
	return true
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

// State returns the coarse state the platform needs.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		GameOver: s.state == StateGameOver,
		Paused:   s.paused,
	}
}

// SessionState returns Running or GameOver.
func (s *Session) SessionState() SessionState {
	return s.state
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Lives returns the player's remaining lives.
func (s *Session) Lives() int {
	return s.registry.Player().Lives
}

// Wave returns the current wave index.
func (s *Session) Wave() int {
	return s.director.Wave()
}

// Boss returns the active boss, or nil.
func (s *Session) Boss() *Boss {
	return s.registry.Boss()
}

// Area returns the play area.
func (s *Session) Area() Area {
	return s.area
}
