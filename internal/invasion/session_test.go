package invasion

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-invasion/internal/core"
)

func TestNewSessionInitialState(t *testing.T) {
	s, _ := newTestSession(t)

	if s.SessionState() != StateRunning {
		t.Error("New session should be running")
	}
	if s.Score() != 0 || s.Wave() != 1 || s.Lives() != PlayerLives {
		t.Errorf("Initial score/wave/lives = %d/%d/%d", s.Score(), s.Wave(), s.Lives())
	}
	if s.registry.Player() == nil {
		t.Fatal("Session should own a player")
	}
	hostiles := s.registry.Hostiles()
	if len(hostiles) != WaveSize {
		t.Fatalf("Opening wave should have %d enemies, got %d", WaveSize, len(hostiles))
	}
	for _, h := range hostiles {
		if e := h.(*Enemy); !approx(e.Speed, BaseEnemySpeed) {
			t.Errorf("Opening enemy speed %f, expected %f", e.Speed, BaseEnemySpeed)
		}
	}
}

func TestStandardWaveClear(t *testing.T) {
	s, _ := newTestSession(t)
	s.director.wave = 3
	clearHostiles(s)

	res := s.Step(idle())

	if s.Wave() != 4 {
		t.Errorf("Wave index = %d, expected 4", s.Wave())
	}
	hostiles := s.registry.Hostiles()
	if len(hostiles) != WaveSize {
		t.Fatalf("Expected %d new enemies, got %d", WaveSize, len(hostiles))
	}
	for _, h := range hostiles {
		e, ok := h.(*Enemy)
		if !ok {
			t.Fatal("Standard waves should only spawn enemies")
		}
		if !approx(e.Speed, 0.65+3*0.4) {
			t.Errorf("Enemy speed %f, expected %f", e.Speed, 0.65+3*0.4)
		}
	}
	if !hasEvent(res.Events, EventWaveStarted) {
		t.Error("Step should report the new wave")
	}
}

func TestBossWaveLifecycle(t *testing.T) {
	s, _ := newTestSession(t)
	s.director.wave = 5
	clearHostiles(s)

	s.Step(idle())

	boss := s.Boss()
	if boss == nil {
		t.Fatal("Clearing wave 5 should spawn a boss")
	}
	if boss.Health != BossHealth || s.registry.HostileCount() != 1 {
		t.Errorf("Boss health %d, hostiles %d", boss.Health, s.registry.HostileCount())
	}
	if s.Wave() != 5 {
		t.Errorf("Boss wave should not increment the index, got %d", s.Wave())
	}

	boss.Speed = 0
	boss.box.Y = 100
	var last StepResult
	for hit := 1; hit <= BossHealth; hit++ {
		b := boss.Bounds()
		s.registry.Add(NewProjectile(b.CenterX(), b.Bottom()+10))
		last = s.Step(idle())
		if hit < BossHealth && s.Wave() != 5 {
			t.Fatalf("Wave index moved during the boss fight (hit %d)", hit)
		}
	}

	if s.Boss() != nil {
		t.Fatal("Boss should be gone after ten hits")
	}
	if !hasEvent(last.Events, EventBossDestroyed) || !hasEvent(last.Events, EventBossWaveCleared) {
		t.Errorf("Expected boss destroyed and wave cleared events, got %+v", last.Events)
	}
	if s.Wave() != 6 {
		t.Errorf("Clearing the boss wave should give wave 6, got %d", s.Wave())
	}

	s.Step(idle())
	if s.registry.HostileCount() != WaveSize || s.Wave() != 7 {
		t.Errorf("Standard spawning should resume: hostiles %d wave %d", s.registry.HostileCount(), s.Wave())
	}
}

func TestProjectileDestroysEnemy(t *testing.T) {
	s, _ := newTestSession(t)
	clearHostiles(s)
	enemy := s.registry.Add(NewEnemy(100, 100, 0))
	shot := s.registry.Add(NewProjectile(120, 140))

	res := s.Step(idle())

	if s.registry.Contains(enemy) {
		t.Error("Enemy should be destroyed")
	}
	if s.registry.Contains(shot) {
		t.Error("Projectile should be consumed")
	}
	if s.Score() != EnemyPoints {
		t.Errorf("Score = %d, expected %d", s.Score(), EnemyPoints)
	}
	if !hasEvent(res.Events, EventEnemyDestroyed) {
		t.Error("Step should report the kill")
	}
}

func TestBossTakesTenHits(t *testing.T) {
	s, _ := newTestSession(t)
	clearHostiles(s)
	boss := NewBoss(s.Area())
	boss.Speed = 0
	boss.box.Y = 100
	s.registry.Add(boss)

	for hit := 1; hit <= BossHealth; hit++ {
		b := boss.Bounds()
		s.registry.Add(NewProjectile(b.CenterX(), b.Bottom()+10))
		s.Step(idle())

		switch {
		case hit < BossHealth:
			if s.Score() != 0 {
				t.Fatalf("Hit %d scored %d, expected 0", hit, s.Score())
			}
			if boss.Health != BossHealth-hit {
				t.Fatalf("Hit %d: boss health %d", hit, boss.Health)
			}
		default:
			if s.Score() != BossPoints {
				t.Errorf("Final hit should score %d, got %d", BossPoints, s.Score())
			}
		}
	}

	if s.Boss() != nil {
		t.Error("No boss should remain after destruction")
	}
	for _, h := range s.registry.Hostiles() {
		if h.Kind() == KindBoss {
			t.Error("Registry still holds a boss")
		}
	}
}

func TestEnemyFallThroughCostsLife(t *testing.T) {
	s, _ := newTestSession(t)
	clearHostiles(s)
	faller := s.registry.Add(NewEnemy(100, s.Area().Height-0.5, 1))
	// A simultaneous kill elsewhere must not interfere
	s.registry.Add(NewEnemy(600, 100, 0))
	s.registry.Add(NewProjectile(620, 140))

	res := s.Step(idle())

	if s.registry.Contains(faller) {
		t.Error("Fallen enemy should be removed")
	}
	if s.Lives() != PlayerLives-1 {
		t.Errorf("Lives = %d, expected %d", s.Lives(), PlayerLives-1)
	}
	if s.Score() != EnemyPoints {
		t.Errorf("The kill in the same tick should still score, got %d", s.Score())
	}
	var lost []Event
	for _, e := range res.Events {
		if e.Kind == EventLifeLost {
			lost = append(lost, e)
		}
	}
	if len(lost) != 1 || lost[0].Cause != CauseFallThrough {
		t.Errorf("Expected one fall-through life loss, got %+v", lost)
	}
}

func TestGameOverAndRestart(t *testing.T) {
	s, _ := newTestSession(t)
	clearHostiles(s)
	s.score = 700
	s.registry.Player().Lives = 1
	s.registry.Add(NewEnemy(100, s.Area().Height, 1))
	survivor := NewEnemy(300, 100, 2)
	s.registry.Add(survivor)

	res := s.Step(idle())

	if s.SessionState() != StateGameOver || !res.State.GameOver {
		t.Fatal("Losing the last life should end the game")
	}
	if !hasEvent(res.Events, EventGameOver) {
		t.Error("Step should report game over")
	}

	before := survivor.Bounds()
	playerBefore := s.registry.Player().Bounds()
	for i := 0; i < 30; i++ {
		s.Step(frameWith(core.ActionLeft, core.ActionFire))
	}
	if survivor.Bounds() != before {
		t.Error("Hostiles should not move after game over")
	}
	if s.registry.Player().Bounds() != playerBefore {
		t.Error("Player should not move after game over")
	}
	if len(s.registry.Projectiles()) != 0 {
		t.Error("Firing should be ignored after game over")
	}
	if s.Score() != 700 {
		t.Error("Score should be frozen after game over")
	}

	res = s.Step(frameWith(core.ActionRestart))

	if s.SessionState() != StateRunning {
		t.Fatal("Restart should resume the session")
	}
	if !hasEvent(res.Events, EventRestarted) {
		t.Error("Step should report the restart")
	}
	if s.Score() != 0 || s.Wave() != 1 || s.Lives() != PlayerLives {
		t.Errorf("After restart score/wave/lives = %d/%d/%d", s.Score(), s.Wave(), s.Lives())
	}
	hostiles := s.registry.Hostiles()
	if len(hostiles) != WaveSize {
		t.Fatalf("Restart should seed %d enemies, got %d", WaveSize, len(hostiles))
	}
	for _, h := range hostiles {
		if e := h.(*Enemy); !approx(e.Speed, BaseEnemySpeed) {
			t.Errorf("Restart enemy speed %f, expected %f", e.Speed, BaseEnemySpeed)
		}
	}
	if s.registry.Contains(survivor.ID()) {
		t.Error("Restart should clear the old registry")
	}
}

func TestRestartWhileRunningIsNoop(t *testing.T) {
	s, _ := newTestSession(t)
	s.score = 300
	hostiles := len(s.registry.Hostiles())

	if s.Restart() {
		t.Error("Restart while running should be refused")
	}
	if s.Score() != 300 || len(s.registry.Hostiles()) != hostiles {
		t.Error("Restart while running should change nothing")
	}
}

func TestContactCostsOneLifePerWindow(t *testing.T) {
	s, clock := newTestSession(t)
	clearHostiles(s)
	pb := s.registry.Player().Bounds()
	for i := 0; i < 3; i++ {
		s.registry.Add(NewEnemy(pb.X+float64(i*5), pb.Y, 0))
	}

	res := s.Step(idle())
	if s.Lives() != PlayerLives-1 {
		t.Fatalf("Contact with three hostiles should cost one life, lives %d", s.Lives())
	}
	lost := 0
	for _, e := range res.Events {
		if e.Kind == EventLifeLost {
			lost++
			if e.Cause != CauseContact {
				t.Error("Life loss should be attributed to contact")
			}
		}
	}
	if lost != 1 {
		t.Errorf("Expected one LifeLost event, got %d", lost)
	}

	snap := s.Snapshot()
	if snap.Entities[0].Kind != KindPlayer || snap.Entities[0].Visual != VisualInvulnerable {
		t.Error("Player should be drawn invulnerable during the window")
	}

	for _, d := range []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 199 * time.Millisecond} {
		clock.Add(d)
		s.Step(idle())
		if s.Lives() != PlayerLives-1 {
			t.Fatalf("Contact at %v should be ignored", clock.Now())
		}
	}

	clock.Add(time.Millisecond) // exactly 500ms after the first contact
	s.Step(idle())
	if s.Lives() != PlayerLives-2 {
		t.Errorf("Contact after the window should cost another life, lives %d", s.Lives())
	}
}

func TestShootCooldown(t *testing.T) {
	s, clock := newTestSession(t)
	pb := s.registry.Player().Bounds()

	if !s.Shoot() {
		t.Fatal("First shot should fire")
	}
	shots := s.registry.Projectiles()
	if len(shots) != 1 {
		t.Fatalf("Expected one projectile, got %d", len(shots))
	}
	b := shots[0].Bounds()
	if b.CenterX() != pb.CenterX() || b.Bottom() != pb.Y {
		t.Errorf("Projectile should start at the player's top center, got %+v", b)
	}

	clock.Add(ShotCooldown - time.Millisecond)
	if s.Shoot() {
		t.Error("Shot during cooldown should be ignored")
	}
	clock.Add(time.Millisecond)
	if !s.Shoot() {
		t.Error("Shot after the cooldown should fire")
	}
	if len(s.registry.Projectiles()) != 2 {
		t.Errorf("Expected two projectiles, got %d", len(s.registry.Projectiles()))
	}
}

func TestPlayerMovementClamped(t *testing.T) {
	s, _ := newTestSession(t)

	for i := 0; i < 200; i++ {
		s.Move(DirLeft)
	}
	if x := s.registry.Player().Bounds().X; x != 0 {
		t.Errorf("Player should stop at the left edge, x %f", x)
	}

	for i := 0; i < 200; i++ {
		s.Move(DirRight)
	}
	b := s.registry.Player().Bounds()
	if b.Right() != s.Area().Width {
		t.Errorf("Player should stop at the right edge, right %f", b.Right())
	}
	if b.Y != s.Area().Height-PlayerMargin-PlayerHeight {
		t.Error("Player should never move vertically")
	}
}

func TestStepInputMovesPlayer(t *testing.T) {
	s, _ := newTestSession(t)
	x := s.registry.Player().Bounds().X

	s.Step(frameWith(core.ActionRight))

	if got := s.registry.Player().Bounds().X; got != x+PlayerSpeed {
		t.Errorf("Right input should move %d px, x %f -> %f", PlayerSpeed, x, got)
	}
}

func TestAnnouncementHoldsSimulation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 9
	clock := &manualClock{}
	s := NewSession(cfg, WithClock(clock))
	clearHostiles(s)

	s.Step(idle())
	if !s.Announcing() {
		t.Fatal("A new wave should start an announcement")
	}
	snap := s.Snapshot()
	if snap.Message != "Wave 2" {
		t.Errorf("Announcement = %q, expected %q", snap.Message, "Wave 2")
	}

	enemies := s.registry.Hostiles()
	before := enemies[0].Bounds()
	x := s.registry.Player().Bounds().X
	res := s.Step(frameWith(core.ActionRight, core.ActionFire))
	if enemies[0].Bounds() != before || s.registry.Player().Bounds().X != x {
		t.Error("Nothing should move while the banner is up")
	}
	if res.Tick != 2 {
		t.Errorf("Ticks should keep counting during the banner, got %d", res.Tick)
	}

	clock.Add(cfg.AnnounceDuration)
	s.Step(idle())
	if s.Announcing() || s.Snapshot().Message != "" {
		t.Error("Announcement should expire after its duration")
	}
	if enemies[0].Bounds() == before {
		t.Error("Enemies should move once the banner is gone")
	}
}

func TestPauseToggle(t *testing.T) {
	s, _ := newTestSession(t)
	enemy := s.registry.Hostiles()[0]

	s.Step(frameWith(core.ActionPause))
	if !s.State().Paused {
		t.Fatal("Pause should pause")
	}
	before := enemy.Bounds()
	s.Step(idle())
	if enemy.Bounds() != before {
		t.Error("Enemies should not move while paused")
	}
	if s.Shoot() {
		t.Error("Shooting should be ignored while paused")
	}

	s.Step(frameWith(core.ActionPause))
	if s.State().Paused {
		t.Error("Second pause should resume")
	}
}

func TestQuit(t *testing.T) {
	s, _ := newTestSession(t)
	enemy := s.registry.Hostiles()[0]

	s.Step(frameWith(core.ActionQuit))
	if !s.Quitting() {
		t.Fatal("Quit input should end the session")
	}
	before := enemy.Bounds()
	s.Step(idle())
	if enemy.Bounds() != before {
		t.Error("Nothing should move after quit")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		cfg := DefaultConfig()
		cfg.Seed = 12345
		s := NewSession(cfg)
		for i := 0; i < 600; i++ {
			in := core.NewInputFrame()
			if i%7 == 0 {
				in.Set(core.ActionFire)
			}
			if i%50 < 25 {
				in.Set(core.ActionLeft)
			} else {
				in.Set(core.ActionRight)
			}
			s.Step(in)
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if a.Tick != b.Tick || a.HUD != b.HUD {
		t.Fatalf("HUD mismatch: %+v vs %+v", a.HUD, b.HUD)
	}
	if len(a.Entities) != len(b.Entities) {
		t.Fatalf("Entity count mismatch: %d vs %d", len(a.Entities), len(b.Entities))
	}
	for i := range a.Entities {
		if a.Entities[i] != b.Entities[i] {
			t.Errorf("Entity %d mismatch: %+v vs %+v", i, a.Entities[i], b.Entities[i])
		}
	}
}

func TestSnapshotHUD(t *testing.T) {
	s, _ := newTestSession(t)
	clearHostiles(s)
	boss := NewBoss(s.Area())
	boss.Health = BossEnragedAt
	s.registry.Add(boss)

	snap := s.Snapshot()

	if !snap.HUD.HasBoss || snap.HUD.BossHealth != BossEnragedAt {
		t.Errorf("HUD boss fields = %+v", snap.HUD)
	}
	if snap.HUD.Lives != PlayerLives || snap.HUD.Wave != 1 {
		t.Errorf("HUD = %+v", snap.HUD)
	}
	found := false
	for _, e := range snap.Entities {
		if e.Kind == KindBoss {
			found = true
			if e.Visual != VisualEnraged {
				t.Error("Low-health boss should be drawn enraged")
			}
		}
	}
	if !found {
		t.Error("Snapshot should include the boss")
	}
	if snap.Width != 800 || snap.Height != 600 {
		t.Errorf("Snapshot area %fx%f", snap.Width, snap.Height)
	}
}
