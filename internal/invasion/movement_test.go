package invasion

import "testing"

var testArea = Area{Width: 800, Height: 600}

func TestMovementEnemyFallsThrough(t *testing.T) {
	reg := NewRegistry()
	id := reg.Add(NewEnemy(100, 599.5, 1))

	outcomes := NewMovementSystem(testArea).Advance(reg)

	if reg.Contains(id) {
		t.Error("Enemy past the bottom should be removed")
	}
	if len(outcomes) != 2 || outcomes[0].Kind != OutcomeLifeLost || outcomes[1].Kind != OutcomeHostileExpired {
		t.Fatalf("Expected LifeLost then HostileExpired, got %+v", outcomes)
	}
	if outcomes[0].Entity != id {
		t.Error("Outcome should name the fallen enemy")
	}
}

func TestMovementEnemyAtBottomEdgeSurvives(t *testing.T) {
	reg := NewRegistry()
	id := reg.Add(NewEnemy(100, 598, 2))

	outcomes := NewMovementSystem(testArea).Advance(reg)

	// Top edge exactly on the bottom is not past it
	if !reg.Contains(id) || len(outcomes) != 0 {
		t.Errorf("Enemy with top == height should survive, outcomes %+v", outcomes)
	}
}

func TestMovementEnemyLeavesSideways(t *testing.T) {
	reg := NewRegistry()
	left := NewEnemy(-41, 100, 1)
	right := NewEnemy(801, 100, 1)
	reg.Add(left)
	reg.Add(right)

	outcomes := NewMovementSystem(testArea).Advance(reg)

	if reg.HostileCount() != 0 {
		t.Error("Enemies outside the side bounds should be removed")
	}
	for _, o := range outcomes {
		if o.Kind == OutcomeLifeLost {
			t.Error("Leaving sideways should not cost a life")
		}
	}
	if len(outcomes) != 2 {
		t.Errorf("Expected two HostileExpired outcomes, got %d", len(outcomes))
	}
}

func TestMovementBossReflects(t *testing.T) {
	reg := NewRegistry()
	boss := NewBoss(testArea)
	boss.box.X = testArea.Width - BossWidth - 1
	reg.Add(boss)
	m := NewMovementSystem(testArea)

	m.Advance(reg)
	if boss.Direction != -1 {
		t.Fatalf("Boss touching the right edge should turn left, direction %d", boss.Direction)
	}
	if boss.Bounds().Right() > testArea.Width {
		t.Error("Boss should stay inside the area")
	}

	boss.box.X = 1
	m.Advance(reg)
	if boss.Direction != 1 || boss.Bounds().X != 0 {
		t.Errorf("Boss touching the left edge should turn right, direction %d x %f", boss.Direction, boss.Bounds().X)
	}
}

func TestMovementBossWrapsWithoutPenalty(t *testing.T) {
	reg := NewRegistry()
	boss := NewBoss(testArea)
	boss.box.Y = testArea.Height
	id := reg.Add(boss)

	outcomes := NewMovementSystem(testArea).Advance(reg)

	if !reg.Contains(id) {
		t.Fatal("Boss should never be removed by falling through")
	}
	if boss.Bounds().Y != BossEntryY {
		t.Errorf("Boss should re-enter at %d, got %f", BossEntryY, boss.Bounds().Y)
	}
	if len(outcomes) != 1 || outcomes[0].Kind != OutcomeBossReentered {
		t.Errorf("Expected a single BossReentered outcome, got %+v", outcomes)
	}
}

func TestMovementProjectile(t *testing.T) {
	reg := NewRegistry()
	p := NewProjectile(100, 300)
	id := reg.Add(p)
	m := NewMovementSystem(testArea)

	m.Advance(reg)
	if p.Bounds().Bottom() != 300-ProjectileSpeed {
		t.Errorf("Projectile should rise by %d, bottom now %f", ProjectileSpeed, p.Bounds().Bottom())
	}

	p.box.Y = -ProjectileHeight + 10 // bottom at 10, next tick at -5
	outcomes := m.Advance(reg)
	if reg.Contains(id) {
		t.Error("Projectile fully above the top should be removed")
	}
	if len(outcomes) != 1 || outcomes[0].Kind != OutcomeProjectileExpired {
		t.Errorf("Expected ProjectileExpired, got %+v", outcomes)
	}
}
