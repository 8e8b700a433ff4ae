package invasion

import "fmt"

// Wave progression constants.
const (
	WaveSize       = 5    // Enemies per standard wave
	BossEvery      = 5    // A boss appears when the wave index is a multiple of this
	BaseEnemySpeed = 0.65 // Fall speed of the opening wave
	WaveSpeedStep  = 0.4  // Extra fall speed per wave index
	SpawnMinY      = -200 // Spawn band above the visible area
	SpawnMaxY      = -40
)

// WavePhase is the director's state.
type WavePhase int

const (
	PhaseSpawning WavePhase = iota
	PhaseInProgress
	PhaseCleared
)

// String returns a human-readable name for the phase.
func (p WavePhase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseInProgress:
		return "in-progress"
	case PhaseCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// EnemySpeed returns the fall speed of enemies spawned when the given wave
// index is cleared.
func EnemySpeed(wave int) float64 {
	return BaseEnemySpeed + float64(wave)*WaveSpeedStep
}

// WaveChange reports a transition made by Director.Update.
type WaveChange struct {
	Wave        int  // Wave index after the transition
	Boss        bool // A boss was spawned
	Spawned     int  // Hostiles spawned
	BossCleared bool // A boss wave was cleared; spawning resumes on the next check
}

// Announcement returns the banner text for the change, or "" if none.
func (w WaveChange) Announcement() string {
	switch {
	case w.Boss:
		return "BOSS INCOMING!"
	case w.Spawned > 0:
		return fmt.Sprintf("Wave %d", w.Wave)
	default:
		return ""
	}
}

// Director decides when to spawn a new wave or a boss.
type Director struct {
	area     Area
	wave     int
	phase    WavePhase
	bossWave bool
}

// NewDirector creates a director for the given play area.
func NewDirector(area Area) *Director {
	if area.Width < BossWidth || area.Height <= 0 {
		panic(fmt.Sprintf("invasion: play area %.0fx%.0f too small", area.Width, area.Height))
	}
	return &Director{area: area, wave: 1}
}

// Wave returns the current wave index.
func (d *Director) Wave() int {
	return d.wave
}

// Phase returns the current phase.
func (d *Director) Phase() WavePhase {
	return d.phase
}

// BossWave reports whether the wave in progress is a boss encounter.
func (d *Director) BossWave() bool {
	return d.bossWave
}

// Reset returns to wave 1 and seeds the opening wave into reg.
func (d *Director) Reset(reg *Registry, rng RNG) {
	d.wave = 1
	d.bossWave = false
	d.phase = PhaseSpawning
	SpawnEnemies(reg, rng, d.area, WaveSize, BaseEnemySpeed)
	d.phase = PhaseInProgress
}

// Update checks whether the current wave is cleared and spawns the next.
// It returns the change made, if any.
func (d *Director) Update(reg *Registry, rng RNG) (WaveChange, bool) {
	if d.phase == PhaseInProgress {
		if reg.HostileCount() > 0 {
			return WaveChange{}, false
		}
		d.phase = PhaseCleared
		if d.bossWave {
			d.bossWave = false
			d.wave++
			return WaveChange{Wave: d.wave, BossCleared: true}, true
		}
	}

	if d.phase == PhaseCleared && reg.HostileCount() > 0 {
		// Something was spawned from outside; treat it as the current wave.
		d.phase = PhaseInProgress
		return WaveChange{}, false
	}

	d.phase = PhaseSpawning
	var change WaveChange
	if d.wave%BossEvery == 0 {
		reg.Add(NewBoss(d.area))
		d.bossWave = true
		change = WaveChange{Wave: d.wave, Boss: true, Spawned: 1}
	} else {
		SpawnEnemies(reg, rng, d.area, WaveSize, EnemySpeed(d.wave))
		d.wave++
		change = WaveChange{Wave: d.wave, Spawned: WaveSize}
	}
	d.phase = PhaseInProgress
	return change, true
}

// SpawnEnemies adds n enemies with the given speed at random positions in
// the spawn band above the area.
func SpawnEnemies(reg *Registry, rng RNG, area Area, n int, speed float64) {
	maxX := int(area.Width) - EnemyWidth
	if maxX < 0 || n < 0 {
		panic("invasion: invalid spawn bounds")
	}
	for range n {
		x := rng.Intn(maxX + 1)
		y := SpawnMinY + rng.Intn(SpawnMaxY-SpawnMinY+1)
		reg.Add(NewEnemy(float64(x), float64(y), speed))
	}
}
