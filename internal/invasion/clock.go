package invasion

import (
	"math/rand"
	"time"
)

// Clock is a monotonic elapsed-time source used for cooldowns and
// announcement deadlines.
type Clock interface {
	Now() time.Duration
}

// TickClock derives elapsed time from the number of simulated ticks, which
// keeps a session deterministic regardless of wall-clock jitter.
type TickClock struct {
	frame time.Duration
	ticks uint64
}

// NewTickClock creates a clock for the given tick rate.
func NewTickClock(tickRate int) *TickClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &TickClock{frame: time.Second / time.Duration(tickRate)}
}

// Advance moves the clock forward by one tick.
func (c *TickClock) Advance() {
	c.ticks++
}

// Now returns the elapsed simulated time.
func (c *TickClock) Now() time.Duration {
	return time.Duration(c.ticks) * c.frame
}

// RNG is the random source used for spawn positions.
// *rand.Rand satisfies it; tests substitute a seeded or scripted source.
type RNG interface {
	Intn(n int) int
}

// NewRNG returns a seeded RNG.
func NewRNG(seed int64) RNG {
	return rand.New(rand.NewSource(seed))
}
