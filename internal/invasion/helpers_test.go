package invasion

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-invasion/internal/core"
)

// manualClock only moves when the test says so.
type manualClock struct {
	now time.Duration
}

func (c *manualClock) Now() time.Duration { return c.now }
func (c *manualClock) Add(d time.Duration) { c.now += d }

// newTestSession returns a seeded session without wave banners.
func newTestSession(t *testing.T) (*Session, *manualClock) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.AnnounceDuration = 0
	clock := &manualClock{}
	return NewSession(cfg, WithClock(clock)), clock
}

// clearHostiles empties the hostile side of the registry.
func clearHostiles(s *Session) {
	for _, h := range s.registry.Hostiles() {
		s.registry.Remove(h.ID())
	}
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func frameWith(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
