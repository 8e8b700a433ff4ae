package trace

import (
	"errors"
	"io"

	"github.com/vovakirdan/tui-invasion/internal/invasion"
)

// Summary aggregates a whole trace.
type Summary struct {
	Header      Header
	Ticks       int
	FinalScore  int
	HighestWave int
	ShotsFired  int
	EnemyKills  int
	BossKills   int
	LivesLost   int
	GameOvers   int
	Restarts    int
	Final       invasion.Snapshot
}

// Summarize reads every remaining frame of r.
func Summarize(r *Reader) (Summary, error) {
	s := Summary{Header: r.Header()}
	for {
		fr, err := r.Next()
		if errors.Is(err, io.EOF) {
			return s, nil
		}
		if err != nil {
			return s, err
		}
		s.add(fr)
	}
}

func (s *Summary) add(fr Frame) {
	s.Ticks++
	s.Final = fr.Snapshot
	s.FinalScore = fr.Snapshot.HUD.Score
	if fr.Snapshot.HUD.Wave > s.HighestWave {
		s.HighestWave = fr.Snapshot.HUD.Wave
	}

	for _, e := range fr.Events {
		switch e.Kind {
		case invasion.EventShotFired:
			s.ShotsFired++
		case invasion.EventEnemyDestroyed:
			s.EnemyKills++
		case invasion.EventBossDestroyed:
			s.BossKills++
		case invasion.EventLifeLost:
			s.LivesLost++
		case invasion.EventGameOver:
			s.GameOvers++
		case invasion.EventRestarted:
			s.Restarts++
		}
	}
}
