// internal/system/stats.go
package system

import (
	"log/slog"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/event"
)

// Stats - счётчики матча для HUD и итогового лога.
type Stats struct {
	ShotsFired int
	EnemyShots int
	Hits       int
	Kills      int
	Recycled   int
	Escaped    int
}

// Accuracy returns the share of player shots that hit, in [0, 1].
func (s Stats) Accuracy() float64 {
	if s.ShotsFired == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.ShotsFired)
}

// StatsSystem собирает статистику из событий. Симуляцию не меняет.
type StatsSystem struct {
	stats Stats
	score int
}

func NewStatsSystem(eventDispatcher *event.Dispatcher) *StatsSystem {
	s := &StatsSystem{}
	for _, t := range []event.EventType{
		event.ProjectileFired,
		event.ShipHit,
		event.ShipDestroyed,
		event.EnemyRecycled,
		event.EnemyExited,
		event.ScoreAwarded,
		event.GameOver,
	} {
		eventDispatcher.Subscribe(t, s)
	}
	return s
}

func (s *StatsSystem) Stats() Stats { return s.stats }

func (s *StatsSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.ProjectileFired:
		data, _ := e.Data.(event.FiredData)
		if data.Allegiance == component.FactionPlayer {
			s.stats.ShotsFired++
		} else {
			s.stats.EnemyShots++
		}
	case event.ShipHit:
		if data, _ := e.Data.(event.HitData); data.Faction == component.FactionEnemy {
			s.stats.Hits++
		}
	case event.ShipDestroyed:
		if data, _ := e.Data.(event.DestroyedData); data.Faction == component.FactionEnemy {
			s.stats.Kills++
		}
	case event.EnemyRecycled:
		if data, _ := e.Data.(event.RecycledData); data.Defeated {
			s.stats.Recycled++
		}
	case event.EnemyExited:
		s.stats.Escaped++
	case event.ScoreAwarded:
		data, _ := e.Data.(event.ScoreData)
		s.score = data.Total
	case event.GameOver:
		slog.Info("match summary",
			"score", s.score,
			"shots", s.stats.ShotsFired,
			"hits", s.stats.Hits,
			"kills", s.stats.Kills,
			"accuracy", s.stats.Accuracy())
	}
}
