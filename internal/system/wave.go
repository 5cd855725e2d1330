// internal/system/wave.go
package system

import (
	"log/slog"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/match"
	"go-space-shooter/internal/utils"
)

// Не больше стольких появлений за тик, даже если dt огромный.
const maxSpawnsPerTick = 64

// WaveSystem выпускает врагов по волнам уровня. Враги появляются у верхней
// границы в случайной точке по горизонтали.
type WaveSystem struct {
	match   *match.Match
	rng     *utils.PRNGService
	enemies *EnemySystem
	level   defs.LevelDefinition

	index    int // текущая волна
	spawned  int // сколько врагов текущей волны уже выпущено
	timer    float64
	number   int // номер волны с начала матча, с 1
	finished bool
}

func NewWaveSystem(m *match.Match, rng *utils.PRNGService, enemies *EnemySystem, level defs.LevelDefinition) *WaveSystem {
	s := &WaveSystem{
		match:   m,
		rng:     rng,
		enemies: enemies,
		level:   level,
	}
	if len(level.Waves) == 0 {
		s.finished = true
		return s
	}
	s.number = 1
	s.timer = level.Waves[0].Delay
	return s
}

// Wave returns the 1-based number of the running wave.
func (s *WaveSystem) Wave() int { return s.number }

// Finished reports whether a non-looping level has released every wave.
func (s *WaveSystem) Finished() bool { return s.finished }

func (s *WaveSystem) Update(deltaTime float64) {
	if s.finished || s.match.IsOver() {
		return
	}
	s.timer -= deltaTime
	for i := 0; s.timer <= 0 && !s.finished && i < maxSpawnsPerTick; i++ {
		wave := s.level.Waves[s.index]
		if s.spawned < wave.Count {
			s.spawn(wave)
			s.spawned++
		}
		if s.spawned < wave.Count {
			s.timer += wave.SpawnInterval
			continue
		}
		s.nextWave()
	}
}

func (s *WaveSystem) spawn(wave defs.WaveDefinition) {
	halfWidth, halfHeight := s.match.Bounds()
	spread := halfWidth
	if def, err := s.enemies.library.Enemy(wave.Archetype); err == nil {
		if def.Movement == defs.MoveAcrossScreen && def.Amplitude < halfWidth {
			spread = halfWidth - def.Amplitude
		} else if def.Width/2 < halfWidth {
			spread = halfWidth - def.Width/2
		}
	}
	at := component.Position{X: s.rng.Uniform(-spread, spread), Y: halfHeight}
	if _, err := s.enemies.Spawn(wave.Archetype, at); err != nil {
		slog.Error("failed to spawn enemy", "level", s.level.ID, "wave", s.number, "err", err)
	}
}

func (s *WaveSystem) nextWave() {
	s.spawned = 0
	s.index++
	if s.index >= len(s.level.Waves) {
		if !s.level.Loop {
			s.finished = true
			slog.Info("level finished", "level", s.level.ID, "waves", s.number)
			return
		}
		s.index = 0
	}
	s.number++
	s.timer += s.level.Waves[s.index].Delay
	slog.Debug("wave started", "level", s.level.ID, "wave", s.number, "archetype", s.level.Waves[s.index].Archetype)
}
