// internal/app/presenter.go
package app

import (
	"log/slog"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/interfaces"
	"go-space-shooter/internal/system"
)

// SoundPlayer plays a named clip. Implemented by the audio bank.
type SoundPlayer interface {
	Play(clipID string)
}

// Presenter собирает побочные эффекты симуляции: звук, взрывы и текст
// счёта для HUD.
type Presenter struct {
	sounds  SoundPlayer
	effects *system.VisualEffectSystem
	text    string
}

var _ interfaces.Presenter = (*Presenter)(nil)

func NewPresenter(sounds SoundPlayer) *Presenter {
	return &Presenter{sounds: sounds}
}

func (p *Presenter) UpdateScoreDisplay(text string) {
	p.text = text
}

// ScoreText returns the last text pushed by the match.
func (p *Presenter) ScoreText() string { return p.text }

func (p *Presenter) PlaySound(clipID string, _ component.Position) {
	if p.sounds != nil {
		p.sounds.Play(clipID)
	}
}

func (p *Presenter) SpawnEffect(effectID string, at component.Position) {
	if p.effects == nil {
		return
	}
	if _, err := p.effects.Spawn(effectID, at); err != nil {
		slog.Warn("failed to spawn effect", "effect", effectID, "err", err)
	}
}
