// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"
	"strings"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/match"
	"go-space-shooter/internal/system"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Snapshot is what the HUD shows for one frame.
type Snapshot struct {
	ScoreText    string // "00000010\n♥♥♥" или "00000010\nGame Over!"
	HitPoints    int
	MaxHitPoints int
	Wave         int
	Stats        system.Stats
}

// HUD рисует счёт, здоровье, волну и статистику поверх сцены.
// basicfont покрывает только ASCII, поэтому сердечки из текста счёта
// рисуются индикатором здоровья.
type HUD struct {
	face   font.Face
	health *PlayerHealthIndicator
	wave   *WaveIndicator
}

func NewHUD() *HUD {
	face := basicfont.Face7x13
	return &HUD{
		face:   face,
		health: NewPlayerHealthIndicator(8, 22),
		wave:   NewWaveIndicator(config.ScreenWidth/2, 16, face),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, s Snapshot) {
	score, status, _ := strings.Cut(s.ScoreText, "\n")
	text.Draw(screen, "SCORE "+score, h.face, 8, 16, config.TextColor)

	if status == match.GameOverText {
		h.drawCentered(screen, "GAME OVER", config.ScreenHeight/2, config.GameOverColor)
		h.drawCentered(screen, "ESC - new game", config.ScreenHeight/2+18, config.TextColor)
	} else {
		h.health.Draw(screen, s.HitPoints, s.MaxHitPoints)
	}

	h.wave.Draw(screen, s.Wave)

	stats := fmt.Sprintf("K %d  ACC %.0f%%", s.Stats.Kills, s.Stats.Accuracy()*100)
	bounds := text.BoundString(h.face, stats)
	text.Draw(screen, stats, h.face, config.ScreenWidth-8-bounds.Dx(), 16, config.TextColor)
}

// DrawPaused затемняет экран и пишет PAUSED.
func (h *HUD) DrawPaused(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PauseOverlayColor, false)
	h.drawCentered(screen, "PAUSED", config.ScreenHeight/2, config.TextColor)
}

func (h *HUD) drawCentered(screen *ebiten.Image, label string, y int, clr color.Color) {
	bounds := text.BoundString(h.face, label)
	text.Draw(screen, label, h.face, (config.ScreenWidth-bounds.Dx())/2, y, clr)
}
