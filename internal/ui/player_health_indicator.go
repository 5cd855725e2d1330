// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"

	"go-space-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	HealthCols          = 10
	HealthCircleRadius  = 4.0
	HealthCircleSpacing = 3.0
)

// PlayerHealthIndicator отображает здоровье игрока сеткой кружков.
type PlayerHealthIndicator struct {
	X, Y float32
}

func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// cellColor: пока здоровья больше половины, "избыток" рисуется полным цветом.
func cellColor(j, health, maxHealth int) color.RGBA {
	if j >= health {
		return config.HealthIndicatorEmptyColor
	}
	half := maxHealth / 2
	switch {
	case health <= 1:
		return config.HealthIndicatorCriticalColor
	case health <= half:
		return config.HealthIndicatorWarningColor
	case j < health-half:
		return config.HealthIndicatorFullColor
	default:
		return config.HealthIndicatorWarningColor
	}
}

func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	const step = HealthCircleRadius*2 + HealthCircleSpacing
	for j := 0; j < maxHealth; j++ {
		row, col := j/HealthCols, j%HealthCols
		cx := i.X + float32(col)*step + HealthCircleRadius
		cy := i.Y + float32(row)*step + HealthCircleRadius

		vector.DrawFilledCircle(screen, cx, cy, HealthCircleRadius, cellColor(j, health, maxHealth), true)
		vector.StrokeCircle(screen, cx, cy, HealthCircleRadius, 1, config.UIBorderColor, true)
	}
}

// Height возвращает высоту сетки.
func (i *PlayerHealthIndicator) Height(maxHealth int) float32 {
	rows := (maxHealth + HealthCols - 1) / HealthCols
	return float32(rows) * (HealthCircleRadius*2 + HealthCircleSpacing)
}
