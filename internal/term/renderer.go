// internal/term/renderer.go
package term

import (
	"image/color"
	"sort"
	"strings"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/types"

	"github.com/gdamore/tcell/v2"
)

// Renderer рисует мир символами: вся игровая область сжимается в экран
// терминала, последняя строка отдана под счёт.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

func styleOf(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// Cell maps a world position to a screen cell inside the play area.
func (r *Renderer) Cell(x, y, halfWidth, halfHeight float64) (col, row int) {
	w, h := r.screen.Size()
	rows := max(h-1, 1)
	col = int((x + halfWidth) * float64(w) / (2 * halfWidth))
	row = int((halfHeight - y) * float64(rows) / (2 * halfHeight))
	return min(max(col, 0), w-1), min(max(row, 0), rows-1)
}

func (r *Renderer) Draw(ecs *entity.ECS, halfWidth, halfHeight float64, hud string) {
	r.screen.Clear()

	ids := make([]types.EntityID, 0, len(ecs.Renderables))
	for id := range ecs.Renderables {
		ids = append(ids, id)
	}
	// корабли поверх снарядов, игрок поверх всех
	sort.Slice(ids, func(i, j int) bool {
		li, lj := layerOf(ecs, ids[i]), layerOf(ecs, ids[j])
		if li != lj {
			return li < lj
		}
		return ids[i] < ids[j]
	})

	for id, effect := range ecs.Effects {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		col, row := r.Cell(pos.X, pos.Y, halfWidth, halfHeight)
		r.screen.SetContent(col, row, effect.Glyph, nil, styleOf(effect.Color))
	}
	for _, id := range ids {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		render := ecs.Renderables[id]
		style := styleOf(render.Color)
		if _, flashing := ecs.DamageFlashes[id]; flashing {
			style = styleOf(config.FlashColor).Bold(true)
		}
		col, row := r.Cell(pos.X, pos.Y, halfWidth, halfHeight)
		r.screen.SetContent(col, row, render.Glyph, nil, style)
	}

	r.drawHUD(hud)
	r.screen.Show()
}

func layerOf(ecs *entity.ECS, id types.EntityID) int {
	switch {
	case ecs.Players[id] != nil:
		return 2
	case ecs.Ships[id] != nil:
		return 1
	}
	return 0
}

func (r *Renderer) drawHUD(hud string) {
	_, h := r.screen.Size()
	text := strings.ReplaceAll(hud, "\n", "  ")
	style := styleOf(config.TextColor)
	col := 0
	for _, ch := range text {
		s := style
		if ch == '♥' {
			s = styleOf(config.HeartColor)
		}
		r.screen.SetContent(col, h-1, ch, nil, s)
		col++
	}
}
