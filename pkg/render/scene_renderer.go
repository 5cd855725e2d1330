// pkg/render/scene_renderer.go
package render

import (
	"image/color"
	"math"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/system"
	"go-space-shooter/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const starCount = 48

// SceneRenderer рисует звёздный фон и все сущности матча. Мировые
// координаты: ноль в центре экрана, ось Y вверх.
type SceneRenderer struct {
	screenWidth  int
	screenHeight int
	fillImg      *ebiten.Image
	fillVs       []ebiten.Vertex
	fillIs       []uint16
	background   *ebiten.Image // предрендеренный фон
	stars        [starCount]star
}

type star struct {
	x, y, speed float64
	bright      uint8
}

func NewSceneRenderer(screenWidth, screenHeight int) *SceneRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	r := &SceneRenderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		fillImg:      fillImg,
		fillVs:       make([]ebiten.Vertex, 0, 8),
		fillIs:       make([]uint16, 0, 8),
		background:   ebiten.NewImage(screenWidth, screenHeight),
	}
	for i := range r.stars {
		// детерминированная раскладка, без PRNG матча
		seed := float64((i*7919)%997) / 997
		r.stars[i] = star{
			x:      math.Mod(seed*float64(screenWidth)*13, float64(screenWidth)),
			y:      math.Mod(seed*float64(screenHeight)*7, float64(screenHeight)),
			speed:  6 + 24*seed,
			bright: uint8(120 + 135*seed),
		}
	}
	r.background.Fill(config.BackgroundColor)
	return r
}

// ToScreen converts a world position to screen pixels.
func (r *SceneRenderer) ToScreen(p component.Position) (float32, float32) {
	return float32(float64(r.screenWidth)/2 + p.X), float32(float64(r.screenHeight)/2 - p.Y)
}

func (r *SceneRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS, gameTime float64) {
	screen.DrawImage(r.background, nil)
	r.drawStars(screen, gameTime)

	for id, render := range ecs.Renderables {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		x, y := r.ToScreen(*pos)
		clr := render.Color
		if _, flashing := ecs.DamageFlashes[id]; flashing {
			clr = config.FlashColor
		}
		if _, isShip := ecs.Ships[id]; isShip {
			_, isPlayer := ecs.Players[id]
			r.drawShip(screen, x, y, render.Width, render.Height, clr, isPlayer)
			continue
		}
		vector.DrawFilledRect(screen, x-render.Width/2, y-render.Height/2, render.Width, render.Height, clr, false)
	}

	// Взрывы: расширяющееся и тающее кольцо
	for id, effect := range ecs.Effects {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		x, y := r.ToScreen(*pos)
		progress := system.Progress(effect)
		clr := FadeColor(effect.Color, 1-progress)
		radius := utils.Lerp(0, float32(effect.MaxRadius), float32(progress))
		vector.DrawFilledCircle(screen, x, y, radius*0.6, clr, true)
		vector.StrokeCircle(screen, x, y, radius, 2, clr, true)
	}
}

// drawShip рисует корабль треугольником: игрок смотрит вверх, враги вниз.
func (r *SceneRenderer) drawShip(target *ebiten.Image, x, y, w, h float32, clr color.RGBA, up bool) {
	tip, base := y+h/2, y-h/2
	if up {
		tip, base = y-h/2, y+h/2
	}
	path := vector.Path{}
	path.MoveTo(x, tip)
	path.LineTo(x+w/2, base)
	path.LineTo(x, base-(base-tip)/4)
	path.LineTo(x-w/2, base)
	path.Close()

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	cr, cg, cb, ca := vertexColor(clr)
	for i := range r.fillVs {
		r.fillVs[i].ColorR = cr
		r.fillVs[i].ColorG = cg
		r.fillVs[i].ColorB = cb
		r.fillVs[i].ColorA = ca
	}
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *SceneRenderer) drawStars(screen *ebiten.Image, gameTime float64) {
	h := float64(r.screenHeight)
	for _, s := range r.stars {
		y := math.Mod(s.y+gameTime*s.speed, h)
		vector.DrawFilledRect(screen, float32(s.x), float32(y), 1, 1, FadeColor(config.StarColor, float64(s.bright)/255), false)
	}
}
