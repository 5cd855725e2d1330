// internal/system/visual_effect.go
package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/types"
)

// VisualEffectSystem управляет визуальными эффектами: вспышками урона и
// взрывами.
type VisualEffectSystem struct {
	ecs     *entity.ECS
	library *defs.Library
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS, library *defs.Library) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs, library: library}
}

// Spawn creates an effect entity at the given position.
func (s *VisualEffectSystem) Spawn(effectID string, at component.Position) (types.EntityID, error) {
	def, err := s.library.Effect(effectID)
	if err != nil {
		return 0, err
	}
	id := s.ecs.NewEntity()
	pos := at
	s.ecs.Positions[id] = &pos
	s.ecs.Effects[id] = &component.Effect{
		DefID:     def.ID,
		Duration:  def.Duration,
		MaxRadius: def.MaxRadius,
		Color:     def.Visuals.Color,
		Glyph:     glyphOf(def.Visuals, '*'),
	}
	return id, nil
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	// Обновляем таймеры вспышек урона
	for id, flash := range s.ecs.DamageFlashes {
		flash.Timer -= deltaTime
		if flash.Timer <= 0 {
			delete(s.ecs.DamageFlashes, id)
		}
	}

	for id, effect := range s.ecs.Effects {
		if !s.ecs.IsAlive(id) {
			continue
		}
		effect.Timer += deltaTime
		if effect.Timer >= effect.Duration {
			// Эффект завершился, удаляем его
			s.ecs.MarkForRemoval(id)
		}
	}
}

// Progress returns how far the effect has played, in [0, 1].
func Progress(e *component.Effect) float64 {
	if e.Duration <= 0 {
		return 1
	}
	p := e.Timer / e.Duration
	if p > 1 {
		return 1
	}
	return p
}
