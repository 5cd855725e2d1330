// internal/system/collision.go
package system

import (
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/interfaces"
	"go-space-shooter/internal/physics"
)

// CollisionSystem разбирает пересечения тел, найденные пространством.
// Каждая пара обрабатывается один раз за время контакта, а не каждый тик.
type CollisionSystem struct {
	ecs      *entity.ECS
	spatial  interfaces.Spatial
	contacts *physics.ContactTracker
	combat   *CombatSystem
}

func NewCollisionSystem(ecs *entity.ECS, spatial interfaces.Spatial, contacts *physics.ContactTracker, combat *CombatSystem) *CollisionSystem {
	return &CollisionSystem{
		ecs:      ecs,
		spatial:  spatial,
		contacts: contacts,
		combat:   combat,
	}
}

func (s *CollisionSystem) Update(deltaTime float64) {
	for _, pair := range s.spatial.Overlaps() {
		// разрешение предыдущей пары могло переставить одно из тел
		if !s.spatial.Overlapping(pair.A, pair.B) {
			continue
		}
		if !s.contacts.Begin(pair) {
			continue
		}
		if !s.ecs.IsAlive(pair.A) || !s.ecs.IsAlive(pair.B) {
			continue
		}

		_, projA := s.ecs.Projectiles[pair.A]
		_, projB := s.ecs.Projectiles[pair.B]
		switch {
		case projA && projB:
			// снаряды друг с другом не взаимодействуют
		case projA:
			s.combat.ResolveHit(pair.B, pair.A)
		case projB:
			s.combat.ResolveHit(pair.A, pair.B)
		default:
			s.combat.ResolveContact(pair.A, pair.B)
		}
	}
}

// EndTick closes the tick for contact tracking. Pairs not seen during the
// tick are treated as separated.
func (s *CollisionSystem) EndTick() {
	s.contacts.EndTick()
}
