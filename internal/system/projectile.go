// internal/system/projectile.go
package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/debug"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/interfaces"
	"go-space-shooter/internal/match"
	"go-space-shooter/internal/physics"
	"go-space-shooter/internal/types"
)

// HitResolver decides whether a projectile touching a ship counts as a hit.
type HitResolver interface {
	ResolveHit(target, projectile types.EntityID) bool
}

// ProjectileSystem управляет движением снарядов. За один тик снаряд
// перемещается на speed*dt, а отрезок пути проверяется на пересечение
// с кораблями, так что быстрый снаряд не проскакивает цель.
type ProjectileSystem struct {
	ecs       *entity.ECS
	match     *match.Match
	library   *defs.Library
	spatial   interfaces.Spatial
	contacts  *physics.ContactTracker
	presenter interfaces.Presenter
	resolver  HitResolver
}

func NewProjectileSystem(ecs *entity.ECS, m *match.Match, library *defs.Library, spatial interfaces.Spatial,
	contacts *physics.ContactTracker, presenter interfaces.Presenter) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:       ecs,
		match:     m,
		library:   library,
		spatial:   spatial,
		contacts:  contacts,
		presenter: presenterOrNop(presenter),
	}
}

func (s *ProjectileSystem) SetHitResolver(r HitResolver) {
	s.resolver = r
}

// Spawn creates a projectile from the bullet template. The allegiance is
// fixed for the projectile's lifetime.
func (s *ProjectileSystem) Spawn(origin, direction component.Position, bulletID string, allegiance component.Faction) (types.EntityID, error) {
	def, err := s.library.Bullet(bulletID)
	if err != nil {
		return 0, err
	}
	damage := def.Damage
	if !debug.Invariant(damage >= 0, "bullet %s has negative damage %d", def.ID, damage) {
		damage = 0
	}

	id := s.ecs.NewEntity()
	proj := component.NewProjectile(allegiance, direction, def.Speed, damage)
	proj.DefID = def.ID
	proj.MaxRange = def.MaxRange
	proj.MaxLifetime = def.MaxLifetime
	if proj.MaxLifetime <= 0 {
		proj.MaxLifetime = config.DefaultBulletLifetime
	}
	proj.Width, proj.Height = def.Width, def.Height

	pos := origin
	s.ecs.Positions[id] = &pos
	s.ecs.Projectiles[id] = proj
	s.ecs.Renderables[id] = renderableOf(def.Visuals, def.Width, def.Height, '|')
	s.spatial.Add(id, interfaces.BodyProjectile, origin, def.Width, def.Height)

	if def.FireSound != "" {
		s.presenter.PlaySound(def.FireSound, origin)
	}
	return id, nil
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	_, halfHeight := s.match.Bounds()
	for _, id := range sortedIDs(s.ecs.Projectiles) {
		if !s.ecs.IsAlive(id) {
			continue
		}
		proj := s.ecs.Projectiles[id]
		pos := s.ecs.Positions[id]

		proj.Age += deltaTime
		if proj.Age >= proj.MaxLifetime {
			s.ecs.MarkForRemoval(id)
			continue
		}

		next := pos.Add(proj.Direction.Scale(proj.Speed * deltaTime))
		if s.sweep(id, proj, *pos, next) {
			continue
		}
		*pos = next
		s.spatial.Move(id, next)

		limit := halfHeight
		if proj.MaxRange > 0 && proj.MaxRange < limit {
			limit = proj.MaxRange
		}
		if pos.Y > limit || pos.Y < -limit {
			s.ecs.MarkForRemoval(id)
		}
	}
}

// sweep проверяет путь снаряда за тик. Цели перебираются от ближней
// к дальней; первая принявшая попадание цель поглощает снаряд.
func (s *ProjectileSystem) sweep(id types.EntityID, proj *component.Projectile, from, to component.Position) bool {
	if s.resolver == nil {
		return false
	}
	width := proj.Width
	if width <= 0 {
		width = 1
	}
	for _, target := range s.spatial.Sweep(from, to, width) {
		if !s.ecs.IsAlive(target) {
			continue
		}
		if s.contacts != nil && !s.contacts.Begin(types.NewPair(target, id)) {
			continue
		}
		if s.resolver.ResolveHit(target, id) {
			return true
		}
	}
	return false
}
