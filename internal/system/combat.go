// internal/system/combat.go
package system

import (
	"errors"
	"log/slog"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/debug"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/interfaces"
	"go-space-shooter/internal/match"
	"go-space-shooter/internal/types"
)

// CombatSystem - общая часть поведения кораблей: стрельба, урон,
// уничтожение. Вариантное поведение делегируется зарегистрированным
// Combatant по фракции.
type CombatSystem struct {
	ecs             *entity.ECS
	match           *match.Match
	clock           interfaces.Clock
	presenter       interfaces.Presenter
	eventDispatcher *event.Dispatcher
	projectiles     *ProjectileSystem
	roles           map[component.Faction]Combatant
}

func NewCombatSystem(ecs *entity.ECS, m *match.Match, clock interfaces.Clock, presenter interfaces.Presenter,
	eventDispatcher *event.Dispatcher, projectiles *ProjectileSystem) *CombatSystem {
	s := &CombatSystem{
		ecs:             ecs,
		match:           m,
		clock:           clock,
		presenter:       presenterOrNop(presenter),
		eventDispatcher: eventDispatcher,
		projectiles:     projectiles,
		roles:           make(map[component.Faction]Combatant),
	}
	if projectiles != nil {
		projectiles.SetHitResolver(s)
	}
	return s
}

// Register binds a ship variant to a faction.
func (s *CombatSystem) Register(faction component.Faction, role Combatant) {
	s.roles[faction] = role
}

// Fire launches one projectile from the ship's muzzle. Nothing happens once
// the match is over or while the weapon is cooling down. A missing bullet
// definition is logged once and otherwise ignored.
func (s *CombatSystem) Fire(id types.EntityID) (types.EntityID, bool) {
	if s.match != nil && s.match.IsOver() {
		return 0, false
	}
	if !s.ecs.IsAlive(id) {
		return 0, false
	}
	weapon, ok := s.ecs.Weapons[id]
	ship, isShip := s.ecs.Ships[id]
	if !ok || !isShip {
		return 0, false
	}
	now := s.clock.Now()
	if now < weapon.NextFireTime {
		return 0, false
	}

	origin := s.ecs.Positions[id].Add(weapon.Facing.Scale(weapon.MuzzleOffset))
	projID, err := s.projectiles.Spawn(origin, weapon.Facing, weapon.BulletID, ship.Faction)
	if err != nil {
		if !weapon.Misconfigured {
			weapon.Misconfigured = true
			if errors.Is(err, defs.ErrUnknownBullet) {
				slog.Error("weapon has no usable bullet", "ship", ship.DefID, "err", err)
			} else {
				slog.Error("failed to fire", "ship", ship.DefID, "err", err)
			}
		}
		return 0, false
	}

	weapon.NextFireTime = now + weapon.RateOfFire
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ProjectileFired,
		Data: event.FiredData{Projectile: projID, Shooter: id, Allegiance: ship.Faction},
	})
	return projID, true
}

// TakeDamage subtracts amount from the ship's hit-points. The destruction
// sequence runs exactly once per life, however far hit-points drop below
// zero.
func (s *CombatSystem) TakeDamage(id types.EntityID, amount int) {
	ship, ok := s.ecs.Ships[id]
	if !ok {
		return
	}
	if !debug.Invariant(amount >= 0, "negative damage %d to %d", amount, id) {
		amount = 0
	}

	ship.HitPoints -= amount
	if ship.Destroyed {
		return
	}
	if ship.HitPoints > 0 {
		if amount > 0 {
			s.ecs.DamageFlashes[id] = &component.DamageFlash{
				Timer:    config.DamageFlashDuration,
				Duration: config.DamageFlashDuration,
			}
		}
		if ship.Faction == component.FactionPlayer && s.match != nil {
			s.match.RefreshDisplay()
		}
		return
	}
	s.destroy(id, ship)
}

// Destroy runs the destruction sequence regardless of hit-points.
func (s *CombatSystem) Destroy(id types.EntityID) {
	ship, ok := s.ecs.Ships[id]
	if !ok || ship.Destroyed || !s.ecs.IsAlive(id) {
		return
	}
	if ship.HitPoints > 0 {
		ship.HitPoints = 0
	}
	s.destroy(id, ship)
}

func (s *CombatSystem) destroy(id types.EntityID, ship *component.Ship) {
	ship.Destroyed = true
	delete(s.ecs.DamageFlashes, id)

	var at component.Position
	if pos, ok := s.ecs.Positions[id]; ok {
		at = *pos
	}
	if ship.DestroyedSound != "" {
		s.presenter.PlaySound(ship.DestroyedSound, at)
	}
	if ship.DestroyedEffect != "" {
		s.presenter.SpawnEffect(ship.DestroyedEffect, at)
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ShipDestroyed,
		Data: event.DestroyedData{Ship: id, Faction: ship.Faction, Position: at},
	})

	role, ok := s.roles[ship.Faction]
	if !debug.Invariant(ok, "no combatant registered for %s", ship.Faction) {
		s.ecs.MarkForRemoval(id)
		return
	}
	role.OnDestroyed(id)
}

// ResolveHit applies a projectile to a ship. It reports false when the
// ship's variant rejects the projectile's allegiance; a rejected projectile
// flies on. An accepted projectile is consumed.
func (s *CombatSystem) ResolveHit(target, projectile types.EntityID) bool {
	if !s.ecs.IsAlive(target) || !s.ecs.IsAlive(projectile) {
		return false
	}
	ship, ok := s.ecs.Ships[target]
	proj, isProj := s.ecs.Projectiles[projectile]
	if !ok || !isProj || ship.Destroyed {
		return false
	}
	role, ok := s.roles[ship.Faction]
	if !ok || !role.Accepts(proj.Allegiance()) {
		return false
	}

	s.ecs.MarkForRemoval(projectile)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ShipHit,
		Data: event.HitData{Target: target, Faction: ship.Faction, Projectile: projectile, Damage: proj.Damage},
	})
	s.TakeDamage(target, proj.Damage)
	return true
}

// ResolveContact handles two ships touching. Ships of one faction pass
// through each other; a player ship touching an enemy is destroyed.
func (s *CombatSystem) ResolveContact(a, b types.EntityID) bool {
	if !s.ecs.IsAlive(a) || !s.ecs.IsAlive(b) {
		return false
	}
	shipA, okA := s.ecs.Ships[a]
	shipB, okB := s.ecs.Ships[b]
	if !okA || !okB || shipA.Faction == shipB.Faction {
		return false
	}
	switch {
	case shipA.Faction == component.FactionPlayer:
		s.Destroy(a)
	case shipB.Faction == component.FactionPlayer:
		s.Destroy(b)
	default:
		return false
	}
	return true
}
