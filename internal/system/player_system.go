// internal/system/player_system.go
package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/interfaces"
	"go-space-shooter/internal/match"
	"go-space-shooter/internal/types"
	"go-space-shooter/internal/utils"
)

// PlayerSystem отвечает за корабль игрока: движение по горизонтали,
// стрельбу и конец матча при его гибели.
type PlayerSystem struct {
	ecs     *entity.ECS
	match   *match.Match
	input   interfaces.Input
	spatial interfaces.Spatial
	combat  *CombatSystem
}

func NewPlayerSystem(ecs *entity.ECS, m *match.Match, input interfaces.Input, spatial interfaces.Spatial, combat *CombatSystem) *PlayerSystem {
	s := &PlayerSystem{
		ecs:     ecs,
		match:   m,
		input:   input,
		spatial: spatial,
		combat:  combat,
	}
	combat.Register(component.FactionPlayer, s)
	return s
}

// Spawn places the player ship at the bottom centre of the field.
func (s *PlayerSystem) Spawn(def defs.PlayerDefinition) types.EntityID {
	_, halfHeight := s.match.Bounds()
	id := s.ecs.NewEntity()
	pos := component.Position{X: 0, Y: -halfHeight + def.SpawnY}

	s.ecs.Positions[id] = &pos
	s.ecs.Ships[id] = &component.Ship{
		DefID:             def.ID,
		Faction:           component.FactionPlayer,
		HitPoints:         def.HitPoints,
		OriginalHitPoints: def.HitPoints,
		MoveSpeed:         def.MoveSpeed,
		Width:             def.Width,
		Height:            def.Height,
		DestroyedSound:    def.DestroyedSound,
		DestroyedEffect:   def.DestroyedEffect,
	}
	s.ecs.Weapons[id] = &component.Weapon{
		BulletID:     def.BulletID,
		RateOfFire:   def.RateOfFire,
		MuzzleOffset: config.MuzzleOffset,
		Facing:       component.Up,
	}
	s.ecs.Players[id] = &component.Player{MaxRange: def.MaxRange}
	s.ecs.Renderables[id] = renderableOf(def.Visuals, def.Width, def.Height, 'A')
	s.spatial.Add(id, interfaces.BodyShip, pos, def.Width, def.Height)
	s.match.RefreshDisplay()
	return id
}

func (s *PlayerSystem) Update(deltaTime float64) {
	if s.input == nil {
		return
	}
	halfWidth, _ := s.match.Bounds()
	for _, id := range sortedIDs(s.ecs.Players) {
		if !s.ecs.IsAlive(id) {
			continue
		}
		player := s.ecs.Players[id]
		ship := s.ecs.Ships[id]
		pos := s.ecs.Positions[id]

		dir := 0.0
		if s.input.IsKeyHeld(interfaces.KeyLeft) {
			dir--
		}
		if s.input.IsKeyHeld(interfaces.KeyRight) {
			dir++
		}
		maxRange := player.MaxRange
		if maxRange <= 0 {
			maxRange = halfWidth
		}
		pos.X = utils.Clamp(pos.X+dir*ship.MoveSpeed*deltaTime, -maxRange, maxRange)
		s.spatial.Move(id, *pos)

		if s.input.IsKeyHeld(interfaces.KeyFire) {
			s.combat.Fire(id)
		}
	}
}

// Accepts: игрока ранят только вражеские снаряды.
func (s *PlayerSystem) Accepts(allegiance component.Faction) bool {
	return allegiance == component.FactionEnemy
}

func (s *PlayerSystem) OnDestroyed(id types.EntityID) {
	s.match.SetGameOver()
	s.ecs.MarkForRemoval(id)
}

// OnRemoved ends the match when the player ship leaves the world by any
// route.
func (s *PlayerSystem) OnRemoved(id types.EntityID) {
	if _, ok := s.ecs.Players[id]; ok {
		s.match.SetGameOver()
	}
}

// HitPoints returns the player's hit-points, if a player is alive.
func (s *PlayerSystem) HitPoints() (int, bool) {
	id, ok := s.ecs.PlayerID()
	if !ok {
		return 0, false
	}
	return s.ecs.Ships[id].HitPoints, true
}
