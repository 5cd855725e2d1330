// internal/system/enemy_system.go
package system

import (
	"fmt"
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
	"go-space-shooter/internal/utils"
)

// EnemySystem двигает врагов, стреляет по случайному таймеру и решает их
// судьбу при уходе за нижнюю границу или уничтожении.
type EnemySystem struct {
	ecs             *entity.ECS
	match           *match.Match
	library         *defs.Library
	clock           interfaces.Clock
	rng             *utils.PRNGService
	spatial         interfaces.Spatial
	combat          *CombatSystem
	eventDispatcher *event.Dispatcher
}

func NewEnemySystem(ecs *entity.ECS, m *match.Match, library *defs.Library, clock interfaces.Clock, rng *utils.PRNGService,
	spatial interfaces.Spatial, combat *CombatSystem, eventDispatcher *event.Dispatcher) *EnemySystem {
	s := &EnemySystem{
		ecs:             ecs,
		match:           m,
		library:         library,
		clock:           clock,
		rng:             rng,
		spatial:         spatial,
		combat:          combat,
		eventDispatcher: eventDispatcher,
	}
	combat.Register(component.FactionEnemy, s)
	return s
}

// Spawn creates an enemy of the given archetype. The movement strategy and
// the defeat/exit policies are fixed for the enemy's lifetime.
func (s *EnemySystem) Spawn(archetypeID string, at component.Position) (types.EntityID, error) {
	def, err := s.library.Enemy(archetypeID)
	if err != nil {
		return 0, err
	}
	if _, ok := strategies[def.Movement]; !ok {
		return 0, fmt.Errorf("archetype %s: unknown movement %q", def.ID, def.Movement)
	}

	id := s.ecs.NewEntity()
	pos := at
	s.ecs.Positions[id] = &pos
	s.ecs.Ships[id] = &component.Ship{
		DefID:             def.ID,
		Faction:           component.FactionEnemy,
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
		Facing:       component.Down,
	}
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:           def.ID,
		Movement:        def.Movement,
		ScoreValue:      def.ScoreValue,
		FireIntervalMin: def.FireIntervalMin,
		FireIntervalMax: def.FireIntervalMax,
		NextFireAttempt: s.clock.Now() + s.rng.Uniform(def.FireIntervalMin, def.FireIntervalMax),
		OnDefeat:        def.OnDefeat,
		OnExit:          def.OnExit,
		BottomBound:     def.BottomBound,
		Offset:          at.X,
		Amplitude:       def.Amplitude,
		StepDown:        def.StepDown,
		AdvanceSpeed:    def.AdvanceSpeed,
		SpeedMin:        def.SpeedMin,
		SpeedMax:        def.SpeedMax,
	}
	s.ecs.Renderables[id] = renderableOf(def.Visuals, def.Width, def.Height, 'V')
	s.spatial.Add(id, interfaces.BodyShip, pos, def.Width, def.Height)
	return id, nil
}

func (s *EnemySystem) Update(deltaTime float64) {
	now := s.clock.Now()
	var player *component.Position
	if pid, ok := s.ecs.PlayerID(); ok {
		player = s.ecs.Positions[pid]
	}

	for _, id := range sortedIDs(s.ecs.Enemies) {
		if !s.ecs.IsAlive(id) {
			continue
		}
		enemy := s.ecs.Enemies[id]
		ship := s.ecs.Ships[id]
		pos := s.ecs.Positions[id]

		strategies[enemy.Movement](enemy, ship, pos, player, now, deltaTime)
		s.spatial.Move(id, *pos)

		if now >= enemy.NextFireAttempt {
			s.combat.Fire(id)
			enemy.NextFireAttempt = now + s.rng.Uniform(enemy.FireIntervalMin, enemy.FireIntervalMax)
		}

		if pos.Y < s.bottomBound(enemy) {
			s.exit(id, enemy)
		}
	}
}

func (s *EnemySystem) bottomBound(e *component.Enemy) float64 {
	if e.BottomBound != 0 {
		return e.BottomBound
	}
	_, halfHeight := s.match.Bounds()
	return -halfHeight
}

// exit: враг ушёл вниз живым. Очки не начисляются.
func (s *EnemySystem) exit(id types.EntityID, e *component.Enemy) {
	recycled := e.OnExit == defs.ExitRecycleAtTop
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyExited,
		Data: event.ExitedData{Enemy: id, Recycled: recycled},
	})
	if recycled {
		s.recycle(id, false)
		return
	}
	s.ecs.MarkForRemoval(id)
}

// Accepts: врага ранят только снаряды игрока.
func (s *EnemySystem) Accepts(allegiance component.Faction) bool {
	return allegiance == component.FactionPlayer
}

// OnDestroyed awards the score once per defeat, then removes or recycles
// the enemy according to its archetype.
func (s *EnemySystem) OnDestroyed(id types.EntityID) {
	enemy, ok := s.ecs.Enemies[id]
	if !debug.Invariant(ok, "entity %d destroyed as enemy without enemy data", id) {
		s.ecs.MarkForRemoval(id)
		return
	}
	enemy.Defeats++
	s.match.AddScore(enemy.ScoreValue)

	switch enemy.OnDefeat {
	case defs.DefeatRecycleAtTop:
		s.recycle(id, true)
	default:
		s.ecs.MarkForRemoval(id)
	}
}

// recycle возвращает врага наверх со случайным смещением и скоростью и
// восстанавливает исходный запас прочности.
func (s *EnemySystem) recycle(id types.EntityID, defeated bool) {
	enemy := s.ecs.Enemies[id]
	ship := s.ecs.Ships[id]
	pos := s.ecs.Positions[id]
	halfWidth, halfHeight := s.match.Bounds()

	spread := halfWidth
	if enemy.Movement == defs.MoveAcrossScreen && enemy.Amplitude < halfWidth {
		spread = halfWidth - enemy.Amplitude
	}
	pos.X = s.rng.Uniform(-spread, spread)
	pos.Y = halfHeight
	if enemy.SpeedMax > 0 {
		ship.MoveSpeed = s.rng.Uniform(enemy.SpeedMin, enemy.SpeedMax)
	}
	ship.HitPoints = ship.OriginalHitPoints
	ship.Destroyed = false
	delete(s.ecs.DamageFlashes, id)

	enemy.Offset = pos.X
	enemy.HasSample = false
	enemy.LastSign = 0
	s.spatial.Move(id, *pos)

	slog.Debug("enemy recycled", "id", id, "archetype", enemy.DefID, "defeated", defeated)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyRecycled,
		Data: event.RecycledData{Enemy: id, Defeated: defeated},
	})
}
