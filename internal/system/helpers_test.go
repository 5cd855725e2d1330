package system

import (
	"testing"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/interfaces"
	"go-space-shooter/internal/match"
	"go-space-shooter/internal/physics"
	"go-space-shooter/internal/types"
	"go-space-shooter/internal/utils"

	"github.com/stretchr/testify/require"
)

type fakeClock struct{ now float64 }

func (c *fakeClock) Now() float64       { return c.now }
func (c *fakeClock) DeltaTime() float64 { return 0 }

type recordingPresenter struct {
	texts   []string
	sounds  []string
	effects []string
}

func (p *recordingPresenter) UpdateScoreDisplay(text string) { p.texts = append(p.texts, text) }

func (p *recordingPresenter) PlaySound(clipID string, _ component.Position) {
	p.sounds = append(p.sounds, clipID)
}

func (p *recordingPresenter) SpawnEffect(effectID string, _ component.Position) {
	p.effects = append(p.effects, effectID)
}

func (p *recordingPresenter) count(list []string, id string) int {
	n := 0
	for _, s := range list {
		if s == id {
			n++
		}
	}
	return n
}

func ship(id string, hp int, speed float64, w, h float64, bullet string) defs.ShipDefinition {
	return defs.ShipDefinition{
		ID:              id,
		HitPoints:       hp,
		MoveSpeed:       speed,
		Width:           w,
		Height:          h,
		BulletID:        bullet,
		RateOfFire:      0.5,
		DestroyedSound:  "boom",
		DestroyedEffect: "SMALL",
	}
}

func testLibrary() *defs.Library {
	player := ship("PLAYER", 3, 100, 16, 12, "PB")
	player.RateOfFire = 0.45
	player.DestroyedSound = "boom_big"
	player.DestroyedEffect = "BIG"

	noFire := 1000.0
	return &defs.Library{
		Player: defs.PlayerDefinition{ShipDefinition: player, MaxRange: 170, SpawnY: 20},
		Enemies: map[string]defs.EnemyArchetype{
			"DIVER": {
				ShipDefinition:  ship("DIVER", 2, 30, 16, 12, "EB"),
				Movement:        defs.MoveDownScreen,
				ScoreValue:      10,
				FireIntervalMin: 1,
				FireIntervalMax: 1,
				OnDefeat:        defs.DefeatDestroy,
				OnExit:          defs.ExitDestroy,
			},
			"RECYCLER": {
				ShipDefinition:  ship("RECYCLER", 10, 30, 16, 12, "EB"),
				Movement:        defs.MoveDownScreen,
				ScoreValue:      25,
				FireIntervalMin: noFire,
				FireIntervalMax: noFire,
				OnDefeat:        defs.DefeatRecycleAtTop,
				OnExit:          defs.ExitRecycleAtTop,
				SpeedMin:        20,
				SpeedMax:        40,
			},
			"WEAVER": {
				ShipDefinition:  ship("WEAVER", 3, 1, 16, 12, "EB"),
				Movement:        defs.MoveAcrossScreen,
				ScoreValue:      20,
				FireIntervalMin: noFire,
				FireIntervalMax: noFire,
				OnDefeat:        defs.DefeatRecycleAtTop,
				OnExit:          defs.ExitRecycleAtTop,
				Amplitude:       50,
				StepDown:        10,
			},
			"HUNTER": {
				ShipDefinition:  ship("HUNTER", 4, 20, 14, 14, "EB"),
				Movement:        defs.MoveTowardPlayer,
				ScoreValue:      30,
				FireIntervalMin: noFire,
				FireIntervalMax: noFire,
				OnDefeat:        defs.DefeatDestroy,
				OnExit:          defs.ExitDestroy,
				AdvanceSpeed:    5,
			},
			"BROKEN": {
				ShipDefinition:  ship("BROKEN", 1, 0, 16, 12, "MISSING"),
				Movement:        defs.MoveDownScreen,
				FireIntervalMin: noFire,
				FireIntervalMax: noFire,
				OnDefeat:        defs.DefeatDestroy,
				OnExit:          defs.ExitDestroy,
			},
		},
		Bullets: map[string]defs.BulletDefinition{
			"PB":    {ID: "PB", Speed: 100, Damage: 1, Width: 2, Height: 6, FireSound: "laser"},
			"EB":    {ID: "EB", Speed: 50, Damage: 1, Width: 3, Height: 3, FireSound: "enemy_shot"},
			"FAST":  {ID: "FAST", Speed: 1000, Damage: 1, Width: 2, Height: 6},
			"SHORT": {ID: "SHORT", Speed: 100, Damage: 1, MaxRange: 30, Width: 2, Height: 6},
			"ZERO":  {ID: "ZERO", Speed: 0, Damage: 1, Width: 2, Height: 2},
		},
		Effects: map[string]defs.EffectDefinition{
			"SMALL": {ID: "SMALL", Duration: 0.5, MaxRadius: 10},
			"BIG":   {ID: "BIG", Duration: 1, MaxRadius: 30},
		},
		Levels: map[string]defs.LevelDefinition{},
	}
}

// world собирает системы так же, как app.Game, но без волн и с подменяемыми
// часами.
type world struct {
	ecs         *entity.ECS
	match       *match.Match
	lib         *defs.Library
	clock       *fakeClock
	space       *physics.Space
	contacts    *physics.ContactTracker
	events      *event.Dispatcher
	presenter   *recordingPresenter
	projectiles *ProjectileSystem
	combat      *CombatSystem
	players     *PlayerSystem
	enemies     *EnemySystem
	collisions  *CollisionSystem
}

func newWorld(t *testing.T, input interfaces.Input) *world {
	t.Helper()
	w := &world{
		ecs:       entity.NewECS(),
		lib:       testLibrary(),
		clock:     &fakeClock{},
		space:     physics.NewSpace(200, 150, 16),
		contacts:  physics.NewContactTracker(),
		events:    event.NewDispatcher(),
		presenter: &recordingPresenter{},
	}
	w.match = match.New(match.Bounds{HalfWidth: 200, HalfHeight: 150}, w.presenter, w.events)
	w.projectiles = NewProjectileSystem(w.ecs, w.match, w.lib, w.space, w.contacts, w.presenter)
	w.combat = NewCombatSystem(w.ecs, w.match, w.clock, w.presenter, w.events, w.projectiles)
	w.players = NewPlayerSystem(w.ecs, w.match, input, w.space, w.combat)
	w.enemies = NewEnemySystem(w.ecs, w.match, w.lib, w.clock, utils.NewPRNGService(42), w.space, w.combat, w.events)
	w.collisions = NewCollisionSystem(w.ecs, w.space, w.contacts, w.combat)
	return w
}

func (w *world) spawnPlayer() types.EntityID {
	w.match.SetHitPointSource(w.players.HitPoints)
	return w.players.Spawn(w.lib.Player)
}

func (w *world) spawnEnemy(t *testing.T, archetype string, x, y float64) types.EntityID {
	t.Helper()
	id, err := w.enemies.Spawn(archetype, component.Position{X: x, Y: y})
	require.NoError(t, err)
	return id
}

func (w *world) spawnBullet(t *testing.T, bullet string, allegiance component.Faction, x, y float64, dir component.Position) types.EntityID {
	t.Helper()
	id, err := w.projectiles.Spawn(component.Position{X: x, Y: y}, dir, bullet, allegiance)
	require.NoError(t, err)
	return id
}

// tick прогоняет один полный тик в порядке app.Game.Update.
func (w *world) tick(dt float64) {
	w.clock.now += dt
	w.players.Update(dt)
	w.enemies.Update(dt)
	w.projectiles.Update(dt)
	w.collisions.Update(dt)
	w.flush()
}

func (w *world) flush() {
	w.ecs.Flush(func(id types.EntityID) {
		w.space.Remove(id)
		w.contacts.Forget(id)
		w.players.OnRemoved(id)
	})
	w.collisions.EndTick()
}

func (w *world) hp(id types.EntityID) int {
	return w.ecs.Ships[id].HitPoints
}

func (w *world) pos(id types.EntityID) component.Position {
	return *w.ecs.Positions[id]
}
