// internal/app/game.go
package app

import (
	"fmt"
	"log/slog"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/interfaces"
	"go-space-shooter/internal/match"
	"go-space-shooter/internal/physics"
	"go-space-shooter/internal/system"
	"go-space-shooter/internal/types"
	"go-space-shooter/internal/utils"
)

// Options configures a match.
type Options struct {
	Library *defs.Library // nil - встроенные определения
	Level   string        // "" - без волн
	Seed    int64         // 0 - от текущего времени
	Bounds  match.Bounds  // нулевые - по размеру экрана
	Input   interfaces.Input
	Sounds  SoundPlayer
}

// Game holds one match: the world, the match state and every system.
type Game struct {
	ECS             *entity.ECS
	Match           *match.Match
	EventDispatcher *event.Dispatcher
	Library         *defs.Library
	Rng             *utils.PRNGService
	Clock           *SimClock
	Space           *physics.Space
	Contacts        *physics.ContactTracker
	Presenter       *Presenter

	ProjectileSystem   *system.ProjectileSystem
	CombatSystem       *system.CombatSystem
	PlayerSystem       *system.PlayerSystem
	EnemySystem        *system.EnemySystem
	WaveSystem         *system.WaveSystem
	CollisionSystem    *system.CollisionSystem
	VisualEffectSystem *system.VisualEffectSystem
	StatsSystem        *system.StatsSystem

	PlayerID types.EntityID
	isPaused bool
}

// NewGame initializes a new match.
func NewGame(opts Options) (*Game, error) {
	lib := opts.Library
	if lib == nil {
		var err error
		if lib, err = defs.Default(); err != nil {
			return nil, err
		}
	}
	if err := lib.Validate(); err != nil {
		// битые ссылки не фатальны: такое оружие просто не стреляет
		slog.Warn("definition problems", "err", err)
	}

	bounds := opts.Bounds
	if bounds.HalfWidth <= 0 || bounds.HalfHeight <= 0 {
		bounds = match.Bounds{HalfWidth: config.HalfWidth, HalfHeight: config.HalfHeight}
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	presenter := NewPresenter(opts.Sounds)
	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Library:         lib,
		Rng:             utils.NewPRNGService(opts.Seed),
		Clock:           &SimClock{},
		Space:           physics.NewSpace(bounds.HalfWidth, bounds.HalfHeight, config.PhysicsCellSize),
		Contacts:        physics.NewContactTracker(),
		Presenter:       presenter,
	}
	g.Match = match.New(bounds, presenter, eventDispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs, lib)
	presenter.effects = g.VisualEffectSystem

	g.ProjectileSystem = system.NewProjectileSystem(ecs, g.Match, lib, g.Space, g.Contacts, presenter)
	g.CombatSystem = system.NewCombatSystem(ecs, g.Match, g.Clock, presenter, eventDispatcher, g.ProjectileSystem)
	g.PlayerSystem = system.NewPlayerSystem(ecs, g.Match, opts.Input, g.Space, g.CombatSystem)
	g.EnemySystem = system.NewEnemySystem(ecs, g.Match, lib, g.Clock, g.Rng, g.Space, g.CombatSystem, eventDispatcher)
	g.CollisionSystem = system.NewCollisionSystem(ecs, g.Space, g.Contacts, g.CombatSystem)
	g.StatsSystem = system.NewStatsSystem(eventDispatcher)

	var level defs.LevelDefinition
	if opts.Level != "" {
		var err error
		if level, err = lib.Level(opts.Level); err != nil {
			return nil, fmt.Errorf("failed to start match: %w", err)
		}
	}
	g.WaveSystem = system.NewWaveSystem(g.Match, g.Rng, g.EnemySystem, level)

	g.Match.SetHitPointSource(g.PlayerSystem.HitPoints)
	g.PlayerID = g.PlayerSystem.Spawn(lib.Player)

	slog.Info("match started", "match", g.Match.ID(), "level", opts.Level)
	return g, nil
}

// Update advances the match by one tick.
func (g *Game) Update(deltaTime float64) {
	if g.isPaused {
		return
	}
	g.Clock.Advance(deltaTime)
	dt := g.Clock.DeltaTime()

	g.PlayerSystem.Update(dt)
	g.EnemySystem.Update(dt)
	g.WaveSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
	g.CollisionSystem.Update(dt)
	g.VisualEffectSystem.Update(dt)

	g.ECS.Flush(g.onRemove)
	g.CollisionSystem.EndTick()
}

// onRemove отвязывает сущность от физики до удаления её компонентов.
func (g *Game) onRemove(id types.EntityID) {
	g.Space.Remove(id)
	g.Contacts.Forget(id)
	g.PlayerSystem.OnRemoved(id)
}

func (g *Game) TogglePause() {
	g.isPaused = !g.isPaused
}

func (g *Game) IsPaused() bool {
	return g.isPaused
}

func (g *Game) GetGameTime() float64 {
	return g.Clock.Now()
}

// ScoreText returns the score and hit-point text for the HUD.
func (g *Game) ScoreText() string {
	return g.Presenter.ScoreText()
}
