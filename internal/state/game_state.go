// internal/state/game_state.go
package state

import (
	"fmt"
	"log/slog"

	game "go-space-shooter/internal/app"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/input"
	"go-space-shooter/internal/interfaces"
	"go-space-shooter/internal/ui"
	"go-space-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState - состояние игры: один матч, его отрисовка и HUD.
type GameState struct {
	sm       *StateMachine
	opts     game.Options
	game     *game.Game
	keyboard *input.Keyboard
	renderer *render.SceneRenderer
	hud      *ui.HUD
	overlay  bool // F3: отладочная строка
}

// NewGameState starts a match. opts.Input is replaced by the keyboard.
func NewGameState(sm *StateMachine, opts game.Options) (*GameState, error) {
	keyboard := input.NewKeyboard(nil)
	opts.Input = keyboard
	g, err := game.NewGame(opts)
	if err != nil {
		return nil, err
	}
	return &GameState{
		sm:       sm,
		opts:     opts,
		game:     g,
		keyboard: keyboard,
		renderer: render.NewSceneRenderer(config.ScreenWidth, config.ScreenHeight),
		hud:      ui.NewHUD(),
	}, nil
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.overlay = !g.overlay
	}
	if g.keyboard.WasKeyPressed(interfaces.KeyReset) {
		g.restart()
		return
	}
	if g.keyboard.WasKeyPressed(interfaces.KeyPause) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	g.game.Update(deltaTime)
}

// restart заменяет матч новым с теми же настройками.
func (g *GameState) restart() {
	next, err := game.NewGame(g.opts)
	if err != nil {
		slog.Error("failed to restart match", "err", err)
		return
	}
	g.game = next
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.ECS, g.game.GetGameTime())

	hp, _ := g.game.PlayerSystem.HitPoints()
	g.hud.Draw(screen, ui.Snapshot{
		ScoreText:    g.game.ScoreText(),
		HitPoints:    hp,
		MaxHitPoints: g.game.Library.Player.HitPoints,
		Wave:         g.game.WaveSystem.Wave(),
		Stats:        g.game.StatsSystem.Stats(),
	})

	if g.overlay {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  entities %d  bodies %d  pending %d",
			ebiten.ActualTPS(), len(g.game.ECS.Positions), g.game.Space.Len(), g.game.ECS.PendingRemovals()), 8, config.ScreenHeight-18)
	}
}

func (g *GameState) Exit() {}

// GetGame returns the running match.
func (g *GameState) GetGame() *game.Game {
	return g.game
}
