// internal/state/menu_state.go
package state

import (
	"log/slog"

	game "go-space-shooter/internal/app"
	"go-space-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// MenuState - заставка перед матчем.
type MenuState struct {
	sm   *StateMachine
	opts game.Options
}

func NewMenuState(sm *StateMachine, opts game.Options) *MenuState {
	return &MenuState{sm: sm, opts: opts}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if !inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return
	}
	gs, err := NewGameState(m.sm, m.opts)
	if err != nil {
		slog.Error("failed to start match", "err", err)
		return
	}
	m.sm.SetState(gs)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	for i, line := range []string{"SPACE SHOOTER", "", "arrows / A D - move", "space - fire", "P - pause  ESC - restart", "", "press SPACE"} {
		w := text.BoundString(face, line).Dx()
		text.Draw(screen, line, face, (config.ScreenWidth-w)/2, 90+i*16, config.TextColor)
	}
}

func (m *MenuState) Exit() {}
