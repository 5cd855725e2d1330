// internal/state/pause_state.go
package state

import (
	"go-space-shooter/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

// Enter останавливает часы матча.
func (s *PauseState) Enter() {
	s.previousState.GetGame().TogglePause()
}

func (s *PauseState) Update(deltaTime float64) {
	kb := s.previousState.keyboard
	if kb.WasKeyPressed(interfaces.KeyPause) || kb.WasKeyPressed(interfaces.KeyReset) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	s.previousState.hud.DrawPaused(screen)
}

func (s *PauseState) Exit() {
	s.previousState.GetGame().TogglePause()
}
