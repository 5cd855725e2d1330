// internal/term/input.go
package term

import (
	"go-space-shooter/internal/interfaces"

	"github.com/gdamore/tcell/v2"
)

// HoldInput эмулирует зажатые клавиши: терминал присылает только нажатия
// (и автоповтор), поэтому клавиша считается зажатой ещё window секунд после
// последнего события.
type HoldInput struct {
	window   float64
	now      float64
	lastSeen map[interfaces.Key]float64
	pressed  map[interfaces.Key]bool
}

var _ interfaces.Input = (*HoldInput)(nil)

func NewHoldInput(window float64) *HoldInput {
	return &HoldInput{
		window:   window,
		lastSeen: make(map[interfaces.Key]float64),
		pressed:  make(map[interfaces.Key]bool),
	}
}

// keyOf maps a terminal key event to a logical key.
func keyOf(ev *tcell.EventKey) (interfaces.Key, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return interfaces.KeyLeft, true
	case tcell.KeyRight:
		return interfaces.KeyRight, true
	case tcell.KeyEscape:
		return interfaces.KeyReset, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return interfaces.KeyLeft, true
		case 'd', 'D':
			return interfaces.KeyRight, true
		case ' ':
			return interfaces.KeyFire, true
		case 'p', 'P':
			return interfaces.KeyPause, true
		}
	}
	return 0, false
}

// HandleKey records a key event at the current time.
func (in *HoldInput) HandleKey(ev *tcell.EventKey) {
	key, ok := keyOf(ev)
	if !ok {
		return
	}
	in.lastSeen[key] = in.now
	in.pressed[key] = true
}

// SetTime moves the input clock forward. Call before the tick reads input.
func (in *HoldInput) SetTime(now float64) {
	in.now = now
}

// EndTick forgets one-shot presses once the tick has seen them.
func (in *HoldInput) EndTick() {
	clear(in.pressed)
}

func (in *HoldInput) IsKeyHeld(key interfaces.Key) bool {
	t, ok := in.lastSeen[key]
	return ok && in.now-t <= in.window
}

func (in *HoldInput) WasKeyPressed(key interfaces.Key) bool {
	return in.pressed[key]
}
