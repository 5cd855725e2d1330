// internal/input/keyboard.go
package input

import (
	"go-space-shooter/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Bindings maps a logical key to the physical keys that trigger it.
type Bindings map[interfaces.Key][]ebiten.Key

// DefaultBindings: стрелки или A/D, пробел - огонь, Escape - новый матч, P - пауза.
func DefaultBindings() Bindings {
	return Bindings{
		interfaces.KeyLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
		interfaces.KeyRight: {ebiten.KeyArrowRight, ebiten.KeyD},
		interfaces.KeyFire:  {ebiten.KeySpace},
		interfaces.KeyReset: {ebiten.KeyEscape},
		interfaces.KeyPause: {ebiten.KeyP},
	}
}

// Keyboard reads the ebiten keyboard state.
type Keyboard struct {
	bindings Bindings
}

var _ interfaces.Input = (*Keyboard)(nil)

func NewKeyboard(bindings Bindings) *Keyboard {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &Keyboard{bindings: bindings}
}

func (k *Keyboard) IsKeyHeld(key interfaces.Key) bool {
	for _, physical := range k.bindings[key] {
		if ebiten.IsKeyPressed(physical) {
			return true
		}
	}
	return false
}

func (k *Keyboard) WasKeyPressed(key interfaces.Key) bool {
	for _, physical := range k.bindings[key] {
		if inpututil.IsKeyJustPressed(physical) {
			return true
		}
	}
	return false
}
