// internal/audio/device/ebiten.go
package device

import (
	"log/slog"

	"go-space-shooter/internal/audio"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// EbitenOutput plays bank clips through the ebiten audio context.
type EbitenOutput struct {
	context *ebaudio.Context
	pcm     map[string][]byte
	warned  map[string]bool
}

// NewEbitenOutput рендерит все клипы банка в PCM один раз: ebiten ждёт
// 16-битный стерео поток с частотой контекста.
func NewEbitenOutput(bank *audio.Bank) *EbitenOutput {
	o := &EbitenOutput{
		context: ebaudio.NewContext(int(bank.Format().SampleRate)),
		pcm:     make(map[string][]byte),
		warned:  make(map[string]bool),
	}
	for _, id := range bank.IDs() {
		o.pcm[id], _ = bank.PCM(id)
	}
	return o
}

func (o *EbitenOutput) Play(clipID string) {
	data, ok := o.pcm[clipID]
	if !ok {
		if !o.warned[clipID] {
			o.warned[clipID] = true
			slog.Warn("unknown sound clip", "clip", clipID)
		}
		return
	}
	o.context.NewPlayerFromBytes(data).Play()
}
