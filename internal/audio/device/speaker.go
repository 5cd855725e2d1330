// internal/audio/device/speaker.go
package device

import (
	"log/slog"
	"sync"
	"time"

	"go-space-shooter/internal/audio"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SpeakerOutput plays bank clips through the beep speaker. Used by the
// terminal frontend, which has no ebiten audio context.
type SpeakerOutput struct {
	mu     sync.Mutex
	bank   *audio.Bank
	mixer  *beep.Mixer
	warned map[string]bool
}

func NewSpeakerOutput(bank *audio.Bank) (*SpeakerOutput, error) {
	rate := bank.Format().SampleRate
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, err
	}
	o := &SpeakerOutput{bank: bank, mixer: &beep.Mixer{}, warned: make(map[string]bool)}
	speaker.Play(o.mixer)
	return o, nil
}

func (o *SpeakerOutput) Play(clipID string) {
	s, ok := o.bank.Streamer(clipID)
	if !ok {
		o.mu.Lock()
		if !o.warned[clipID] {
			o.warned[clipID] = true
			slog.Warn("unknown sound clip", "clip", clipID)
		}
		o.mu.Unlock()
		return
	}
	speaker.Lock()
	o.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback.
func (o *SpeakerOutput) Close() {
	speaker.Lock()
	o.mixer.Clear()
	speaker.Unlock()
}
