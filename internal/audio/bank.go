// internal/audio/bank.go
package audio

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Clip IDs referenced by the definition files.
const (
	ClipLaser        = "laser"
	ClipEnemyShot    = "enemy_shot"
	ClipExplosion    = "explosion"
	ClipExplosionBig = "explosion_big"
)

// Bank держит заранее синтезированные клипы. Клипы рендерятся один раз при
// создании, дальше проигрываются из буфера.
type Bank struct {
	format beep.Format
	clips  map[string]*beep.Buffer
}

// NewBank synthesizes every clip at the given sample rate.
func NewBank(sampleRate int) (*Bank, error) {
	format := beep.Format{
		SampleRate:  beep.SampleRate(sampleRate),
		NumChannels: 2,
		Precision:   2,
	}
	b := &Bank{format: format, clips: make(map[string]*beep.Buffer)}

	recipes := map[string]func() (beep.Streamer, error){
		ClipLaser: func() (beep.Streamer, error) {
			return sweep(format.SampleRate, 1400, 500, 90*time.Millisecond, 0.35), nil
		},
		ClipEnemyShot: func() (beep.Streamer, error) {
			tone, err := generators.SquareTone(format.SampleRate, 330)
			if err != nil {
				return nil, err
			}
			return decay(beep.Take(format.SampleRate.N(70*time.Millisecond), tone), format.SampleRate, 70*time.Millisecond, 0.15), nil
		},
		ClipExplosion: func() (beep.Streamer, error) {
			return decay(noise(1), format.SampleRate, 350*time.Millisecond, 0.5), nil
		},
		ClipExplosionBig: func() (beep.Streamer, error) {
			rumble, err := generators.SineTone(format.SampleRate, 55)
			if err != nil {
				return nil, err
			}
			d := 900 * time.Millisecond
			mixed := beep.Mix(
				decay(noise(2), format.SampleRate, d, 0.5),
				decay(beep.Take(format.SampleRate.N(d), rumble), format.SampleRate, d, 0.4),
			)
			return beep.Take(format.SampleRate.N(d), mixed), nil
		},
	}

	for id, build := range recipes {
		s, err := build()
		if err != nil {
			return nil, fmt.Errorf("failed to synthesize clip %q: %w", id, err)
		}
		buf := beep.NewBuffer(format)
		buf.Append(s)
		b.clips[id] = buf
	}
	return b, nil
}

func (b *Bank) Format() beep.Format { return b.format }

// IDs returns the clip IDs in sorted order.
func (b *Bank) IDs() []string {
	ids := make([]string, 0, len(b.clips))
	for id := range b.clips {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Streamer returns a fresh streamer over the clip.
func (b *Bank) Streamer(clipID string) (beep.StreamSeeker, bool) {
	buf, ok := b.clips[clipID]
	if !ok {
		return nil, false
	}
	return buf.Streamer(0, buf.Len()), true
}

// PCM renders the clip as interleaved 16-bit little-endian stereo.
func (b *Bank) PCM(clipID string) ([]byte, bool) {
	s, ok := b.Streamer(clipID)
	if !ok {
		return nil, false
	}
	out := make([]byte, 0, s.Len()*b.format.Width())
	samples := make([][2]float64, 512)
	frame := make([]byte, b.format.Width())
	for {
		n, ok := s.Stream(samples)
		for _, sample := range samples[:n] {
			b.format.EncodeSigned(frame, sample)
			out = append(out, frame...)
		}
		if !ok {
			break
		}
	}
	return out, true
}

// sweep - синус с линейно падающей частотой, затухающий к концу.
func sweep(rate beep.SampleRate, from, to float64, d time.Duration, volume float64) beep.Streamer {
	total := rate.N(d)
	pos, phase := 0, 0.0
	tone := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := min(len(samples), total-pos)
		for i := range samples[:n] {
			t := float64(pos) / float64(total)
			v := math.Sin(2 * math.Pi * phase)
			samples[i][0], samples[i][1] = v, v
			phase += (from + (to-from)*t) / float64(rate)
			phase -= math.Floor(phase)
			pos++
		}
		return n, true
	})
	return decay(tone, rate, d, volume)
}

// noise - белый шум с фиксированным сидом, чтобы клип звучал одинаково
// от запуска к запуску.
func noise(seed int64) beep.Streamer {
	rng := rand.New(rand.NewSource(seed))
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := rng.Float64()*2 - 1
			samples[i][0], samples[i][1] = v, v
		}
		return len(samples), true
	})
}

// decay обрезает поток до d и гасит его линейно до нуля.
func decay(s beep.Streamer, rate beep.SampleRate, d time.Duration, volume float64) beep.Streamer {
	total := rate.N(d)
	pos := 0
	shaped := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		if rest := total - pos; len(samples) > rest {
			samples = samples[:rest]
		}
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			k := 1 - float64(pos)/float64(total)
			samples[i][0] *= k
			samples[i][1] *= k
			pos++
		}
		return n, ok
	})
	return &effects.Volume{Streamer: shaped, Base: 2, Volume: math.Log2(volume)}
}
