package audio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBank_SynthesizesEveryClip(t *testing.T) {
	b, err := NewBank(8000)
	require.NoError(t, err)

	assert.Equal(t, []string{ClipEnemyShot, ClipExplosion, ClipExplosionBig, ClipLaser}, b.IDs())
}

func TestBank_PCMIsSixteenBitStereo(t *testing.T) {
	b, err := NewBank(8000)
	require.NoError(t, err)

	tests := []struct {
		clip string
		d    time.Duration
	}{
		{ClipLaser, 90 * time.Millisecond},
		{ClipEnemyShot, 70 * time.Millisecond},
		{ClipExplosion, 350 * time.Millisecond},
		{ClipExplosionBig, 900 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.clip, func(t *testing.T) {
			pcm, ok := b.PCM(tt.clip)
			require.True(t, ok)

			frames := b.Format().SampleRate.N(tt.d)
			assert.Len(t, pcm, frames*4)
		})
	}
}

func TestBank_ClipFadesOut(t *testing.T) {
	b, err := NewBank(8000)
	require.NoError(t, err)

	s, ok := b.Streamer(ClipExplosion)
	require.True(t, ok)
	samples := make([][2]float64, s.Len())
	n, _ := s.Stream(samples)
	require.Equal(t, len(samples), n)

	peak := func(from, to int) float64 {
		m := 0.0
		for _, v := range samples[from:to] {
			if v[0] > m {
				m = v[0]
			} else if -v[0] > m {
				m = -v[0]
			}
		}
		return m
	}
	assert.Greater(t, peak(0, n/10), peak(n-n/10, n))
	assert.LessOrEqual(t, peak(0, n), 1.0)
}

func TestBank_UnknownClip(t *testing.T) {
	b, err := NewBank(8000)
	require.NoError(t, err)

	_, ok := b.PCM("nope")
	assert.False(t, ok)
	_, ok = b.Streamer("nope")
	assert.False(t, ok)
}
