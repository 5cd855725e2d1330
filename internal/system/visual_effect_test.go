package system

import (
	"testing"

	"go-space-shooter/internal/component"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisualEffect_ExpiresAfterDuration(t *testing.T) {
	w := newWorld(t, nil)
	effects := NewVisualEffectSystem(w.ecs, w.lib)
	id, err := effects.Spawn("SMALL", component.Position{X: 5, Y: 5})
	require.NoError(t, err)

	effects.Update(0.25)
	assert.InDelta(t, 0.5, Progress(w.ecs.Effects[id]), 1e-9)
	assert.True(t, w.ecs.IsAlive(id))

	effects.Update(0.25)
	w.flush()
	assert.NotContains(t, w.ecs.Effects, id)
}

func TestVisualEffect_UnknownEffect(t *testing.T) {
	w := newWorld(t, nil)
	effects := NewVisualEffectSystem(w.ecs, w.lib)

	_, err := effects.Spawn("NOPE", component.Position{})

	assert.Error(t, err)
}

func TestVisualEffect_DamageFlashFades(t *testing.T) {
	w := newWorld(t, nil)
	effects := NewVisualEffectSystem(w.ecs, w.lib)
	id := w.spawnEnemy(t, "RECYCLER", 0, 0)
	w.combat.TakeDamage(id, 1)
	require.Contains(t, w.ecs.DamageFlashes, id)

	effects.Update(1)

	assert.NotContains(t, w.ecs.DamageFlashes, id)
}
