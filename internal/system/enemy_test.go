package system

import (
	"math"
	"testing"

	"go-space-shooter/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnemy_DownScreen(t *testing.T) {
	w := newWorld(t, nil)
	id := w.spawnEnemy(t, "DIVER", 25, 100)

	w.tick(0.5)

	assert.Equal(t, 25.0, w.pos(id).X)
	assert.InDelta(t, 85.0, w.pos(id).Y, 1e-9)
}

func TestEnemy_AcrossScreenWeavesAndStepsDown(t *testing.T) {
	w := newWorld(t, nil)
	id := w.spawnEnemy(t, "WEAVER", 0, 100)

	steps := []struct {
		now   float64
		wantY float64
	}{
		{1.0, 100}, // первый отсчёт только запоминается
		{1.5, 100}, // sin растёт
		{2.0, 90},  // разворот: sin начал убывать
		{2.5, 90},
		{5.0, 90},
		{5.5, 80}, // снова растёт
	}
	for _, s := range steps {
		w.clock.now = s.now
		w.enemies.Update(0)

		assert.InDelta(t, 50*math.Sin(s.now), w.pos(id).X, 1e-9, "t=%v", s.now)
		assert.Equal(t, s.wantY, w.pos(id).Y, "t=%v", s.now)
	}
}

func TestEnemy_AcrossScreenStepsOncePerReversal(t *testing.T) {
	w := newWorld(t, nil)
	id := w.spawnEnemy(t, "WEAVER", 0, 100)

	// sin(t) разворачивается в π/2 + kπ; за [0, 10] это 3 раза
	for i := 0; i <= 1000; i++ {
		w.clock.now = float64(i) * 0.01
		w.enemies.Update(0.01)
	}

	assert.Equal(t, 70.0, w.pos(id).Y)
}

func TestEnemy_TowardPlayerHomesWhilePlayerIsBelow(t *testing.T) {
	w := newWorld(t, nil)
	w.spawnPlayer() // (0, -130)
	id := w.spawnEnemy(t, "HUNTER", 30, 0)

	w.clock.now = 1
	w.enemies.Update(1)

	dist := math.Hypot(30, 130)
	assert.InDelta(t, 30-30*20/dist, w.pos(id).X, 1e-9)
	assert.InDelta(t, -130*20/dist-5, w.pos(id).Y, 1e-9)
}

func TestEnemy_TowardPlayerOnlyAdvancesOncePastPlayer(t *testing.T) {
	w := newWorld(t, nil)
	w.spawnPlayer()
	id := w.spawnEnemy(t, "HUNTER", 100, -140)

	w.clock.now = 1
	w.enemies.Update(1)

	assert.Equal(t, 100.0, w.pos(id).X)
	assert.Equal(t, -145.0, w.pos(id).Y)
}

func TestEnemy_FiresOnRandomTimer(t *testing.T) {
	w := newWorld(t, nil)
	id := w.spawnEnemy(t, "DIVER", 0, 100)
	require.Equal(t, 1.0, w.ecs.Enemies[id].NextFireAttempt)

	w.clock.now = 0.5
	w.enemies.Update(0)
	assert.Empty(t, w.ecs.Projectiles)

	w.clock.now = 1.0
	w.enemies.Update(0)
	require.Len(t, w.ecs.Projectiles, 1)
	assert.Equal(t, 2.0, w.ecs.Enemies[id].NextFireAttempt)

	for projID, proj := range w.ecs.Projectiles {
		assert.False(t, proj.FiredByPlayer())
		assert.Equal(t, 90.0, w.pos(projID).Y, "spawned below the enemy")
	}
}

func TestEnemy_DefeatDestroyAwardsScoreOnce(t *testing.T) {
	w := newWorld(t, nil)
	awards := 0
	w.events.Subscribe(event.ScoreAwarded, event.ListenerFunc(func(event.Event) { awards++ }))
	id := w.spawnEnemy(t, "DIVER", 0, 100)

	w.combat.TakeDamage(id, 2)
	w.combat.TakeDamage(id, 2)
	w.flush()

	assert.Equal(t, 10, w.match.Score())
	assert.Equal(t, 1, awards)
	assert.NotContains(t, w.ecs.Enemies, id)
	assert.Zero(t, w.space.Len())
}

func TestEnemy_RecycleOnDefeat(t *testing.T) {
	w := newWorld(t, nil)
	id := w.spawnEnemy(t, "RECYCLER", 0, 0)

	w.combat.TakeDamage(id, 10)

	require.True(t, w.ecs.IsAlive(id))
	assert.Equal(t, 25, w.match.Score())
	assert.Equal(t, 10, w.hp(id))
	assert.Equal(t, 150.0, w.pos(id).Y)
	assert.GreaterOrEqual(t, w.pos(id).X, -200.0)
	assert.LessOrEqual(t, w.pos(id).X, 200.0)
	ship := w.ecs.Ships[id]
	assert.False(t, ship.Destroyed)
	assert.GreaterOrEqual(t, ship.MoveSpeed, 20.0)
	assert.LessOrEqual(t, ship.MoveSpeed, 40.0)

	// новый цикл: ещё одно поражение, ещё одна награда
	w.combat.TakeDamage(id, 4)
	assert.Equal(t, 25, w.match.Score())
	w.combat.TakeDamage(id, 6)
	assert.Equal(t, 50, w.match.Score())
	assert.Equal(t, 2, w.ecs.Enemies[id].Defeats)
	assert.Equal(t, 2, w.presenter.count(w.presenter.sounds, "boom"))
}

func TestEnemy_ExitRecyclesWithoutScore(t *testing.T) {
	w := newWorld(t, nil)
	recycled := 0
	w.events.Subscribe(event.EnemyRecycled, event.ListenerFunc(func(e event.Event) {
		recycled++
		assert.False(t, e.Data.(event.RecycledData).Defeated)
	}))
	id := w.spawnEnemy(t, "RECYCLER", 0, -149)
	w.combat.TakeDamage(id, 3)

	w.tick(0.1)

	assert.True(t, w.ecs.IsAlive(id))
	assert.Equal(t, 150.0, w.pos(id).Y)
	assert.Equal(t, 10, w.hp(id))
	assert.Zero(t, w.match.Score())
	assert.Equal(t, 1, recycled)
}

func TestEnemy_ExitDestroyWithoutScore(t *testing.T) {
	w := newWorld(t, nil)
	id := w.spawnEnemy(t, "DIVER", 0, -149)

	w.tick(0.1)

	assert.NotContains(t, w.ecs.Enemies, id)
	assert.Zero(t, w.match.Score())
	assert.Empty(t, w.presenter.sounds)
	assert.Empty(t, w.presenter.effects)
}

func TestEnemy_SpawnUnknownArchetype(t *testing.T) {
	w := newWorld(t, nil)
	_, err := w.enemies.Spawn("NOPE", w.pos(w.spawnPlayer()))
	assert.Error(t, err)
}
