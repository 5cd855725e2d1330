package system

import (
	"testing"

	"go-space-shooter/internal/component"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollision_OverlapHitsOnce(t *testing.T) {
	w := newWorld(t, nil)
	enemy := w.spawnEnemy(t, "RECYCLER", 0, 100)
	proj := w.spawnBullet(t, "ZERO", component.FactionPlayer, 0, 100, component.Up)

	w.collisions.Update(0)
	w.collisions.Update(0)

	assert.Equal(t, 9, w.hp(enemy))
	assert.False(t, w.ecs.IsAlive(proj))

	w.flush()
	w.collisions.Update(0)
	assert.Equal(t, 9, w.hp(enemy))
}

func TestCollision_HitOncePerOverlapOverManyTicks(t *testing.T) {
	w := newWorld(t, nil)
	enemy := w.spawnEnemy(t, "RECYCLER", 0, 100)
	w.spawnBullet(t, "ZERO", component.FactionPlayer, 0, 100, component.Up)

	for i := 0; i < 5; i++ {
		w.tick(0.01)
	}

	assert.Equal(t, 9, w.hp(enemy))
}

func TestCollision_PlayerRammedByEnemy(t *testing.T) {
	w := newWorld(t, nil)
	player := w.spawnPlayer()
	w.spawnEnemy(t, "DIVER", 4, -128)

	w.collisions.Update(0)
	w.flush()

	assert.True(t, w.match.IsOver())
	assert.NotContains(t, w.ecs.Ships, player)
}

func TestCollision_EnemiesIgnoreEachOther(t *testing.T) {
	w := newWorld(t, nil)
	a := w.spawnEnemy(t, "DIVER", 0, 50)
	b := w.spawnEnemy(t, "DIVER", 3, 52)
	require.NotEmpty(t, w.space.Overlaps())

	w.collisions.Update(0)

	assert.Equal(t, 2, w.hp(a))
	assert.Equal(t, 2, w.hp(b))
	assert.False(t, w.match.IsOver())
}

func TestCollision_ProjectilesIgnoreEachOther(t *testing.T) {
	w := newWorld(t, nil)
	a := w.spawnBullet(t, "ZERO", component.FactionPlayer, 0, 0, component.Up)
	b := w.spawnBullet(t, "ZERO", component.FactionEnemy, 0, 0, component.Down)

	w.collisions.Update(0)

	assert.True(t, w.ecs.IsAlive(a))
	assert.True(t, w.ecs.IsAlive(b))
}

func TestCollision_BulletInsideHullHits(t *testing.T) {
	w := newWorld(t, nil)
	enemy := w.spawnEnemy(t, "RECYCLER", 0, 100)
	proj := w.spawnBullet(t, "ZERO", component.FactionPlayer, 0, 100, component.Up)
	require.NotEmpty(t, w.space.Overlaps(), "bullet lies wholly inside the hull")

	w.collisions.Update(0)

	assert.Equal(t, 9, w.hp(enemy))
	assert.False(t, w.ecs.IsAlive(proj))
}

func TestCollision_RecycledEnemyIgnoresRestOfTick(t *testing.T) {
	w := newWorld(t, nil)
	enemy := w.spawnEnemy(t, "RECYCLER", 0, 0)
	w.ecs.Ships[enemy].HitPoints = 1
	first := w.spawnBullet(t, "ZERO", component.FactionPlayer, 0, -6, component.Up)
	second := w.spawnBullet(t, "ZERO", component.FactionPlayer, 8, 0, component.Up)
	require.Len(t, w.space.Overlaps(), 2)

	w.collisions.Update(0)

	assert.False(t, w.ecs.IsAlive(first))
	assert.True(t, w.ecs.IsAlive(second), "the enemy left before the second bullet was resolved")
	assert.Equal(t, 10, w.hp(enemy), "recycled with full hit points")
	assert.Equal(t, 150.0, w.pos(enemy).Y)
	assert.Equal(t, 25, w.match.Score())
}
