package entity

import (
	"testing"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/types"

	"github.com/stretchr/testify/assert"
)

func TestECS_PendingRemovalsDrainOnFlush(t *testing.T) {
	ecs := NewECS()
	a, b := ecs.NewEntity(), ecs.NewEntity()
	ecs.Positions[a] = &component.Position{}
	ecs.Positions[b] = &component.Position{}

	ecs.MarkForRemoval(a)
	ecs.MarkForRemoval(a)
	assert.Equal(t, 1, ecs.PendingRemovals())
	assert.False(t, ecs.IsAlive(a))

	var removed []types.EntityID
	ecs.Flush(func(id types.EntityID) { removed = append(removed, id) })

	assert.Equal(t, []types.EntityID{a}, removed)
	assert.Zero(t, ecs.PendingRemovals())
	assert.True(t, ecs.IsAlive(b))
}
