package physics

import (
	"testing"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/interfaces"
	"go-space-shooter/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactTracker_ReportsOnlyOnBegin(t *testing.T) {
	c := NewContactTracker()
	p := types.NewPair(7, 3)

	assert.True(t, c.Begin(p))
	assert.False(t, c.Begin(types.NewPair(3, 7)), "same pair, same tick")
	c.EndTick()

	assert.False(t, c.Begin(p), "overlap persisted into the next tick")
	c.EndTick()

	// not observed for a tick: the overlap ended
	c.EndTick()
	assert.True(t, c.Begin(p), "a new overlap event")
}

func TestContactTracker_Forget(t *testing.T) {
	c := NewContactTracker()
	p := types.NewPair(1, 2)
	c.Begin(p)
	c.EndTick()

	c.Forget(2)

	assert.True(t, c.Begin(p), "forgotten pair starts a new overlap")
}

func TestSpace_SweepFindsShipsAlongPathNearestFirst(t *testing.T) {
	s := NewSpace(200, 150, 16)
	s.Add(1, interfaces.BodyShip, component.Position{X: 0, Y: 60}, 16, 12)
	s.Add(2, interfaces.BodyShip, component.Position{X: 0, Y: 20}, 16, 12)
	s.Add(3, interfaces.BodyShip, component.Position{X: 100, Y: 40}, 16, 12)
	s.Add(4, interfaces.BodyProjectile, component.Position{X: 0, Y: 40}, 2, 6)

	hits := s.Sweep(component.Position{X: 0, Y: 0}, component.Position{X: 0, Y: 80}, 2)

	assert.Equal(t, []types.EntityID{2, 1}, hits)
}

func TestSpace_SweepMissesWhenPathIsClear(t *testing.T) {
	s := NewSpace(200, 150, 16)
	s.Add(1, interfaces.BodyShip, component.Position{X: 0, Y: 100}, 16, 12)

	hits := s.Sweep(component.Position{X: 0, Y: 0}, component.Position{X: 0, Y: 40}, 2)

	assert.Empty(t, hits)
	assert.Equal(t, 1, s.Len(), "the sweep box must not stay in the space")
}

func TestSpace_OverlapsAndRemoval(t *testing.T) {
	s := NewSpace(200, 150, 16)
	s.Add(1, interfaces.BodyShip, component.Position{X: 0, Y: 0}, 16, 12)
	s.Add(2, interfaces.BodyProjectile, component.Position{X: 2, Y: 1}, 2, 6)
	s.Add(3, interfaces.BodyProjectile, component.Position{X: 3, Y: 1}, 2, 6)
	s.Add(4, interfaces.BodyShip, component.Position{X: -120, Y: 80}, 16, 12)

	pairs := s.Overlaps()
	assert.Equal(t, []types.Pair{{A: 1, B: 2}, {A: 1, B: 3}}, pairs)

	s.Remove(2)
	s.Move(3, component.Position{X: 150, Y: -100})
	assert.Empty(t, s.Overlaps())

	s.Move(4, component.Position{X: 5, Y: 3})
	assert.Equal(t, []types.Pair{{A: 1, B: 4}}, s.Overlaps())
}

func TestSpace_SweepInsideShip(t *testing.T) {
	s := NewSpace(200, 150, 16)
	s.Add(1, interfaces.BodyShip, component.Position{X: 10, Y: 10}, 16, 12)

	hits := s.Sweep(component.Position{X: 10, Y: 9}, component.Position{X: 10, Y: 11}, 2)

	assert.Equal(t, []types.EntityID{1}, hits)
}

func TestSpace_OverlapsContainedBody(t *testing.T) {
	s := NewSpace(200, 150, 16)
	s.Add(1, interfaces.BodyShip, component.Position{X: 0, Y: 100}, 16, 12)
	s.Add(2, interfaces.BodyProjectile, component.Position{X: 0, Y: 100}, 2, 2)

	assert.Equal(t, []types.Pair{{A: 1, B: 2}}, s.Overlaps())
}

func TestSpace_Overlapping(t *testing.T) {
	s := NewSpace(200, 150, 16)
	s.Add(1, interfaces.BodyShip, component.Position{X: 0, Y: 0}, 16, 12)
	s.Add(2, interfaces.BodyProjectile, component.Position{X: 8, Y: 0}, 2, 2)

	require.True(t, s.Overlapping(1, 2))
	assert.True(t, s.Overlapping(2, 1))

	s.Move(1, component.Position{X: 0, Y: 150})
	assert.False(t, s.Overlapping(1, 2))

	s.Move(2, component.Position{X: 9, Y: 150})
	assert.False(t, s.Overlapping(1, 2), "edges touching only")

	s.Remove(2)
	assert.False(t, s.Overlapping(1, 2))
}
