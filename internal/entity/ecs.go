// internal/entity/ecs.go
package entity

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/types"
)

// ECS stores every component by entity ID. Removal is deferred: a marked
// entity is tombstoned immediately and deleted by Flush at the end of a tick.
type ECS struct {
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Ships         map[types.EntityID]*component.Ship
	Weapons       map[types.EntityID]*component.Weapon
	Players       map[types.EntityID]*component.Player
	Enemies       map[types.EntityID]*component.Enemy
	Projectiles   map[types.EntityID]*component.Projectile
	Renderables   map[types.EntityID]*component.Renderable
	DamageFlashes map[types.EntityID]*component.DamageFlash
	Effects       map[types.EntityID]*component.Effect

	pending map[types.EntityID]struct{}
	order   []types.EntityID
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Ships:         make(map[types.EntityID]*component.Ship),
		Weapons:       make(map[types.EntityID]*component.Weapon),
		Players:       make(map[types.EntityID]*component.Player),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		Effects:       make(map[types.EntityID]*component.Effect),
		pending:       make(map[types.EntityID]struct{}),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// MarkForRemoval tombstones the entity. It reports false if the entity was
// already marked.
func (ecs *ECS) MarkForRemoval(id types.EntityID) bool {
	if _, ok := ecs.pending[id]; ok {
		return false
	}
	ecs.pending[id] = struct{}{}
	ecs.order = append(ecs.order, id)
	return true
}

// IsAlive reports whether the entity has a position and is not tombstoned.
func (ecs *ECS) IsAlive(id types.EntityID) bool {
	if _, dead := ecs.pending[id]; dead {
		return false
	}
	_, ok := ecs.Positions[id]
	return ok
}

// PendingRemovals returns the number of tombstoned entities.
func (ecs *ECS) PendingRemovals() int {
	return len(ecs.pending)
}

// Flush deletes every tombstoned entity in marking order. onRemove runs
// before the components are deleted, so hooks can still inspect them.
func (ecs *ECS) Flush(onRemove func(id types.EntityID)) {
	// hooks may mark more entities; keep draining until the queue is empty
	for len(ecs.order) > 0 {
		batch := ecs.order
		ecs.order = nil
		for _, id := range batch {
			if onRemove != nil {
				onRemove(id)
			}
			ecs.delete(id)
			delete(ecs.pending, id)
		}
	}
}

func (ecs *ECS) delete(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Ships, id)
	delete(ecs.Weapons, id)
	delete(ecs.Players, id)
	delete(ecs.Enemies, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Renderables, id)
	delete(ecs.DamageFlashes, id)
	delete(ecs.Effects, id)
}

// PlayerID returns the player entity, if one is alive.
func (ecs *ECS) PlayerID() (types.EntityID, bool) {
	for id := range ecs.Players {
		if ecs.IsAlive(id) {
			return id, true
		}
	}
	return 0, false
}
