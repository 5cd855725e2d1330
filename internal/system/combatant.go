// internal/system/combatant.go
package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/types"
)

// Combatant - вариант корабля (игрок или враг). CombatSystem держит общую
// часть поведения, а вариант решает, какие снаряды его ранят и что
// происходит после уничтожения.
type Combatant interface {
	// Accepts reports whether a projectile fired by allegiance may damage
	// ships of this variant.
	Accepts(allegiance component.Faction) bool
	// OnDestroyed runs once per destruction, after the sound and the effect.
	OnDestroyed(id types.EntityID)
	// Update advances movement and firing of every ship of this variant.
	Update(deltaTime float64)
}
