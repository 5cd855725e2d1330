// internal/event/types.go
package event

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/types"
)

const (
	ProjectileFired EventType = "ProjectileFired" // снаряд выпущен
	ShipHit         EventType = "ShipHit"         // попадание засчитано
	ShipDestroyed   EventType = "ShipDestroyed"   // корабль уничтожен
	EnemyRecycled   EventType = "EnemyRecycled"   // враг вернулся наверх
	EnemyExited     EventType = "EnemyExited"     // враг ушёл за нижнюю границу
	ScoreAwarded    EventType = "ScoreAwarded"
	GameOver        EventType = "GameOver"
)

// FiredData is the payload of ProjectileFired.
type FiredData struct {
	Projectile types.EntityID
	Shooter    types.EntityID
	Allegiance component.Faction
}

// HitData is the payload of ShipHit.
type HitData struct {
	Target     types.EntityID
	Faction    component.Faction // фракция цели
	Projectile types.EntityID
	Damage     int
}

// DestroyedData is the payload of ShipDestroyed.
type DestroyedData struct {
	Ship     types.EntityID
	Faction  component.Faction
	Position component.Position
}

// RecycledData is the payload of EnemyRecycled.
type RecycledData struct {
	Enemy    types.EntityID
	Defeated bool // false - ушёл за нижнюю границу живым
}

// ExitedData is the payload of EnemyExited. Recycled tells whether the
// enemy went back to the top instead of being removed.
type ExitedData struct {
	Enemy    types.EntityID
	Recycled bool
}

// ScoreData is the payload of ScoreAwarded.
type ScoreData struct {
	Amount int
	Total  int
}
