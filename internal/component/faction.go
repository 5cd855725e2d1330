// component/faction.go
package component

// Faction is the allegiance tag carried by ships and projectiles. Hits are
// filtered by comparing tags by value.
type Faction uint8

const (
	FactionNone Faction = iota
	FactionPlayer
	FactionEnemy
)

func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionEnemy:
		return "enemy"
	default:
		return "none"
	}
}
