// internal/component/player.go
package component

// Player marks the single player ship of a match.
type Player struct {
	MaxRange float64 // горизонтальная граница движения
}
