package component

import "image/color"

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer    float64 // Сколько времени осталось
	Duration float64
}

// Effect is a particle effect entity. It removes itself once Timer reaches
// Duration.
type Effect struct {
	DefID     string
	Timer     float64
	Duration  float64
	MaxRadius float64
	Color     color.RGBA
	Glyph     rune
}
