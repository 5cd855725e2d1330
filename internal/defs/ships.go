// internal/defs/ships.go
package defs

import "image/color"

// Visuals - параметры отрисовки. Glyph используется терминальным фронтендом.
type Visuals struct {
	Color color.RGBA `json:"color"`
	Glyph string     `json:"glyph"`
}

// ShipDefinition holds the static data shared by the player and enemy ships.
type ShipDefinition struct {
	ID              string  `json:"id"`
	HitPoints       int     `json:"hit_points"`
	MoveSpeed       float64 `json:"move_speed"`
	Width           float64 `json:"width"`
	Height          float64 `json:"height"`
	BulletID        string  `json:"bullet"`
	RateOfFire      float64 `json:"rate_of_fire"` // секунд между выстрелами
	DestroyedSound  string  `json:"destroyed_sound"`
	DestroyedEffect string  `json:"destroyed_effect"`
	Visuals         Visuals `json:"visuals"`
}

// PlayerDefinition describes the single player ship of a match.
type PlayerDefinition struct {
	ShipDefinition
	MaxRange float64 `json:"max_range"` // 0 - use the match half-width
	SpawnY   float64 `json:"spawn_y"`   // offset from the bottom bound
}

// EnemyArchetype describes one kind of enemy ship. Policies are per
// archetype, never toggled at runtime.
type EnemyArchetype struct {
	ShipDefinition
	Movement        MovementType `json:"movement"`
	ScoreValue      int          `json:"score_value"`
	FireIntervalMin float64      `json:"fire_interval_min"`
	FireIntervalMax float64      `json:"fire_interval_max"`
	OnDefeat        DefeatPolicy `json:"on_defeat"`
	OnExit          ExitPolicy   `json:"on_exit"`

	// ACROSS_SCREEN
	Amplitude float64 `json:"amplitude"`
	StepDown  float64 `json:"step_down"`

	// TOWARD_PLAYER
	AdvanceSpeed float64 `json:"advance_speed"`

	// Разброс скорости при повторном появлении сверху.
	SpeedMin float64 `json:"speed_min"`
	SpeedMax float64 `json:"speed_max"`

	// BottomBound overrides the match bottom edge when non-zero.
	BottomBound float64 `json:"bottom_bound,omitempty"`
}

// BulletDefinition is the projectile template a weapon fires.
type BulletDefinition struct {
	ID          string  `json:"id"`
	Speed       float64 `json:"speed"`
	Damage      int     `json:"damage"`
	MaxRange    float64 `json:"max_range"`    // 0 - only the screen bound applies
	MaxLifetime float64 `json:"max_lifetime"` // 0 - config.DefaultBulletLifetime
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	FireSound   string  `json:"fire_sound"`
	Visuals     Visuals `json:"visuals"`
}

// EffectDefinition describes a short-lived particle effect.
type EffectDefinition struct {
	ID        string  `json:"id"`
	Duration  float64 `json:"duration"`
	MaxRadius float64 `json:"max_radius"`
	Visuals   Visuals `json:"visuals"`
}

// WaveDefinition описывает одну волну врагов.
type WaveDefinition struct {
	Archetype     string  `json:"archetype"`
	Count         int     `json:"count"`
	SpawnInterval float64 `json:"spawn_interval"` // секунды
	Delay         float64 `json:"delay"`          // пауза перед волной
}

// LevelDefinition is an ordered list of waves.
type LevelDefinition struct {
	ID    string           `json:"id"`
	Waves []WaveDefinition `json:"waves"`
	Loop  bool             `json:"loop"`
}
