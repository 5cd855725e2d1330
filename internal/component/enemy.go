package component

import "go-space-shooter/internal/defs"

// Enemy представляет вражеский корабль.
type Enemy struct {
	DefID           string
	Movement        defs.MovementType
	ScoreValue      int
	FireIntervalMin float64
	FireIntervalMax float64
	NextFireAttempt float64
	OnDefeat        defs.DefeatPolicy
	OnExit          defs.ExitPolicy
	BottomBound     float64 // 0 - нижняя граница матча

	// ACROSS_SCREEN
	Offset    float64
	Amplitude float64
	StepDown  float64
	LastSine  float64
	LastSign  int
	HasSample bool

	// TOWARD_PLAYER
	AdvanceSpeed float64

	SpeedMin, SpeedMax float64
	Defeats            int
}
