// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 400
	ScreenHeight = 300
	// Мировые координаты: центр экрана в нуле, 1 единица = 1 пиксель.
	HalfWidth  = ScreenWidth / 2.0
	HalfHeight = ScreenHeight / 2.0

	MaxDeltaTime = 0.06

	MuzzleOffset          = 10.0 // снаряд появляется чуть впереди корабля
	DefaultBulletLifetime = 10.0 // страховка для снарядов с нулевой скоростью
	DamageFlashDuration   = 0.12
	PhysicsCellSize       = 16

	DefaultLevel = "ENDLESS"

	AudioSampleRate = 44100

	TermTickRate   = 30   // кадров в секунду в терминале
	TermHoldWindow = 0.12 // сек, сколько клавиша считается зажатой после события
)

var (
	BackgroundColor = color.RGBA{8, 8, 20, 255}
	TextColor       = color.RGBA{240, 240, 240, 255}
	HeartColor      = color.RGBA{230, 40, 60, 255}
	GameOverColor   = color.RGBA{230, 40, 60, 255}
	FlashColor      = color.RGBA{255, 255, 255, 255}
	StarColor       = color.RGBA{200, 200, 220, 255}
	WaveTextColor   = color.RGBA{120, 170, 255, 255}

	// полупрозрачный, premultiplied
	PauseOverlayColor = color.RGBA{0, 0, 0, 128}

	HealthIndicatorFullColor     = color.RGBA{60, 200, 90, 255}
	HealthIndicatorWarningColor  = color.RGBA{230, 200, 40, 255}
	HealthIndicatorCriticalColor = color.RGBA{230, 40, 60, 255}
	HealthIndicatorEmptyColor    = color.RGBA{40, 40, 50, 255}
	UIBorderColor                = color.RGBA{200, 200, 210, 255}
)
