// internal/interfaces/collaborators.go
package interfaces

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/types"
)

//go:generate go tool mockgen -destination=./mocks/collaborators_mock.go -package=mocks . Input,Presenter

// Key - логическая клавиша, не зависящая от фронтенда.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyFire
	KeyReset
	KeyPause
)

// Input polls the player's controls.
type Input interface {
	IsKeyHeld(key Key) bool
	WasKeyPressed(key Key) bool
}

// ScoreDisplay shows the score/hit-point text.
type ScoreDisplay interface {
	UpdateScoreDisplay(text string)
}

// Presenter receives the audio-visual side effects of the simulation.
type Presenter interface {
	ScoreDisplay
	PlaySound(clipID string, at component.Position)
	SpawnEffect(effectID string, at component.Position)
}

// Clock supplies simulation time in seconds.
type Clock interface {
	Now() float64
	DeltaTime() float64
}

// BodyKind tags a spatial body.
type BodyKind uint8

const (
	BodyShip BodyKind = iota + 1
	BodyProjectile
)

// Spatial is the collision substrate.
type Spatial interface {
	Add(id types.EntityID, kind BodyKind, at component.Position, width, height float64)
	Move(id types.EntityID, at component.Position)
	Remove(id types.EntityID)
	// Sweep returns the ships touched by a box of the given width travelling
	// from one point to another, nearest to from first.
	Sweep(from, to component.Position, width float64) []types.EntityID
	// Overlaps returns every ship/ship and ship/projectile pair currently
	// overlapping.
	Overlaps() []types.Pair
	// Overlapping reports whether the two bodies overlap right now.
	Overlapping(a, b types.EntityID) bool
}
