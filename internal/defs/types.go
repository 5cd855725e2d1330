// internal/defs/types.go
package defs

import "fmt"

// MovementType selects the enemy motion strategy. It is fixed for the
// lifetime of the ship.
type MovementType string

const (
	MoveDownScreen   MovementType = "DOWN_SCREEN"
	MoveAcrossScreen MovementType = "ACROSS_SCREEN"
	MoveTowardPlayer MovementType = "TOWARD_PLAYER"
)

// DefeatPolicy - что происходит с врагом, когда его здоровье падает до нуля.
type DefeatPolicy string

const (
	DefeatDestroy      DefeatPolicy = "DESTROY"
	DefeatRecycleAtTop DefeatPolicy = "RECYCLE_AT_TOP"
)

// ExitPolicy - что происходит с врагом, ушедшим за нижнюю границу экрана.
type ExitPolicy string

const (
	ExitDestroy      ExitPolicy = "DESTROY"
	ExitRecycleAtTop ExitPolicy = "RECYCLE_AT_TOP"
)

func (m *MovementType) UnmarshalText(b []byte) error {
	switch v := MovementType(b); v {
	case MoveDownScreen, MoveAcrossScreen, MoveTowardPlayer:
		*m = v
		return nil
	}
	return fmt.Errorf("unknown movement type %q", string(b))
}

func (p *DefeatPolicy) UnmarshalText(b []byte) error {
	switch v := DefeatPolicy(b); v {
	case DefeatDestroy, DefeatRecycleAtTop:
		*p = v
		return nil
	}
	return fmt.Errorf("unknown defeat policy %q", string(b))
}

func (p *ExitPolicy) UnmarshalText(b []byte) error {
	switch v := ExitPolicy(b); v {
	case ExitDestroy, ExitRecycleAtTop:
		*p = v
		return nil
	}
	return fmt.Errorf("unknown exit policy %q", string(b))
}
