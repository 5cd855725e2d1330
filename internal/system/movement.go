// internal/system/movement.go
package system

import (
	"math"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/utils"
)

// moveStrategy сдвигает врага за один тик. player - позиция игрока или nil,
// если игрока нет.
type moveStrategy func(e *component.Enemy, ship *component.Ship, pos *component.Position, player *component.Position, now, deltaTime float64)

var strategies = map[defs.MovementType]moveStrategy{
	defs.MoveDownScreen:   moveDownScreen,
	defs.MoveAcrossScreen: moveAcrossScreen,
	defs.MoveTowardPlayer: moveTowardPlayer,
}

func moveDownScreen(_ *component.Enemy, ship *component.Ship, pos *component.Position, _ *component.Position, _, deltaTime float64) {
	pos.Y -= ship.MoveSpeed * deltaTime
}

// moveAcrossScreen: x = offset + amplitude*sin(now*speed). Каждый раз, когда
// меняется знак разности соседних отсчётов синуса, враг опускается на StepDown.
func moveAcrossScreen(e *component.Enemy, ship *component.Ship, pos *component.Position, _ *component.Position, now, _ float64) {
	sample := math.Sin(now * ship.MoveSpeed)
	pos.X = e.Offset + e.Amplitude*sample

	if e.HasSample {
		if sign := utils.Sign(sample - e.LastSine); sign != 0 {
			if e.LastSign != 0 && sign != e.LastSign {
				pos.Y -= e.StepDown
			}
			e.LastSign = sign
		}
	}
	e.LastSine = sample
	e.HasSample = true
}

func moveTowardPlayer(e *component.Enemy, ship *component.Ship, pos *component.Position, player *component.Position, _, deltaTime float64) {
	if player != nil && player.Y < pos.Y {
		delta := player.Sub(*pos)
		step := ship.MoveSpeed * deltaTime
		if dist := delta.Len(); dist <= step {
			*pos = *player
		} else {
			*pos = pos.Add(delta.Scale(step / dist))
		}
	}
	pos.Y -= e.AdvanceSpeed * deltaTime
}
