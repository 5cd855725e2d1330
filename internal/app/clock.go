// internal/app/clock.go
package app

// SimClock - время симуляции. Идёт только пока матч обновляется, поэтому
// пауза не сдвигает таймеры оружия.
type SimClock struct {
	now float64
	dt  float64
}

func (c *SimClock) Now() float64       { return c.now }
func (c *SimClock) DeltaTime() float64 { return c.dt }

// Advance moves the clock forward. Negative steps are ignored.
func (c *SimClock) Advance(deltaTime float64) {
	if deltaTime < 0 {
		deltaTime = 0
	}
	c.dt = deltaTime
	c.now += deltaTime
}
