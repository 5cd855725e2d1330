// internal/component/projectile.go
package component

// Projectile представляет летящий снаряд. Принадлежность задаётся при
// создании и больше не меняется.
type Projectile struct {
	DefID         string
	Direction     Position
	Speed         float64
	Damage        int
	MaxRange      float64
	MaxLifetime   float64
	Age           float64
	Width, Height float64

	allegiance Faction
}

// NewProjectile creates a projectile fired by the given faction.
func NewProjectile(allegiance Faction, direction Position, speed float64, damage int) *Projectile {
	return &Projectile{
		Direction:  direction.Normalize(),
		Speed:      speed,
		Damage:     damage,
		allegiance: allegiance,
	}
}

// Allegiance returns the faction that fired the projectile.
func (p *Projectile) Allegiance() Faction { return p.allegiance }

// FiredByPlayer reports whether the player fired the projectile.
func (p *Projectile) FiredByPlayer() bool { return p.allegiance == FactionPlayer }
