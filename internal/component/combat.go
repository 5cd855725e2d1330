package component

// Ship - общий компонент боевого корабля: игрока или врага.
type Ship struct {
	DefID             string
	Faction           Faction
	HitPoints         int
	OriginalHitPoints int
	MoveSpeed         float64
	Width, Height     float64
	DestroyedSound    string
	DestroyedEffect   string
	// Destroyed latches once the destruction sequence has run. Recycled
	// enemies clear it when their hit-points are restored.
	Destroyed bool
}

// Weapon - оружие с ограничением скорострельности.
type Weapon struct {
	BulletID     string
	RateOfFire   float64 // минимальный интервал между выстрелами, сек
	NextFireTime float64
	MuzzleOffset float64
	Facing       Position // направление "от корабля"
	// Misconfigured is set after a missing bullet definition was logged.
	Misconfigured bool
}
