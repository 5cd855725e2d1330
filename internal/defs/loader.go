// internal/defs/loader.go
package defs

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
)

//go:embed data/*.json
var embedded embed.FS

var (
	ErrUnknownArchetype = errors.New("unknown enemy archetype")
	ErrUnknownBullet    = errors.New("unknown bullet definition")
	ErrUnknownEffect    = errors.New("unknown effect definition")
	ErrUnknownLevel     = errors.New("unknown level definition")
)

const (
	playerFile  = "player.json"
	enemiesFile = "enemies.json"
	bulletsFile = "bullets.json"
	effectsFile = "effects.json"
	levelsFile  = "levels.json"
)

// Library holds every definition of a match, keyed by ID.
type Library struct {
	Player  PlayerDefinition
	Enemies map[string]EnemyArchetype
	Bullets map[string]BulletDefinition
	Effects map[string]EffectDefinition
	Levels  map[string]LevelDefinition
}

// Default loads the definitions compiled into the binary.
func Default() (*Library, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded definitions: %w", err)
	}
	return Load(sub)
}

// LoadDir reads the definition files from a directory on disk.
func LoadDir(dir string) (*Library, error) {
	return Load(os.DirFS(dir))
}

// Load reads all definition files from fsys.
func Load(fsys fs.FS) (*Library, error) {
	lib := &Library{}

	data, err := fs.ReadFile(fsys, playerFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read player definition file: %w", err)
	}
	if err := json.Unmarshal(data, &lib.Player); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player definition: %w", err)
	}

	enemies, err := loadList[EnemyArchetype](fsys, enemiesFile)
	if err != nil {
		return nil, err
	}
	lib.Enemies = make(map[string]EnemyArchetype, len(enemies))
	for _, def := range enemies {
		lib.Enemies[def.ID] = def
	}

	bullets, err := loadList[BulletDefinition](fsys, bulletsFile)
	if err != nil {
		return nil, err
	}
	lib.Bullets = make(map[string]BulletDefinition, len(bullets))
	for _, def := range bullets {
		lib.Bullets[def.ID] = def
	}

	effects, err := loadList[EffectDefinition](fsys, effectsFile)
	if err != nil {
		return nil, err
	}
	lib.Effects = make(map[string]EffectDefinition, len(effects))
	for _, def := range effects {
		lib.Effects[def.ID] = def
	}

	levels, err := loadList[LevelDefinition](fsys, levelsFile)
	if err != nil {
		return nil, err
	}
	lib.Levels = make(map[string]LevelDefinition, len(levels))
	for _, def := range levels {
		lib.Levels[def.ID] = def
	}

	slog.Debug("loaded definitions",
		"enemies", len(lib.Enemies),
		"bullets", len(lib.Bullets),
		"effects", len(lib.Effects),
		"levels", len(lib.Levels))
	return lib, nil
}

func loadList[T any](fsys fs.FS, name string) ([]T, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	var list []T
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", name, err)
	}
	return list, nil
}

// Enemy returns the archetype with the given ID.
func (l *Library) Enemy(id string) (EnemyArchetype, error) {
	def, ok := l.Enemies[id]
	if !ok {
		return EnemyArchetype{}, fmt.Errorf("%w: %q", ErrUnknownArchetype, id)
	}
	return def, nil
}

// Bullet returns the bullet template with the given ID.
func (l *Library) Bullet(id string) (BulletDefinition, error) {
	def, ok := l.Bullets[id]
	if !ok {
		return BulletDefinition{}, fmt.Errorf("%w: %q", ErrUnknownBullet, id)
	}
	return def, nil
}

// Effect returns the effect with the given ID.
func (l *Library) Effect(id string) (EffectDefinition, error) {
	def, ok := l.Effects[id]
	if !ok {
		return EffectDefinition{}, fmt.Errorf("%w: %q", ErrUnknownEffect, id)
	}
	return def, nil
}

// Level returns the level with the given ID.
func (l *Library) Level(id string) (LevelDefinition, error) {
	def, ok := l.Levels[id]
	if !ok {
		return LevelDefinition{}, fmt.Errorf("%w: %q", ErrUnknownLevel, id)
	}
	return def, nil
}

// Validate reports dangling references between definitions. A broken
// reference is not fatal: the affected weapon simply never fires.
func (l *Library) Validate() error {
	var errs []error
	check := func(owner, bulletID string) {
		if bulletID == "" {
			return
		}
		if _, err := l.Bullet(bulletID); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", owner, err))
		}
	}

	check(l.Player.ID, l.Player.BulletID)
	for id, def := range l.Enemies {
		check(id, def.BulletID)
		if def.FireIntervalMax < def.FireIntervalMin {
			errs = append(errs, fmt.Errorf("%s: fire_interval_max < fire_interval_min", id))
		}
	}
	for id, level := range l.Levels {
		for i, wave := range level.Waves {
			if _, err := l.Enemy(wave.Archetype); err != nil {
				errs = append(errs, fmt.Errorf("level %s wave %d: %w", id, i, err))
			}
		}
	}
	return errors.Join(errs...)
}
