package defs

import (
	"encoding/json"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_LoadsEmbeddedDefinitions(t *testing.T) {
	lib, err := Default()
	require.NoError(t, err)
	require.NoError(t, lib.Validate())

	assert.Equal(t, "PLAYER", lib.Player.ID)
	assert.Equal(t, 170.0, lib.Player.MaxRange)

	weaver, err := lib.Enemy("WEAVER")
	require.NoError(t, err)
	assert.Equal(t, MoveAcrossScreen, weaver.Movement)
	assert.Equal(t, DefeatRecycleAtTop, weaver.OnDefeat)

	_, err = lib.Level("ENDLESS")
	assert.NoError(t, err)
}

func TestLookups_WrapSentinels(t *testing.T) {
	lib, err := Default()
	require.NoError(t, err)

	_, err = lib.Enemy("NOPE")
	assert.True(t, errors.Is(err, ErrUnknownArchetype))
	_, err = lib.Bullet("NOPE")
	assert.True(t, errors.Is(err, ErrUnknownBullet))
	_, err = lib.Effect("NOPE")
	assert.True(t, errors.Is(err, ErrUnknownEffect))
	_, err = lib.Level("NOPE")
	assert.True(t, errors.Is(err, ErrUnknownLevel))
}

func TestValidate_ReportsDanglingReferences(t *testing.T) {
	lib := &Library{
		Player: PlayerDefinition{ShipDefinition: ShipDefinition{ID: "P", BulletID: "GONE"}},
		Enemies: map[string]EnemyArchetype{
			"E": {ShipDefinition: ShipDefinition{ID: "E"}, FireIntervalMin: 3, FireIntervalMax: 1},
		},
		Bullets: map[string]BulletDefinition{},
		Levels: map[string]LevelDefinition{
			"L": {ID: "L", Waves: []WaveDefinition{{Archetype: "MISSING", Count: 1}}},
		},
	}

	err := lib.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownBullet)
	assert.ErrorIs(t, err, ErrUnknownArchetype)
	assert.Contains(t, err.Error(), "fire_interval_max")
}

func TestEnums_RejectUnknownValues(t *testing.T) {
	var m MovementType
	assert.Error(t, json.Unmarshal([]byte(`"SIDEWAYS"`), &m))
	require.NoError(t, json.Unmarshal([]byte(`"TOWARD_PLAYER"`), &m))
	assert.Equal(t, MoveTowardPlayer, m)

	var d DefeatPolicy
	assert.Error(t, json.Unmarshal([]byte(`"EXPLODE"`), &d))
	var e ExitPolicy
	assert.Error(t, json.Unmarshal([]byte(`"WRAP"`), &e))
}

func TestLoad_FailsOnMissingFile(t *testing.T) {
	fsys := fstest.MapFS{
		"player.json": {Data: []byte(`{"id": "P"}`)},
	}

	_, err := Load(fsys)

	assert.Error(t, err)
}

func TestLoad_FailsOnBadEnum(t *testing.T) {
	fsys := fstest.MapFS{
		"player.json":  {Data: []byte(`{"id": "P"}`)},
		"enemies.json": {Data: []byte(`[{"id": "E", "movement": "SIDEWAYS"}]`)},
		"bullets.json": {Data: []byte(`[]`)},
		"effects.json": {Data: []byte(`[]`)},
		"levels.json":  {Data: []byte(`[]`)},
	}

	_, err := Load(fsys)

	assert.ErrorContains(t, err, "SIDEWAYS")
}
