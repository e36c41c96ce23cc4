package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(t.TempDir()))

	assert.Equal(t, 48, GetInt("grid.width"))
	assert.Equal(t, 24, GetInt("grid.startX"))
	assert.Equal(t, 6.0, GetFloat("physics.maxSpeed"))
	assert.Equal(t, 0.05, GetFloat("physics.maxDelta"))
	assert.Equal(t, 10, GetInt("ship.maxHull"))
	assert.Equal(t, 10, GetInt("ship.fragmentTotal"))
	assert.Equal(t, 0.70, GetFloat("interact.radius"))
	assert.Equal(t, 5000, GetInt("poi.maxAttempts"))
	assert.Equal(t, "irondrift.db", GetString("save.path"))
	assert.Equal(t, 0.25, GetFloat("save.throttle"))
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"grid": { "width": 64 },
		"physics": { "maxSpeed": 9.5 },
		"save": { "path": "/tmp/other.db" }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "irondrift.cfg.json"), []byte(cfg), 0644))

	require.NoError(t, Load(dir))

	assert.Equal(t, 64, GetInt("grid.width"))
	assert.Equal(t, 9.5, GetFloat("physics.maxSpeed"))
	assert.Equal(t, "/tmp/other.db", GetString("save.path"))
	// Untouched keys keep defaults.
	assert.Equal(t, 48, GetInt("grid.height"))
	assert.Equal(t, 2.2, GetFloat("physics.drag"))
}
