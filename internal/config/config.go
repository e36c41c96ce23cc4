// Package config loads engine tuning values through viper. Every knob has a
// default, so the game boots with no config file present; an optional
// irondrift.cfg.json in the config directory overrides individual values.
package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Load sets defaults and reads the optional config file from configDir.
// A missing file is fine; a malformed one is reported so the player can fix it.
func Load(configDir string) error {
	// World
	viper.SetDefault("grid.width", 48)
	viper.SetDefault("grid.height", 48)
	viper.SetDefault("grid.startX", 24)
	viper.SetDefault("grid.startY", 24)

	// Movement integrator
	viper.SetDefault("physics.accel", 18.0)
	viper.SetDefault("physics.boostAccelMult", 1.8)
	viper.SetDefault("physics.maxSpeed", 6.0)
	viper.SetDefault("physics.boostSpeedMult", 1.6)
	viper.SetDefault("physics.drag", 2.2)
	viper.SetDefault("physics.brakeDrag", 7.5)
	viper.SetDefault("physics.overspeedDamp", 4.0)
	viper.SetDefault("physics.maxDelta", 0.05)

	// Ship economy
	viper.SetDefault("ship.maxHull", 10)
	viper.SetDefault("ship.maxFuel", 100.0)
	viper.SetDefault("ship.fuelPerUnit", 0.8)
	viper.SetDefault("ship.emptyFuelDamageChance", 0.006)
	viper.SetDefault("ship.fragmentTotal", 10)

	// Interaction and presentation
	viper.SetDefault("interact.radius", 0.70)
	viper.SetDefault("view.fogRadius", 7.0)

	// POI layout
	viper.SetDefault("poi.fillerCount", 26)
	viper.SetDefault("poi.minHubDist", 6)
	viper.SetDefault("poi.maxAttempts", 5000)

	// Persistence
	viper.SetDefault("save.path", "irondrift.db")
	viper.SetDefault("save.throttle", 0.25)

	viper.SetConfigName("irondrift.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil // defaults only
		}
		return err
	}
	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetFloat returns a float64 config value.
func GetFloat(key string) float64 {
	return viper.GetFloat64(key)
}
