package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 60.0, cfg.Simulation.TickRate)
	require.Len(t, cfg.Airports, 3)
	require.Equal(t, "LHR", cfg.Airports[0].ID)
	require.Equal(t, 4, cfg.Airports[0].Capacity)
	require.Zero(t, cfg.Airports[2].Capacity)
}

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Parse([]byte(`
[simulation]
storm_chance = 0.5

[[airport]]
id = "JFK"
weather = "stormy"
`))
	require.NoError(t, err)
	require.Equal(t, 60.0, cfg.Simulation.TickRate)
	require.Equal(t, 8, cfg.Simulation.MaxAircraft)
	require.Equal(t, 0.5, cfg.Simulation.StormChance)
	require.Len(t, cfg.Airports, 1)
	require.Equal(t, "stormy", cfg.Airports[0].Weather)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte(`[simulation`))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tick rate", func(c *Config) { c.Simulation.TickRate = 0 }},
		{"storm chance", func(c *Config) { c.Simulation.StormChance = 1.5 }},
		{"max aircraft", func(c *Config) { c.Simulation.MaxAircraft = -1 }},
		{"log level", func(c *Config) { c.LogLevel = "loud" }},
		{"empty id", func(c *Config) { c.Airports[0].ID = "" }},
		{"duplicate id", func(c *Config) { c.Airports[1].ID = "lhr" }},
		{"capacity", func(c *Config) { c.Airports[0].Capacity = -2 }},
		{"weather", func(c *Config) { c.Airports[0].Weather = "foggy" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atc.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level = "debug"

[simulation]
max_aircraft = 2

[[airport]]
id = "SFO"
capacity = 1
`), 0o644))
	t.Setenv("ATC_MAX_AIRCRAFT", "5")
	t.Setenv("ATC_FLIGHTPLAN", "plans/demo.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 5, cfg.Simulation.MaxAircraft)
	require.Equal(t, "plans/demo.yaml", cfg.FlightPlan)
	require.Len(t, cfg.Airports, 1)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	require.Len(t, cfg.Airports, 3)
}

func TestLoadRejectsBadEnv(t *testing.T) {
	t.Setenv("ATC_STORM_CHANCE", "2")
	_, err := Load("")
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("WARN")
	require.NoError(t, err)
	require.Equal(t, log.WARN, lvl)

	_, err = ParseLevel("verbose")
	require.Error(t, err)
}
