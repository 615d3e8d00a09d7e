package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/labstack/gommon/log"
)

// AirportConfig declares one airport of the airspace.
type AirportConfig struct {
	ID       string  `toml:"id"`
	Name     string  `toml:"name"`
	X        float64 `toml:"x"`
	Y        float64 `toml:"y"`
	Capacity int     `toml:"capacity"` // 0 uses the airport default
	Weather  string  `toml:"weather"`  // "sunny" (default) or "stormy"
}

type SimulationConfig struct {
	TickRate         float64 `toml:"tick_rate" env:"TICK_RATE"`
	MaxAircraft      int     `toml:"max_aircraft" env:"MAX_AIRCRAFT"`
	SpawnInterval    float64 `toml:"spawn_interval" env:"SPAWN_INTERVAL"`       // game seconds, 0 disables
	ForecastInterval float64 `toml:"forecast_interval" env:"FORECAST_INTERVAL"` // game seconds, 0 disables
	StormChance      float64 `toml:"storm_chance" env:"STORM_CHANCE"`
	Seed             int64   `toml:"seed" env:"SEED"` // 0 seeds from the clock
}

type Config struct {
	LogLevel   string           `toml:"log_level"`
	FlightPlan string           `toml:"flight_plan"`
	Simulation SimulationConfig `toml:"simulation"`
	Airports   []AirportConfig  `toml:"airport"`
}

const defaultConfigTOML = `# Airport control configuration.
log_level = "info"

[simulation]
tick_rate = 60.0
max_aircraft = 8
spawn_interval = 20.0
forecast_interval = 30.0
storm_chance = 0.2

[[airport]]
id = "LHR"
name = "Heathrow"
x = 200
y = 180
capacity = 4

[[airport]]
id = "CDG"
name = "Charles de Gaulle"
x = 620
y = 240
capacity = 3

[[airport]]
id = "AMS"
name = "Schiphol"
x = 420
y = 520
`

func Default() Config {
	cfg, err := Parse([]byte(defaultConfigTOML))
	if err != nil {
		panic(fmt.Sprintf("default config: %v", err))
	}
	return cfg
}

// Parse decodes TOML data on top of the built-in simulation defaults.
func Parse(data []byte) (Config, error) {
	cfg := Config{
		LogLevel: "info",
		Simulation: SimulationConfig{
			TickRate:    60.0,
			MaxAircraft: 8,
		},
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		log.Warnf("config: ignoring unknown keys %v", undecoded)
	}
	return cfg, nil
}

// Load reads the TOML file at path, falling back to Default when path is
// empty or missing, then applies ATC_* environment overrides and validates.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			log.Warnf("config: %s not found, using defaults", path)
		case err != nil:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		default:
			if cfg, err = Parse(data); err != nil {
				return Config{}, err
			}
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overrides scalar settings from ATC_* variables. Airports are
// only configurable through the file.
func applyEnv(cfg *Config) error {
	opts := env.Options{Prefix: "ATC_"}
	top := struct {
		LogLevel   string `env:"LOG_LEVEL"`
		FlightPlan string `env:"FLIGHTPLAN"`
	}{cfg.LogLevel, cfg.FlightPlan}
	if err := env.ParseWithOptions(&top, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if err := env.ParseWithOptions(&cfg.Simulation, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	cfg.LogLevel, cfg.FlightPlan = top.LogLevel, top.FlightPlan
	return nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Simulation.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %v", c.Simulation.TickRate))
	}
	if c.Simulation.StormChance < 0 || c.Simulation.StormChance > 1 {
		errs = append(errs, fmt.Errorf("storm_chance must be within [0,1], got %v", c.Simulation.StormChance))
	}
	if c.Simulation.MaxAircraft < 0 {
		errs = append(errs, fmt.Errorf("max_aircraft must not be negative, got %d", c.Simulation.MaxAircraft))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	seen := make(map[string]bool, len(c.Airports))
	for i, ap := range c.Airports {
		id := strings.ToUpper(ap.ID)
		switch {
		case id == "":
			errs = append(errs, fmt.Errorf("airport[%d]: id is empty", i))
		case seen[id]:
			errs = append(errs, fmt.Errorf("airport[%d]: duplicate id %s", i, id))
		}
		seen[id] = true
		if ap.Capacity < 0 {
			errs = append(errs, fmt.Errorf("airport %s: capacity must not be negative", id))
		}
		if w := strings.ToLower(ap.Weather); w != "" && w != "sunny" && w != "stormy" {
			errs = append(errs, fmt.Errorf("airport %s: unknown weather %q", id, ap.Weather))
		}
	}
	return errors.Join(errs...)
}

var levels = map[string]log.Lvl{
	"debug": log.DEBUG,
	"info":  log.INFO,
	"warn":  log.WARN,
	"error": log.ERROR,
	"off":   log.OFF,
}

func ParseLevel(s string) (log.Lvl, error) {
	lvl, ok := levels[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return log.INFO, fmt.Errorf("unknown log level %q", s)
	}
	return lvl, nil
}

// ApplyLogging sets the global gommon logger level and header.
func (c Config) ApplyLogging() {
	lvl, err := ParseLevel(c.LogLevel)
	if err != nil {
		log.Warnf("%v, using info", err)
	}
	log.SetLevel(lvl)
	log.SetHeader("${time_rfc3339} ${level} ${short_file}:${line}")
}
