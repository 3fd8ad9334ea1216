// Package config loads application configuration from a TOML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/ilbagatto/go-astrologer/internal/chart"
)

// Config holds all tunable settings of the chart calculator.
type Config struct {
	Log   LogConfig   `toml:"log"`
	Chart ChartConfig `toml:"chart"`
	Orbs  OrbsConfig  `toml:"orbs"`
}

// LogConfig controls logging output.
type LogConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // json (default) or console
}

// ChartConfig selects chart calculation options.
type ChartConfig struct {
	Houses      string   `toml:"houses"`       // house system title
	Aspects     []string `toml:"aspects"`      // aspect classes: Major, Minor, Kepler
	StelliumGap float64  `toml:"stellium_gap"` // degrees
}

// OrbsConfig selects and tunes the orb method.
type OrbsConfig struct {
	Method      string  `toml:"method"` // classic, aspect-ratio, devore
	MinorCoeff  float64 `toml:"minor_coeff"`
	KeplerCoeff float64 `toml:"kepler_coeff"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Chart: ChartConfig{
			Houses:      chart.Placidus.String(),
			Aspects:     []string{"Major"},
			StelliumGap: 10,
		},
		Orbs: OrbsConfig{
			Method:      "aspect-ratio",
			MinorCoeff:  0.6,
			KeplerCoeff: 0.5,
		},
	}
}

// Load reads a TOML configuration file at path (skipped when path is
// empty), merges it on top of the defaults, and applies ASTROCHART_*
// environment variable overrides.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	// Load .env if present; ignore when missing.
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)

	return cfg, nil
}

// applyEnvOverrides reads well-known ASTROCHART_* environment variables
// and overwrites the corresponding fields when set.
func applyEnvOverrides(cfg *Config) {
	setStr(&cfg.Log.Level, "ASTROCHART_LOG_LEVEL")
	setStr(&cfg.Log.Format, "ASTROCHART_LOG_FORMAT")
	setStr(&cfg.Chart.Houses, "ASTROCHART_HOUSES")
	setFloat(&cfg.Chart.StelliumGap, "ASTROCHART_STELLIUM_GAP")
	setStr(&cfg.Orbs.Method, "ASTROCHART_ORBS_METHOD")
}

// Settings converts the configuration into chart settings.
func (c Config) Settings() (chart.Settings, error) {
	settings := chart.DefaultSettings()

	hsys, ok := chart.ParseHouseSystem(c.Chart.Houses)
	if !ok {
		return settings, fmt.Errorf("unknown house system %q", c.Chart.Houses)
	}
	settings.Houses = hsys

	var flags chart.AspectFlag
	for _, name := range c.Chart.Aspects {
		switch name {
		case "Major":
			flags |= chart.Major
		case "Minor":
			flags |= chart.Minor
		case "Kepler":
			flags |= chart.Kepler
		default:
			return settings, fmt.Errorf("unknown aspect class %q", name)
		}
	}
	if flags != 0 {
		settings.AspectFlags = flags
	}

	switch c.Orbs.Method {
	case "classic":
		settings.Orbs = chart.Dariot{}
	case "devore":
		settings.Orbs = chart.DeVore{}
	case "aspect-ratio", "":
		settings.Orbs = chart.ClassicWithAspectRatio{
			MinorCoeff:  c.Orbs.MinorCoeff,
			KeplerCoeff: c.Orbs.KeplerCoeff,
		}
	default:
		return settings, fmt.Errorf("unknown orbs method %q", c.Orbs.Method)
	}

	settings.StelliumGap = c.Chart.StelliumGap

	return settings, nil
}

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setFloat(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}
