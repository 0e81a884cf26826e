// Package config loads the settings of the geocurve command from defaults, an
// optional config file, the environment, and command line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"honnef.co/go/geocurve"
)

// Config holds all command configuration.
type Config struct {
	Curve CurveConfig `mapstructure:"curve"`
	Log   LogConfig   `mapstructure:"log"`
}

type CurveConfig struct {
	Resolution       int     `mapstructure:"resolution"`
	StepSize         float64 `mapstructure:"step_size"`
	Fallback         string  `mapstructure:"fallback"`
	Workers          int     `mapstructure:"workers"`
	StraightTwoPoint bool    `mapstructure:"straight_two_point"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Flag names, keyed by the configuration key they override.
var flagKeys = map[string]string{
	"resolution":         "curve.resolution",
	"step-size":          "curve.step_size",
	"fallback":           "curve.fallback",
	"workers":            "curve.workers",
	"straight-two-point": "curve.straight_two_point",
	"log-level":          "log.level",
	"log-format":         "log.format",
}

// RegisterFlags adds the flags understood by [Load] to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Int("resolution", 0, "sampling steps per curve; <= 0 derives them from --step-size")
	fs.Float64("step-size", 5, "approximate sample spacing in degrees")
	fs.String("fallback", "legacy", "rotation axis fallback for antipodal points: legacy or radians")
	fs.Int("workers", 0, "curves sampled concurrently; <= 0 uses GOMAXPROCS")
	fs.Bool("straight-two-point", false, "draw curves with exactly two coordinates as great circles")
	fs.String("log-level", "info", "log level: debug, info, warn, or error")
	fs.String("log-format", "text", "log format: text or json")
}

// Load reads configuration from defaults, geocurve.yaml, GEOCURVE_*
// environment variables, and fs, in increasing order of precedence. Only
// flags that were set explicitly override other sources. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("curve.resolution", 0)
	v.SetDefault("curve.step_size", 5.0)
	v.SetDefault("curve.fallback", geocurve.FallbackLegacy.String())
	v.SetDefault("curve.workers", 0)
	v.SetDefault("curve.straight_two_point", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Config file (optional)
	v.SetConfigName("geocurve")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config file")
		}
	}

	// Environment variables: GEOCURVE_CURVE_STEP_SIZE → curve.step_size
	v.SetEnvPrefix("GEOCURVE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.Wrapf(err, "bind flag %s", name)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	var errs []string

	if _, err := ParseFallback(c.Curve.Fallback); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Curve.Resolution <= 0 && c.Curve.StepSize <= 0 {
		errs = append(errs, fmt.Sprintf("curve.step_size must be positive when curve.resolution is not, got %g", c.Curve.StepSize))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("log.format must be text or json, got %q", c.Log.Format))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level must be debug, info, warn, or error, got %q", c.Log.Level))
	}

	if len(errs) > 0 {
		return errors.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// ParseFallback parses the name of a [geocurve.FallbackMode].
func ParseFallback(s string) (geocurve.FallbackMode, error) {
	for _, mode := range []geocurve.FallbackMode{geocurve.FallbackLegacy, geocurve.FallbackRadians} {
		if strings.EqualFold(s, mode.String()) {
			return mode, nil
		}
	}
	return 0, errors.Errorf("curve.fallback must be legacy or radians, got %q", s)
}

// Options returns the sampling options described by c. c must be valid.
func (c *Config) Options() geocurve.Options {
	mode, _ := ParseFallback(c.Curve.Fallback)
	return geocurve.Options{
		Resolution: c.Curve.Resolution,
		StepSize:   c.Curve.StepSize,
		Fallback:   mode,
		Workers:    c.Curve.Workers,
	}
}
