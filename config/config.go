// Package config holds the CLI configuration: logging, solver options and
// random-instance parameters, loaded from YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/munkres/generator"
	"github.com/katalvlaran/munkres/munkres"
)

// Environment variables that override file values.
const (
	EnvLogLevel = "MUNKRES_LOG_LEVEL"
	EnvSeed     = "MUNKRES_SEED"
)

// ErrInvalidConfig is returned by Validate and by Load for bad overrides.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root configuration document.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Solver SolverConfig `yaml:"solver"`
	Random RandomConfig `yaml:"random"`
}

// LogConfig selects the zap preset, level and encoding.
type LogConfig struct {
	Level       string `yaml:"level"`       // debug | info | warn | error
	Development bool   `yaml:"development"` // zap development preset
	Encoding    string `yaml:"encoding"`    // console | json
}

// SolverConfig maps onto munkres.Options plus the batch worker limit.
type SolverConfig struct {
	Epsilon         float64 `yaml:"epsilon"`
	Maximize        bool    `yaml:"maximize"`
	CheckInvariants bool    `yaml:"check_invariants"`
	Workers         int     `yaml:"workers"`
}

// RandomConfig parameterises generated instances for `random` and `verify`.
type RandomConfig struct {
	Seed   int64 `yaml:"seed"`
	Size   int   `yaml:"size"`
	High   int   `yaml:"high"`
	Trials int   `yaml:"trials"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
		Solver: SolverConfig{
			Epsilon: munkres.DefaultEpsilon,
			Workers: 4,
		},
		Random: RandomConfig{
			Seed:   generator.DefaultSeed,
			Size:   5,
			High:   10,
			Trials: 100,
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err = yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		c.Log.Level = lvl
	}
	if s := os.Getenv(EnvSeed); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvSeed, s, err)
		}
		c.Random.Seed = seed
	}

	return nil
}

// Validate checks every section and reports the first problem.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	if c.Log.Encoding != "console" && c.Log.Encoding != "json" {
		return fmt.Errorf("%w: log.encoding %q (want console or json)", ErrInvalidConfig, c.Log.Encoding)
	}
	if c.Solver.Epsilon < 0 || math.IsNaN(c.Solver.Epsilon) || math.IsInf(c.Solver.Epsilon, 0) {
		return fmt.Errorf("%w: solver.epsilon %v", ErrInvalidConfig, c.Solver.Epsilon)
	}
	if c.Solver.Workers < 1 {
		return fmt.Errorf("%w: solver.workers %d", ErrInvalidConfig, c.Solver.Workers)
	}
	if c.Random.Size < 1 || c.Random.High < 1 || c.Random.Trials < 0 {
		return fmt.Errorf("%w: random size=%d high=%d trials=%d",
			ErrInvalidConfig, c.Random.Size, c.Random.High, c.Random.Trials)
	}

	return nil
}

// Options builds solver options that log through logger.
func (s SolverConfig) Options(logger *zap.Logger) munkres.Options {
	opts := munkres.DefaultOptions()
	opts.Epsilon = s.Epsilon
	opts.Maximize = s.Maximize
	opts.CheckInvariants = s.CheckInvariants
	opts.Logger = logger

	return opts
}

// NewLogger builds a zap logger from the production or development preset.
// verbose forces the debug level.
func NewLogger(lc LogConfig, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if lc.Development {
		zc = zap.NewDevelopmentConfig()
	}
	if lc.Encoding != "" {
		zc.Encoding = lc.Encoding
	}

	level := zapcore.InfoLevel
	if lc.Level != "" {
		var err error
		if level, err = zapcore.ParseLevel(lc.Level); err != nil {
			return nil, fmt.Errorf("%w: log.level %q", ErrInvalidConfig, lc.Level)
		}
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}
