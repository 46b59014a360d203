// Package config holds the runtime knobs for a training run.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/xornet/internal/parallel"
)

// ErrInvalidConfig is returned by Validate for values that cannot be trained with.
var ErrInvalidConfig = errors.New("invalid configuration")

// Output layer initialization modes.
const (
	// OutputInitOutput bounds output weights by XavierLimit(hidden, 1).
	OutputInitOutput = "output"
	// OutputInitHidden reuses the hidden layer bound XavierLimit(2, hidden).
	OutputInitHidden = "hidden"
)

// Config captures the runtime knobs for a training run.
type Config struct {
	Seed         int64           `yaml:"seed"`
	Epochs       int             `yaml:"epochs"`
	LearningRate float64         `yaml:"learning_rate"`
	HiddenUnits  int             `yaml:"hidden_units"`
	PrintEvery   int             `yaml:"print_every"`
	OutputInit   string          `yaml:"output_init"`
	Parallel     parallel.Config `yaml:"parallel"`
}

// Overrides captures CLI supplied values. Zero values leave the config untouched.
type Overrides struct {
	Seed         *int64
	Epochs       int
	LearningRate float64
	HiddenUnits  int
	PrintEvery   int
	OutputInit   string
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Seed:         1,
		Epochs:       5000,
		LearningRate: 0.5,
		HiddenUnits:  4,
		PrintEvery:   1000,
		OutputInit:   OutputInitOutput,
		Parallel:     parallel.DefaultConfig(),
	}
}

// Load reads a YAML file on top of Default and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyOverrides updates c using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Seed != nil {
		c.Seed = *o.Seed
	}
	if o.Epochs != 0 {
		c.Epochs = o.Epochs
	}
	if o.LearningRate != 0 {
		c.LearningRate = o.LearningRate
	}
	if o.HiddenUnits != 0 {
		c.HiddenUnits = o.HiddenUnits
	}
	if o.PrintEvery != 0 {
		c.PrintEvery = o.PrintEvery
	}
	if o.OutputInit != "" {
		c.OutputInit = o.OutputInit
	}
}

// ResolveSeed returns the seed override for a run, or nil to keep the
// configured seed. A non-negative flagSeed always wins. A negative one keeps
// the seed of a config file when fromFile is set and draws from random
// otherwise.
func ResolveSeed(flagSeed int64, fromFile bool, random func() int64) *int64 {
	switch {
	case flagSeed >= 0:
		return &flagSeed
	case fromFile:
		return nil
	default:
		seed := random()
		return &seed
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if c.Epochs <= 0 {
		return fmt.Errorf("%w: epochs must be > 0 (got %d)", ErrInvalidConfig, c.Epochs)
	}
	if c.HiddenUnits <= 0 {
		return fmt.Errorf("%w: hidden_units must be > 0 (got %d)", ErrInvalidConfig, c.HiddenUnits)
	}
	if !(c.LearningRate > 0) || math.IsInf(c.LearningRate, 1) {
		return fmt.Errorf("%w: learning_rate must be finite and > 0 (got %g)", ErrInvalidConfig, c.LearningRate)
	}
	if c.PrintEvery <= 0 {
		return fmt.Errorf("%w: print_every must be > 0 (got %d)", ErrInvalidConfig, c.PrintEvery)
	}
	switch c.OutputInit {
	case OutputInitOutput, OutputInitHidden:
	default:
		return fmt.Errorf("%w: output_init must be %q or %q (got %q)",
			ErrInvalidConfig, OutputInitOutput, OutputInitHidden, c.OutputInit)
	}
	if c.Parallel.Enabled && c.Parallel.NumWorkers <= 0 {
		return fmt.Errorf("%w: parallel.workers must be > 0 when enabled (got %d)", ErrInvalidConfig, c.Parallel.NumWorkers)
	}
	return nil
}
