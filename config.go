package pointillist

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Config holds every knob of a conversion. It can be loaded from YAML.
type Config struct {
	BlockSize int    `yaml:"block_size"`
	Padding   int    `yaml:"padding"`
	Radius    int    `yaml:"radius"`
	Delay     int    `yaml:"delay"`
	Key       string `yaml:"key"`
	Coalesce  bool   `yaml:"coalesce"`

	Scale           float64 `yaml:"scale"`
	Gamma           float64 `yaml:"gamma"`
	Brightness      float64 `yaml:"brightness"`
	Contrast        float64 `yaml:"contrast"`
	Sharpen         float64 `yaml:"sharpen"`
	SigmoidMidpoint float64 `yaml:"sigmoid_midpoint"`
	SigmoidFactor   float64 `yaml:"sigmoid_factor"`
	Invert          bool    `yaml:"invert"`
}

func DefaultConfig() Config {
	return Config{
		BlockSize:       8,
		Padding:         2,
		Radius:          8,
		Delay:           DefaultDelay,
		Key:             "brightness",
		Scale:           1.0,
		Gamma:           1.0,
		SigmoidMidpoint: 0.5,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, wrap(ErrIO, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, wrap(ErrInvalidConfig, err)
	}
	return cfg, cfg.Validate()
}

func (cfg Config) Validate() error {
	switch {
	case cfg.BlockSize < 1:
		return wrapf(ErrInvalidConfig, "block size must be at least 1, got %d", cfg.BlockSize)
	case cfg.Padding < 0:
		return wrapf(ErrInvalidConfig, "padding must not be negative, got %d", cfg.Padding)
	case cfg.Radius < 0:
		return wrapf(ErrInvalidConfig, "radius must not be negative, got %d", cfg.Radius)
	case cfg.Delay < 0 || cfg.Delay > maxDimension:
		return wrapf(ErrInvalidConfig, "delay must be within [0, %d], got %d", maxDimension, cfg.Delay)
	case cfg.Scale <= 0:
		return wrapf(ErrInvalidConfig, "scale must be positive, got %v", cfg.Scale)
	case cfg.SigmoidMidpoint < 0 || cfg.SigmoidMidpoint > 1:
		return wrapf(ErrInvalidConfig, "sigmoid midpoint must be within [0, 1], got %v", cfg.SigmoidMidpoint)
	}
	if _, err := KeyByName(cfg.Key); err != nil {
		return wrap(ErrInvalidConfig, err)
	}
	return nil
}

// Grid returns the canvas layout described by cfg.
func (cfg Config) Grid() Grid {
	return Grid{Padding: cfg.Padding, Radius: cfg.Radius}
}

// Adjustments returns the per-frame tone corrections described by cfg.
func (cfg Config) Adjustments() Adjustments {
	return Adjustments{
		Scale:           cfg.Scale,
		Gamma:           cfg.Gamma,
		Brightness:      cfg.Brightness,
		Sharpen:         cfg.Sharpen,
		Contrast:        cfg.Contrast,
		SigmoidMidpoint: cfg.SigmoidMidpoint,
		SigmoidFactor:   cfg.SigmoidFactor,
		Invert:          cfg.Invert,
	}
}

func (cfg Config) String() string {
	return fmt.Sprintf("block=%d padding=%d radius=%d delay=%d key=%s",
		cfg.BlockSize, cfg.Padding, cfg.Radius, cfg.Delay, cfg.Key)
}
