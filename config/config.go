// Package config loads demo configuration from a TOML file,
// layering the file over built-in defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Simulation SimulationConfig `toml:"simulation"`
	Logging    LoggingConfig    `toml:"logging"`
}

type SimulationConfig struct {
	TickRate  time.Duration `toml:"tick_rate"`
	Particles int           `toml:"particles"`
	MinLife   time.Duration `toml:"min_life"`
	MaxLife   time.Duration `toml:"max_life"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			TickRate:  33 * time.Millisecond,
			Particles: 120,
			MinLife:   2 * time.Second,
			MaxLife:   12 * time.Second,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "husk.log",
		},
	}
}

// Load reads a TOML file over the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Simulation.TickRate <= 0 {
		return fmt.Errorf("tick_rate must be positive, got %s", c.Simulation.TickRate)
	}
	if c.Simulation.Particles < 0 {
		return fmt.Errorf("particles must not be negative, got %d", c.Simulation.Particles)
	}
	if c.Simulation.MaxLife < c.Simulation.MinLife {
		return fmt.Errorf("max_life %s below min_life %s", c.Simulation.MaxLife, c.Simulation.MinLife)
	}
	return nil
}
