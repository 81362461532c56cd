package config

import (
	"fmt"
	"os"

	"hexix/meta"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of a Hexix session
type Config struct {
	Players PlayersConfig `yaml:"players"`
	Board   BoardConfig   `yaml:"board"`
	Log     LogConfig     `yaml:"log"`
}

// PlayersConfig holds the display names of both players
type PlayersConfig struct {
	Player1 string `yaml:"player1" validate:"required,max=32"`
	Player2 string `yaml:"player2" validate:"required,max=32"`
}

// BoardConfig holds the board topology and move rules
type BoardConfig struct {
	Path         string `yaml:"path"` // empty = built-in board
	Connectivity string `yaml:"connectivity" validate:"oneof=permit-all adjacent"`
	Plain        bool   `yaml:"plain"` // render without colors
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=trace debug info warn error"`
}

var validate = validator.New()

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Set defaults if not provided
	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Players.Player1 == "" {
		c.Players.Player1 = meta.DEFAULT_PLAYER1
	}
	if c.Players.Player2 == "" {
		c.Players.Player2 = meta.DEFAULT_PLAYER2
	}
	if c.Board.Connectivity == "" {
		c.Board.Connectivity = "permit-all"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks every field against its constraints
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
