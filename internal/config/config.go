package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"memmatch/internal/board"

	"gopkg.in/yaml.v3"
)

// Config holds the game settings. Values come from defaults, then the YAML
// file, then MEMMATCH_* environment variables, then command-line flags.
type Config struct {
	Difficulty   string        `yaml:"difficulty"`
	SettleDelay  time.Duration `yaml:"settle_delay"`
	TickInterval time.Duration `yaml:"tick_interval"`
	Sound        bool          `yaml:"sound"`
	Seed         int64         `yaml:"seed"` // 0 = seed from the clock
	PaletteFiles []string      `yaml:"palette_files,omitempty"`
	LogFile      string        `yaml:"log_file,omitempty"`
	Verbose      bool          `yaml:"verbose"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Difficulty:   board.DefaultDifficulty,
		SettleDelay:  600 * time.Millisecond,
		TickInterval: time.Second,
		Sound:        true,
	}
}

// DefaultPath is ~/.config/memmatch/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get user home directory: %w", err)
	}
	return filepath.Join(home, ".config", "memmatch", "config.yaml"), nil
}

// Load reads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("MEMMATCH_DIFFICULTY"); v != "" {
		c.Difficulty = v
	}
	if v := os.Getenv("MEMMATCH_SOUND"); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("MEMMATCH_SOUND: %w", err)
		}
		c.Sound = on
	}
	if v := os.Getenv("MEMMATCH_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("MEMMATCH_SEED: %w", err)
		}
		c.Seed = seed
	}
	if v := os.Getenv("MEMMATCH_SETTLE_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("MEMMATCH_SETTLE_DELAY: %w", err)
		}
		c.SettleDelay = d
	}
	if v := os.Getenv("MEMMATCH_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	return nil
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	if _, err := board.Lookup(c.Difficulty); err != nil {
		return err
	}
	if c.SettleDelay <= 0 {
		return fmt.Errorf("settle delay must be positive, got %s", c.SettleDelay)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", c.TickInterval)
	}
	return nil
}
