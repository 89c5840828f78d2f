// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/smileynet/rolodex/internal/book"
)

// Config holds all rolodex configuration.
type Config struct {
	Birthdays Birthdays `yaml:"birthdays"`
	Assistant Assistant `yaml:"assistant"`
	Seed      Seed      `yaml:"seed"`
}

// Birthdays holds upcoming birthday query settings.
type Birthdays struct {
	WindowDays int    `yaml:"window_days"`
	LeapDay    string `yaml:"leap_day"` // "feb28" | "mar1"
}

// Assistant holds interactive shell settings.
type Assistant struct {
	Prompt        string `yaml:"prompt"`
	PhoneAttempts int    `yaml:"phone_attempts"` // Tries for a valid phone in "add", including the first
}

// Seed holds contact fixture settings.
type Seed struct {
	Dir string `yaml:"dir"` // Local directory checked before the embedded seeds
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Birthdays: Birthdays{
			WindowDays: book.DefaultWindowDays,
			LeapDay:    string(book.LeapDayFeb28),
		},
		Assistant: Assistant{
			Prompt:        "Enter a command: ",
			PhoneAttempts: 3,
		},
		Seed: Seed{
			Dir: ".rolodex/seeds",
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return &cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.Birthdays.WindowDays < 0 {
		return fmt.Errorf("config: birthdays.window_days must be non-negative, got %d", c.Birthdays.WindowDays)
	}
	if _, err := book.ParseLeapDayPolicy(c.Birthdays.LeapDay); err != nil {
		return fmt.Errorf("config: birthdays.leap_day must be %q or %q, got %q",
			book.LeapDayFeb28, book.LeapDayMar1, c.Birthdays.LeapDay)
	}
	if c.Assistant.PhoneAttempts < 1 {
		return fmt.Errorf("config: assistant.phone_attempts must be at least 1, got %d", c.Assistant.PhoneAttempts)
	}
	return nil
}

// LeapDayPolicy returns the parsed birthdays.leap_day value.
// Call Validate first; an invalid value falls back to book.LeapDayFeb28.
func (c *Config) LeapDayPolicy() book.LeapDayPolicy {
	p, err := book.ParseLeapDayPolicy(c.Birthdays.LeapDay)
	if err != nil {
		return book.LeapDayFeb28
	}
	return p
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: ROLODEX_WINDOW_DAYS, ROLODEX_LEAP_DAY, ROLODEX_SEED_DIR.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("ROLODEX_WINDOW_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid ROLODEX_WINDOW_DAYS %q: %w", v, err)
		}
		c.Birthdays.WindowDays = n
	}
	if v := os.Getenv("ROLODEX_LEAP_DAY"); v != "" {
		c.Birthdays.LeapDay = v
	}
	if v := os.Getenv("ROLODEX_SEED_DIR"); v != "" {
		c.Seed.Dir = v
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Birthdays *rawBirthdays `yaml:"birthdays"`
	Assistant *rawAssistant `yaml:"assistant"`
	Seed      *rawSeed      `yaml:"seed"`
}

type rawBirthdays struct {
	WindowDays *int    `yaml:"window_days"`
	LeapDay    *string `yaml:"leap_day"`
}

type rawAssistant struct {
	Prompt        *string `yaml:"prompt"`
	PhoneAttempts *int    `yaml:"phone_attempts"`
}

type rawSeed struct {
	Dir *string `yaml:"dir"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Birthdays != nil {
		if layer.Birthdays.WindowDays != nil {
			c.Birthdays.WindowDays = *layer.Birthdays.WindowDays
		}
		if layer.Birthdays.LeapDay != nil {
			c.Birthdays.LeapDay = *layer.Birthdays.LeapDay
		}
	}
	if layer.Assistant != nil {
		if layer.Assistant.Prompt != nil {
			c.Assistant.Prompt = *layer.Assistant.Prompt
		}
		if layer.Assistant.PhoneAttempts != nil {
			c.Assistant.PhoneAttempts = *layer.Assistant.PhoneAttempts
		}
	}
	if layer.Seed != nil {
		if layer.Seed.Dir != nil {
			c.Seed.Dir = *layer.Seed.Dir
		}
	}
}
