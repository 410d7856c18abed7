// Package config loads the YAML configuration for cmd/chandemo: read
// file, parse YAML, apply defaults, validate.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the complete demo configuration.
type Config struct {
	Channel  ChannelConfig  `yaml:"channel"`
	Select   SelectConfig   `yaml:"select"`
	Logging  LoggingConfig  `yaml:"logging"`
	Producer ProducerConfig `yaml:"producer"`
}

// ChannelConfig controls the bounded channel used by the backpressure demo.
type ChannelConfig struct {
	Capacity int `yaml:"capacity"`
}

// SelectConfig controls the select-race demo.
type SelectConfig struct {
	RaceChannels int `yaml:"race_channels"`
}

// ProducerConfig controls the rate-limited simulated producer.
type ProducerConfig struct {
	Count         int     `yaml:"count"`
	PerSecond     float64 `yaml:"per_second"`
	BurstSize     int     `yaml:"burst_size"`
	ShutdownAfter int     `yaml:"shutdown_after_ms"`
}

// LoggingConfig controls the demo's zerolog output.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	TimeFormat string `yaml:"time_format"`
}

// Load reads, parses, defaults, and validates the config at filename.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", filename, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills in zero-valued fields.
func (c *Config) applyDefaults() {
	if c.Channel.Capacity == 0 {
		c.Channel.Capacity = 4
	}
	if c.Select.RaceChannels == 0 {
		c.Select.RaceChannels = 3
	}
	if c.Producer.Count == 0 {
		c.Producer.Count = 20
	}
	if c.Producer.PerSecond == 0 {
		c.Producer.PerSecond = 10
	}
	if c.Producer.BurstSize == 0 {
		c.Producer.BurstSize = 1
	}
	if c.Producer.ShutdownAfter == 0 {
		c.Producer.ShutdownAfter = 2000
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.TimeFormat == "" {
		c.Logging.TimeFormat = "15:04:05"
	}
}

// validate rejects configurations the demo cannot run with.
func (c *Config) validate() error {
	if c.Channel.Capacity < 0 {
		return fmt.Errorf("channel.capacity must be >= 0, got %d", c.Channel.Capacity)
	}
	if c.Select.RaceChannels < 0 {
		return fmt.Errorf("select.race_channels must be >= 0, got %d", c.Select.RaceChannels)
	}
	if c.Producer.Count < 0 {
		return fmt.Errorf("producer.count must be >= 0, got %d", c.Producer.Count)
	}
	return nil
}
