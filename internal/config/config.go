// Package config loads the server configuration from a YAML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/insyncinternational/funnelflow/pkg/canvas"
)

// Config is the full server configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Redis    RedisConfig    `yaml:"redis"`
	Autosave AutosaveConfig `yaml:"autosave"`
	Canvas   canvas.Size    `yaml:"canvas"`
	Log      LogConfig      `yaml:"log"`

	// PublicBaseURL is the origin used to mint published funnel URLs.
	PublicBaseURL string `yaml:"public_base_url"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type RedisConfig struct {
	// Addr empty means the in-memory repository is used instead.
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	Prefix   string        `yaml:"prefix"`
	TTL      time.Duration `yaml:"ttl"`
}

type AutosaveConfig struct {
	Interval time.Duration `yaml:"interval"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server:        ServerConfig{Addr: ":8080"},
		Redis:         RedisConfig{Prefix: "funnelflow:"},
		Autosave:      AutosaveConfig{Interval: 400 * time.Millisecond},
		Canvas:        canvas.Size{Width: 3000, Height: 2000},
		Log:           LogConfig{Level: "info", Format: "text"},
		PublicBaseURL: "https://funnelflow.ai",
	}
}

// Load reads the YAML file at path (if non-empty) over the defaults,
// then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides fields from FUNNELFLOW_* variables. Unset or
// malformed values leave the field alone.
func (c *Config) applyEnv() {
	if v := os.Getenv("FUNNELFLOW_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("FUNNELFLOW_REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("FUNNELFLOW_REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("FUNNELFLOW_REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			c.Redis.DB = db
		}
	}
	if v := os.Getenv("FUNNELFLOW_AUTOSAVE_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Autosave.Interval = d
		}
	}
	if v := os.Getenv("FUNNELFLOW_PUBLIC_BASE_URL"); v != "" {
		c.PublicBaseURL = v
	}
	if v := os.Getenv("FUNNELFLOW_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}
