// Package config loads the application configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SeriesConfig describes one price series served by the API.
type SeriesConfig struct {
	// Name is the internal series name, e.g. "Oil".
	Name string `yaml:"name"`
	// QueryName is the value clients pass in the series query parameter, e.g. "OilPrice".
	QueryName string `yaml:"query_name"`
	// File is the path of the Date,Price CSV table.
	File string `yaml:"file"`
}

// Config holds all application configuration.
type Config struct {
	ListenAddr string `yaml:"listen_addr"`
	UsersFile  string `yaml:"users_file"`
	// ReloadCron is the standard 5-field cron expression for the daily
	// data reload and model refit.
	ReloadCron string `yaml:"reload_cron"`
	Forecast   struct {
		MaxDays int `yaml:"max_days"`
	} `yaml:"forecast"`
	Redis struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		Password string `yaml:"password"`
	} `yaml:"redis"`
	Series []SeriesConfig `yaml:"series"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("USERS_FILE"); v != "" {
		cfg.UsersFile = v
	}
	if v := os.Getenv("RELOAD_CRON"); v != "" {
		cfg.ReloadCron = v
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		cfg.Redis.Host = v
	}
	if v := os.Getenv("REDIS_PORT"); v != "" {
		cfg.Redis.Port = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}

	// Defaults
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.UsersFile == "" {
		cfg.UsersFile = "data/users.csv"
	}
	if cfg.ReloadCron == "" {
		cfg.ReloadCron = "0 6 * * *"
	}
	if cfg.Forecast.MaxDays == 0 {
		cfg.Forecast.MaxDays = 365
	}
	if len(cfg.Series) == 0 {
		cfg.Series = []SeriesConfig{
			{Name: "Oil", QueryName: "OilPrice", File: "data/OilDaily.csv"},
			{Name: "Gas", QueryName: "GasPrice", File: "data/GasDaily.csv"},
		}
	}

	return cfg, nil
}

// RedisAddr returns the host:port address, or empty when Redis is not configured.
func (c *Config) RedisAddr() string {
	if c.Redis.Host == "" {
		return ""
	}
	port := c.Redis.Port
	if port == "" {
		port = "6379"
	}
	return c.Redis.Host + ":" + port
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.UsersFile == "" {
		return fmt.Errorf("users_file is required")
	}
	if c.Forecast.MaxDays <= 0 {
		return fmt.Errorf("forecast.max_days must be positive")
	}
	seen := map[string]bool{}
	for _, s := range c.Series {
		if s.Name == "" || s.QueryName == "" || s.File == "" {
			return fmt.Errorf("series entries need name, query_name and file")
		}
		if seen[s.QueryName] {
			return fmt.Errorf("duplicate series query_name %q", s.QueryName)
		}
		seen[s.QueryName] = true
	}
	return nil
}
