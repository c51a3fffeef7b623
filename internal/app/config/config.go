// Package config loads the application configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // cache.timezone をOSのゾーン情報なしで解決する

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"stock_dashboard/internal/platform/externalapi/staticdata"
	"stock_dashboard/internal/platform/redis"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Port        int      `yaml:"port"`
		CORSOrigins []string `yaml:"cors_origins"`
	} `yaml:"server"`
	DataSource struct {
		BaseURL string        `yaml:"base_url"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"data_source"`
	Redis struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Cache struct {
		Namespace   string `yaml:"namespace"`
		RefreshHour int    `yaml:"refresh_hour"`
		Timezone    string `yaml:"timezone"`
	} `yaml:"cache"`
	Warmup struct {
		Cron       string        `yaml:"cron"`
		RateLimit  int           `yaml:"rate_limit"`
		RateWindow time.Duration `yaml:"rate_window"`
	} `yaml:"warmup"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error; defaults and the environment still apply.
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
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = p
		}
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.Server.CORSOrigins = strings.Split(v, ",")
	}
	if v := os.Getenv("DATA_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATA_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.DataSource.Timeout = d
		}
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		cfg.Redis.Host = v
	}
	if v := os.Getenv("REDIS_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Redis.Port = p
		}
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("CACHE_NAMESPACE"); v != "" {
		cfg.Cache.Namespace = v
	}
	if v := os.Getenv("CACHE_TIMEZONE"); v != "" {
		cfg.Cache.Timezone = v
	}
	if v := os.Getenv("CRON_WARMUP"); v != "" {
		cfg.Warmup.Cron = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}

	// Defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.DataSource.Timeout == 0 {
		cfg.DataSource.Timeout = 10 * time.Second
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Cache.Namespace == "" {
		cfg.Cache.Namespace = "datasets"
	}
	if cfg.Cache.RefreshHour == 0 {
		cfg.Cache.RefreshHour = 8
	}
	if cfg.Cache.Timezone == "" {
		cfg.Cache.Timezone = "Asia/Tokyo"
	}
	if cfg.Warmup.Cron == "" {
		cfg.Warmup.Cron = "0 5 8 * * *"
	}
	if cfg.Warmup.RateLimit == 0 {
		cfg.Warmup.RateLimit = 8
	}
	if cfg.Warmup.RateWindow == 0 {
		cfg.Warmup.RateWindow = time.Minute
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}

	return cfg, nil
}

// Validate checks that all required fields are set and well-formed.
func (c *Config) Validate() error {
	if c.DataSource.BaseURL == "" {
		return fmt.Errorf("data_source.base_url is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Cache.RefreshHour < 0 || c.Cache.RefreshHour > 23 {
		return fmt.Errorf("cache.refresh_hour must be between 0 and 23")
	}
	if _, err := time.LoadLocation(c.Cache.Timezone); err != nil {
		return fmt.Errorf("cache.timezone: %w", err)
	}
	if _, err := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor).Parse(c.Warmup.Cron); err != nil {
		return fmt.Errorf("warmup.cron: %w", err)
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Server.Port)
}

// Location returns the time zone used for the daily cache refresh.
// Validate must have succeeded; an unknown zone falls back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Cache.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// StaticData converts the data source section to the client config.
func (c *Config) StaticData() staticdata.Config {
	return staticdata.Config{BaseURL: c.DataSource.BaseURL, Timeout: c.DataSource.Timeout}
}

// RedisConfig converts the redis section to the platform config.
func (c *Config) RedisConfig() redis.Config {
	return redis.Config{Host: c.Redis.Host, Port: c.Redis.Port, Password: c.Redis.Password, DB: c.Redis.DB}
}
