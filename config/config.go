package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Service ServiceConfig `yaml:"service"`
	Feed    FeedConfig    `yaml:"feed"`
	Log     LogConfig     `yaml:"log"`
}

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
	CacheTTLSeconds int     `yaml:"cache_ttl_seconds"`
}

// ServiceConfig controls the mock service layer's artificial latency.
type ServiceConfig struct {
	LatencyEnabled bool `yaml:"latency_enabled"`
	LatencyLightMS int  `yaml:"latency_light_ms"`
	LatencyMedMS   int  `yaml:"latency_medium_ms"`
	LatencyHeavyMS int  `yaml:"latency_heavy_ms"`
}

// FeedConfig controls the realtime feed simulator.
type FeedConfig struct {
	Enabled          bool          `yaml:"enabled"`
	TickSeconds      int           `yaml:"tick_seconds"`
	Tick             time.Duration `yaml:"-"`
	AlertProbability float64       `yaml:"alert_probability"`
	TrackedMachines  int           `yaml:"tracked_machines"`
}

// LogConfig holds the logging configuration.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads the configuration from the given path and fills in defaults for
// unset values.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns a configuration usable without a config file.
func Default() *Config {
	cfg := &Config{}
	cfg.Service.LatencyEnabled = true
	cfg.Feed.Enabled = true
	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}
	if cfg.Server.CacheTTLSeconds <= 0 {
		cfg.Server.CacheTTLSeconds = 30
	}
	if cfg.Service.LatencyLightMS <= 0 {
		cfg.Service.LatencyLightMS = 200
	}
	if cfg.Service.LatencyMedMS <= 0 {
		cfg.Service.LatencyMedMS = 500
	}
	if cfg.Service.LatencyHeavyMS <= 0 {
		cfg.Service.LatencyHeavyMS = 1000
	}
	if cfg.Feed.TickSeconds <= 0 {
		cfg.Feed.TickSeconds = 3
	}
	cfg.Feed.Tick = time.Duration(cfg.Feed.TickSeconds) * time.Second
	if cfg.Feed.AlertProbability <= 0 {
		cfg.Feed.AlertProbability = 0.1
	}
	if cfg.Feed.TrackedMachines <= 0 {
		cfg.Feed.TrackedMachines = 3
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
}
