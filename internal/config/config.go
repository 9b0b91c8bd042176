package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds the overall configuration for the application.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Helius    HeliusConfig    `yaml:"helius"`
	Portfolio PortfolioConfig `yaml:"portfolio"`
	Cache     CacheConfig     `yaml:"cache"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig holds the server-specific configuration.
type ServerConfig struct {
	Port         string `yaml:"port"`
	ReadTimeout  int    `yaml:"readTimeout"`
	WriteTimeout int    `yaml:"writeTimeout"`
	IdleTimeout  int    `yaml:"idleTimeout"`
}

// HeliusConfig holds the configuration for the Helius API client.
// The API key itself is never read from this file; it comes from the
// HELIUS_API_KEY environment variable or the secrets file, in that order.
type HeliusConfig struct {
	BaseURL              string `yaml:"baseURL"`
	RequestTimeoutMillis int64  `yaml:"requestTimeoutMillis"`
	SecretsFile          string `yaml:"secretsFile"`
}

// PortfolioConfig holds the display-decluttering thresholds. Both are
// configurable because the stock values are presentation taste, not
// load-bearing constants.
type PortfolioConfig struct {
	// DustThresholdUSD excludes non-native items valued at or below it.
	DustThresholdUSD float64 `yaml:"dustThresholdUSD"`
	// OthersShare is the fraction of total value below which assets
	// collapse into the "Others" chart bucket.
	OthersShare float64 `yaml:"othersShare"`
}

// CacheConfig holds configuration for the wallet payload cache.
type CacheConfig struct {
	TTLMinutes             int `yaml:"ttlMinutes"`
	CleanupIntervalMinutes int `yaml:"cleanupIntervalMinutes"`
}

// LoggingConfig holds the configuration for logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // e.g., "debug", "info", "warn", "error"
}

// LoadConfig loads configuration from a YAML file and fills in defaults for
// anything left unset.
func LoadConfig(path string) (*Config, error) {
	logrus.Infof("Loading configuration from path: %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.Errorf("Failed to read config file %s: %v", path, err)
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logrus.Errorf("Failed to unmarshal config data from %s: %v", path, err)
		return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
	}

	applyDefaults(&cfg)

	logrus.Info("Configuration loaded successfully.")
	return &cfg, nil
}

// Default returns a configuration with every field at its stock value, for
// callers that run without a config file.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}

	if cfg.Helius.BaseURL == "" {
		cfg.Helius.BaseURL = "https://mainnet.helius-rpc.com"
		logrus.Infof("Helius.BaseURL not set, defaulting to %s", cfg.Helius.BaseURL)
	}
	if cfg.Helius.RequestTimeoutMillis == 0 {
		cfg.Helius.RequestTimeoutMillis = 10000 // 10 seconds
	}

	if cfg.Portfolio.DustThresholdUSD == 0 {
		cfg.Portfolio.DustThresholdUSD = 0.5
		logrus.Infof("Portfolio.DustThresholdUSD not set, defaulting to %.2f USD", cfg.Portfolio.DustThresholdUSD)
	}
	if cfg.Portfolio.OthersShare == 0 {
		cfg.Portfolio.OthersShare = 0.005 // 0.5% of total value
		logrus.Infof("Portfolio.OthersShare not set, defaulting to %.3f", cfg.Portfolio.OthersShare)
	}

	if cfg.Cache.TTLMinutes == 0 {
		cfg.Cache.TTLMinutes = 5
		logrus.Infof("Cache.TTLMinutes not set, defaulting to %d minutes", cfg.Cache.TTLMinutes)
	}
	if cfg.Cache.CleanupIntervalMinutes == 0 {
		cfg.Cache.CleanupIntervalMinutes = 10
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}
