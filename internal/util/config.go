// Package util provides common utilities for smolwifi.
package util

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	DataDir  string `mapstructure:"data_dir"`
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`

	// Interface pins the wireless interface to scan on; empty means
	// the first usable wireless device wins.
	Interface string `mapstructure:"interface"`

	// Scan behavior
	ScanTimeout  time.Duration `mapstructure:"scan_timeout"`
	PollInterval time.Duration `mapstructure:"poll_interval"`

	// AutoRefresh is the interval between automatic rescans in the
	// terminal UI; zero disables periodic refresh.
	AutoRefresh time.Duration `mapstructure:"auto_refresh"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	dataDir := filepath.Join(homeDir, ".smolwifi")

	return &Config{
		DataDir:  dataDir,
		LogLevel: "info",
		LogFile:  filepath.Join(dataDir, "smolwifi.log"),

		Interface:    "",
		ScanTimeout:  15 * time.Second,
		PollInterval: 500 * time.Millisecond,
		AutoRefresh:  30 * time.Second,
	}
}

// LoadConfig loads configuration from file and environment.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	// Ensure config directory exists
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(cfg.DataDir)
	viper.AddConfigPath(".")

	// Set defaults in viper
	viper.SetDefault("data_dir", cfg.DataDir)
	viper.SetDefault("log_level", cfg.LogLevel)
	viper.SetDefault("log_file", cfg.LogFile)
	viper.SetDefault("interface", cfg.Interface)
	viper.SetDefault("scan_timeout", cfg.ScanTimeout)
	viper.SetDefault("poll_interval", cfg.PollInterval)
	viper.SetDefault("auto_refresh", cfg.AutoRefresh)

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	// Unmarshal into config struct
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.ScanTimeout <= 0 {
		cfg.ScanTimeout = 15 * time.Second
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 500 * time.Millisecond
	}

	return cfg, nil
}

// EnsureDir ensures a directory exists.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
