// ABOUTME: Lift configuration management.
// ABOUTME: Handles data directory, log level, and the storage factory function.

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/harperreed/lift/internal/logging"
	"github.com/harperreed/lift/internal/storage"
)

// DBFileName is the database file created inside the data directory.
const DBFileName = "lift.db"

// Config stores lift tool configuration.
type Config struct {
	// DataDir is the directory holding lift.db.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/lift.
	DataDir string `json:"data_dir,omitempty"`

	// LogLevel is one of debug, info, warn, error. Defaults to warn.
	LogLevel string `json:"log_level,omitempty"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// DBPath returns the database file path.
func (c *Config) DBPath() string {
	return filepath.Join(c.GetDataDir(), DBFileName)
}

// GetLogLevel returns the configured log level, defaulting to warn.
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return logging.DefaultLevel
	}
	return c.LogLevel
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage returns a lazily initialized store at DBPath.
// The file is created and seeded on first use.
func (c *Config) OpenStorage(logger *log.Logger) *storage.DB {
	return storage.New(c.DBPath(), storage.WithLogger(logger))
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "lift", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
