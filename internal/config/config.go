// Package config handles the global configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents configuration stored in ~/.config/pubman/config.yml.
type Config struct {
	// DatabasePath is the location of the publication database.
	DatabasePath string `yaml:"database_path,omitempty"`
}

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "pubman"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
	// DBFile is the default database file name under XDG_DATA_HOME.
	DBFile = "pubman.db"

	// DatabaseEnv overrides the configured database path when set.
	DatabaseEnv = "PUBMAN_DB"
)

// cache holds the loaded config for the lifetime of the process.
var cache *Config

// Path returns the path to the config file. Respects XDG_CONFIG_HOME,
// defaults to ~/.config/pubman/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// Load reads the configuration file. Returns an empty config (not an error)
// if the file doesn't exist.
func Load() (*Config, error) {
	if cache != nil {
		return cache, nil
	}

	path := Path()
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cache = &Config{}
			return cache, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.DatabasePath != "" {
		cfg.DatabasePath = ExpandTilde(cfg.DatabasePath)
	}

	cache = &cfg
	return &cfg, nil
}

// ResetCache clears the cached config. Useful for testing.
func ResetCache() {
	cache = nil
}

// Save writes the configuration file, creating parent directories as needed.
func (c *Config) Save() error {
	path := Path()
	if path == "" {
		return fmt.Errorf("cannot determine config path")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// DatabasePath resolves the database location. Precedence: PUBMAN_DB
// environment variable, then database_path from the config file, then the
// default under XDG_DATA_HOME.
func DatabasePath() (string, error) {
	if env := os.Getenv(DatabaseEnv); env != "" {
		return ExpandTilde(env), nil
	}

	cfg, err := Load()
	if err != nil {
		return "", err
	}
	if cfg.DatabasePath != "" {
		return cfg.DatabasePath, nil
	}

	return DefaultDatabasePath(), nil
}

// DefaultDatabasePath returns the database location used when nothing is
// configured. Respects XDG_DATA_HOME, defaults to
// ~/.local/share/pubman/pubman.db.
func DefaultDatabasePath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DBFile
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, ConfigDir, DBFile)
}

// ExpandTilde expands a leading ~ to the user's home directory. Returns the
// path unchanged if it doesn't start with ~.
func ExpandTilde(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
