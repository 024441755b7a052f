// Package config handles the XDG configuration directory and client settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "taskman"

	// ConfigFile is the optional settings filename.
	ConfigFile = "config.yaml"

	// SessionFile is the stored session token filename.
	SessionFile = "session.json"

	// DefaultBaseURL is the API endpoint used when no config file
	// or environment override is present.
	DefaultBaseURL = "http://localhost:3000"

	// DefaultTimeout is the per-request timeout.
	DefaultTimeout = 10 * time.Second

	// EnvBaseURL overrides the API endpoint.
	EnvBaseURL = "TASKMAN_API_URL"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// BaseURL is the task API endpoint.
	BaseURL string

	// Timeout is the per-request timeout.
	Timeout time.Duration

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// file is the on-disk shape of config.yaml.
type file struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// New creates a Config with the default or specified config directory,
// loading config.yaml if present. Resolution order for the endpoint:
// TASKMAN_API_URL, config.yaml, built-in default.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	cfg := &Config{
		Dir:     dir,
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}

	data, err := os.ReadFile(filepath.Join(dir, ConfigFile))
	if err == nil {
		var f file
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", ConfigFile, err)
		}
		if f.BaseURL != "" {
			cfg.BaseURL = f.BaseURL
		}
		if f.TimeoutSeconds > 0 {
			cfg.Timeout = time.Duration(f.TimeoutSeconds) * time.Second
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}

	if env := os.Getenv(EnvBaseURL); env != "" {
		cfg.BaseURL = env
	}

	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// SessionPath returns the path to the stored session token file.
func (c *Config) SessionPath() string {
	return filepath.Join(c.Dir, SessionFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}
