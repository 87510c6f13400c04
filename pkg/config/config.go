// Package config loads gallery settings.
//
// Precedence, lowest to highest: built-in defaults, the YAML config file,
// environment variables (optionally seeded from a .env file), then flags
// applied by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/joho/godotenv"
	"github.com/kerbaras/purrfect/pkg/data"
	"github.com/kerbaras/purrfect/pkg/sources"
	"gopkg.in/yaml.v3"
)

const (
	appName    = "purrfect"
	configFile = "config.yaml"
	logFile    = "purrfect.log"

	EnvAPIURL   = "PURRFECT_API_URL"
	EnvMode     = "PURRFECT_MODE"
	EnvLogLevel = "PURRFECT_LOG_LEVEL"
)

type Config struct {
	APIURL         string        `yaml:"api_url"`
	DefaultMode    string        `yaml:"default_mode"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	LogLevel       string        `yaml:"log_level"`
	LogFile        string        `yaml:"log_file"`
}

func Default() *Config {
	cfg := &Config{
		APIURL:      sources.DefaultCatAPIURL,
		DefaultMode: data.GridMode.String(),
	}
	if dir, err := GetConfigDir(); err == nil {
		cfg.LogFile = filepath.Join(dir, logFile)
	}
	return cfg
}

// GetConfigDir returns the OS-appropriate configuration directory:
//   - Linux: $XDG_CONFIG_HOME/purrfect or $HOME/.config/purrfect
//   - macOS: $HOME/.config/purrfect
//   - Windows: %LOCALAPPDATA%\purrfect
func GetConfigDir() (string, error) {
	if runtime.GOOS == "windows" {
		if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
			return filepath.Join(dir, appName), nil
		}
	} else if runtime.GOOS != "darwin" {
		if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
			return filepath.Join(dir, appName), nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	if runtime.GOOS == "windows" {
		return filepath.Join(home, "AppData", "Local", appName), nil
	}
	return filepath.Join(home, ".config", appName), nil
}

func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Load reads the config file at path (the default location when empty) and
// applies environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv loads variables from a .env file without overriding ones
// already set. A missing file is ignored.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.APIURL = v
	}
	if v := os.Getenv(EnvMode); v != "" {
		c.DefaultMode = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

func (c *Config) Validate() error {
	if _, err := data.ParseViewMode(c.DefaultMode); err != nil {
		return fmt.Errorf("invalid default_mode: %w", err)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must not be negative, got %s", c.RequestTimeout)
	}
	if c.APIURL == "" {
		c.APIURL = sources.DefaultCatAPIURL
	}
	return nil
}

// Mode returns the parsed default view mode.
func (c *Config) Mode() data.ViewMode {
	m, _ := data.ParseViewMode(c.DefaultMode)
	return m
}
