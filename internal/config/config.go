package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the dashboard settings.
type Config struct {
	APIURL          string
	RequestTimeout  time.Duration
	Theme           string
	LogFile         string
	DefaultQuery    string
	DefaultLocation string
	Schedule        string
	Timezone        string
}

const (
	defaultConfigPath     = "~/.config/lookout/config.toml"
	defaultLogFile        = "~/.local/state/lookout/lookout.log"
	defaultAPIURL         = "http://127.0.0.1:8001"
	defaultRequestTimeout = 30 * time.Second
	defaultTheme          = "Nightfox"
	defaultSchedule       = "0 9 * * *"
	defaultTimezone       = "Asia/Kolkata"
)

// Environment variables that override file values.
const (
	EnvAPIURL = "LOOKOUT_API_URL"
	EnvTheme  = "LOOKOUT_THEME"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		APIURL:         defaultAPIURL,
		RequestTimeout: defaultRequestTimeout,
		Theme:          defaultTheme,
		LogFile:        mustExpand(defaultLogFile),
		Schedule:       defaultSchedule,
		Timezone:       defaultTimezone,
	}
}

// DefaultPath returns the expanded default config location.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

// Load reads the config file, falling back to defaults when it is missing,
// then applies environment overrides.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.applyEnv()
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIURL          string  `toml:"api_url"`
		RequestTimeout  string  `toml:"request_timeout"`
		Theme           string  `toml:"theme"`
		LogFile         *string `toml:"log_file"`
		DefaultQuery    string  `toml:"default_query"`
		DefaultLocation string  `toml:"default_location"`
		Schedule        string  `toml:"schedule"`
		Timezone        string  `toml:"timezone"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse request_timeout: %w", err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("parse request_timeout: must be positive, got %s", v)
		}
		cfg.RequestTimeout = d
	}

	cfg.APIURL = orDefault(raw.APIURL, defaultAPIURL)
	cfg.Theme = orDefault(raw.Theme, defaultTheme)
	cfg.Schedule = orDefault(raw.Schedule, defaultSchedule)
	cfg.Timezone = orDefault(raw.Timezone, defaultTimezone)
	cfg.DefaultQuery = strings.TrimSpace(raw.DefaultQuery)
	cfg.DefaultLocation = strings.TrimSpace(raw.DefaultLocation)
	if raw.LogFile != nil {
		// An explicit empty log_file disables file logging.
		cfg.LogFile = ""
		if v := strings.TrimSpace(*raw.LogFile); v != "" {
			cfg.LogFile = mustExpand(v)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// Location resolves the configured timezone, falling back to UTC.
func (c Config) Location() *time.Location {
	name := strings.TrimSpace(c.Timezone)
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvAPIURL)); v != "" {
		c.APIURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTheme)); v != "" {
		c.Theme = v
	}
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
