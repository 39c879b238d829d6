// Package config loads layered TOML and environment configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/trialsearch/internal/highlight"
)

// EnvPrefix namespaces environment overrides: TRIALSEARCH_SEARCH__STALE_TIME
// sets search.stale_time.
const EnvPrefix = "TRIALSEARCH_"

const (
	LayoutAuto    = "auto"
	LayoutDesktop = "desktop"
	LayoutMobile  = "mobile"

	OpenBrowser = "browser"
	OpenPrint   = "print"
)

type Config struct {
	API       APIConfig       `koanf:"api"`
	Search    SearchConfig    `koanf:"search"`
	Highlight HighlightConfig `koanf:"highlight"`
	UI        UIConfig        `koanf:"ui"`
	Log       LogConfig       `koanf:"log"`
}

// APIConfig holds the disease name service settings.
type APIConfig struct {
	BaseURL     string        `koanf:"base_url"`
	ServiceKey  string        `koanf:"service_key"`
	Rows        int           `koanf:"rows"`         // numOfRows (default: 10)
	Timeout     time.Duration `koanf:"timeout"`      // per attempt (default: 10s)
	MinInterval time.Duration `koanf:"min_interval"` // spacing between requests (default: 0)
	MaxRetries  int           `koanf:"max_retries"`  // 5xx/transport retries (default: 2)
}

// SearchConfig holds the search interaction settings.
type SearchConfig struct {
	BaseURL             string        `koanf:"base_url"`              // trial search page, target appended
	StaleTime           time.Duration `koanf:"stale_time"`            // default: 2m
	CacheSize           int           `koanf:"cache_size"`            // default: 128
	DesktopDebounce     time.Duration `koanf:"desktop_debounce"`      // default: 1s, negative disables
	MobileFetchDebounce time.Duration `koanf:"mobile_fetch_debounce"` // default: 300ms, negative disables
	RequestTimeout      time.Duration `koanf:"request_timeout"`       // default: 15s
}

// HighlightConfig describes the label markup of the service.
type HighlightConfig struct {
	Marker    string `koanf:"marker"`    // default: "|"
	Separator string `koanf:"separator"` // default: none
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Layout           string `koanf:"layout"`            // "auto", "desktop", "mobile"
	MobileBreakpoint int    `koanf:"mobile_breakpoint"` // columns (default: 60)
	Locale           string `koanf:"locale"`            // "en" or "ko" (default: "ko")
	MaxVisible       int    `koanf:"max_visible"`       // dropdown rows (default: 8)
	OpenWith         string `koanf:"open_with"`         // "browser" or "print"
	Icons            string `koanf:"icons"`             // "nerd", "unicode", or "none"
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `koanf:"level"` // debug, info, warn, error (default: info)
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/trialsearch/trialsearch.log
}

// Load reads the config files and environment. explicitPath, when set, is
// loaded last among the files and must exist.
func Load(explicitPath string) (*Config, error) {
	paths := getConfigPaths()
	if explicitPath != "" {
		path := expandPath(explicitPath)
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		paths = append(paths, path)
	}
	return load(paths, EnvPrefix)
}

func load(paths []string, envPrefix string) (*Config, error) {
	k := koanf.New(".")

	// Files in order of priority (last wins)
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, err
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	if envPrefix != "" {
		if err := k.Load(env.Provider(envPrefix, ".", envKey(envPrefix)), nil); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}
	cfg.API.BaseURL = strings.TrimSuffix(cfg.API.BaseURL, "/")

	return cfg, nil
}

// envKey maps TRIALSEARCH_SEARCH__STALE_TIME to search.stale_time.
func envKey(prefix string) func(string) string {
	return func(s string) string {
		s = strings.TrimPrefix(s, prefix)
		return strings.ReplaceAll(strings.ToLower(s), "__", ".")
	}
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/trialsearch/config.toml
		filepath.Join(xdg.ConfigHome, "trialsearch", "config.toml"),
		// 2. ./trialsearch.toml (pwd)
		"trialsearch.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetAPIConfig returns the API configuration with defaults applied.
func (c *Config) GetAPIConfig() APIConfig {
	cfg := c.API
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://apis.data.go.kr/B551182/diseaseInfoService/getDissNameCodeList"
	}
	if cfg.Rows <= 0 || cfg.Rows > 100 {
		cfg.Rows = 10
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.MinInterval < 0 {
		cfg.MinInterval = 0
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	} else if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 2
	}
	return cfg
}

// GetSearchConfig returns the search configuration with defaults applied.
func (c *Config) GetSearchConfig() SearchConfig {
	cfg := c.Search
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://clinicaltrialskorea.com/studies?condition="
	}
	if cfg.StaleTime <= 0 {
		cfg.StaleTime = 2 * time.Minute
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 128
	}
	// Negative debounces pass through: they turn debouncing off.
	if cfg.DesktopDebounce == 0 {
		cfg.DesktopDebounce = time.Second
	}
	if cfg.MobileFetchDebounce == 0 {
		cfg.MobileFetchDebounce = 300 * time.Millisecond
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}
	return cfg
}

// HighlightParser returns the label parser for the configured markup.
func (c *Config) HighlightParser() highlight.Parser {
	return highlight.ParserFor(c.Highlight.Marker, c.Highlight.Separator)
}

// GetUIConfig returns the UI configuration with defaults applied.
func (c *Config) GetUIConfig() UIConfig {
	cfg := c.UI
	switch cfg.Layout {
	case LayoutDesktop, LayoutMobile:
	default:
		cfg.Layout = LayoutAuto
	}
	if cfg.MobileBreakpoint <= 0 {
		cfg.MobileBreakpoint = 60
	}
	if cfg.Locale != "en" {
		cfg.Locale = "ko"
	}
	if cfg.MaxVisible <= 0 {
		cfg.MaxVisible = 8
	}
	if cfg.OpenWith != OpenPrint {
		cfg.OpenWith = OpenBrowser
	}
	switch cfg.Icons {
	case "nerd", "none":
	default:
		cfg.Icons = "unicode"
	}
	return cfg
}

// GetLogConfig returns the log configuration with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log
	switch strings.ToLower(cfg.Level) {
	case "debug", "info", "warn", "error":
		cfg.Level = strings.ToLower(cfg.Level)
	default:
		cfg.Level = "info"
	}
	if cfg.File == "" {
		cfg.File = filepath.Join(xdg.StateHome, "trialsearch", "trialsearch.log")
	}
	return cfg
}
