package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for zendash.
// It aggregates all sub-configurations and is populated by merging values
// from a .env file, environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Feeds holds endpoints and parameters for the external content feeds
	// (wallpaper and quote).
	Feeds Feeds `envPrefix:"FEEDS_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local key-value database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds settings for the local SQLite key-value store.
type DB struct {
	// Path is the filesystem path of the SQLite database file. When the
	// file cannot be opened the dashboard silently falls back to an
	// in-memory store.
	// Env: STORAGE_DB_PATH
	Path string `env:"PATH"`
}

// Feeds holds network settings for the external content feeds.
// All feed failures degrade to local fallbacks, so none of these endpoints
// are required for the dashboard to function.
type Feeds struct {
	// WallpaperBaseURL is the base URL of the image-by-seed service
	// (e.g. "https://picsum.photos").
	// Env: FEEDS_WALLPAPER_URL
	WallpaperBaseURL string `env:"WALLPAPER_URL"`

	// QuoteBaseURL is the base URL of the random-quote service
	// (e.g. "https://dummyjson.com").
	// Env: FEEDS_QUOTE_URL
	QuoteBaseURL string `env:"QUOTE_URL"`

	// RequestTimeout is the timeout for a single outbound feed request.
	// Env: FEEDS_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// WallpaperWidth and WallpaperHeight select the requested image size.
	// Env: FEEDS_WALLPAPER_WIDTH / FEEDS_WALLPAPER_HEIGHT
	WallpaperWidth  int `env:"WALLPAPER_WIDTH"`
	WallpaperHeight int `env:"WALLPAPER_HEIGHT"`

	// WallpaperBlur is the blur level requested from the image service.
	// Env: FEEDS_WALLPAPER_BLUR
	WallpaperBlur int `env:"WALLPAPER_BLUR"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// DailyInterval is the period of the daily-update worker.
	// Env: WORKERS_DAILY_INTERVAL
	DailyInterval time.Duration `env:"DAILY_INTERVAL"`
}

// Configuration defaults. Merged in last, so any explicitly configured value
// wins over them.
const (
	DefaultDBPath           = "zendash.db"
	DefaultWallpaperBaseURL = "https://picsum.photos"
	DefaultQuoteBaseURL     = "https://dummyjson.com"
	DefaultRequestTimeout   = 10 * time.Second
	DefaultWallpaperWidth   = 1920
	DefaultWallpaperHeight  = 1080
	DefaultWallpaperBlur    = 2
	DefaultDailyInterval    = 24 * time.Hour
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DB: DB{Path: DefaultDBPath},
		},
		Feeds: Feeds{
			WallpaperBaseURL: DefaultWallpaperBaseURL,
			QuoteBaseURL:     DefaultQuoteBaseURL,
			RequestTimeout:   DefaultRequestTimeout,
			WallpaperWidth:   DefaultWallpaperWidth,
			WallpaperHeight:  DefaultWallpaperHeight,
			WallpaperBlur:    DefaultWallpaperBlur,
		},
		Workers: Workers{
			DailyInterval: DefaultDailyInterval,
		},
	}
}

// validate checks that the final merged [StructuredConfig] satisfies the
// dashboard's invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.Path == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Feeds.WallpaperBaseURL == "" || cfg.Feeds.QuoteBaseURL == "" || cfg.Feeds.RequestTimeout <= 0 {
		return ErrInvalidFeedConfigs
	}

	if cfg.Workers.DailyInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// GetDashboardConfig loads, merges, and validates the zendash configuration
// from all available sources in the following priority order (earlier
// sources win for non-zero fields):
//  1. Environment variables (after an optional .env file is loaded)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetDashboardConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
