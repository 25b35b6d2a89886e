package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderFailsValidation verifies that building with no
// sources at all yields a validation error (no defaults were merged).
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	_, err := newConfigBuilder().build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestBuild_DefaultsOnly verifies that the built-in defaults alone produce a
// valid configuration.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultDBPath, cfg.Storage.DB.Path)
	assert.Equal(t, DefaultWallpaperBaseURL, cfg.Feeds.WallpaperBaseURL)
	assert.Equal(t, DefaultQuoteBaseURL, cfg.Feeds.QuoteBaseURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.Feeds.RequestTimeout)
	assert.Equal(t, DefaultWallpaperWidth, cfg.Feeds.WallpaperWidth)
	assert.Equal(t, DefaultWallpaperHeight, cfg.Feeds.WallpaperHeight)
	assert.Equal(t, DefaultDailyInterval, cfg.Workers.DailyInterval)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies that a field set by an earlier source
// is not overwritten by a later one.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{Path: "from-env.db"}}},
		&StructuredConfig{Storage: Storage{DB: DB{Path: "from-flags.db"}}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-env.db", cfg.Storage.DB.Path)
}

// TestBuild_MergesAcrossSources verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesAcrossSources(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{Path: "merge.db"}}},
		&StructuredConfig{Feeds: Feeds{QuoteBaseURL: "https://quotes.test"}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "merge.db", cfg.Storage.DB.Path)
	assert.Equal(t, "https://quotes.test", cfg.Feeds.QuoteBaseURL)
	assert.Equal(t, DefaultWallpaperBaseURL, cfg.Feeds.WallpaperBaseURL)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_MergesFileValues verifies that a JSON file referenced by an
// earlier source is loaded and merged.
func TestWithJSON_MergesFileValues(t *testing.T) {
	jsonPath := writeTempJSONConfig(t, map[string]any{
		"feeds": map[string]any{
			"quote_url":       "https://json-quotes.test",
			"request_timeout": "42s",
		},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: jsonPath})
	b.withJSON().withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://json-quotes.test", cfg.Feeds.QuoteBaseURL)
	assert.Equal(t, 42*time.Second, cfg.Feeds.RequestTimeout)
}

// TestWithJSON_MissingFileSetsError verifies that a dangling JSON path is
// reported at build time.
func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})
	b.withJSON()

	_, err := b.build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

// TestWithJSON_NoPathIsNoop verifies that withJSON does nothing when no
// source specified a JSON path.
func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.withJSON().withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, DefaultQuoteBaseURL, cfg.Feeds.QuoteBaseURL)
}
