package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON file source.
// Durations are accepted as either strings ("10s") or nanosecond numbers.
type StructuredJSONConfig struct {
	Storage struct {
		DB struct {
			Path string `json:"path"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Feeds struct {
		WallpaperBaseURL string   `json:"wallpaper_url"`
		QuoteBaseURL     string   `json:"quote_url"`
		RequestTimeout   Duration `json:"request_timeout"`
		WallpaperWidth   int      `json:"wallpaper_width"`
		WallpaperHeight  int      `json:"wallpaper_height"`
		WallpaperBlur    int      `json:"wallpaper_blur"`
	} `json:"feeds,omitempty"`

	Workers struct {
		DailyInterval Duration `json:"daily_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Storage: Storage{
			DB: DB{
				Path: jsonCfg.Storage.DB.Path,
			},
		},
		Feeds: Feeds{
			WallpaperBaseURL: jsonCfg.Feeds.WallpaperBaseURL,
			QuoteBaseURL:     jsonCfg.Feeds.QuoteBaseURL,
			RequestTimeout:   time.Duration(jsonCfg.Feeds.RequestTimeout),
			WallpaperWidth:   jsonCfg.Feeds.WallpaperWidth,
			WallpaperHeight:  jsonCfg.Feeds.WallpaperHeight,
			WallpaperBlur:    jsonCfg.Feeds.WallpaperBlur,
		},
		Workers: Workers{
			DailyInterval: time.Duration(jsonCfg.Workers.DailyInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
