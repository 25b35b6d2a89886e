package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from the command line.
//
// Flags:
//
//	-d database file path for the local store
//	-c/-config json file path with configs
//	-wallpaper-url base URL of the image-by-seed service
//	-quote-url base URL of the random-quote service
//	-request-timeout feed request timeout (e.g., "10s")
//	-daily-interval daily update worker period (e.g., "24h")
func ParseFlags() *StructuredConfig {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) *StructuredConfig {
	var dbPath string
	var jsonConfigPath string
	var wallpaperURL string
	var quoteURL string
	var requestTimeout time.Duration
	var dailyInterval time.Duration

	fs.StringVar(&dbPath, "d", "", "Local database file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&wallpaperURL, "wallpaper-url", "", "Wallpaper service base URL")
	fs.StringVar(&quoteURL, "quote-url", "", "Quote service base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Feed request timeout (e.g., 10s)")
	fs.DurationVar(&dailyInterval, "daily-interval", 0, "Daily update period (e.g., 24h)")

	_ = fs.Parse(args)

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{Path: dbPath},
		},
		Feeds: Feeds{
			WallpaperBaseURL: wallpaperURL,
			QuoteBaseURL:     quoteURL,
			RequestTimeout:   requestTimeout,
		},
		Workers: Workers{
			DailyInterval: dailyInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
