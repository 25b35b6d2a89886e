package feeds

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"time"

	"github.com/MaulanaR/zendash/internal/config"
	"github.com/MaulanaR/zendash/internal/logger"
	"github.com/MaulanaR/zendash/internal/utils"
)

// Gradient is a named color ramp used to tint the dashboard frame. It is the
// terminal stand-in for a CSS background gradient.
type Gradient struct {
	Name  string
	Stops []string
}

// gradients is the fixed fallback palette. Order matters: the seeded pick
// must be stable across runs within the same hour.
var gradients = []Gradient{
	{Name: "blue sky", Stops: []string{"#1e3c72", "#2a5298", "#7e8ba3"}},
	{Name: "mosque dome", Stops: []string{"#134e5e", "#71b280"}},
	{Name: "night mosque", Stops: []string{"#232526", "#414345"}},
	{Name: "red pattern", Stops: []string{"#8b0000", "#dc143c", "#ff6b6b"}},
	{Name: "islamic blue", Stops: []string{"#2c3e50", "#3498db"}},
	{Name: "royal", Stops: []string{"#1a237e", "#3949ab", "#5e35b1"}},
	{Name: "dark mosque", Stops: []string{"#263238", "#37474f", "#455a64"}},
	{Name: "brown desert", Stops: []string{"#3e2723", "#5d4037", "#8d6e63"}},
}

// Wallpaper is the fetched backdrop: the remote image URL when the feed
// answered, plus the gradient used to tint the frame either way.
type Wallpaper struct {
	// ImageURL is empty when the feed was unreachable and only the gradient
	// applies.
	ImageURL string
	Gradient Gradient
	Remote   bool
}

// WallpaperFeed fetches the hourly backdrop from an image-by-seed service.
type WallpaperFeed struct {
	client *utils.HTTPClient
	cfg    config.Feeds
	logger *logger.Logger
}

func NewWallpaperFeed(client *utils.HTTPClient, cfg config.Feeds, log *logger.Logger) *WallpaperFeed {
	return &WallpaperFeed{client: client, cfg: cfg, logger: log}
}

// WallpaperSeed returns the image seed for the given moment. It changes once
// an hour so the backdrop stays put within the hour but rotates through the
// day.
func WallpaperSeed(now time.Time) string {
	return fmt.Sprintf("zendash-%d-%d", now.Day(), now.Hour())
}

// Fetch returns the wallpaper for the given moment. A transport error or a
// non-2xx status degrades to a random gradient; Fetch itself never fails.
func (w *WallpaperFeed) Fetch(ctx context.Context, now time.Time) Wallpaper {
	log := logger.FromContext(ctx)

	seed := WallpaperSeed(now)
	url := fmt.Sprintf("%s/seed/%s/%d/%d",
		w.cfg.WallpaperBaseURL, seed, w.cfg.WallpaperWidth, w.cfg.WallpaperHeight)

	resp, err := w.client.R().
		SetContext(ctx).
		SetQueryString(fmt.Sprintf("grayscale&blur=%d", w.cfg.WallpaperBlur)).
		Get(url)
	if err != nil {
		log.Warn().Err(err).
			Str("func", "WallpaperFeed.Fetch").
			Str("seed", seed).
			Msg("wallpaper fetch failed, using gradient fallback")
		return FallbackWallpaper()
	}
	if !resp.IsSuccess() {
		log.Warn().
			Str("func", "WallpaperFeed.Fetch").
			Str("seed", seed).
			Int("status", resp.StatusCode()).
			Msg("wallpaper feed returned error status, using gradient fallback")
		return FallbackWallpaper()
	}

	return Wallpaper{
		ImageURL: resp.Request.URL,
		Gradient: seededGradient(seed),
		Remote:   true,
	}
}

// FallbackWallpaper returns a uniformly random gradient with no image URL.
func FallbackWallpaper() Wallpaper {
	return Wallpaper{Gradient: gradients[rand.IntN(len(gradients))]}
}

// seededGradient picks the accent gradient deterministically from the seed,
// so the tint matches the remote image for the whole hour.
func seededGradient(seed string) Gradient {
	h := fnv.New32a()
	h.Write([]byte(seed))
	return gradients[int(h.Sum32())%len(gradients)]
}
