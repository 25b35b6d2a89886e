package tui

import (
	"time"

	"github.com/MaulanaR/zendash/internal/feeds"
	"github.com/MaulanaR/zendash/models"
)

type clockTickMsg time.Time

type greetingTickMsg time.Time

type wallpaperTickMsg time.Time

type wallpaperLoadedMsg struct {
	wallpaper feeds.Wallpaper
}

type quoteLoadedMsg struct {
	quote models.Quote
}

type copiedMsg struct{}

type clearStatusMsg struct{}
