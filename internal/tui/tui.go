package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MaulanaR/zendash/internal/feeds"
	"github.com/MaulanaR/zendash/internal/logger"
	"github.com/MaulanaR/zendash/internal/service"
)

type TUI struct {
	service    service.DashboardService
	wallpapers *feeds.WallpaperFeed
	quotes     *feeds.QuoteFeed
	logger     *logger.Logger
}

func New(svc service.DashboardService, wallpapers *feeds.WallpaperFeed, quotes *feeds.QuoteFeed, log *logger.Logger) *TUI {
	return &TUI{
		service:    svc,
		wallpapers: wallpapers,
		quotes:     quotes,
		logger:     log,
	}
}

// Run blocks until the user quits the dashboard.
//
// Mouse all-motion reporting drives the note drag gesture; focus reporting
// lets the model abandon a gesture when the terminal loses focus.
func (t *TUI) Run(ctx context.Context) error {
	model := newDashboardModel(ctx, t.service, t.wallpapers, t.quotes)

	_, err := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	).Run()
	return err
}
