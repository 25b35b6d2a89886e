// Package app wires the dashboard together: storage, state service, feeds,
// background workers and the terminal UI.
package app

import (
	"context"

	"github.com/MaulanaR/zendash/internal/config"
	"github.com/MaulanaR/zendash/internal/feeds"
	"github.com/MaulanaR/zendash/internal/logger"
	"github.com/MaulanaR/zendash/internal/service"
	"github.com/MaulanaR/zendash/internal/store"
	"github.com/MaulanaR/zendash/internal/tui"
	"github.com/MaulanaR/zendash/internal/utils"
	"github.com/MaulanaR/zendash/internal/workers"
)

type App struct {
	service service.DashboardService
	ui      *tui.TUI
	daily   *workers.DailyUpdateWorker
	startup *workers.Workers
	logger  *logger.Logger
}

func NewApp(cfg *config.StructuredConfig, log *logger.Logger) *App {
	ctx := log.WithContext(context.Background())

	storage := store.NewStorage(ctx, cfg.Storage, log)
	svc := service.NewDashboardService(storage, utils.NewUUIDGenerator(), log)

	httpClient := utils.NewHTTPClient(cfg.Feeds.RequestTimeout)
	wallpapers := feeds.NewWallpaperFeed(httpClient, cfg.Feeds, log)
	quotes := feeds.NewQuoteFeed(httpClient, cfg.Feeds, log)

	daily := workers.NewDailyUpdateWorker(cfg.Workers.DailyInterval, log)
	startup := workers.NewWorkers(
		workers.NewBootstrapWorker(storage, log),
		daily,
	)

	return &App{
		service: svc,
		ui:      tui.New(svc, wallpapers, quotes, log),
		daily:   daily,
		startup: startup,
		logger:  log,
	}
}

// Run seeds first-run state, loads the snapshot and hands the terminal to
// the dashboard until the user quits.
func (a *App) Run() error {
	ctx := a.logger.WithContext(context.Background())

	a.startup.Run(ctx)
	defer a.daily.Stop()

	a.service.Load(ctx)

	return a.ui.Run(ctx)
}
