package main

import (
	"fmt"

	"github.com/MaulanaR/zendash/internal/app"
	"github.com/MaulanaR/zendash/internal/config"
	"github.com/MaulanaR/zendash/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewDashboardLogger("zendash")
	cfg, err := config.GetDashboardConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = app.NewApp(cfg, log).Run(); err != nil {
		log.Fatal().Err(err).Msg("dashboard run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
