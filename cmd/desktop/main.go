package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/tomz197/spaceimpact/internal/config"
	"github.com/tomz197/spaceimpact/internal/desktop"
	"github.com/tomz197/spaceimpact/internal/leaderboard"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "spaceimpact",
	})

	settings, err := config.LoadFromEnv()
	if err != nil {
		logger.Fatal("loading settings", "err", err)
	}

	store := leaderboard.NewFileStore(settings.LeaderboardPath, logger)
	game := desktop.NewGame(desktop.Options{
		Store:    store,
		Rand:     settings.Rand(),
		Logger:   logger,
		TickRate: settings.TickRate,
	})

	logger.Info("starting desktop game", "leaderboard", store.Path(), "tps", settings.TickRate)
	if err := desktop.Run(game); err != nil {
		logger.Fatal("game error", "err", err)
	}
}
