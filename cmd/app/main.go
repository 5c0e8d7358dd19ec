package main

import (
	"context"
	"hostel/config"
	"hostel/di"
	"hostel/helper"
	"hostel/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Hostel Guest API
// @version 1.0
// @description Guest registration, check-in and check-out, and bed occupancy for a hostel front desk.
// @BasePath /
// @securityDefinitions.apikey StaffID
// @in header
// @name X-Staff-ID
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := di.InitializeService(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	go app.Guests.WatchForms(ctx)

	app.HTTP.OnShutdown(func(shutdownCtx context.Context) {
		cancel()
		app.Close(shutdownCtx)
	})

	app.HTTP.Serve()
}
