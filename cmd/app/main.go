package main

import (
	"gymhub/config"
	"gymhub/di"
	"gymhub/helper"
	"gymhub/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Gymhub API
// @version 1.0
// @description Gym scheduling service: accounts, activities, locations, sessions, bookings and weekly XML exports.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-auth-key
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
