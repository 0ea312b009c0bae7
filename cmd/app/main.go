package main

// @title todoapi
// @version 1.0.0
// @description CRUD over todo items.

// @BasePath /

import (
	"todoapi/config"
	"todoapi/di"
	"todoapi/docs"
	"todoapi/helper"
	"todoapi/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	docs.SwaggerInfo.Title = cfg.App.Name
	docs.SwaggerInfo.Version = cfg.App.Version

	if cfg.DB.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http, cleanup, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}
	defer cleanup()

	if err := http.Serve(); err != nil {
		log.Error().Err(err).Msg("HTTP server stopped with error")
	}
}
