package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"hotelbooking/internal/app"
	"hotelbooking/internal/config"
	"hotelbooking/internal/database"
	"hotelbooking/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	log.Logger = observability.NewLogger(cfg.AppEnv)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := app.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	log.Info().Int("models", len(app.Models())).Msg("migration completed")
}
