package main

import (
	"context"
	stdlog "log"

	"github.com/brightlane/site-api/internal/api"
	"github.com/brightlane/site-api/internal/infrastructure/config"
	"github.com/brightlane/site-api/internal/infrastructure/db/postgres"
	"github.com/brightlane/site-api/internal/infrastructure/storage"
	"github.com/brightlane/site-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatal(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	ctx := context.Background()

	db, err := postgres.Connect(ctx, postgres.Config{
		DSN:           cfg.DatabaseURL,
		AdminUsername: cfg.Admin.Username,
		AdminEmail:    cfg.Admin.Email,
		AdminPassword: cfg.Admin.Password,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	files, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to prepare upload store")
	}

	e := api.NewRouter(cfg, db, files, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
