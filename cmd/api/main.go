package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"example.com/activities/internal/api"
	"example.com/activities/internal/config"
	"example.com/activities/internal/domain"
	"example.com/activities/internal/logging"
	"example.com/activities/internal/persistence/memory"
	httptransport "example.com/activities/internal/transport/http"
)

func main() {
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = logger.Sync() }()

	seed := memory.DefaultSeed()
	if cfg.ActivitiesFile != "" {
		loaded, err := memory.LoadSeedFile(cfg.ActivitiesFile)
		if err != nil {
			logger.Error("failed to load activities file", zap.String("path", cfg.ActivitiesFile), zap.Error(err))
			os.Exit(1)
		}
		seed = loaded
	}

	repo := memory.NewRepository(seed)
	service := domain.NewService(repo)
	handler := api.NewHandler(service, logger)

	router := handler.Routes(api.RouterConfig{
		StaticDir:   cfg.StaticDir,
		CORSOrigins: cfg.CORSOrigins,
	})

	catalog, _ := repo.List(context.Background())
	logger.Info("activity directory seeded",
		zap.Int("activities", len(catalog)),
		zap.Strings("names", api.SortedNames(catalog)),
	)

	server := httptransport.NewServer(httptransport.ServerConfig{
		Address:         cfg.HTTPAddress,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		IdleTimeout:     cfg.IdleTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, router, logger)

	if err := server.Run(); err != nil {
		logger.Error("server error", zap.Error(err))
		os.Exit(1)
	}
}
