package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-trip-planner/internal/adapter"
	"github.com/MKhiriev/go-trip-planner/internal/config"
	"github.com/MKhiriev/go-trip-planner/internal/handler"
	"github.com/MKhiriev/go-trip-planner/internal/logger"
	"github.com/MKhiriev/go-trip-planner/internal/server"
	"github.com/MKhiriev/go-trip-planner/internal/service"
	"github.com/MKhiriev/go-trip-planner/internal/store"
	"github.com/MKhiriev/go-trip-planner/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("trip-planner-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if buildVersion != "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("env", cfg.Env).
		Str("address", cfg.Server.HTTPAddress).
		Str("db_driver", cfg.Storage.DB.ResolveDriver()).
		Str("genai_model", cfg.Adapter.GenAI.Model).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	contentGenerator, err := adapter.NewGeminiContentGenerator(cfg.Adapter.GenAI, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating content generator")
	}

	services, err := service.NewServices(storages, contentGenerator, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
