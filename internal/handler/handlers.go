package handler

import (
	"github.com/MKhiriev/go-trip-planner/internal/config"
	"github.com/MKhiriev/go-trip-planner/internal/handler/http"
	"github.com/MKhiriev/go-trip-planner/internal/logger"
	"github.com/MKhiriev/go-trip-planner/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg, logger)}, nil
}
