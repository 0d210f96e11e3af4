package service

import (
	"fmt"

	"github.com/MKhiriev/go-trip-planner/internal/adapter"
	"github.com/MKhiriev/go-trip-planner/internal/config"
	"github.com/MKhiriev/go-trip-planner/internal/crypto"
	"github.com/MKhiriev/go-trip-planner/internal/logger"
	"github.com/MKhiriev/go-trip-planner/internal/store"
)

type Services struct {
	AuthService      AuthService
	ItineraryService ItineraryService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, contentGenerator adapter.ContentGenerator, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	generator := NewItineraryGenerator(contentGenerator, logger)
	itineraryService := NewItineraryValidationService().
		Wrap(NewItineraryService(storages.ItineraryRepository, generator, logger))

	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, crypto.NewArgon2Hasher(), cfg.App, logger),
		ItineraryService: itineraryService,
		AppInfoService:   appInfoService,
	}, nil
}
