package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-trip-planner/internal/config"
	"github.com/MKhiriev/go-trip-planner/internal/logger"
)

// Storages groups the repositories handed to the service layer.
type Storages struct {
	UserRepository      UserRepository
	ItineraryRepository ItineraryRepository

	db *DB
}

// NewStorages initialises the storage layer:
//  1. Opens a connection with the driver resolved from cfg.DB.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the repositories to that connection.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.DB.ResolveDriver()).Msg("creating new storages...")

	db, err := NewDB(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:      NewUserRepository(db, logger),
		ItineraryRepository: NewItineraryRepository(db, logger),
		db:                  db,
	}, nil
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
