package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-trip-planner/internal/logger"
	"github.com/MKhiriev/go-trip-planner/internal/store"
	"github.com/MKhiriev/go-trip-planner/internal/validators"
	"github.com/MKhiriev/go-trip-planner/models"
)

type itineraryService struct {
	repository store.ItineraryRepository
	generator  ItineraryGenerator
	logger     *logger.Logger
}

func NewItineraryService(repository store.ItineraryRepository, generator ItineraryGenerator, logger *logger.Logger) ItineraryService {
	return &itineraryService{
		repository: repository,
		generator:  generator,
		logger:     logger,
	}
}

func (s *itineraryService) Generate(ctx context.Context, req models.ItineraryRequest) (models.ItineraryPreview, error) {
	trip, err := validators.ParseTrip(req)
	if err != nil {
		return models.ItineraryPreview{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	days, err := s.generator.Generate(ctx, trip)
	if err != nil {
		return models.ItineraryPreview{}, err
	}

	return models.ItineraryPreview{Trip: trip, Days: days}, nil
}

// Save stores a client-reviewed itinerary. days_count is recomputed from the
// dates and a disagreeing client value is rejected.
func (s *itineraryService) Save(ctx context.Context, userID int64, req models.SaveItineraryRequest) (models.Itinerary, error) {
	draft, err := validators.ParseDraft(req)
	if err != nil {
		return models.Itinerary{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	saved, err := s.repository.SaveItinerary(ctx, models.Itinerary{
		UserID: userID,
		Trip:   draft.Trip,
		Days:   draft.Days,
	})
	if err != nil {
		return models.Itinerary{}, fmt.Errorf("saving itinerary: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("user_id", userID).Int64("id", saved.ID).Msg("itinerary saved")
	return saved, nil
}

func (s *itineraryService) List(ctx context.Context, userID int64) ([]models.Itinerary, error) {
	itineraries, err := s.repository.GetItineraries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing itineraries: %w", err)
	}
	return itineraries, nil
}

func (s *itineraryService) Get(ctx context.Context, userID, id int64) (models.Itinerary, error) {
	itinerary, err := s.repository.GetItinerary(ctx, userID, id)
	if err != nil {
		return models.Itinerary{}, mapStoreError(err)
	}
	return itinerary, nil
}

// Update checks ownership before calling the generator, so no completion is
// requested for an itinerary that cannot be written.
func (s *itineraryService) Update(ctx context.Context, userID, id int64, req models.ItineraryRequest) (models.Itinerary, error) {
	trip, err := validators.ParseTrip(req)
	if err != nil {
		return models.Itinerary{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	existing, err := s.repository.GetItinerary(ctx, userID, id)
	if err != nil {
		return models.Itinerary{}, mapStoreError(err)
	}

	days, err := s.generator.Generate(ctx, trip)
	if err != nil {
		return models.Itinerary{}, err
	}

	existing.Trip = trip
	existing.Days = days

	updated, err := s.repository.UpdateItinerary(ctx, existing)
	if err != nil {
		return models.Itinerary{}, mapStoreError(err)
	}

	logger.FromContext(ctx).Info().Int64("user_id", userID).Int64("id", id).Msg("itinerary regenerated")
	return updated, nil
}

func (s *itineraryService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repository.DeleteItinerary(ctx, userID, id); err != nil {
		return mapStoreError(err)
	}

	logger.FromContext(ctx).Info().Int64("user_id", userID).Int64("id", id).Msg("itinerary deleted")
	return nil
}

func mapStoreError(err error) error {
	if errors.Is(err, store.ErrItineraryNotFound) {
		return fmt.Errorf("%w: %w", ErrItineraryNotFound, err)
	}
	return err
}
