package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-trip-planner/internal/logger"
	"github.com/MKhiriev/go-trip-planner/models"
)

// itineraryRepository is the SQL-backed implementation of
// [ItineraryRepository]. Queries are built with squirrel and always filter
// on user_id.
type itineraryRepository struct {
	*DB
	logger *logger.Logger
}

func NewItineraryRepository(db *DB, logger *logger.Logger) ItineraryRepository {
	logger.Debug().Msg("creating itinerary repository")
	return &itineraryRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveItinerary inserts itinerary and returns it with ID and CreatedAt set.
func (r *itineraryRepository) SaveItinerary(ctx context.Context, itinerary models.Itinerary) (models.Itinerary, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertItineraryQuery(itinerary)
	if err != nil {
		log.Err(err).
			Str("func", "itineraryRepository.SaveItinerary").
			Int64("user_id", itinerary.UserID).
			Msg("failed to create query")
		return models.Itinerary{}, err
	}

	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&itinerary.ID, timestampColumn{&itinerary.CreatedAt})
	if err != nil {
		log.Err(err).
			Str("func", "itineraryRepository.SaveItinerary").
			Int64("user_id", itinerary.UserID).
			Bool("retryable", r.isRetryable(err)).
			Msg("failed to insert itinerary")
		return models.Itinerary{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return itinerary, nil
}

// GetItineraries returns every itinerary owned by userID, oldest first.
// It returns an empty slice when there are none.
func (r *itineraryRepository) GetItineraries(ctx context.Context, userID int64) ([]models.Itinerary, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectItinerariesQuery(userID)
	if err != nil {
		log.Err(err).
			Str("func", "itineraryRepository.GetItineraries").
			Int64("user_id", userID).
			Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "itineraryRepository.GetItineraries").
			Int64("user_id", userID).
			Bool("retryable", r.isRetryable(err)).
			Msg("failed to execute query for getting itineraries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Itinerary, 0, 16)
	for rows.Next() {
		item, scanErr := scanItinerary(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "itineraryRepository.GetItineraries").
				Int64("user_id", userID).
				Msg("failed to scan itinerary row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "itineraryRepository.GetItineraries").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// GetItinerary returns [ErrItineraryNotFound] when id does not exist or
// belongs to another user.
func (r *itineraryRepository) GetItinerary(ctx context.Context, userID, id int64) (models.Itinerary, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectItineraryQuery(userID, id)
	if err != nil {
		log.Err(err).
			Str("func", "itineraryRepository.GetItinerary").
			Int64("user_id", userID).
			Int64("id", id).
			Msg("failed to create query")
		return models.Itinerary{}, err
	}

	item, err := scanItinerary(r.DB.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Itinerary{}, ErrItineraryNotFound
	case err != nil:
		log.Err(err).
			Str("func", "itineraryRepository.GetItinerary").
			Int64("user_id", userID).
			Int64("id", id).
			Msg("failed to get itinerary")
		return models.Itinerary{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// UpdateItinerary fully replaces the mutable fields of the row identified
// by itinerary.ID and itinerary.UserID and returns the stored row.
func (r *itineraryRepository) UpdateItinerary(ctx context.Context, itinerary models.Itinerary) (models.Itinerary, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateItineraryQuery(itinerary)
	if err != nil {
		log.Err(err).
			Str("func", "itineraryRepository.UpdateItinerary").
			Int64("user_id", itinerary.UserID).
			Int64("id", itinerary.ID).
			Msg("failed to create query")
		return models.Itinerary{}, err
	}

	item, err := scanItinerary(r.DB.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Itinerary{}, ErrItineraryNotFound
	case err != nil:
		log.Err(err).
			Str("func", "itineraryRepository.UpdateItinerary").
			Int64("user_id", itinerary.UserID).
			Int64("id", itinerary.ID).
			Bool("retryable", r.isRetryable(err)).
			Msg("failed to update itinerary")
		return models.Itinerary{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return item, nil
}

func (r *itineraryRepository) DeleteItinerary(ctx context.Context, userID, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteItineraryQuery(userID, id)
	if err != nil {
		log.Err(err).
			Str("func", "itineraryRepository.DeleteItinerary").
			Int64("user_id", userID).
			Int64("id", id).
			Msg("failed to create query")
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "itineraryRepository.DeleteItinerary").
			Int64("user_id", userID).
			Int64("id", id).
			Bool("retryable", r.isRetryable(err)).
			Msg("failed to delete itinerary")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrItineraryNotFound
	}

	return nil
}
