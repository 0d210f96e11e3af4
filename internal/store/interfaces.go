package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-trip-planner/models"
)

// UserRepository persists registered accounts in the "users" table.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	// A duplicate email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns [ErrUserNotFound] when no row matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ItineraryRepository persists itineraries. Every method is scoped to the
// owning user; rows of other users behave as if they did not exist.
type ItineraryRepository interface {
	SaveItinerary(ctx context.Context, itinerary models.Itinerary) (models.Itinerary, error)
	GetItineraries(ctx context.Context, userID int64) ([]models.Itinerary, error)
	GetItinerary(ctx context.Context, userID, id int64) (models.Itinerary, error)
	UpdateItinerary(ctx context.Context, itinerary models.Itinerary) (models.Itinerary, error)
	DeleteItinerary(ctx context.Context, userID, id int64) error
}

// ErrorClassificator inspects driver errors.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may succeed if retried.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a unique constraint violation.
	IsUniqueViolation(err error) bool
}
