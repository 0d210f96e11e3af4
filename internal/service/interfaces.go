package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=ItineraryServiceWrapper

import (
	"context"

	"github.com/MKhiriev/go-trip-planner/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Authenticate parses tokenString and resolves its subject to a stored
	// user. It returns [ErrTokenIsExpired] or [ErrTokenIsInvalid].
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}

// ItineraryGenerator drafts day-by-day plans for a validated trip.
type ItineraryGenerator interface {
	Generate(ctx context.Context, trip models.Trip) ([]models.DayPlan, error)
}

// ItineraryService covers the itinerary use cases. Every method that takes
// a userID only ever sees rows owned by that user.
type ItineraryService interface {
	Generate(ctx context.Context, req models.ItineraryRequest) (models.ItineraryPreview, error)
	Save(ctx context.Context, userID int64, req models.SaveItineraryRequest) (models.Itinerary, error)
	List(ctx context.Context, userID int64) ([]models.Itinerary, error)
	Get(ctx context.Context, userID, id int64) (models.Itinerary, error)

	// Update regenerates the plan for the new trip parameters and fully
	// replaces the stored itinerary.
	Update(ctx context.Context, userID, id int64, req models.ItineraryRequest) (models.Itinerary, error)
	Delete(ctx context.Context, userID, id int64) error
}

// ItineraryServiceWrapper defines middleware composition for ItineraryService.
// Implementations wrap an existing ItineraryService to add behavior such as
// logging or validating.
type ItineraryServiceWrapper interface {
	Wrap(ItineraryService) ItineraryService
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
