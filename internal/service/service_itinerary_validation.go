package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-trip-planner/internal/logger"
	"github.com/MKhiriev/go-trip-planner/internal/validators"
	"github.com/MKhiriev/go-trip-planner/models"
)

// ItineraryValidationService rejects malformed requests before they reach
// the wrapped [ItineraryService].
type ItineraryValidationService struct {
	inner     ItineraryService
	validator validators.Validator
}

func NewItineraryValidationService() ItineraryServiceWrapper {
	return &ItineraryValidationService{
		validator: validators.NewValidator(),
	}
}

func (v *ItineraryValidationService) Generate(ctx context.Context, req models.ItineraryRequest) (models.ItineraryPreview, error) {
	if err := v.validate(ctx, req); err != nil {
		return models.ItineraryPreview{}, err
	}

	return v.inner.Generate(ctx, req)
}

func (v *ItineraryValidationService) Save(ctx context.Context, userID int64, req models.SaveItineraryRequest) (models.Itinerary, error) {
	if userID <= 0 {
		return models.Itinerary{}, ErrValidationNoUserID
	}
	if err := v.validate(ctx, req); err != nil {
		return models.Itinerary{}, err
	}

	return v.inner.Save(ctx, userID, req)
}

func (v *ItineraryValidationService) List(ctx context.Context, userID int64) ([]models.Itinerary, error) {
	if userID <= 0 {
		return nil, ErrValidationNoUserID
	}

	return v.inner.List(ctx, userID)
}

func (v *ItineraryValidationService) Get(ctx context.Context, userID, id int64) (models.Itinerary, error) {
	if userID <= 0 {
		return models.Itinerary{}, ErrValidationNoUserID
	}

	return v.inner.Get(ctx, userID, id)
}

func (v *ItineraryValidationService) Update(ctx context.Context, userID, id int64, req models.ItineraryRequest) (models.Itinerary, error) {
	if userID <= 0 {
		return models.Itinerary{}, ErrValidationNoUserID
	}
	if err := v.validate(ctx, req); err != nil {
		return models.Itinerary{}, err
	}

	return v.inner.Update(ctx, userID, id, req)
}

func (v *ItineraryValidationService) Delete(ctx context.Context, userID, id int64) error {
	if userID <= 0 {
		return ErrValidationNoUserID
	}

	return v.inner.Delete(ctx, userID, id)
}

func (v *ItineraryValidationService) Wrap(wrapper ItineraryService) ItineraryService {
	v.inner = wrapper
	return v
}

func (v *ItineraryValidationService) validate(ctx context.Context, req any) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("request rejected by validation")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
