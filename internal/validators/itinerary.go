package validators

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-trip-planner/models"
)

const (
	FieldDestination = "destination"
	FieldStartDate   = "start_date"
	FieldEndDate     = "end_date"
	FieldInterests   = "interests"
	FieldDaysCount   = "days_count"
	FieldItinerary   = "itinerary"
)

// ParseTrip validates a generate/update request as a whole and returns the
// structured trip, or every field violation found.
func ParseTrip(req models.ItineraryRequest) (models.Trip, error) {
	var violations ValidationErrors

	destination := strings.TrimSpace(req.Destination)
	if destination == "" {
		violations = append(violations, newViolation(FieldDestination, ErrRequiredField))
	}

	if req.Interests == nil {
		violations = append(violations, newViolation(FieldInterests, ErrRequiredField))
	}

	start, startOK := parseDateField(FieldStartDate, req.StartDate, &violations)
	end, endOK := parseDateField(FieldEndDate, req.EndDate, &violations)

	var daysCount int
	if startOK && endOK {
		days, err := CalculateDays(req.StartDate, req.EndDate)
		if err != nil {
			violations = append(violations, FieldViolation{Field: FieldEndDate, Message: err.Error(), Err: ErrInvalidDateRange})
		}
		daysCount = days
	}

	if len(violations) > 0 {
		return models.Trip{}, violations
	}

	interests := make([]string, len(req.Interests))
	copy(interests, req.Interests)

	return models.Trip{
		Destination: destination,
		StartDate:   models.NewDate(start),
		EndDate:     models.NewDate(end),
		DaysCount:   daysCount,
		Interests:   interests,
	}, nil
}

// ParseDraft validates a save request: the trip fields plus the client-sent
// days_count (which must agree with the dates) and the generated days.
func ParseDraft(req models.SaveItineraryRequest) (models.ItineraryDraft, error) {
	var violations ValidationErrors

	trip, err := ParseTrip(req.ItineraryRequest)
	var tripViolations ValidationErrors
	if errors.As(err, &tripViolations) {
		violations = append(violations, tripViolations...)
	}

	switch {
	case req.DaysCount == nil:
		violations = append(violations, newViolation(FieldDaysCount, ErrRequiredField))
	case err == nil && *req.DaysCount != trip.DaysCount:
		violations = append(violations, FieldViolation{
			Field:   FieldDaysCount,
			Message: fmt.Sprintf("%s: expected %d, got %d", ErrDaysCountMismatch, trip.DaysCount, *req.DaysCount),
			Err:     ErrDaysCountMismatch,
		})
	}

	if req.Itinerary == nil {
		violations = append(violations, newViolation(FieldItinerary, ErrRequiredField))
	}
	for i, d := range req.Itinerary {
		if d.Day < 1 {
			violations = append(violations, newViolation(fmt.Sprintf("%s[%d].day", FieldItinerary, i), ErrInvalidDay))
		}
	}

	if len(violations) > 0 {
		return models.ItineraryDraft{}, violations
	}

	return models.ItineraryDraft{Trip: trip, Days: req.Itinerary}, nil
}

func parseDateField(field, value string, violations *ValidationErrors) (time.Time, bool) {
	if value == "" {
		*violations = append(*violations, newViolation(field, ErrRequiredField))
		return time.Time{}, false
	}

	parsed, err := ParseDate(value)
	if err != nil {
		*violations = append(*violations, FieldViolation{Field: field, Message: err.Error(), Err: ErrInvalidDateFormat})
		return time.Time{}, false
	}

	return parsed, true
}
