package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the only accepted wire format for trip dates.
const DateLayout = time.DateOnly

// Date is a calendar date. It is (un)marshalled as "YYYY-MM-DD".
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar date in UTC.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("date must be in %s format: %w", DateLayout, err)
	}

	*d = Date{Time: t}
	return nil
}

// DayPlan is one day of a generated itinerary.
type DayPlan struct {
	Day        int      `json:"day"`
	Activities []string `json:"activities"`
}

// Trip is a validated itinerary request: dates are parsed and DaysCount is
// the inclusive span between them.
type Trip struct {
	Destination string   `json:"destination"`
	StartDate   Date     `json:"start_date"`
	EndDate     Date     `json:"end_date"`
	DaysCount   int      `json:"days_count"`
	Interests   []string `json:"interests"`
}

// ItineraryDraft is a validated, not yet persisted itinerary.
type ItineraryDraft struct {
	Trip
	Days []DayPlan
}

// ItineraryPreview is the body of POST /api/itinerary/generate.
type ItineraryPreview struct {
	Trip
	Days []DayPlan `json:"itinerary"`
}

// Itinerary is a persisted itinerary owned by a single user.
type Itinerary struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`

	Trip

	Days      []DayPlan `json:"generated_itinerary"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Itinerary model.
func (i Itinerary) TableName() string {
	return "itineraries"
}

// ItineraryRequest is the wire shape accepted by generate and update.
// Dates stay strings here so malformed values surface as field violations
// instead of decode errors.
type ItineraryRequest struct {
	Destination string   `json:"destination"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Interests   []string `json:"interests"`
}

// SaveItineraryRequest is the wire shape accepted by POST /api/itinerary.
// DaysCount is a pointer so an absent value can be told apart from zero.
type SaveItineraryRequest struct {
	ItineraryRequest
	DaysCount *int      `json:"days_count"`
	Itinerary []DayPlan `json:"itinerary"`
}

// DeleteResponse is the body of a successful DELETE /api/itinerary/{id}.
type DeleteResponse struct {
	Message string `json:"message"`
}
