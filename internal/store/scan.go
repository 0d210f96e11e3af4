package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-trip-planner/models"
)

// Drivers disagree on how DATE, TIMESTAMP and JSON columns arrive:
// pgx yields time.Time and []byte, sqlite may yield strings. The column
// types below accept all of them.

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	time.DateTime,
	time.DateOnly,
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", s)
}

func asTime(src any) (time.Time, error) {
	switch v := src.(type) {
	case time.Time:
		return v, nil
	case string:
		return parseTimestamp(v)
	case []byte:
		return parseTimestamp(string(v))
	default:
		return time.Time{}, fmt.Errorf("cannot scan %T into time", src)
	}
}

type dateColumn struct{ dst *models.Date }

func (c dateColumn) Scan(src any) error {
	t, err := asTime(src)
	if err != nil {
		return err
	}
	*c.dst = models.NewDate(t)
	return nil
}

type timestampColumn struct{ dst *time.Time }

func (c timestampColumn) Scan(src any) error {
	t, err := asTime(src)
	if err != nil {
		return err
	}
	*c.dst = t.UTC()
	return nil
}

// jsonColumn decodes a JSON array column into a slice. NULL becomes an
// empty slice.
type jsonColumn[T any] struct{ dst *[]T }

func (c jsonColumn[T]) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*c.dst = []T{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into json column", src)
	}

	out := make([]T, 0)
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("decoding json column: %w", err)
	}
	if out == nil {
		out = []T{}
	}
	*c.dst = out
	return nil
}

// encodeJSONColumn serialises v as a JSON array string; nil becomes "[]".
func encodeJSONColumn[T any](v []T) (string, error) {
	if v == nil {
		v = []T{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingJSONColumn, err)
	}
	return string(b), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanItinerary reads one row selected with [itineraryColumns].
func scanItinerary(row rowScanner) (models.Itinerary, error) {
	var it models.Itinerary
	err := row.Scan(
		&it.ID,
		&it.UserID,
		&it.Destination,
		dateColumn{&it.StartDate},
		dateColumn{&it.EndDate},
		&it.DaysCount,
		jsonColumn[string]{&it.Interests},
		jsonColumn[models.DayPlan]{&it.Days},
		timestampColumn{&it.CreatedAt},
	)
	return it, err
}
