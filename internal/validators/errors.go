package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrInvalidDateFormat is returned when a date is not a valid YYYY-MM-DD calendar date.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
	// ErrInvalidDateRange is returned when end_date is not strictly after start_date.
	ErrInvalidDateRange = errors.New("end_date must be after start_date")

	ErrRequiredField     = errors.New("field is required")
	ErrDaysCountMismatch = errors.New("days_count does not match the date range")
	ErrInvalidDay        = errors.New("day must be a positive integer")
	ErrInvalidEmail      = errors.New("invalid email address")
)

// FieldViolation describes a single rule broken by a single input field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`

	// Err is the sentinel behind the violation, kept for errors.Is matching.
	Err error `json:"-"`
}

func newViolation(field string, err error) FieldViolation {
	return FieldViolation{Field: field, Message: err.Error(), Err: err}
}

func (v FieldViolation) Error() string {
	return v.Field + ": " + v.Message
}

// ValidationErrors is the list of violations found in one candidate record.
// It implements error; errors.Is matches any of the underlying sentinels.
type ValidationErrors []FieldViolation

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, v := range e {
		msgs = append(msgs, v.Error())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(e))
	for _, v := range e {
		errs = append(errs, v.Err)
	}
	return errs
}

// only keeps violations for the given fields. With no fields it returns e unchanged.
func (e ValidationErrors) only(fields ...string) ValidationErrors {
	if len(fields) == 0 {
		return e
	}

	var filtered ValidationErrors
	for _, v := range e {
		for _, f := range fields {
			if v.Field == f {
				filtered = append(filtered, v)
				break
			}
		}
	}
	return filtered
}
