package validators

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-trip-planner/models"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

type requestValidator struct{}

// NewValidator returns a [Validator] for the request types accepted by the API:
// [models.Credentials], [models.ItineraryRequest] and [models.SaveItineraryRequest].
// When fields are given only violations for those fields are reported.
func NewValidator() Validator {
	return &requestValidator{}
}

func (v *requestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	switch value := obj.(type) {
	case models.Credentials:
		err = validateCredentials(value)
	case *models.Credentials:
		err = validateCredentials(*value)

	case models.ItineraryRequest:
		_, err = ParseTrip(value)
	case *models.ItineraryRequest:
		_, err = ParseTrip(*value)

	case models.SaveItineraryRequest:
		_, err = ParseDraft(value)
	case *models.SaveItineraryRequest:
		_, err = ParseDraft(*value)

	default:
		return ErrUnsupportedType
	}

	var violations ValidationErrors
	if !errors.As(err, &violations) {
		return err
	}

	if filtered := violations.only(fields...); len(filtered) > 0 {
		return filtered
	}
	return nil
}

func validateCredentials(creds models.Credentials) error {
	var violations ValidationErrors

	switch email := strings.TrimSpace(creds.Email); {
	case email == "":
		violations = append(violations, newViolation(FieldEmail, ErrRequiredField))
	case !isPlainAddress(email):
		violations = append(violations, newViolation(FieldEmail, ErrInvalidEmail))
	}

	if creds.Password == "" {
		violations = append(violations, newViolation(FieldPassword, ErrRequiredField))
	}

	if len(violations) > 0 {
		return violations
	}
	return nil
}

// isPlainAddress accepts "user@host" only, without a display name.
func isPlainAddress(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
