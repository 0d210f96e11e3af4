package service

import "errors"

var (
	// ErrInvalidDataProvided wraps [validators.ValidationErrors] returned for
	// a rejected request.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("incorrect email or password")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenIsInvalid      = errors.New("token is invalid")

	ErrItineraryNotFound = errors.New("itinerary not found")

	// ErrValidationNoUserID is returned when an owner-scoped call carries no user.
	ErrValidationNoUserID = errors.New("no user ID for itinerary was given")

	// ErrGenerationUpstream hides the cause of a failed itinerary
	// generation; the cause is logged instead.
	ErrGenerationUpstream = errors.New("itinerary generation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
