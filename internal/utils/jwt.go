package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-trip-planner/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidTokenParams is returned when a token is requested without a
	// subject, lifetime or signing key.
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT token")

	// ErrUnsupportedSigningMethod is returned for any algorithm outside the
	// HMAC family.
	ErrUnsupportedSigningMethod = errors.New("unsupported token signing method")

	// ErrEmptySubject is returned when a verified token carries no subject.
	ErrEmptySubject = errors.New("empty subject in token")
)

// hmacMethods lists the symmetric algorithms a token may be signed with.
var hmacMethods = map[string]*jwt.SigningMethodHMAC{
	jwt.SigningMethodHS256.Alg(): jwt.SigningMethodHS256,
	jwt.SigningMethodHS384.Alg(): jwt.SigningMethodHS384,
	jwt.SigningMethodHS512.Alg(): jwt.SigningMethodHS512,
}

// HMACSigningMethod resolves an algorithm name such as "HS256".
func HMACSigningMethod(alg string) (*jwt.SigningMethodHMAC, error) {
	method, ok := hmacMethods[alg]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSigningMethod, alg)
	}
	return method, nil
}

// GenerateJWTToken creates a signed JWT for subject.
//
// The token carries the standard claims:
//   - Subject   (sub): the subject, an email address in this application
//   - IssuedAt  (iat): issuedAt
//   - ExpiresAt (exp): issuedAt plus lifetime
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("a@b.c", time.Now(), 30*time.Minute, "HS256", "secret")
func GenerateJWTToken(subject string, issuedAt time.Time, lifetime time.Duration, alg, signKey string) (models.Token, error) {
	if subject == "" || lifetime <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	method, err := HMACSigningMethod(alg)
	if err != nil {
		return models.Token{}, err
	}

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(lifetime)),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
	}

	token := jwt.NewWithClaims(method, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: claims,
		SignedString:     tokenString,
		Email:            subject,
	}, nil
}

// ValidateAndParseJWTToken verifies tokenString and extracts its subject.
//
// Validation includes:
//   - the signing algorithm must be exactly alg
//   - signature verification using signKey
//   - the exp claim must be present and not before now()
//   - the sub claim must be present and non-empty
//
// An expired token yields an error matching [jwt.ErrTokenExpired].
func ValidateAndParseJWTToken(tokenString, signKey, alg string, now func() time.Time) (models.Token, error) {
	if now == nil {
		now = time.Now
	}

	parsed := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithValidMethods([]string{alg}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if parsed.Subject == "" {
		return models.Token{}, ErrEmptySubject
	}

	parsed.Token = token
	parsed.SignedString = tokenString
	parsed.Email = parsed.Subject

	return *parsed, nil
}
