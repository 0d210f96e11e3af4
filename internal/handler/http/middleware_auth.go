package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-trip-planner/internal/app"
	"github.com/MKhiriev/go-trip-planner/internal/logger"
	"github.com/MKhiriev/go-trip-planner/internal/service"
	"github.com/MKhiriev/go-trip-planner/internal/utils"
)

const bearerScheme = "Bearer"

// auth enforces bearer-token authentication.
//
// It extracts the token from the "Authorization" header, resolves it to a
// stored user via [service.AuthService.Authenticate] and stores that user in
// the request context with [utils.WithUser]. Rejections are answered with
// 401 and a WWW-Authenticate header:
//   - no usable header: "Not authenticated"
//   - expired token: "Token has expired"
//   - any other bad token or unknown subject: "Could not validate credentials"
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, http.StatusUnauthorized, app.MsgNotAuthenticated)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			writeError(w, http.StatusUnauthorized, app.MsgNotAuthenticated)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Debug().Msg("token expired")
				writeError(w, http.StatusUnauthorized, app.MsgTokenIsExpired)
			case errors.Is(err, service.ErrTokenIsInvalid):
				log.Debug().Msg("token rejected")
				writeError(w, http.StatusUnauthorized, app.MsgCouldNotValidateCredentials)
			default:
				writeServiceError(w, r, err, http.StatusUnauthorized)
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}

// getTokenFromAuthHeader extracts the token from a raw "Authorization"
// header value of the form "Bearer <token>". The scheme is matched
// case-insensitively.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, tokenString, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
