package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-trip-planner/internal/app"
	"github.com/MKhiriev/go-trip-planner/internal/logger"
	"github.com/MKhiriev/go-trip-planner/internal/service"
	"github.com/MKhiriev/go-trip-planner/internal/utils"
	"github.com/MKhiriev/go-trip-planner/internal/validators"
)

type errorMapping struct {
	status int
	detail string
}

// errorStatusMap translates service errors into responses. Anything absent
// becomes a 500.
var errorStatusMap = map[error]errorMapping{
	service.ErrEmailAlreadyRegistered: {http.StatusBadRequest, app.MsgEmailAlreadyRegistered},
	service.ErrInvalidCredentials:     {http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	service.ErrTokenIsExpired:         {http.StatusUnauthorized, app.MsgTokenIsExpired},
	service.ErrTokenIsInvalid:         {http.StatusUnauthorized, app.MsgCouldNotValidateCredentials},
	service.ErrValidationNoUserID:     {http.StatusUnauthorized, app.MsgNotAuthenticated},
	service.ErrItineraryNotFound:      {http.StatusNotFound, app.MsgItineraryNotFound},
	service.ErrGenerationUpstream:     {http.StatusInternalServerError, app.MsgGenerationFailed},
}

func statusFromError(err error) (int, string) {
	for target, mapping := range errorStatusMap {
		if errors.Is(err, target) {
			return mapping.status, mapping.detail
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError writes an errorResponse. 5xx bodies carry the trace id set by
// withTraceID so clients can quote it.
func writeError(w http.ResponseWriter, status int, detail any) {
	resp := errorResponse{Detail: detail}
	if status >= http.StatusInternalServerError {
		resp.TraceID = w.Header().Get(traceIDHeader)
	}
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	utils.WriteJSON(w, resp, status)
}

// writeServiceError renders err returned by a service call. Field
// violations are reported with validationStatus, which differs per route.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, validationStatus int) {
	log := logger.FromRequest(r)

	var violations validators.ValidationErrors
	if errors.As(err, &violations) {
		log.Debug().Err(err).Msg("request rejected")
		writeError(w, validationStatus, violations)
		return
	}

	status, detail := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	writeError(w, status, detail)
}
