package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-trip-planner/internal/logger"
)

// withLogging writes one access line per request. It runs after withTraceID,
// so the line carries the request's trace_id.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &accessRecorder{ResponseWriter: w}

		next.ServeHTTP(rec, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", rec.statusCode()).
			Int("size", rec.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}
