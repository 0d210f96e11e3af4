package http

import (
	"net/http"

	"github.com/MKhiriev/go-trip-planner/internal/app"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, middleware.StripSlashes)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, app.MsgNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, app.MsgMethodNotAllowed)
	})

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Get("/version", h.getServerVersion)
		r.Post("/register", h.register)
		r.Post("/token", h.token)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Route("/itinerary", func(r chi.Router) {
				r.Post("/generate", h.generateItinerary)
				r.Post("/", h.saveItinerary)
				r.Get("/", h.listItineraries)
				r.Get("/{id}", h.getItinerary)
				r.Patch("/{id}", h.updateItinerary)
				r.Delete("/{id}", h.deleteItinerary)
			})
		})
	})

	return router
}
