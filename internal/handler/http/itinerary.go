package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-trip-planner/internal/app"
	"github.com/MKhiriev/go-trip-planner/internal/logger"
	"github.com/MKhiriev/go-trip-planner/internal/utils"
	"github.com/MKhiriev/go-trip-planner/internal/validators"
	"github.com/MKhiriev/go-trip-planner/models"
	"github.com/go-chi/chi/v5"
)

const pathParamID = "id"

func (h *Handler) generateItinerary(w http.ResponseWriter, r *http.Request) {
	var req models.ItineraryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	preview, err := h.services.ItineraryService.Generate(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, preview, http.StatusOK)
}

func (h *Handler) saveItinerary(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req models.SaveItineraryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	saved, err := h.services.ItineraryService.Save(r.Context(), user.UserID, req)
	if err != nil {
		writeServiceError(w, r, err, http.StatusUnprocessableEntity)
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) listItineraries(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	itineraries, err := h.services.ItineraryService.List(r.Context(), user.UserID)
	if err != nil {
		writeServiceError(w, r, err, http.StatusUnprocessableEntity)
		return
	}
	if itineraries == nil {
		itineraries = []models.Itinerary{}
	}

	utils.WriteJSON(w, itineraries, http.StatusOK)
}

func (h *Handler) getItinerary(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := itineraryID(w, r)
	if !ok {
		return
	}

	itinerary, err := h.services.ItineraryService.Get(r.Context(), user.UserID, id)
	if err != nil {
		writeServiceError(w, r, err, http.StatusUnprocessableEntity)
		return
	}

	utils.WriteJSON(w, itinerary, http.StatusOK)
}

func (h *Handler) updateItinerary(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := itineraryID(w, r)
	if !ok {
		return
	}

	var req models.ItineraryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	updated, err := h.services.ItineraryService.Update(r.Context(), user.UserID, id, req)
	if err != nil {
		writeServiceError(w, r, err, http.StatusUnprocessableEntity)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteItinerary(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := itineraryID(w, r)
	if !ok {
		return
	}

	if err := h.services.ItineraryService.Delete(r.Context(), user.UserID, id); err != nil {
		writeServiceError(w, r, err, http.StatusUnprocessableEntity)
		return
	}

	utils.WriteJSON(w, models.DeleteResponse{Message: fmt.Sprintf(app.MsgItineraryDeleted, id)}, http.StatusOK)
}

// currentUser returns the user stored by the auth guard. A missing user
// means the route was mounted without the guard.
func currentUser(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Str("path", r.URL.Path).Msg("no authenticated user in context")
		writeError(w, http.StatusUnauthorized, app.MsgNotAuthenticated)
		return models.User{}, false
	}
	return user, true
}

func itineraryID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, pathParamID), 10, 64)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, validators.ValidationErrors{{
			Field:   pathParamID,
			Message: app.MsgInvalidID,
			Err:     err,
		}})
		return 0, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := utils.DecodeJSON(w, r, dst); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, app.MsgMalformedJSON)
		return false
	}
	return true
}
