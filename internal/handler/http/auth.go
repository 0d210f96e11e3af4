package http

import (
	"net/http"

	"github.com/MKhiriev/go-trip-planner/internal/app"
	"github.com/MKhiriev/go-trip-planner/internal/logger"
	"github.com/MKhiriev/go-trip-planner/internal/utils"
	"github.com/MKhiriev/go-trip-planner/internal/validators"
	"github.com/MKhiriev/go-trip-planner/models"
)

const (
	formUsername  = "username"
	formPassword  = "password"
	formGrantType = "grant_type"

	grantTypePassword = "password"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := utils.DecodeJSON(w, r, &creds); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, app.MsgMalformedJSON)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, creds)
	if err != nil {
		writeServiceError(w, r, err, http.StatusUnprocessableEntity)
		return
	}

	log.Info().Int64("user_id", registeredUser.UserID).Msg("user registered")
	utils.WriteJSON(w, models.RegisterResponse{Detail: app.MsgUserRegistered}, http.StatusCreated)
}

// token exchanges form credentials for a bearer token. The email is sent
// in the "username" field.
func (h *Handler) token(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, utils.MaxJSONBodyBytes)
	if err := r.ParseForm(); err != nil {
		log.Debug().Err(err).Msg("invalid form was passed")
		writeError(w, http.StatusBadRequest, app.MsgMalformedForm)
		return
	}

	if grantType := r.PostForm.Get(formGrantType); grantType != "" && grantType != grantTypePassword {
		writeError(w, http.StatusBadRequest, app.MsgUnsupportedGrantType)
		return
	}

	creds := models.Credentials{
		Email:    r.PostForm.Get(formUsername),
		Password: r.PostForm.Get(formPassword),
	}
	if violations := missingFormFields(creds); len(violations) > 0 {
		writeError(w, http.StatusUnprocessableEntity, violations)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		writeServiceError(w, r, err, http.StatusUnprocessableEntity)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeServiceError(w, r, err, http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("user_id", foundUser.UserID).Msg("token issued")
	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   models.TokenTypeBearer,
	}, http.StatusOK)
}

func missingFormFields(creds models.Credentials) validators.ValidationErrors {
	var violations validators.ValidationErrors
	if creds.Email == "" {
		violations = append(violations, requiredField(formUsername))
	}
	if creds.Password == "" {
		violations = append(violations, requiredField(formPassword))
	}
	return violations
}

func requiredField(field string) validators.FieldViolation {
	return validators.FieldViolation{
		Field:   field,
		Message: validators.ErrRequiredField.Error(),
		Err:     validators.ErrRequiredField,
	}
}

