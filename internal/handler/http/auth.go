package http

import (
	"net/http"

	"github.com/MKhiriev/eat-around/internal/logger"
	"github.com/MKhiriev/eat-around/internal/utils"
	"github.com/MKhiriev/eat-around/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, registerErrors)
		return
	}

	session, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err, registerErrors)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		Token:   session.Token.SignedString,
		User:    session.User.Public(),
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, loginErrors)
		return
	}

	session, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err, loginErrors)
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", session.User.ID).Msg("user logged in")

	utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		Token:   session.Token.SignedString,
		User:    session.User.Public(),
	}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	profile, err := h.services.AuthService.Me(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, meErrors)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{Success: true, User: profile}, http.StatusOK)
}

func (h *Handler) legacyLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LegacyLoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, legacyLoginErrors)
		return
	}

	user, err := h.services.AuthService.LegacyLogin(r.Context(), req)
	if err != nil {
		writeError(w, r, err, legacyLoginErrors)
		return
	}

	utils.WriteJSON(w, models.LegacyLoginResponse{
		Success: true,
		User:    models.LegacyUser{ID: user.ID, Name: user.Identifier()},
	}, http.StatusOK)
}

func (h *Handler) legacyRegister(w http.ResponseWriter, r *http.Request) {
	var req models.LegacyRegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, legacyRegisterErrors)
		return
	}

	user, err := h.services.AuthService.LegacyRegister(r.Context(), req)
	if err != nil {
		writeError(w, r, err, legacyRegisterErrors)
		return
	}

	answers := user.RecoveryAnswers()
	utils.WriteJSON(w, models.LegacyRegisterResponse{
		Success: true,
		User: models.LegacyRegisteredUser{
			ID:      user.ID,
			Name:    user.Identifier(),
			Book:    answers.FavouriteBook,
			Subject: answers.BestSubject,
		},
	}, http.StatusCreated)
}
