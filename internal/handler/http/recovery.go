package http

import (
	"net/http"

	"github.com/MKhiriev/eat-around/internal/utils"
	"github.com/MKhiriev/eat-around/models"
)

func (h *Handler) recoveryQuestions(w http.ResponseWriter, r *http.Request) {
	var req models.QuestionsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, questionsErrors)
		return
	}

	status, err := h.services.RecoveryService.Questions(r.Context(), req)
	if err != nil {
		writeError(w, r, err, questionsErrors)
		return
	}

	utils.WriteJSON(w, models.QuestionsResponse{
		Success:              true,
		HasSecurityQuestions: status.HasSecurityQuestions,
		Questions:            status.Questions,
		Message:              status.Message,
	}, http.StatusOK)
}

func (h *Handler) verifyAnswers(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyAnswersRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, verifyErrors)
		return
	}

	token, err := h.services.RecoveryService.VerifyAnswers(r.Context(), req)
	if err != nil {
		writeError(w, r, err, verifyErrors)
		return
	}

	utils.WriteJSON(w, models.ResetTokenResponse{Success: true, ResetToken: token.SignedString}, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, resetErrors)
		return
	}

	if err := h.services.RecoveryService.ResetPassword(r.Context(), req); err != nil {
		writeError(w, r, err, resetErrors)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) setSecurityAnswers(w http.ResponseWriter, r *http.Request) {
	var req models.SecurityAnswersRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, securityErrors)
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())
	if err := h.services.RecoveryService.SetRecoveryAnswers(r.Context(), userID, req); err != nil {
		writeError(w, r, err, securityErrors)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
