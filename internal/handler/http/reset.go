package http

import (
	"encoding/json"
	"net/http"

	"github.com/learngate/learngate/internal/logger"
	"github.com/learngate/learngate/internal/utils"
	"github.com/learngate/learngate/models"
)

// resetRequestedMessage is returned for every forgot-password request,
// registered email or not, so the endpoint cannot be used to enumerate
// accounts.
const resetRequestedMessage = "if the email is registered, a reset code has been sent"

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ResetService.RequestPasswordReset(ctx, req.Email); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: resetRequestedMessage}, http.StatusOK)
}

func (h *Handler) verifyResetCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.VerifyResetCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ResetService.VerifyResetCode(ctx, req.Email, req.Code); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "reset code is valid"}, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ResetService.ResetPassword(ctx, req.Email, req.Code, req.NewPassword); err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Msg("password reset completed")
	utils.WriteJSON(w, models.MessageResponse{Message: "password has been reset"}, http.StatusOK)
}
