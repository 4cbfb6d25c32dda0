package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/learngate/learngate/internal/logger"
	"github.com/learngate/learngate/internal/service"
	"github.com/learngate/learngate/internal/utils"
	"github.com/learngate/learngate/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registered, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registered)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", registered.UserID).Msg("account registered")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{User: registered, Token: token.SignedString}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	found, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, found)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", found.UserID).Msg("account logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{User: found, Token: token.SignedString}, http.StatusOK)
}

// me returns the account behind the presented token. The auth middleware has
// already re-read it from the store, so this is a pure context read.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrNoTokenProvided)
		return
	}

	utils.WriteJSON(w, principal, http.StatusOK)
}
