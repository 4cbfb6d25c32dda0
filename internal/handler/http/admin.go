// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev
package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/learngate/learngate/internal/logger"
	"github.com/learngate/learngate/internal/service"
	"github.com/learngate/learngate/internal/utils"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.AuthService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) blockUser(w http.ResponseWriter, r *http.Request) {
	h.setBlocked(w, r, true)
}

func (h *Handler) unblockUser(w http.ResponseWriter, r *http.Request) {
	h.setBlocked(w, r, false)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	if err := h.services.AuthService.DeleteUser(ctx, userID); err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", userID).Msg("account deleted by admin")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setBlocked(w http.ResponseWriter, r *http.Request, blocked bool) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	updated, err := h.services.AuthService.SetUserBlocked(ctx, userID, blocked)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", userID).Bool("blocked", blocked).Msg("account blocked flag updated")
	utils.WriteJSON(w, updated, http.StatusOK)
}
