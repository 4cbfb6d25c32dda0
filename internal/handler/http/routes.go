package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/learngate/learngate/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	// routes without authentication
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/forgot-password", h.forgotPassword)
		r.Post("/api/auth/verify-reset-code", h.verifyResetCode)
		r.Post("/api/auth/reset-password", h.resetPassword)
	})

	// routes for any authenticated account
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/auth/me", h.me)
	})

	// admin-only routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.requireRole(models.RoleAdmin))
		r.Get("/api/admin/users", h.listUsers)
		r.Patch("/api/admin/users/{userID}/block", h.blockUser)
		r.Patch("/api/admin/users/{userID}/unblock", h.unblockUser)
		r.Delete("/api/admin/users/{userID}", h.deleteUser)
	})

	return router
}
