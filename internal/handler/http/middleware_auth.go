package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/learngate/learngate/internal/logger"
	"github.com/learngate/learngate/internal/utils"
	"github.com/learngate/learngate/models"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It extracts the token from the "Authorization" header and hands it to the
// guard, which verifies the signature and re-reads the account from the
// store. On success the live principal is stored in the request context under
// [utils.PrincipalCtxKey] before delegating to the next handler.
//
// Requests are rejected with 401 when the header is absent or malformed, the
// token is invalid or expired, or the account no longer exists; and with 403
// when the account is blocked.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		principal, err := h.services.GuardService.Authenticate(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		// Store the live principal in the context so downstream handlers can
		// read it without another store round-trip.
		ctx = context.WithValue(ctx, utils.PrincipalCtxKey, principal)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole gates a route subtree on the authenticated principal's role.
// Must be mounted after auth. Matching is exact, no hierarchy.
func (h *Handler) requireRole(allowed ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := utils.GetPrincipalFromContext(r.Context())
			if !ok {
				http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
				return
			}

			if err := h.services.GuardService.Authorize(principal, allowed...); err != nil {
				writeError(w, r, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value of the standard form:
//
//	Authorization: Bearer <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
