package http

import (
	"errors"
	"net/http"

	"github.com/learngate/learngate/internal/logger"
	"github.com/learngate/learngate/internal/service"
	"github.com/learngate/learngate/internal/store"
	"github.com/learngate/learngate/internal/utils"
	"github.com/learngate/learngate/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidEmailFormat:  http.StatusBadRequest,
	service.ErrPasswordTooShort:    http.StatusBadRequest,
	service.ErrInvalidOTPFormat:    http.StatusBadRequest,

	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrNoTokenProvided:         http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrPrincipalGone:           http.StatusUnauthorized,

	service.ErrAccountBlocked: http.StatusForbidden,
	service.ErrForbidden:      http.StatusForbidden,

	service.ErrResetCodeInvalid: http.StatusNotFound,

	service.ErrMailDeliveryFailed: http.StatusBadGateway,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrResetCodeNotFound:  http.StatusNotFound,

	service.ErrTokenCreationFailed: http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:      http.StatusInternalServerError,
	store.ErrExecutingQuery:        http.StatusInternalServerError,
	store.ErrExecutingStatement:    http.StatusInternalServerError,
	store.ErrScanningRow:           http.StatusInternalServerError,
}

func statusFromError(err error) (int, string) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target.Error()
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeError maps err to its HTTP status and writes the JSON error envelope.
// Server-side failures are logged with full detail but answered with a
// generic message so internals never leak to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, message := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
		message = http.StatusText(status)
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
