package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/learngate/learngate/internal/service"
	"github.com/learngate/learngate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForgotPassword_AlwaysGenericMessage(t *testing.T) {
	// The service returns nil for unknown emails; the handler must answer
	// with the same body either way.
	reset := &mockResetService{
		requestFn: func(_ context.Context, email string) error { return nil },
	}
	h := newTestHandler(t, nil, nil, reset)

	for _, email := range []string{"known@example.com", "unknown@example.com"} {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/forgot-password",
			strings.NewReader(jsonBody(t, models.ForgotPasswordRequest{Email: email})))
		rec := httptest.NewRecorder()

		h.forgotPassword(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.MessageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, resetRequestedMessage, resp.Message)
	}
}

func TestForgotPassword_InvalidEmail(t *testing.T) {
	reset := &mockResetService{
		requestFn: func(_ context.Context, _ string) error { return service.ErrInvalidEmailFormat },
	}
	h := newTestHandler(t, nil, nil, reset)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/forgot-password",
		strings.NewReader(jsonBody(t, models.ForgotPasswordRequest{Email: "not-an-email"})))
	rec := httptest.NewRecorder()

	h.forgotPassword(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestForgotPassword_MailOutage(t *testing.T) {
	reset := &mockResetService{
		requestFn: func(_ context.Context, _ string) error { return service.ErrMailDeliveryFailed },
	}
	h := newTestHandler(t, nil, nil, reset)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/forgot-password",
		strings.NewReader(jsonBody(t, models.ForgotPasswordRequest{Email: "ada@example.com"})))
	rec := httptest.NewRecorder()

	h.forgotPassword(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestVerifyResetCode(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"valid code", nil, http.StatusOK},
		{"stale code", service.ErrResetCodeInvalid, http.StatusNotFound},
		{"malformed code", service.ErrInvalidOTPFormat, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reset := &mockResetService{
				verifyFn: func(_ context.Context, email, code string) error {
					assert.Equal(t, "ada@example.com", email)
					assert.Equal(t, "123456", code)
					return tt.serviceErr
				},
			}
			h := newTestHandler(t, nil, nil, reset)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/verify-reset-code",
				strings.NewReader(jsonBody(t, models.VerifyResetCodeRequest{Email: "ada@example.com", Code: "123456"})))
			rec := httptest.NewRecorder()

			h.verifyResetCode(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestResetPassword(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"success", nil, http.StatusOK},
		{"consumed code", service.ErrResetCodeInvalid, http.StatusNotFound},
		{"short password", service.ErrPasswordTooShort, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reset := &mockResetService{
				resetFn: func(_ context.Context, email, code, newPassword string) error {
					assert.Equal(t, "longenough1", newPassword)
					return tt.serviceErr
				},
			}
			h := newTestHandler(t, nil, nil, reset)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/reset-password",
				strings.NewReader(jsonBody(t, models.ResetPasswordRequest{
					Email: "ada@example.com", Code: "123456", NewPassword: "longenough1",
				})))
			rec := httptest.NewRecorder()

			h.resetPassword(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestResetEndpoints_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, nil, nil, &mockResetService{})

	endpoints := []func(http.ResponseWriter, *http.Request){
		h.forgotPassword, h.verifyResetCode, h.resetPassword,
	}
	for _, endpoint := range endpoints {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{broken"))
		rec := httptest.NewRecorder()

		endpoint(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}
