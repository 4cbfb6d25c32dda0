package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/learngate/learngate/internal/logger"
	"github.com/learngate/learngate/internal/service"
	"github.com/learngate/learngate/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.Auth for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn       func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn          func(ctx context.Context, email, password string) (models.User, error)
	createTokenFn    func(ctx context.Context, user models.User) (models.Token, error)
	listUsersFn      func(ctx context.Context) ([]models.User, error)
	setUserBlockedFn func(ctx context.Context, userID int64, blocked bool) (models.User, error)
	deleteUserFn     func(ctx context.Context, userID int64) error
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

func (m *mockAuthService) SetUserBlocked(ctx context.Context, userID int64, blocked bool) (models.User, error) {
	return m.setUserBlockedFn(ctx, userID, blocked)
}

func (m *mockAuthService) DeleteUser(ctx context.Context, userID int64) error {
	return m.deleteUserFn(ctx, userID)
}

// mockGuardService implements service.Guard for unit tests.
type mockGuardService struct {
	authenticateFn func(ctx context.Context, tokenString string) (models.User, error)
	authorizeFn    func(principal models.User, allowed ...models.Role) error
}

func (m *mockGuardService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	return m.authenticateFn(ctx, tokenString)
}

func (m *mockGuardService) Authorize(principal models.User, allowed ...models.Role) error {
	if m.authorizeFn == nil {
		return nil
	}
	return m.authorizeFn(principal, allowed...)
}

// mockResetService implements service.Reset for unit tests.
type mockResetService struct {
	requestFn func(ctx context.Context, email string) error
	verifyFn  func(ctx context.Context, email, code string) error
	resetFn   func(ctx context.Context, email, code, newPassword string) error
}

func (m *mockResetService) RequestPasswordReset(ctx context.Context, email string) error {
	return m.requestFn(ctx, email)
}

func (m *mockResetService) VerifyResetCode(ctx context.Context, email, code string) error {
	return m.verifyFn(ctx, email, code)
}

func (m *mockResetService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	return m.resetFn(ctx, email, code, newPassword)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler around the given mocks. Nil mocks are fine
// for routes the test never touches.
func newTestHandler(t *testing.T, auth service.Auth, guard service.Guard, reset service.Reset) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:  auth,
		GuardService: guard,
		ResetService: reset,
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// validAccount is a convenience fixture used across multiple tests.
var validAccount = models.User{
	UserID: 7,
	Email:  "ada@example.com",
	Name:   "Ada Lovelace",
	Role:   models.RoleStudent,
}
