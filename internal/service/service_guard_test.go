package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/learngate/learngate/internal/logger"
	"github.com/learngate/learngate/internal/mock"
	"github.com/learngate/learngate/internal/store"
	"github.com/learngate/learngate/internal/utils"
	"github.com/learngate/learngate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestGuardSvc(t *testing.T, ctrl *gomock.Controller) (Guard, *mock.MockPrincipalRepository) {
	t.Helper()
	principals := mock.NewMockPrincipalRepository(ctrl)
	return NewGuardService(principals, testAuthConfig(), logger.Nop()), principals
}

func signedTestToken(t *testing.T, user models.User) string {
	t.Helper()
	cfg := testAuthConfig()
	token, err := utils.GenerateJWTToken(cfg.TokenIssuer, user, cfg.TokenDuration, cfg.TokenSignKey)
	require.NoError(t, err)
	return token.SignedString
}

func TestGuardService_Authenticate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guard, principals := newTestGuardSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{UserID: 7, Email: "ada@example.com", Role: models.RoleStudent}
	tokenString := signedTestToken(t, stored)

	gomock.InOrder(
		principals.EXPECT().FindUserByID(ctx, int64(7)).Return(stored, nil),
		principals.EXPECT().TouchActivity(ctx, int64(7), gomock.Any()).Return(nil),
	)

	principal, err := guard.Authenticate(ctx, tokenString)
	require.NoError(t, err)
	assert.Equal(t, stored, principal)
}

func TestGuardService_Authenticate_StoreIsAuthoritative(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guard, principals := newTestGuardSvc(t, ctrl)
	ctx := context.Background()

	// Token was minted while the account was still an instructor; the role
	// has since been demoted. The stored record must win.
	tokenString := signedTestToken(t, models.User{UserID: 7, Email: "ada@example.com", Role: models.RoleInstructor})
	stored := models.User{UserID: 7, Email: "ada@example.com", Role: models.RoleStudent}

	principals.EXPECT().FindUserByID(ctx, int64(7)).Return(stored, nil)
	principals.EXPECT().TouchActivity(ctx, int64(7), gomock.Any()).Return(nil)

	principal, err := guard.Authenticate(ctx, tokenString)
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, principal.Role)
}

func TestGuardService_Authenticate_NoToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guard, _ := newTestGuardSvc(t, ctrl)

	_, err := guard.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoTokenProvided)
}

func TestGuardService_Authenticate_GarbageToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guard, _ := newTestGuardSvc(t, ctrl)

	_, err := guard.Authenticate(context.Background(), "not.a.jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestGuardService_Authenticate_ExpiredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guard, _ := newTestGuardSvc(t, ctrl)
	cfg := testAuthConfig()

	token, err := utils.GenerateJWTToken(cfg.TokenIssuer,
		models.User{UserID: 7, Email: "ada@example.com", Role: models.RoleStudent},
		-time.Second, cfg.TokenSignKey)
	require.NoError(t, err)

	_, err = guard.Authenticate(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestGuardService_Authenticate_DeletedAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guard, principals := newTestGuardSvc(t, ctrl)
	ctx := context.Background()

	tokenString := signedTestToken(t, models.User{UserID: 7, Email: "ada@example.com", Role: models.RoleStudent})
	principals.EXPECT().FindUserByID(ctx, int64(7)).Return(models.User{}, store.ErrNoUserWasFound)

	_, err := guard.Authenticate(ctx, tokenString)
	assert.ErrorIs(t, err, ErrPrincipalGone, "a valid token for a deleted account is unauthenticated")
}

func TestGuardService_Authenticate_BlockedAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guard, principals := newTestGuardSvc(t, ctrl)
	ctx := context.Background()

	tokenString := signedTestToken(t, models.User{UserID: 7, Email: "ada@example.com", Role: models.RoleStudent})
	principals.EXPECT().FindUserByID(ctx, int64(7)).
		Return(models.User{UserID: 7, Blocked: true}, nil)

	// No TouchActivity expectation: a blocked account's activity is not touched.
	_, err := guard.Authenticate(ctx, tokenString)
	assert.ErrorIs(t, err, ErrAccountBlocked)
}

func TestGuardService_Authenticate_TouchFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guard, principals := newTestGuardSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{UserID: 7, Email: "ada@example.com", Role: models.RoleStudent}
	tokenString := signedTestToken(t, stored)

	principals.EXPECT().FindUserByID(ctx, int64(7)).Return(stored, nil)
	principals.EXPECT().TouchActivity(ctx, int64(7), gomock.Any()).
		Return(errors.New("deadlock detected"))

	principal, err := guard.Authenticate(ctx, tokenString)
	require.NoError(t, err, "activity bookkeeping must never fail the request")
	assert.Equal(t, stored, principal)
}

func TestGuardService_Authorize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guard, _ := newTestGuardSvc(t, ctrl)

	tests := []struct {
		name      string
		principal models.User
		allowed   []models.Role
		wantErr   error
	}{
		{"empty set allows any authenticated", models.User{Role: models.RoleStudent}, nil, nil},
		{"exact match", models.User{Role: models.RoleInstructor}, []models.Role{models.RoleInstructor}, nil},
		{"match in multi set", models.User{Role: models.RoleAdmin}, []models.Role{models.RoleInstructor, models.RoleAdmin}, nil},
		{"student not instructor", models.User{Role: models.RoleStudent}, []models.Role{models.RoleInstructor}, ErrForbidden},
		{"admin is not implicitly instructor", models.User{Role: models.RoleAdmin}, []models.Role{models.RoleInstructor}, ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := guard.Authorize(tt.principal, tt.allowed...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
