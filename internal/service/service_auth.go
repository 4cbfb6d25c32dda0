// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/learngate/learngate/internal/config"
	"github.com/learngate/learngate/internal/logger"
	"github.com/learngate/learngate/internal/store"
	"github.com/learngate/learngate/internal/utils"
	"github.com/learngate/learngate/models"
)

// minPasswordLength is the minimum accepted password length, in bytes.
const minPasswordLength = 8

// authService implements Auth. It hashes passwords with bcrypt before they
// reach the store and issues HMAC-SHA256 signed JWTs.
type authService struct {
	// principals is the data-access layer used to create and look up accounts.
	principals store.PrincipalRepository

	// tokenSignKey is the HMAC secret used to sign issued JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// bcryptCost is the bcrypt work factor applied when hashing passwords.
	bcryptCost int

	logger *logger.Logger
}

// NewAuthService constructs an Auth wired to the given PrincipalRepository and
// populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(principals store.PrincipalRepository, cfg config.Auth, logger *logger.Logger) Auth {
	return &authService{
		principals:    principals,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		bcryptCost:    cfg.BcryptCost,
		logger:        logger,
	}
}

// Register creates a new account.
//
// The email is normalized and validated, the password checked against the
// minimum length and hashed with bcrypt, and the role forced to student:
// elevated roles are assigned by an admin after the fact, never self-selected.
//
// Returns the persisted account (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if a required field is empty.
//   - ErrInvalidEmailFormat / ErrPasswordTooShort on validation failure.
//   - A wrapped storage error if the repository call fails (e.g. the email is
//     already taken — see store.ErrEmailAlreadyExists).
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Name == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	email := utils.NormalizeEmail(req.Email)
	if !utils.ValidEmail(email) {
		log.Error().Str("email", email).Msg("invalid email format")
		return models.User{}, ErrInvalidEmailFormat
	}
	if len(req.Password) < minPasswordLength {
		return models.User{}, ErrPasswordTooShort
	}

	passwordHash, err := utils.HashPassword(req.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registered, err := a.principals.CreateUser(ctx, models.User{
		Email:        email,
		Name:         req.Name,
		PasswordHash: passwordHash,
		Role:         models.RoleStudent,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("account creation ended with error")
		return models.User{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	return registered, nil
}

// Login authenticates an existing account.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials so
// that the endpoint cannot be used to probe which emails are registered. A
// blocked account is rejected with ErrAccountBlocked even when the password
// is correct.
func (a *authService) Login(ctx context.Context, email string, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	found, err := a.principals.FindUserByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("account search by email failed")
		return models.User{}, fmt.Errorf("account search by email failed: %w", err)
	}

	ok, err := utils.VerifyPassword(password, found.PasswordHash)
	if err != nil {
		log.Err(err).Int64("id", found.UserID).Msg("stored password hash is not comparable")
		return models.User{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		return models.User{}, ErrInvalidCredentials
	}

	if found.Blocked {
		log.Warn().Int64("id", found.UserID).Msg("blocked account attempted login")
		return models.User{}, ErrAccountBlocked
	}

	return found, nil
}

// CreateToken issues a signed JWT for the given account.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ListUsers returns all accounts. Role enforcement happens in the handler via
// the Guard; the service itself does no authorization.
func (a *authService) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := a.principals.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("listing accounts failed")
		return nil, fmt.Errorf("listing accounts failed: %w", err)
	}

	return users, nil
}

// SetUserBlocked flips the blocked flag for an account and returns the
// updated record. Blocking takes effect on the account's next request, not at
// token expiry, because the guard re-reads the account each time.
func (a *authService) SetUserBlocked(ctx context.Context, userID int64, blocked bool) (models.User, error) {
	log := logger.FromContext(ctx)

	found, err := a.principals.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("account search by id failed")
		return models.User{}, fmt.Errorf("account search by id failed: %w", err)
	}

	found.Blocked = blocked
	saved, err := a.principals.SaveUser(ctx, found)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("saving blocked flag failed")
		return models.User{}, fmt.Errorf("saving blocked flag failed: %w", err)
	}

	return saved, nil
}

// DeleteUser removes an account and, via the cascade, any live reset code it
// owns. Already-issued tokens for the account die on their next request when
// the guard fails to re-read the principal.
func (a *authService) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if err := a.principals.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Int64("id", userID).Msg("account deletion failed")
		return fmt.Errorf("account deletion failed: %w", err)
	}

	log.Info().Int64("id", userID).Msg("account deleted")
	return nil
}
