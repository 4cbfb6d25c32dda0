// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev
package service

import (
	"context"

	"github.com/learngate/learngate/models"
)

// Auth covers account registration, credential verification and session
// token issuance.
type Auth interface {
	// Register creates a new account with a student role, hashing the
	// password before it ever reaches the store.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies credentials and returns the account on success.
	// Unknown email and wrong password produce the same error.
	Login(ctx context.Context, email string, password string) (models.User, error)

	// CreateToken issues a signed session token for the given account.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ListUsers returns every account. Admin only, enforced by the caller.
	ListUsers(ctx context.Context) ([]models.User, error)

	// SetUserBlocked flips the blocked flag for an account.
	SetUserBlocked(ctx context.Context, userID int64, blocked bool) (models.User, error)

	// DeleteUser removes an account. Outstanding tokens keep verifying
	// cryptographically but fail at the guard's store re-read.
	DeleteUser(ctx context.Context, userID int64) error
}

// Guard authenticates bearer tokens and authorizes roles on every request.
type Guard interface {
	// Authenticate verifies the token signature and expiry, then re-reads
	// the account from the store so that deletions and blocks apply
	// immediately, not at token expiry.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)

	// Authorize checks the principal's role against the allowed set by
	// exact match. An empty allowed set permits any authenticated account.
	Authorize(principal models.User, allowed ...models.Role) error
}

// Reset drives the OTP-based password recovery flow.
type Reset interface {
	// RequestPasswordReset issues a fresh code and emails it. For unknown
	// emails it returns nil so callers cannot probe for accounts.
	RequestPasswordReset(ctx context.Context, email string) error

	// VerifyResetCode checks a code without consuming it, so a client can
	// validate before showing the new-password form.
	VerifyResetCode(ctx context.Context, email string, code string) error

	// ResetPassword re-checks the code, replaces the password and consumes
	// the code in that order.
	ResetPassword(ctx context.Context, email string, code string, newPassword string) error
}
