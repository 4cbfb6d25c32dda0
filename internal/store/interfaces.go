package store

import (
	"context"
	"time"

	"github.com/learngate/learngate/models"
)

// PrincipalRepository is the credential store adapter for user accounts.
// It is the only component that reads or mutates the users table.
type PrincipalRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. A duplicate email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID returns the account with the given id, or ErrNoUserWasFound.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// FindUserByEmail returns the account with the given (normalized) email,
	// or ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// SaveUser updates the mutable fields of an existing account (name,
	// password hash, role, blocked flag) and returns the stored row.
	SaveUser(ctx context.Context, user models.User) (models.User, error)

	// DeleteUser removes the account. Reset codes cascade.
	DeleteUser(ctx context.Context, userID int64) error

	// TouchActivity updates last_activity_at for the account.
	TouchActivity(ctx context.Context, userID int64, at time.Time) error

	// ListUsers returns all accounts ordered by id.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// ResetCodeRepository persists one-time password-reset codes. At most one
// record exists per owner: Upsert replaces any previous one atomically.
type ResetCodeRepository interface {
	// UpsertResetCode inserts the record, replacing any existing record for
	// the same owner in a single statement (no delete-then-insert window).
	UpsertResetCode(ctx context.Context, code models.ResetCode) (models.ResetCode, error)

	// FindLiveResetCode returns the record matching email and code whose
	// expiry is strictly after now, or ErrResetCodeNotFound.
	FindLiveResetCode(ctx context.Context, email, code string, now time.Time) (models.ResetCode, error)

	// FindResetCodeByOwner returns the record for the given account
	// regardless of expiry, or ErrResetCodeNotFound.
	FindResetCodeByOwner(ctx context.Context, userID int64) (models.ResetCode, error)

	// DeleteResetCode removes the record by id. Deleting an absent record is
	// not an error.
	DeleteResetCode(ctx context.Context, id string) error
}
