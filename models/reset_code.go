package models

import "time"

// ResetCode is a single-use, time-limited one-time passcode bound to a user
// account for the password-recovery flow.
//
// At most one live ResetCode exists per user: issuing a new one replaces any
// prior record for the same owner (upsert keyed by UserID). A record past
// ExpiresAt is never matched by lookups; no background sweep is required for
// correctness.
type ResetCode struct {
	// ID is the opaque identifier of the record (UUID string).
	ID string `json:"-"`

	// UserID is the owning account.
	UserID int64 `json:"-"`

	// Email is the owner's email, denormalized so the verify and reset
	// steps can look the record up without a join.
	Email string `json:"-"`

	// Code is the six-digit numeric passcode, generated from a
	// cryptographically strong random source.
	Code string `json:"-"`

	// ExpiresAt is creation time plus the configured validity window.
	ExpiresAt time.Time `json:"-"`

	// CreatedAt is when the code was issued.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the ResetCode model.
func (c ResetCode) TableName() string {
	return "password_reset_codes"
}

// Expired reports whether the code is past its validity window at t.
func (c ResetCode) Expired(t time.Time) bool {
	return !c.ExpiresAt.After(t)
}
