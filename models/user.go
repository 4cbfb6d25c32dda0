package models

import "time"

// Role is the authorization role attached to a user account.
// Role comparison is always an exact string match: no role implicitly
// inherits the powers of another one.
type Role string

// The three roles known to the platform.
const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique, lower-cased account identifier used during
	// authentication and password recovery.
	Email string `json:"email"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext, and is never serialized
	// in any outward-facing representation.
	PasswordHash string `json:"-"`

	// Role governs authorization decisions for this account.
	Role Role `json:"role"`

	// Blocked marks an account that must be rejected at authentication
	// regardless of credential or token validity.
	Blocked bool `json:"blocked"`

	// LastActivityAt is updated on every successful authenticated request.
	LastActivityAt time.Time `json:"last_activity_at"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
