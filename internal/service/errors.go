package service

import "errors"

// Authentication and validation failures surfaced to the transport layer.
// Messages are stable and user-safe; anything not in this list is treated as
// an internal error and must not leak details to the caller.
var (
	// ErrInvalidDataProvided is returned when required request fields are
	// missing or empty.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidEmailFormat is returned when an email fails syntactic
	// validation.
	ErrInvalidEmailFormat = errors.New("invalid email format")

	// ErrPasswordTooShort is returned when a new password is shorter than
	// the minimum length.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")

	// ErrInvalidOTPFormat is returned when a presented reset code is not a
	// six-digit numeric string.
	ErrInvalidOTPFormat = errors.New("reset code must be 6 digits")

	// ErrInvalidCredentials is returned on login when the email is unknown
	// OR the password is wrong. The two cases are deliberately
	// indistinguishable to prevent account enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNoTokenProvided is returned when a guarded operation is invoked
	// without a bearer token.
	ErrNoTokenProvided = errors.New("no token provided")

	// ErrTokenIsExpiredOrInvalid is returned when a presented token fails
	// cryptographic verification or has expired.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrPrincipalGone is returned when a cryptographically valid token
	// references an account that no longer exists. The bearer is treated as
	// unauthenticated.
	ErrPrincipalGone = errors.New("account no longer exists")

	// ErrAccountBlocked is returned when the account is blocked. The token
	// may still be cryptographically valid; the block takes effect on the
	// next request regardless.
	ErrAccountBlocked = errors.New("account is blocked")

	// ErrForbidden is returned when the authenticated account's role is not
	// in the allowed set for an operation.
	ErrForbidden = errors.New("insufficient role for this operation")

	// ErrResetCodeInvalid is returned when no live reset code matches the
	// presented email and code: wrong code, expired, or already consumed.
	ErrResetCodeInvalid = errors.New("reset code is invalid or expired")

	// ErrTokenCreationFailed wraps JWT signing failures.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrMailDeliveryFailed wraps outbound mail failures. The issued reset
	// code stays valid; requesting again reissues and resends.
	ErrMailDeliveryFailed = errors.New("mail delivery failed")
)
