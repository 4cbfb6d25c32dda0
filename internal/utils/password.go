package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the work factor applied to freshly hashed passwords.
const DefaultBcryptCost = 10

// HashPassword derives a bcrypt hash from a plaintext password.
//
// Call sites must invoke it exactly once per plaintext value — whenever a
// password is set or changed — and store only the returned hash. An already
// hashed value must never be passed back in.
//
// A cost outside the bcrypt-supported range falls back to
// [DefaultBcryptCost].
func HashPassword(plaintext string, cost int) (string, error) {
	if plaintext == "" {
		return "", errors.New("empty password cannot be hashed")
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("error occurred during password hashing: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored bcrypt hash.
//
// A mismatch is not an error: the function returns (false, nil). A non-nil
// error is returned only for unrecoverable conditions such as a corrupted
// hash format.
func VerifyPassword(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("error occurred during password verification: %w", err)
	}
}
