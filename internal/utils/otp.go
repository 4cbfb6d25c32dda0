package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// otpSpan is the number of distinct six-digit codes: [100000, 999999].
const otpSpan = 900000

// GenerateOTPCode returns a six-digit numeric one-time passcode drawn from
// crypto/rand. The code is uniformly distributed over [100000, 999999], so it
// always has exactly six digits and is neither sequential nor predictable.
func GenerateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpSpan))
	if err != nil {
		return "", fmt.Errorf("error occurred during OTP generation: %w", err)
	}

	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// ValidOTPFormat reports whether code looks like a passcode this server could
// have issued: exactly six ASCII digits. Used for cheap input validation
// before touching the store.
func ValidOTPFormat(code string) bool {
	if len(code) != 6 {
		return false
	}
	for _, ch := range code {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}
