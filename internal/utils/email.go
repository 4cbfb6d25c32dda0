package utils

import (
	"net/mail"
	"strings"
)

// NormalizeEmail lower-cases and trims an email address so that lookups and
// the unique-email constraint are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether email is a syntactically valid, already
// normalized address. Addresses with display names ("Bob <b@x.com>") are
// rejected: only the bare address form is accepted.
func ValidEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return strings.ToLower(addr.Address) == email
}
