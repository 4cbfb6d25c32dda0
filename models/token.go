package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload carried by every session token issued by the server.
//
// It embeds [jwt.RegisteredClaims] for the standard claim set (sub, iss, iat,
// exp) and adds the account attributes the platform needs on every request
// without a database round-trip: the user's email and role. The subject claim
// holds the user id as a base-10 string.
//
// Claims are self-contained: validity is fully determined by the signature and
// the expiry claim. Account-level state (blocked flag, deletion) is checked
// against the store one layer up, by the guard service.
type Claims struct {
	jwt.RegisteredClaims

	// Email is the account email at issuance time.
	Email string `json:"email"`

	// Role is the account role at issuance time. Authorization decisions
	// re-read the current role from the store; this claim is informational
	// for clients and log correlation.
	Role Role `json:"role"`
}

// Token wraps an issued or verified session token for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
// UserID is the parsed "sub" claim, cached to avoid repeated conversions.
type Token struct {
	// Claims is the decoded claim set of the token.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
