// Package config loads and merges the learngate server configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged with last-wins semantics for non-zero fields and the
// result is validated before use: required secrets (token sign key, issuer)
// and endpoints (DSN, HTTP address) must be present, while tunable knobs
// (token duration, bcrypt cost, OTP TTL) receive documented defaults.
package config
