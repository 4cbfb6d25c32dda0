// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, applying defaults for
// optional knobs that were left unset.
//
// Required: token sign key, token issuer, database DSN, HTTP address.
// Defaulted: token duration (7 days), bcrypt cost (10), OTP TTL (10 minutes).
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenIssuer == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Mail.SMTPAddress != "" && cfg.Mail.From == "" {
		return ErrInvalidMailConfigs
	}

	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = DefaultTokenDuration
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = DefaultBcryptCost
	}
	if cfg.Auth.OTPTTL == 0 {
		cfg.Auth.OTPTTL = DefaultOTPTTL
	}

	return nil
}
