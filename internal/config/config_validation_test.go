package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			TokenSignKey: "sign-key",
			TokenIssuer:  "learngate",
		},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/learngate"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
	}
}

func TestValidate_AppliesDefaults(t *testing.T) {
	cfg := validConfig()

	require.NoError(t, cfg.validate())

	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 10*time.Minute, cfg.Auth.OTPTTL)
}

func TestValidate_KeepsExplicitValues(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.TokenDuration = time.Hour
	cfg.Auth.BcryptCost = 12
	cfg.Auth.OTPTTL = 5 * time.Minute

	require.NoError(t, cfg.validate())

	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, 5*time.Minute, cfg.Auth.OTPTTL)
}

func TestValidate_MissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{"no sign key", func(c *StructuredConfig) { c.Auth.TokenSignKey = "" }, ErrInvalidAuthConfigs},
		{"no issuer", func(c *StructuredConfig) { c.Auth.TokenIssuer = "" }, ErrInvalidAuthConfigs},
		{"no dsn", func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"no address", func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, ErrInvalidServerConfigs},
		{"smtp without from", func(c *StructuredConfig) { c.Mail.SMTPAddress = "smtp:25" }, ErrInvalidMailConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.wantErr)
		})
	}
}
