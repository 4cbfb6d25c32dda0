package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/learngate/learngate/models"
)

func testUser() models.User {
	return models.User{
		UserID: 123,
		Email:  "alice@example.com",
		Role:   models.RoleStudent,
	}
}

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, testUser(), duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, token.Claims.Issuer)
	}
	if token.Claims.Subject != "123" {
		t.Errorf("expected subject '123', got %s", token.Claims.Subject)
	}
	if token.Claims.Email != "alice@example.com" {
		t.Errorf("expected email claim, got %s", token.Claims.Email)
	}
	if token.Claims.Role != models.RoleStudent {
		t.Errorf("expected role claim student, got %s", token.Claims.Role)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		user     models.User
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", testUser(), time.Hour, "key"},
		{"zero duration", "iss", testUser(), 0, "key"},
		{"empty key", "iss", testUser(), time.Hour, ""},
		{"empty email", "iss", models.User{UserID: 1, Role: models.RoleAdmin}, time.Hour, "key"},
		{"empty role", "iss", models.User{UserID: 1, Email: "a@b.c"}, time.Hour, "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.user, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	key := "secret-key"

	genToken, err := GenerateJWTToken(issuer, testUser(), 5*time.Minute, key)
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)
	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.UserID != 123 {
		t.Errorf("expected userID 123, got %d", parsedToken.UserID)
	}
	if parsedToken.Claims.Email != "alice@example.com" {
		t.Errorf("expected email claim to survive the round trip, got %s", parsedToken.Claims.Email)
	}
	if parsedToken.Claims.Role != models.RoleStudent {
		t.Errorf("expected role claim to survive the round trip, got %s", parsedToken.Claims.Role)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	issuer := "test-issuer"

	genToken, _ := GenerateJWTToken(issuer, testUser(), time.Hour, "correct-key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", issuer)
	if err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issuer := "test-issuer"
	key := "key"
	// Token that expired 1 second ago.
	genToken, _ := GenerateJWTToken(issuer, testUser(), -time.Second, key)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)
	if err == nil {
		t.Error("expected error for expired token, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	key := "key"
	genToken, _ := GenerateJWTToken("real-issuer", testUser(), time.Hour, key)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, key, "fake-issuer")
	if err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Tampered(t *testing.T) {
	key := "key"
	genToken, _ := GenerateJWTToken("iss", testUser(), time.Hour, key)

	parts := strings.Split(genToken.SignedString, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %s", genToken.SignedString)
	}
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	_, err := ValidateAndParseJWTToken(tampered, key, "iss")
	if err == nil {
		t.Error("expected error for tampered payload, got nil")
	}
}
