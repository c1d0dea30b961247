package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/eat-around/models"
	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", "user-123", "alice", models.PurposeAuth, time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.UserID != "user-123" || token.Purpose != models.PurposeAuth || token.Username != "alice" {
		t.Errorf("unexpected token fields: %+v", token)
	}

	claims := &models.TokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token.SignedString, claims); err != nil {
		t.Fatalf("could not decode claims: %v", err)
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("expected issuer test-issuer, got %s", claims.Issuer)
	}
	if claims.Subject != "user-123" {
		t.Errorf("expected subject 'user-123', got %s", claims.Subject)
	}
	if claims.Purpose != models.PurposeAuth {
		t.Errorf("expected purpose auth, got %s", claims.Purpose)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		purpose  models.TokenPurpose
		duration time.Duration
		key      string
	}{
		{"empty user", "", models.PurposeAuth, time.Hour, "key"},
		{"empty purpose", "1", "", time.Hour, "key"},
		{"zero duration", "1", models.PurposeAuth, 0, "key"},
		{"empty key", "1", models.PurposeAuth, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken("iss", tt.userID, "u", tt.purpose, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", "user-456", "bob", models.PurposePasswordReset, 5*time.Minute, "secret-key")

	parsed, err := ValidateAndParseJWTToken(genToken.SignedString, "secret-key", "test-issuer")
	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsed.UserID != "user-456" {
		t.Errorf("expected userID user-456, got %s", parsed.UserID)
	}
	if parsed.Purpose != models.PurposePasswordReset {
		t.Errorf("expected purpose password-reset, got %s", parsed.Purpose)
	}
}

func TestValidateAndParseJWTToken_EmptyIssuerSkipsCheck(t *testing.T) {
	genToken, _ := GenerateJWTToken("any-issuer", "1", "u", models.PurposeAuth, time.Hour, "key")

	if _, err := ValidateAndParseJWTToken(genToken.SignedString, "key", ""); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", "1", "u", models.PurposeAuth, time.Hour, "correct-key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "test-issuer")
	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected signature error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	// Token that expired 1 second ago
	genToken, _ := GenerateJWTToken("test-issuer", "1", "u", models.PurposeAuth, -time.Second, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "test-issuer")
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected expired error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateJWTToken("real-issuer", "1", "u", models.PurposeAuth, time.Hour, "key")

	if _, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "fake-issuer"); err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss")
	if !errors.Is(err, jwt.ErrTokenMalformed) {
		t.Errorf("expected malformed error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_RejectsNoneAlgorithm(t *testing.T) {
	claims := &models.TokenClaims{
		Purpose: models.PurposeAuth,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("could not build unsigned token: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(unsigned, "key", ""); err == nil {
		t.Error("expected unsigned token to be rejected")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "bearer abc", want: "abc"},
		{header: "  Bearer   abc  ", want: "abc"},
		{header: "", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "Bearer ", wantErr: true},
		{header: "Basic dXNlcjpwYXNz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAuthorizationHeader) {
					t.Errorf("expected ErrInvalidAuthorizationHeader, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
