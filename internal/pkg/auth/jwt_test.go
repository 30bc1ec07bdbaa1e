package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/placemate/placemate/internal/app/models"
)

func testJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		SessionTokenExp: exp,
		TokenIssuer:     "placemate-test",
	})
}

func testProfile() *models.Profile {
	return &models.Profile{
		ID:    "profile-1",
		Email: "student@campus.edu",
		Role:  models.RoleStudent,
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	svc := testJWTService(time.Hour)

	token, expiresIn, err := svc.GenerateSessionToken(testProfile())
	if err != nil {
		t.Fatalf("GenerateSessionToken returned error: %v", err)
	}
	if expiresIn != 3600 {
		t.Errorf("expected expiresIn 3600, got %d", expiresIn)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.ProfileID != "profile-1" || claims.Email != "student@campus.edu" || claims.Role != "student" {
		t.Errorf("unexpected claims %+v", claims)
	}
	if claims.Subject != "profile-1" {
		t.Errorf("subject must carry the profile id, got %s", claims.Subject)
	}
}

func TestValidateTokenWrongKey(t *testing.T) {
	token, _, err := testJWTService(time.Hour).GenerateSessionToken(testProfile())
	if err != nil {
		t.Fatalf("GenerateSessionToken returned error: %v", err)
	}

	other := NewJWTService(JWTConfig{
		SecretKey:       "different-secret",
		SessionTokenExp: time.Hour,
		TokenIssuer:     "placemate-test",
	})
	if _, err := other.ValidateToken(token); err == nil {
		t.Fatal("token signed with a different key must not validate")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc := testJWTService(-time.Minute)

	token, _, err := svc.GenerateSessionToken(testProfile())
	if err != nil {
		t.Fatalf("GenerateSessionToken returned error: %v", err)
	}
	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	if _, err := testJWTService(time.Hour).ValidateToken("not.a.token"); err == nil {
		t.Fatal("garbage input must not validate")
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"bearer prefix", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"raw token tolerated", "abc.def.ghi", "abc.def.ghi", false},
		{"empty header", "", "", true},
		{"wrong scheme", "Basic abc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("unexpected error state: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
