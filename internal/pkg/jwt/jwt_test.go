package jwt

import (
	"errors"
	"testing"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	secret := "test_secret"

	token, err := GenerateAccessToken(42, "staff1", "STAFF", secret, 15)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := ValidateAccessToken(token, secret)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "staff1" || claims.Role != "STAFF" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	if _, err := ValidateAccessToken(token, "wrong_secret"); err == nil {
		t.Fatalf("expected validation failure with wrong secret")
	}
}

func TestAccessTokenExpired(t *testing.T) {
	secret := "test_secret"

	token, err := GenerateAccessToken(42, "staff1", "STAFF", secret, -1)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := ValidateAccessToken(token, secret); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	secret := "test_refresh_secret"

	token, err := GenerateRefreshToken(42, "token-id-1", secret, 7)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	claims, err := ValidateRefreshToken(token, secret)
	if err != nil {
		t.Fatalf("ValidateRefreshToken: %v", err)
	}
	if claims.UserID != 42 || claims.TokenID != "token-id-1" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestValidateGarbage(t *testing.T) {
	if _, err := ValidateAccessToken("not-a-jwt", "secret"); err != ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
