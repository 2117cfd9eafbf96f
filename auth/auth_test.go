// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if hash == "hunter2" {
		t.Fatal("hash should not equal the plaintext")
	}

	if err := CheckPassword("hunter2", hash); err != nil {
		t.Errorf("expected matching password to verify, got %v", err)
	}

	if err := CheckPassword("wrong", hash); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("same-password")
	if err != nil {
		t.Fatal(err)
	}
	h2, err := HashPassword("same-password")
	if err != nil {
		t.Fatal(err)
	}

	// bcrypt salts, so two hashes of the same input must differ
	if h1 == h2 {
		t.Error("expected distinct hashes for the same password")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	const secret = "test-secret"

	tok, err := Token(42, "ayden", secret)
	if err != nil {
		t.Fatalf("Token failed: %v", err)
	}

	claims, err := ParseToken(tok, secret)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}

	// JSON numbers come back as float64
	if got, ok := claims["user_id"].(float64); !ok || int(got) != 42 {
		t.Errorf("expected user_id 42, got %v", claims["user_id"])
	}
	if claims["username"] != "ayden" {
		t.Errorf("expected username ayden, got %v", claims["username"])
	}
	if jti, ok := claims["jti"].(string); !ok || jti == "" {
		t.Error("expected a non-empty jti claim")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	tok, err := Token(1, "ayden", "secret-a")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParseToken(tok, "secret-b"); err == nil {
		t.Error("expected parse with wrong secret to fail")
	}
}
