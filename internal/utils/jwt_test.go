package utils_test

import (
	"testing"

	"github.com/bookswap/bookswap-backend/internal/utils"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := utils.GenerateToken(42, "alice@example.com", "secret")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := utils.ValidateToken(token, "secret")
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("user id = %d; want 42", claims.UserID)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("email = %q; want alice@example.com", claims.Email)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := utils.GenerateToken(42, "alice@example.com", "secret")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := utils.ValidateToken(token, "other-secret"); err == nil {
		t.Fatal("token validated with the wrong secret")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	if _, err := utils.ValidateToken("not.a.token", "secret"); err == nil {
		t.Fatal("garbage token validated")
	}
}
