package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestServiceTokenRoundTrip(t *testing.T) {
	token, err := GenerateServiceToken("s3cret", "cpee", "history", time.Hour)
	if err != nil {
		t.Fatalf("GenerateServiceToken: %v", err)
	}

	claims, err := ValidateServiceToken("s3cret", token)
	if err != nil {
		t.Fatalf("ValidateServiceToken: %v", err)
	}
	if claims.Subject != "cpee" || claims.Scope != "history" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestServiceTokenRejected(t *testing.T) {
	token, err := GenerateServiceToken("s3cret", "cpee", "", time.Hour)
	if err != nil {
		t.Fatalf("GenerateServiceToken: %v", err)
	}
	if _, err := ValidateServiceToken("other", token); !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Fatalf("expected signature error, got %v", err)
	}

	expired, err := GenerateServiceToken("s3cret", "cpee", "", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateServiceToken: %v", err)
	}
	if _, err := ValidateServiceToken("s3cret", expired); !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected expiry error, got %v", err)
	}

	if _, err := GenerateServiceToken("", "cpee", "", time.Hour); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}
