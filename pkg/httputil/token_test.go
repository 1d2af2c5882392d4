package httputil

import (
	"net/http/httptest"
	"testing"
)

func TestGetTokenFromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/history", nil)
	r.Header.Set("Authorization", "Bearer abc")
	if tok, err := GetTokenFromRequest(r); err != nil || tok != "abc" {
		t.Fatalf("header token = %q, %v", tok, err)
	}

	r = httptest.NewRequest("GET", "/ws/watch?token=xyz", nil)
	if tok, err := GetTokenFromRequest(r); err != nil || tok != "xyz" {
		t.Fatalf("query token = %q, %v", tok, err)
	}

	r = httptest.NewRequest("GET", "/api/history", nil)
	r.Header.Set("Authorization", "Basic Zm9vOmJhcg==")
	if _, err := GetTokenFromRequest(r); err == nil {
		t.Fatalf("basic auth should be rejected")
	}

	r = httptest.NewRequest("GET", "/api/history", nil)
	if _, err := GetTokenFromRequest(r); err == nil {
		t.Fatalf("missing token should be rejected")
	}
}
