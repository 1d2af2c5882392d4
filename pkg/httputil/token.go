package httputil

import (
	"errors"
	"net/http"
	"strings"
)

// GetTokenFromRequest reads a bearer token from the Authorization header,
// falling back to the "token" query parameter for websocket upgrades.
func GetTokenFromRequest(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok && token != "" {
			return token, nil
		}
		return "", errors.New("authorization header is not a bearer token")
	}

	if token := r.URL.Query().Get("token"); token != "" {
		return token, nil
	}

	return "", errors.New("no auth token found in header or query")
}
