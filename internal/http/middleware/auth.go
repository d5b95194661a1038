package middleware

import (
	"context"
	"net/http"

	"github.com/rogerio-castellano/webstore/internal/auth"
)

type contextKey string

const (
	usernameKey  = contextKey("username")
	requestIDKey = contextKey("request_id")
)

// Auth rejects requests without a valid bearer token and stores the caller
// in the request context.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := auth.TokenClaims(r.Header.Get("Authorization"))
		if err != nil {
			http.Error(w, "missing or invalid token", http.StatusUnauthorized)
			return
		}

		username, _ := claims["username"].(string)
		if username == "" {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), usernameKey, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Username returns the logged-in caller, or "" outside Auth.
func Username(r *http.Request) string {
	if val, ok := r.Context().Value(usernameKey).(string); ok {
		return val
	}
	return ""
}
