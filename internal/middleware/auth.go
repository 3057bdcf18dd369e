package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/otychat/server/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// AdminContextKey is the key for storing admin claims in request context
	AdminContextKey contextKey = "admin"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// TokenValidator checks a bearer token
type TokenValidator interface {
	ValidateToken(token string) (*auth.AdminClaims, error)
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(ErrorResponse{Error: msg})
}

// RequireAdmin returns a middleware that only lets admin tokens through
func RequireAdmin(v TokenValidator) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			// Extract token from Authorization header
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeUnauthorized(w, "Missing authorization header")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				writeUnauthorized(w, "Invalid authorization header format. Use: Bearer <token>")
				return
			}

			claims, err := v.ValidateToken(parts[1])
			if err != nil {
				writeUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), AdminContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
	}
}

// GetAdminClaims extracts admin claims from request context
func GetAdminClaims(r *http.Request) (*auth.AdminClaims, bool) {
	claims, ok := r.Context().Value(AdminContextKey).(*auth.AdminClaims)
	return claims, ok
}
