package middlewares

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/GbFerrera/asc-admin-api/internal/api"
	"github.com/GbFerrera/asc-admin-api/internal/models"
	"github.com/GbFerrera/asc-admin-api/internal/services"
)

type subjectFieldType string

const subjectField subjectFieldType = "subjectField"

// AuthMiddlewareConfig configures the authentication middleware.
type AuthMiddlewareConfig struct {
	excludePaths []string
}

func AuthMiddleware() *AuthMiddlewareConfig {
	return &AuthMiddlewareConfig{}
}

// WithExcludedPaths marks path prefixes that skip authentication.
func (a *AuthMiddlewareConfig) WithExcludedPaths(paths ...string) *AuthMiddlewareConfig {
	a.excludePaths = paths
	return a
}

// Middleware validates the bearer session token and stores both the token
// subject and the raw token in the request context. The raw token doubles as
// the credential the backend client presents, so each request forwards the
// caller's own session instead of a shared service credential.
func (a *AuthMiddlewareConfig) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, path := range a.excludePaths {
			if strings.HasPrefix(r.URL.Path, path) {
				next.ServeHTTP(w, r)
				return
			}
		}

		jwtService := GetServiceFromContext[models.JWTService](w, r, JwtServiceKey)

		authHeader := r.Header.Get("Authorization")

		if authHeader == "" {
			http.Error(w, "Authorization header is required", http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			http.Error(w, "Bearer token is empty", http.StatusUnauthorized)
			return
		}

		token, err := (*jwtService).ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, services.ErrTokenIsInvalid) {
				http.Error(w, "Token is invalid", http.StatusUnauthorized)
				return
			}

			if errors.Is(err, services.ErrTokenIsExpired) {
				http.Error(w, "Token is expired", http.StatusUnauthorized)
				return
			}

			http.Error(w, fmt.Sprintf("Error occurred during validating token: %s", err.Error()), http.StatusUnauthorized)
			return
		}

		subject, err := token.Claims.GetSubject()
		if err != nil {
			http.Error(w, fmt.Sprintf("Error occurred during reading sub field: %s", err.Error()), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), subjectField, subject)
		ctx = api.WithCredential(ctx, tokenString)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSubjectFromContext extracts the authenticated subject from the request
// context. On failure it writes HTTP 500 and returns an empty string.
func GetSubjectFromContext(w http.ResponseWriter, r *http.Request) string {
	subject, ok := r.Context().Value(subjectField).(string)

	if !ok {
		http.Error(w, "Could not retrieve subject from context", http.StatusInternalServerError)
		return ""
	}

	return subject
}
