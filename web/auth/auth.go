package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/bistroworks/bistro-server/models"
)

// AuthMiddleware gates requests by token validity and by stored role.
// Gates compose in order: Authenticate first, RequireAdmin after.
type AuthMiddleware struct {
	tokens   *TokenService
	userRepo models.UserRepository
}

// ContextKey is used to store user information in the request context
type ContextKey string

const (
	// EmailKey is the context key for the authenticated caller's email
	EmailKey ContextKey = "email"
	// AuthHeaderName is the name of the authentication header
	AuthHeaderName = "Authorization"
)

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(tokens *TokenService, userRepo models.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:   tokens,
		userRepo: userRepo,
	}
}

// Authenticate is the first gate. A missing Authorization header is
// Unauthorized; a present but malformed, invalid, or expired credential is
// Forbidden. On success the claim email is attached to the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(AuthHeaderName)
		if authHeader == "" {
			renderError(w, http.StatusUnauthorized, "unauthorized access")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			renderError(w, http.StatusForbidden, "access denied")
			return
		}

		claims, err := m.tokens.Verify(parts[1])
		if err != nil {
			renderError(w, http.StatusForbidden, "access denied")
			return
		}

		ctx := context.WithValue(r.Context(), EmailKey, claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin is the second gate and must run after Authenticate. The role
// is looked up in the users collection on every call; it is never cached
// across requests.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, err := GetEmail(r.Context())
		if err != nil {
			renderError(w, http.StatusUnauthorized, "unauthorized access")
			return
		}

		user, err := m.userRepo.GetByEmail(r.Context(), email)
		if err != nil || !user.IsAdmin() {
			renderError(w, http.StatusForbidden, "forbidden access")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetEmail extracts the authenticated email from the request context
func GetEmail(ctx context.Context) (string, error) {
	email, ok := ctx.Value(EmailKey).(string)
	if !ok || email == "" {
		return "", errors.New("user not authenticated")
	}
	return email, nil
}

func renderError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(models.APIError{Code: code, Message: message})
}
