package middleware

import (
	"context"
	"net/http"
	"strings"

	"blogapi/models"
	"blogapi/repositories"
)

type contextKey string

const principalKey contextKey = "principal"

// Auth resolves the "Authorization: Token <key>" header to a user and puts
// it into the request context. Requests without a valid token get 401
// before any ownership check can run.
func Auth(tokens repositories.TokenRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			key, ok := strings.CutPrefix(header, "Token ")
			if !ok || key == "" {
				http.Error(w, `{"detail": "Authentication credentials were not provided"}`, http.StatusUnauthorized)
				return
			}

			user, err := tokens.FindUser(key)
			if err != nil {
				http.Error(w, `{"detail": "Invalid token"}`, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), principalKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Principal returns the authenticated user stored by Auth
func Principal(r *http.Request) *models.User {
	user, _ := r.Context().Value(principalKey).(*models.User)
	return user
}
