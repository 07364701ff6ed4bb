package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/focusin/hub/internal/auth"
)

type contextKey string

const userKey contextKey = "hub.user"

// RequireAuth resolves the bearer token into a user and stores it on
// the request context. Requests without a valid session get 401.
func RequireAuth(svc *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			user, err := svc.Resolve(token)
			if err != nil {
				http.Error(w, "invalid session", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireFounder gates destructive operations behind the founder role.
func RequireFounder(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFrom(r.Context())
		if !ok || user.Role != auth.RoleFounder {
			http.Error(w, "founder role required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func UserFrom(ctx context.Context) (auth.User, bool) {
	user, ok := ctx.Value(userKey).(auth.User)
	return user, ok
}
