package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/sanfusis123/solo-leveling-backend/internal/domain"
	internal_errors "github.com/sanfusis123/solo-leveling-backend/internal/errors"
)

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (domain.User, error)
}

// Key to store the authenticated user in the request context
type key int

const UserKey key = 0

type Auth struct {
	auth Authenticator
}

func NewAuth(auth Authenticator) *Auth {
	return &Auth{auth: auth}
}

// NeedAuth returns middleware that requires a valid bearer token bound
// to an active account.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return a.middleware(false)
}

// AdminOnly returns middleware that additionally requires the admin role.
func (a *Auth) AdminOnly() func(http.Handler) http.Handler {
	return a.middleware(true)
}

func (a *Auth) middleware(adminOnly bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !found || token == "" {
				http.Error(w, "Not authenticated", http.StatusUnauthorized)
				return
			}

			user, err := a.auth.Authenticate(r.Context(), token)
			if err != nil {
				http.Error(w, err.Error(), internal_errors.StatusCode(err))
				return
			}

			if adminOnly && !user.IsAdmin() {
				http.Error(w, "Admin privileges required", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, &user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext retrieves the authenticated user, or nil outside
// of NeedAuth/AdminOnly.
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(UserKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
