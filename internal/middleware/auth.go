package middleware

import (
	"context"
	"net/http"

	"github.com/quill-dev/quill/internal/domain"
	"github.com/quill-dev/quill/internal/jwt"
)

// AccessTokenCookie holds the signed session token.
const AccessTokenCookie = "accessToken"

// Key to store the session user in the request context
type key int

const userKey key = 0

type Auth struct {
	jwt jwt.Service
}

func NewAuth(jwt jwt.Service) *Auth {
	return &Auth{jwt}
}

// OptionalAuth populates the request context with the session user when a
// valid token cookie is present. Anonymous requests pass through untouched;
// every handler decides for itself whether a user is required.
func (a *Auth) OptionalAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(AccessTokenCookie)
			if err == nil {
				if user, err := a.jwt.DecodeUser(cookie.Value); err == nil {
					r = r.WithContext(ContextWithUser(r.Context(), user))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func ContextWithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext returns the session user, or nil for anonymous requests.
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(userKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
