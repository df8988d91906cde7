package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/quill-dev/quill/internal/domain"
	"github.com/quill-dev/quill/internal/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalAuth(t *testing.T) {
	jwtSvc := jwt.New("secret", time.Hour)
	auth := NewAuth(jwtSvc)

	var seen *domain.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetUserFromContext(r)
		w.WriteHeader(http.StatusOK)
	})
	handler := auth.OptionalAuth()(next)

	t.Run("valid token populates user", func(t *testing.T) {
		seen = nil
		token, err := jwtSvc.NewToken(domain.User{Id: 1, Username: "auth"})
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: token})
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		require.NotNil(t, seen)
		assert.Equal(t, int64(1), seen.Id)
		assert.Equal(t, "auth", seen.Username)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("no cookie stays anonymous", func(t *testing.T) {
		seen = &domain.User{}
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

		assert.Nil(t, seen)
		assert.Equal(t, http.StatusOK, rr.Code, "anonymous requests are not rejected")
	})

	t.Run("garbage token stays anonymous", func(t *testing.T) {
		seen = &domain.User{}
		req := httptest.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "garbage"})
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Nil(t, seen)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
