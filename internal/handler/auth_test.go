package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/quill-dev/quill/internal/domain"
	internal_errors "github.com/quill-dev/quill/internal/errors"
	"github.com/quill-dev/quill/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authService() *MockAuthService {
	return &MockAuthService{
		MockLogin: func(username domain.Username, password string) (*domain.User, error) {
			if username == "leo" && password == "secret" {
				return &domain.User{Id: 1, Username: "leo"}, nil
			}
			return nil, &internal_errors.ErrorWithStatusCode{
				Message:    "Invalid username or password",
				StatusCode: http.StatusUnauthorized,
			}
		},
	}
}

func findCookie(t *testing.T, rr *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestLoginGet(t *testing.T) {
	h := newTestHandler(&MockPostService{}, &MockGroupService{}, authService())
	router := testRouter(h)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, getRequest("/auth/login/?next=/posts/1/edit/", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "login.html|next:/posts/1/edit/")
}

func TestLoginPost(t *testing.T) {
	h := newTestHandler(&MockPostService{}, &MockGroupService{}, authService())
	router := testRouter(h)

	t.Run("valid credentials set the session cookie and honor next", func(t *testing.T) {
		form := url.Values{"username": {"leo"}, "password": {"secret"}, "next": {"/posts/1/edit/"}}
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, postFormRequest("/auth/login/", form, nil))

		require.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/posts/1/edit/", rr.Header().Get("Location"))

		cookie := findCookie(t, rr, middleware.AccessTokenCookie)
		require.NotNil(t, cookie)
		assert.NotEmpty(t, cookie.Value)
		assert.True(t, cookie.HttpOnly)
	})

	t.Run("missing next lands on the index", func(t *testing.T) {
		form := url.Values{"username": {"leo"}, "password": {"secret"}}
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, postFormRequest("/auth/login/", form, nil))

		require.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/", rr.Header().Get("Location"))
	})

	t.Run("offsite next is ignored", func(t *testing.T) {
		form := url.Values{"username": {"leo"}, "password": {"secret"}, "next": {"https://evil.example/"}}
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, postFormRequest("/auth/login/", form, nil))

		require.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/", rr.Header().Get("Location"))
	})

	t.Run("protocol-relative next is ignored", func(t *testing.T) {
		form := url.Values{"username": {"leo"}, "password": {"secret"}, "next": {"//evil.example/"}}
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, postFormRequest("/auth/login/", form, nil))

		require.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/", rr.Header().Get("Location"))
	})

	t.Run("bad credentials re-render the form", func(t *testing.T) {
		form := url.Values{"username": {"leo"}, "password": {"wrong"}, "next": {"/create/"}}
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, postFormRequest("/auth/login/", form, nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "login.html|next:/create/|error:Invalid username or password")
		assert.Nil(t, findCookie(t, rr, middleware.AccessTokenCookie))
	})
}

func TestLogout(t *testing.T) {
	h := newTestHandler(&MockPostService{}, &MockGroupService{}, authService())
	router := testRouter(h)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, postFormRequest("/auth/logout/", url.Values{}, &domain.User{Id: 1, Username: "leo"}))

	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))

	cookie := findCookie(t, rr, middleware.AccessTokenCookie)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}
