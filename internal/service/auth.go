package service

import (
	"net/http"

	"github.com/quill-dev/quill/internal/domain"
	internal_errors "github.com/quill-dev/quill/internal/errors"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(username domain.Username, password string) (*domain.User, error)
}

type AuthStorage interface {
	GetUserByUsername(username domain.Username) (*domain.User, error)
}

type Auth struct {
	storage AuthStorage
}

func NewAuth(storage AuthStorage) AuthService {
	return &Auth{storage}
}

// errBadCredentials deliberately doesn't distinguish unknown user from wrong
// password.
func errBadCredentials() error {
	return &internal_errors.ErrorWithStatusCode{Message: "Invalid username or password", StatusCode: http.StatusUnauthorized}
}

func (a *Auth) Login(username domain.Username, password string) (*domain.User, error) {
	user, err := a.storage.GetUserByUsername(username)
	if err != nil {
		if _, ok := err.(*internal_errors.ErrorWithStatusCode); ok {
			return nil, errBadCredentials()
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(password)); err != nil {
		return nil, errBadCredentials()
	}

	return user, nil
}
