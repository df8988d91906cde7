package pg

import (
	"database/sql"
	"errors"

	"github.com/quill-dev/quill/internal/domain"
	internal_errors "github.com/quill-dev/quill/internal/errors"
)

func (s *Storage) CreateUser(username domain.Username, passHash string) (*domain.User, error) {
	var user domain.User
	err := s.db.QueryRow(
		"INSERT INTO users(username, pass_hash) VALUES($1, $2) RETURNING id, username, pass_hash, created",
		username, passHash,
	).Scan(&user.Id, &user.Username, &user.PassHash, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) GetUserByUsername(username domain.Username) (*domain.User, error) {
	var user domain.User
	err := s.db.QueryRow(
		"SELECT id, username, pass_hash, created FROM users WHERE username = $1",
		username,
	).Scan(&user.Id, &user.Username, &user.PassHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internal_errors.NotFound("User not found")
		}
		return nil, err
	}
	return &user, nil
}
