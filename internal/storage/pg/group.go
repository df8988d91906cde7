package pg

import (
	"database/sql"
	"errors"

	"github.com/quill-dev/quill/internal/domain"
	internal_errors "github.com/quill-dev/quill/internal/errors"
)

func (s *Storage) CreateGroup(title string, slug domain.GroupSlug, description string) (*domain.Group, error) {
	var group domain.Group
	err := s.db.QueryRow(
		"INSERT INTO post_groups(title, slug, description) VALUES($1, $2, $3) RETURNING id, title, slug, description",
		title, slug, description,
	).Scan(&group.Id, &group.Title, &group.Slug, &group.Description)
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (s *Storage) GetGroup(id domain.GroupId) (*domain.Group, error) {
	return s.scanGroup(s.db.QueryRow(
		"SELECT id, title, slug, description FROM post_groups WHERE id = $1", id))
}

func (s *Storage) GetGroupBySlug(slug domain.GroupSlug) (*domain.Group, error) {
	return s.scanGroup(s.db.QueryRow(
		"SELECT id, title, slug, description FROM post_groups WHERE slug = $1", slug))
}

func (s *Storage) scanGroup(row *sql.Row) (*domain.Group, error) {
	var group domain.Group
	err := row.Scan(&group.Id, &group.Title, &group.Slug, &group.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internal_errors.NotFound("Group not found")
		}
		return nil, err
	}
	return &group, nil
}

func (s *Storage) ListGroups() ([]domain.Group, error) {
	rows, err := s.db.Query("SELECT id, title, slug, description FROM post_groups ORDER BY title")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []domain.Group
	for rows.Next() {
		var group domain.Group
		if err := rows.Scan(&group.Id, &group.Title, &group.Slug, &group.Description); err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, rows.Err()
}
