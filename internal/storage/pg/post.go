package pg

import (
	"database/sql"
	"errors"

	"github.com/quill-dev/quill/internal/domain"
	internal_errors "github.com/quill-dev/quill/internal/errors"
)

// postColumns is the join every post read uses: author is always populated,
// group only when assigned. Ordering is newest first, id breaks pub_date ties.
const postColumns = `
	p.id, p.text, p.pub_date,
	u.id, u.username,
	g.id, g.title, g.slug, g.description
FROM posts p
JOIN users u ON u.id = p.author_id
LEFT JOIN post_groups g ON g.id = p.group_id`

const postOrder = " ORDER BY p.pub_date DESC, p.id DESC"

func scanPost(scan func(dest ...any) error) (*domain.Post, error) {
	var post domain.Post
	var groupId sql.NullInt64
	var groupTitle, groupSlug, groupDescription sql.NullString

	err := scan(
		&post.Id, &post.Text, &post.PubDate,
		&post.Author.Id, &post.Author.Username,
		&groupId, &groupTitle, &groupSlug, &groupDescription,
	)
	if err != nil {
		return nil, err
	}

	if groupId.Valid {
		post.Group = &domain.Group{
			Id:          groupId.Int64,
			Title:       groupTitle.String,
			Slug:        groupSlug.String,
			Description: groupDescription.String,
		}
	}
	return &post, nil
}

func (s *Storage) queryPosts(query string, args ...any) ([]domain.Post, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		post, err := scanPost(rows.Scan)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *post)
	}
	return posts, rows.Err()
}

func (s *Storage) ListRecentPosts() ([]domain.Post, error) {
	return s.queryPosts("SELECT" + postColumns + postOrder)
}

func (s *Storage) ListPostsByGroup(groupId domain.GroupId) ([]domain.Post, error) {
	return s.queryPosts("SELECT"+postColumns+" WHERE p.group_id = $1"+postOrder, groupId)
}

func (s *Storage) ListPostsByAuthor(authorId domain.UserId) ([]domain.Post, error) {
	return s.queryPosts("SELECT"+postColumns+" WHERE p.author_id = $1"+postOrder, authorId)
}

func (s *Storage) GetPost(id domain.PostId) (*domain.Post, error) {
	post, err := scanPost(s.db.QueryRow("SELECT"+postColumns+" WHERE p.id = $1", id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internal_errors.NotFound("Post not found")
		}
		return nil, err
	}
	return post, nil
}

// CreatePost persists a new post with pub_date assigned by the database and
// returns it fully populated.
func (s *Storage) CreatePost(author domain.User, text domain.PostText, groupId *domain.GroupId) (*domain.Post, error) {
	var id domain.PostId
	err := s.db.QueryRow(
		"INSERT INTO posts(text, author_id, group_id) VALUES($1, $2, $3) RETURNING id",
		text, author.Id, nullableId(groupId),
	).Scan(&id)
	if err != nil {
		return nil, err
	}
	return s.GetPost(id)
}

// UpdatePost changes text and group of an existing post. Author and pub_date
// are never touched.
func (s *Storage) UpdatePost(id domain.PostId, text domain.PostText, groupId *domain.GroupId) (*domain.Post, error) {
	result, err := s.db.Exec(
		"UPDATE posts SET text = $1, group_id = $2 WHERE id = $3",
		text, nullableId(groupId), id,
	)
	if err != nil {
		return nil, err
	}
	updated, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if updated == 0 {
		return nil, internal_errors.NotFound("Post not found")
	}
	return s.GetPost(id)
}

func nullableId(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}
