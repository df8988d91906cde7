package service

import (
	"github.com/quill-dev/quill/internal/domain"
)

type PostService interface {
	ListRecent() ([]domain.Post, error)
	ListByGroup(slug domain.GroupSlug) (*domain.Group, []domain.Post, error)
	ListByAuthor(username domain.Username) (*domain.User, []domain.Post, error)
	Get(id domain.PostId) (*domain.Post, error)
	Create(author domain.User, text domain.PostText, groupId *domain.GroupId) (*domain.Post, error)
	Update(post *domain.Post, text domain.PostText, groupId *domain.GroupId) (*domain.Post, error)
}

type PostStorage interface {
	ListRecentPosts() ([]domain.Post, error)
	ListPostsByGroup(groupId domain.GroupId) ([]domain.Post, error)
	ListPostsByAuthor(authorId domain.UserId) ([]domain.Post, error)
	GetPost(id domain.PostId) (*domain.Post, error)
	CreatePost(author domain.User, text domain.PostText, groupId *domain.GroupId) (*domain.Post, error)
	UpdatePost(id domain.PostId, text domain.PostText, groupId *domain.GroupId) (*domain.Post, error)
	GetGroupBySlug(slug domain.GroupSlug) (*domain.Group, error)
	GetUserByUsername(username domain.Username) (*domain.User, error)
}

type Post struct {
	storage PostStorage
}

func NewPost(storage PostStorage) PostService {
	return &Post{storage}
}

func (p *Post) ListRecent() ([]domain.Post, error) {
	return p.storage.ListRecentPosts()
}

// ListByGroup resolves the slug first so an unknown group surfaces as
// NotFound rather than an empty listing.
func (p *Post) ListByGroup(slug domain.GroupSlug) (*domain.Group, []domain.Post, error) {
	group, err := p.storage.GetGroupBySlug(slug)
	if err != nil {
		return nil, nil, err
	}
	posts, err := p.storage.ListPostsByGroup(group.Id)
	if err != nil {
		return nil, nil, err
	}
	return group, posts, nil
}

func (p *Post) ListByAuthor(username domain.Username) (*domain.User, []domain.Post, error) {
	author, err := p.storage.GetUserByUsername(username)
	if err != nil {
		return nil, nil, err
	}
	posts, err := p.storage.ListPostsByAuthor(author.Id)
	if err != nil {
		return nil, nil, err
	}
	return author, posts, nil
}

func (p *Post) Get(id domain.PostId) (*domain.Post, error) {
	return p.storage.GetPost(id)
}

func (p *Post) Create(author domain.User, text domain.PostText, groupId *domain.GroupId) (*domain.Post, error) {
	return p.storage.CreatePost(author, text, groupId)
}

func (p *Post) Update(post *domain.Post, text domain.PostText, groupId *domain.GroupId) (*domain.Post, error) {
	return p.storage.UpdatePost(post.Id, text, groupId)
}
