package service

import "github.com/quill-dev/quill/internal/domain"

// GroupService also satisfies forms.GroupLookup for post form validation.
type GroupService interface {
	GetGroup(id domain.GroupId) (*domain.Group, error)
	ListGroups() ([]domain.Group, error)
}

type GroupStorage interface {
	GetGroup(id domain.GroupId) (*domain.Group, error)
	ListGroups() ([]domain.Group, error)
}

type Group struct {
	storage GroupStorage
}

func NewGroup(storage GroupStorage) GroupService {
	return &Group{storage}
}

func (g *Group) GetGroup(id domain.GroupId) (*domain.Group, error) {
	return g.storage.GetGroup(id)
}

func (g *Group) ListGroups() ([]domain.Group, error) {
	return g.storage.ListGroups()
}
