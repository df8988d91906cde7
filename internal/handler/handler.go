package handler

import (
	"html/template"

	"github.com/quill-dev/quill/internal/config"
	"github.com/quill-dev/quill/internal/jwt"
	"github.com/quill-dev/quill/internal/markdown"
	"github.com/quill-dev/quill/internal/service"
)

type Handler struct {
	templates map[string]*template.Template
	posts     service.PostService
	groups    service.GroupService
	auth      service.AuthService
	jwt       jwt.Service
	md        *markdown.Renderer
	cfg       config.Public
}

func New(templates map[string]*template.Template, posts service.PostService, groups service.GroupService, auth service.AuthService, jwtSvc jwt.Service, md *markdown.Renderer, cfg config.Public) *Handler {
	return &Handler{
		templates: templates,
		posts:     posts,
		groups:    groups,
		auth:      auth,
		jwt:       jwtSvc,
		md:        md,
		cfg:       cfg,
	}
}
