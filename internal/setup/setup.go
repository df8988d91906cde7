package setup

import (
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/quill-dev/quill/internal/config"
	"github.com/quill-dev/quill/internal/handler"
	"github.com/quill-dev/quill/internal/jwt"
	"github.com/quill-dev/quill/internal/markdown"
	"github.com/quill-dev/quill/internal/middleware"
	"github.com/quill-dev/quill/internal/service"
	"github.com/quill-dev/quill/internal/storage/pg"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
	Config         *config.Config
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	templates, err := loadTemplates(cfg.Public.TemplatesDir)
	if err != nil {
		storage.Cleanup()
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	jwtSvc := jwt.New(cfg.JwtKey(), cfg.SessionTTL())

	posts := service.NewPost(storage)
	groups := service.NewGroup(storage)
	auth := service.NewAuth(storage)

	h := handler.New(templates, posts, groups, auth, jwtSvc, markdown.New(), cfg.Public)

	return &Dependencies{
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: middleware.NewAuth(jwtSvc),
		Config:         cfg,
	}, nil
}

// loadTemplates parses every page template against base.html and the shared
// includes. Each page is addressed by its file name.
func loadTemplates(dir string) (map[string]*template.Template, error) {
	pages, err := filepath.Glob(filepath.Join(dir, "pages", "*.html"))
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("no page templates found in %s", dir)
	}

	templates := make(map[string]*template.Template)
	for _, page := range pages {
		tmpl, err := template.ParseFiles(filepath.Join(dir, "base.html"), page)
		if err != nil {
			return nil, err
		}
		tmpl, err = tmpl.ParseGlob(filepath.Join(dir, "includes", "*.html"))
		if err != nil {
			return nil, err
		}
		templates[filepath.Base(page)] = tmpl
	}
	return templates, nil
}
