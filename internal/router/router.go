package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quill-dev/quill/internal/middleware/metrics"
	"github.com/quill-dev/quill/internal/setup"
)

// New creates and configures the application router. Every route runs with
// optional auth: handlers decide what anonymous users may do.
func New(deps *setup.Dependencies) chi.Router {
	r := chi.NewRouter()

	r.Use(metrics.Middleware)
	r.Use(deps.AuthMiddleware.OptionalAuth())

	h := deps.Handler

	r.Handle("/metrics", promhttp.Handler())

	r.Get("/", h.IndexGetHandler)
	r.Get("/group/{slug}/", h.GroupGetHandler)
	r.Get("/profile/{username}/", h.ProfileGetHandler)
	r.Get("/posts/{id}/", h.PostDetailGetHandler)

	r.Get("/create/", h.PostCreateGetHandler)
	r.Post("/create/", h.PostCreatePostHandler)
	r.Get("/posts/{id}/edit/", h.PostEditGetHandler)
	r.Post("/posts/{id}/edit/", h.PostEditPostHandler)

	r.Get("/auth/login/", h.LoginGetHandler)
	r.Post("/auth/login/", h.LoginPostHandler)
	r.Post("/auth/logout/", h.LogoutPostHandler)

	r.Get("/about/author/", h.AboutAuthorHandler)
	r.Get("/about/tech/", h.AboutTechHandler)

	return r
}
