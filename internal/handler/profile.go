package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/quill-dev/quill/internal/domain"
	"github.com/quill-dev/quill/internal/pagination"
)

func (h *Handler) ProfileGetHandler(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	author, posts, err := h.posts.ListByAuthor(username)
	if err != nil {
		writeError(w, err)
		return
	}

	var templateData struct {
		CommonTemplateData
		Author *domain.User
		Page   pagination.Page[PostView]
	}
	templateData.CommonTemplateData = h.common(r)
	templateData.Author = author
	templateData.Page = pagination.Paginate(h.renderPosts(posts), pageNumber(r), h.cfg.PostsPerPage)

	h.renderTemplate(w, "profile.html", templateData)
}
