package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/quill-dev/quill/internal/domain"
	"github.com/quill-dev/quill/internal/pagination"
)

func (h *Handler) GroupGetHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	group, posts, err := h.posts.ListByGroup(slug)
	if err != nil {
		writeError(w, err)
		return
	}

	var templateData struct {
		CommonTemplateData
		Group *domain.Group
		Page  pagination.Page[PostView]
	}
	templateData.CommonTemplateData = h.common(r)
	templateData.Group = group
	templateData.Page = pagination.Paginate(h.renderPosts(posts), pageNumber(r), h.cfg.PostsPerPage)

	h.renderTemplate(w, "group_list.html", templateData)
}
