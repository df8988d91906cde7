package handler

import (
	"net/http"

	"github.com/quill-dev/quill/internal/pagination"
)

func (h *Handler) IndexGetHandler(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.ListRecent()
	if err != nil {
		writeError(w, err)
		return
	}

	var templateData struct {
		CommonTemplateData
		Page pagination.Page[PostView]
	}
	templateData.CommonTemplateData = h.common(r)
	templateData.Page = pagination.Paginate(h.renderPosts(posts), pageNumber(r), h.cfg.PostsPerPage)

	h.renderTemplate(w, "index.html", templateData)
}
