package handler

import (
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/quill-dev/quill/internal/domain"
	internal_errors "github.com/quill-dev/quill/internal/errors"
	"github.com/quill-dev/quill/internal/pagination"
)

func pageNumber(r *http.Request) int {
	return pagination.ParseNumber(r.URL.Query().Get("page"))
}

func postIdParam(r *http.Request) (domain.PostId, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, internal_errors.NotFound("Post not found")
	}
	return id, nil
}

// loginURL builds the login redirect target carrying the originally
// requested path. The path contains only safe characters, so it is kept
// readable instead of percent-encoded.
func loginURL(next string) string {
	return "/auth/login/?next=" + next
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, loginURL(r.URL.Path), http.StatusSeeOther)
}

func postDetailURL(id domain.PostId) string {
	return "/posts/" + strconv.FormatInt(id, 10) + "/"
}

func profileURL(username domain.Username) string {
	return "/profile/" + username + "/"
}

// safeNext rejects absolute and protocol-relative URLs so the post-login
// redirect can't leave the site.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}

// PostView is a Post enriched with its text rendered to safe HTML.
type PostView struct {
	domain.Post
	TextHTML template.HTML
}

func (h *Handler) renderPost(post domain.Post) PostView {
	return PostView{Post: post, TextHTML: h.md.Render(post.Text)}
}

func (h *Handler) renderPosts(posts []domain.Post) []PostView {
	views := make([]PostView, len(posts))
	for i, post := range posts {
		views[i] = h.renderPost(post)
	}
	return views
}
