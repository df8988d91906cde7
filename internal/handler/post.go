package handler

import (
	"net/http"
	"strconv"

	"github.com/quill-dev/quill/internal/domain"
	"github.com/quill-dev/quill/internal/forms"
	"github.com/quill-dev/quill/internal/logger"
	"github.com/quill-dev/quill/internal/middleware"
	"github.com/quill-dev/quill/internal/policy"
)

// postFormData is the payload for create_post.html and update_post.html.
type postFormData struct {
	CommonTemplateData
	Form   forms.PostForm
	Errors forms.Errors
	Groups []domain.Group
	Post   *PostView // set on the edit page only
}

func (h *Handler) newPostFormData(r *http.Request) (postFormData, error) {
	groups, err := h.groups.ListGroups()
	if err != nil {
		return postFormData{}, err
	}
	return postFormData{CommonTemplateData: h.common(r), Groups: groups}, nil
}

func (h *Handler) PostDetailGetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := postIdParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	post, err := h.posts.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}

	var templateData struct {
		CommonTemplateData
		Post PostView
	}
	templateData.CommonTemplateData = h.common(r)
	templateData.Post = h.renderPost(*post)

	h.renderTemplate(w, "post_detail.html", templateData)
}

func (h *Handler) PostCreateGetHandler(w http.ResponseWriter, r *http.Request) {
	if !policy.CanCreatePost(middleware.GetUserFromContext(r)) {
		redirectToLogin(w, r)
		return
	}

	templateData, err := h.newPostFormData(r)
	if err != nil {
		writeError(w, err)
		return
	}

	h.renderTemplate(w, "create_post.html", templateData)
}

func (h *Handler) PostCreatePostHandler(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if !policy.CanCreatePost(user) {
		redirectToLogin(w, r)
		return
	}

	form := forms.ParsePostForm(r)
	data, errs := form.Validate(h.groups)
	if errs != nil {
		templateData, err := h.newPostFormData(r)
		if err != nil {
			writeError(w, err)
			return
		}
		templateData.Form = form
		templateData.Errors = errs
		h.renderTemplate(w, "create_post.html", templateData)
		return
	}

	post, err := h.posts.Create(*user, data.Text, data.GroupId)
	if err != nil {
		writeError(w, err)
		return
	}
	logger.Log.Info("post created", "post", post.Id, "author", user.Username)

	http.Redirect(w, r, profileURL(user.Username), http.StatusSeeOther)
}

func (h *Handler) PostEditGetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := postIdParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	post, err := h.posts.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}

	user := middleware.GetUserFromContext(r)
	if !policy.CanEditPost(user, post) {
		if user == nil {
			redirectToLogin(w, r)
		} else {
			http.Redirect(w, r, postDetailURL(post.Id), http.StatusSeeOther)
		}
		return
	}

	templateData, err := h.newPostFormData(r)
	if err != nil {
		writeError(w, err)
		return
	}
	templateData.Form = prefilledForm(post)
	view := h.renderPost(*post)
	templateData.Post = &view

	h.renderTemplate(w, "update_post.html", templateData)
}

func (h *Handler) PostEditPostHandler(w http.ResponseWriter, r *http.Request) {
	id, err := postIdParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	post, err := h.posts.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}

	user := middleware.GetUserFromContext(r)
	if !policy.CanEditPost(user, post) {
		// Nothing is saved either way: anonymous users go to login,
		// authenticated non-authors back to the post.
		if user == nil {
			redirectToLogin(w, r)
		} else {
			http.Redirect(w, r, postDetailURL(post.Id), http.StatusSeeOther)
		}
		return
	}

	form := forms.ParsePostForm(r)
	data, errs := form.Validate(h.groups)
	if errs != nil {
		templateData, err := h.newPostFormData(r)
		if err != nil {
			writeError(w, err)
			return
		}
		templateData.Form = form
		templateData.Errors = errs
		view := h.renderPost(*post)
		templateData.Post = &view
		h.renderTemplate(w, "update_post.html", templateData)
		return
	}

	if _, err := h.posts.Update(post, data.Text, data.GroupId); err != nil {
		writeError(w, err)
		return
	}
	logger.Log.Info("post updated", "post", post.Id, "author", user.Username)

	http.Redirect(w, r, postDetailURL(post.Id), http.StatusSeeOther)
}

func prefilledForm(post *domain.Post) forms.PostForm {
	form := forms.PostForm{Text: post.Text}
	if post.Group != nil {
		form.Group = strconv.FormatInt(post.Group.Id, 10)
	}
	return form
}
