package handler

import (
	"net/http"

	internal_errors "github.com/quill-dev/quill/internal/errors"
	"github.com/quill-dev/quill/internal/logger"
	"github.com/quill-dev/quill/internal/middleware"
)

type loginData struct {
	CommonTemplateData
	Next     string
	Username string
	Error    string
}

func (h *Handler) LoginGetHandler(w http.ResponseWriter, r *http.Request) {
	templateData := loginData{
		CommonTemplateData: h.common(r),
		Next:               r.URL.Query().Get("next"),
	}
	h.renderTemplate(w, "login.html", templateData)
}

func (h *Handler) LoginPostHandler(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")
	next := r.FormValue("next")

	user, err := h.auth.Login(username, password)
	if err != nil {
		templateData := loginData{
			CommonTemplateData: h.common(r),
			Next:               next,
			Username:           username,
		}
		if statusErr, ok := err.(*internal_errors.ErrorWithStatusCode); ok && statusErr.StatusCode == http.StatusUnauthorized {
			templateData.Error = statusErr.Message
			h.renderTemplate(w, "login.html", templateData)
			return
		}
		writeError(w, err)
		return
	}

	token, err := h.jwt.NewToken(*user)
	if err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   h.cfg.SessionTTLHours * 3600,
		HttpOnly: true,
		Secure:   h.cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	logger.Log.Info("user logged in", "user", user.Username)

	http.Redirect(w, r, safeNext(next), http.StatusSeeOther)
}

func (h *Handler) LogoutPostHandler(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
