package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/quill-dev/quill/internal/domain"
	internal_errors "github.com/quill-dev/quill/internal/errors"
	"github.com/quill-dev/quill/internal/logger"
	"github.com/quill-dev/quill/internal/middleware"
)

// CommonTemplateData holds fields every page template can rely on.
type CommonTemplateData struct {
	User *domain.User
}

func (h *Handler) common(r *http.Request) CommonTemplateData {
	return CommonTemplateData{User: middleware.GetUserFromContext(r)}
}

// renderTemplate executes into a buffer first so a template error never
// produces a half-written page.
func (h *Handler) renderTemplate(w http.ResponseWriter, name string, data any) {
	tmpl, ok := h.templates[name]
	if !ok {
		logger.Log.Error("template not found", "template", name)
		http.Error(w, fmt.Sprintf("Template %s not found", name), http.StatusInternalServerError)
		return
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, data); err != nil {
		logger.Log.Error("error executing template", "template", name, "error", err)
		http.Error(w, "Internal Server Error rendering template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// writeError translates service/storage errors into responses; anything
// without an explicit status code is a 500.
func writeError(w http.ResponseWriter, err error) {
	var statusErr *internal_errors.ErrorWithStatusCode
	if errors.As(err, &statusErr) {
		http.Error(w, statusErr.Message, statusErr.StatusCode)
		return
	}
	logger.Log.Error("unexpected error handling request", "error", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
