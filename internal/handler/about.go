package handler

import "net/http"

func (h *Handler) AboutAuthorHandler(w http.ResponseWriter, r *http.Request) {
	var templateData struct {
		CommonTemplateData
	}
	templateData.CommonTemplateData = h.common(r)
	h.renderTemplate(w, "about_author.html", templateData)
}

func (h *Handler) AboutTechHandler(w http.ResponseWriter, r *http.Request) {
	var templateData struct {
		CommonTemplateData
	}
	templateData.CommonTemplateData = h.common(r)
	h.renderTemplate(w, "about_tech.html", templateData)
}
