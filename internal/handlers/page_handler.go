package handlers

import (
	"bytes"
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/rs/zerolog"
)

// PageHandler serves the customer menu and staff application shells. The
// pages are reachable without a session and receive only a title; no
// session data ever flows into a template.
type PageHandler struct {
	templates *template.Template
	logger    zerolog.Logger
}

type pageData struct {
	Title string
}

func NewPageHandler(templateDir string, logger zerolog.Logger) (*PageHandler, error) {
	templates, err := template.ParseGlob(filepath.Join(templateDir, "*.html"))
	if err != nil {
		return nil, err
	}

	return &PageHandler{
		templates: templates,
		logger:    logger,
	}, nil
}

func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, "index.html", "Pizza Point of Sale")
}

func (h *PageHandler) Menu(w http.ResponseWriter, r *http.Request) {
	h.render(w, "menu.html", "Menu")
}

func (h *PageHandler) StaffApp(w http.ResponseWriter, r *http.Request) {
	h.render(w, "staffapp.html", "Staff App")
}

// render executes into a buffer first, so a failed template still gets a
// clean 500 instead of a 200 with truncated HTML.
func (h *PageHandler) render(w http.ResponseWriter, name, title string) {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, pageData{Title: title}); err != nil {
		h.logger.Error().Err(err).Str("template", name).Msg("Template rendering failed")
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}
