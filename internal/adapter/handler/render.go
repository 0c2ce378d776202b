package handler

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/srgjo27/stay_booking/internal/platform/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageCalendar     = "calendar.html"
	pageBooking      = "booking.html"
	pageConfirmation = "confirmation.html"
	pageLogin        = "login.html"
	pageError        = "error.html"
)

var pages = []string{pageCalendar, pageBooking, pageConfirmation, pageLogin, pageError}

// Renderer executes the embedded page templates.
type Renderer struct {
	pages  map[string]*template.Template
	logger *logging.Logger
}

func NewRenderer(logger *logging.Logger) (*Renderer, error) {
	if logger == nil {
		logger = logging.Default()
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(pages)), logger: logger}
	for _, page := range pages {
		tmpl, err := template.ParseFS(templateFS, "templates/base.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		r.pages[page] = tmpl
	}
	return r, nil
}

// Render writes page with the given status. Nothing is written when the
// template fails.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) {
	tmpl, ok := r.pages[page]
	if !ok {
		r.logger.Error("unknown page", "page", page)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, page, data); err != nil {
		r.logger.Error("failed to render page", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		r.logger.Warn("failed to write page", "page", page, "error", err)
	}
}

type errorPage struct {
	Title   string
	Message string
}

func (r *Renderer) RenderError(w http.ResponseWriter, status int, message string) {
	r.Render(w, status, pageError, errorPage{Title: http.StatusText(status), Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
