package views

import (
	"bytes"
	"embed"
	"html/template"
	"log"
	"net/http"
)

const (
	Input        = "input.html"
	InvalidInput = "invalid_input.html"
	Error        = "error.html"
)

//go:embed templates/*.html
var files embed.FS

var templates = template.Must(template.ParseFS(files, "templates/*.html"))

// Render executes the named view into a buffer first so a template failure
// can still produce a clean 500 instead of a half-written page.
func Render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("level=error msg=\"render failed\" view=%s method=%s path=%s err=%v", name, r.Method, r.URL.Path, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("level=error msg=\"write view failed\" view=%s err=%v", name, err)
	}
}
