package handler

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/VAIBHAV-cell-sys/INDEPENDENT-AI-INTEGRATION/internal/router"
)

//go:embed templates/chat.html
var templateFS embed.FS

var chatPage = template.Must(template.ParseFS(templateFS, "templates/chat.html"))

type indexData struct {
	Providers       []string
	DefaultProvider string
}

// Index serves the chat page at "/" and 404s everything else.
func Index(defaultProvider string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err := chatPage.Execute(w, indexData{Providers: router.Providers, DefaultProvider: defaultProvider})
		if err != nil {
			slog.Error("render index", "error", err)
		}
	}
}
