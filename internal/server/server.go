package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/VAIBHAV-cell-sys/INDEPENDENT-AI-INTEGRATION/internal/handler"
	"github.com/VAIBHAV-cell-sys/INDEPENDENT-AI-INTEGRATION/internal/middleware"
	"github.com/VAIBHAV-cell-sys/INDEPENDENT-AI-INTEGRATION/internal/prompt"
	"github.com/VAIBHAV-cell-sys/INDEPENDENT-AI-INTEGRATION/internal/router"
	"github.com/VAIBHAV-cell-sys/INDEPENDENT-AI-INTEGRATION/internal/session"
)

// DefaultSessionTTL applies when Deps.Sessions is nil.
const DefaultSessionTTL = 24 * time.Hour

// Deps carries everything the HTTP layer needs.
type Deps struct {
	Factory *router.Factory
	// Sessions defaults to an in-memory store with DefaultSessionTTL.
	Sessions        *session.Store
	Template        *prompt.ChatTemplate
	DefaultProvider string
	// ProviderKeys are server-side fallback API keys by provider identifier.
	ProviderKeys map[string]string
	// APIKey guards the API with X-API-Key when non-empty.
	APIKey string
	// RateLimit is requests per minute per client; zero or less disables it.
	RateLimit int
}

// SetupMux wires handlers with the full middleware chain.
func SetupMux(d Deps) http.Handler {
	tmpl := d.Template
	if tmpl == nil {
		tmpl = prompt.DefaultChatTemplate()
	}
	sessions := d.Sessions
	if sessions == nil {
		sessions = session.NewStore(DefaultSessionTTL)
	}
	res := &handler.Resolver{
		Factory:         d.Factory,
		Sessions:        sessions,
		DefaultProvider: d.DefaultProvider,
		APIKeys:         d.ProviderKeys,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", handler.Index(d.DefaultProvider))
	mux.HandleFunc("/set_model", handler.SetModel(sessions))
	mux.HandleFunc("/generate_challenges", handler.GenerateChallenges(res))
	mux.HandleFunc("/generate_plan", handler.GeneratePlan(res))
	mux.HandleFunc("/get", handler.Chat(res, tmpl))
	mux.HandleFunc("/api/health", handler.Health(res))
	mux.HandleFunc("/api/providers", handler.Providers(d.Factory.Describe()))
	mux.Handle("/metrics", promhttp.Handler())

	var rl *middleware.RateLimiter
	if d.RateLimit > 0 {
		rl = middleware.NewRateLimiter(d.RateLimit, time.Minute)
	}
	return middleware.Chain(mux, rl, d.APIKey)
}
