package handler

import (
	"net/http"

	"github.com/VAIBHAV-cell-sys/INDEPENDENT-AI-INTEGRATION/internal/router"
	"github.com/VAIBHAV-cell-sys/INDEPENDENT-AI-INTEGRATION/internal/session"
)

// RouterFactory builds a router for a provider name and API key.
type RouterFactory interface {
	GetRouter(providerName, apiKey string) *router.Router
}

// Resolver picks the router for a request. Provider and API key come from
// the request body first, then the session, then server configuration.
type Resolver struct {
	Factory         RouterFactory
	Sessions        *session.Store
	DefaultProvider string
	// APIKeys are server-side fallback keys by provider identifier.
	APIKeys map[string]string
}

func (res *Resolver) routerFor(r *http.Request, f fields) *router.Router {
	var sess session.Data
	if res.Sessions != nil {
		sess, _ = res.Sessions.Load(r)
	}

	provider := f.get("model")
	if provider == "" {
		provider = sess.Provider
	}
	if provider == "" {
		provider = res.DefaultProvider
	}

	apiKey := f.get("api_key")
	if apiKey == "" {
		apiKey = sess.APIKey
	}
	if apiKey == "" {
		apiKey = res.APIKeys[provider]
	}

	return res.Factory.GetRouter(provider, apiKey)
}
