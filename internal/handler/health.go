package handler

import (
	"net/http"

	"github.com/VAIBHAV-cell-sys/INDEPENDENT-AI-INTEGRATION/internal/adapter"
	"github.com/VAIBHAV-cell-sys/INDEPENDENT-AI-INTEGRATION/internal/metrics"
	"github.com/VAIBHAV-cell-sys/INDEPENDENT-AI-INTEGRATION/internal/router"
)

type providerStatus struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

type healthResponse struct {
	Status          string                    `json:"status"`
	DefaultProvider string                    `json:"default_provider"`
	Providers       map[string]providerStatus `json:"providers"`
}

// Health reports whether each provider is usable with the server's own
// configuration (fallback API keys, local backend reachability).
func Health(res *Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statuses := make(map[string]providerStatus, len(router.Providers))
		for _, id := range router.Providers {
			s := providerStatus{}
			if p, ok := res.Factory.GetRouter(id, res.APIKeys[id]).Adapter(); ok {
				s.Available = p.Available()
				if !s.Available {
					s.Reason = unavailableReason(p)
				}
			} else {
				s.Reason = "not registered"
			}

			gauge := 0.0
			if s.Available {
				gauge = 1
			}
			metrics.ProviderAvailable.WithLabelValues(id).Set(gauge)
			statuses[id] = s
		}

		writeJSON(w, http.StatusOK, healthResponse{
			Status:          "ok",
			DefaultProvider: res.DefaultProvider,
			Providers:       statuses,
		})
	}
}

func unavailableReason(p adapter.Provider) string {
	switch p.(type) {
	case *adapter.OpenAI, *adapter.Perplexity, *adapter.DeepSeek, *adapter.AIMLAPI:
		return "no API key"
	case *adapter.OllamaAdapter:
		return "ollama unreachable"
	case *adapter.LlamaCppAdapter:
		return "llama-server unreachable"
	default:
		return "unavailable"
	}
}

// Providers lists the supported provider identifiers and default models.
func Providers(list []router.ProviderInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, list)
	}
}
