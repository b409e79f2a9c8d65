package router

import (
	"context"
	"log/slog"
	"time"

	"github.com/VAIBHAV-cell-sys/INDEPENDENT-AI-INTEGRATION/internal/adapter"
	"github.com/VAIBHAV-cell-sys/INDEPENDENT-AI-INTEGRATION/internal/logging"
	"github.com/VAIBHAV-cell-sys/INDEPENDENT-AI-INTEGRATION/internal/metrics"
)

// ProviderConfig is built fresh for every request and discarded afterwards.
type ProviderConfig struct {
	Provider  string
	APIKey    string
	Model     string
	ModelPath string
	Params    adapter.LocalParams
	// BaseURL overrides the provider's fixed endpoint.
	BaseURL string
}

// Router selects and invokes the adapter for one configured provider.
type Router struct {
	cfg      ProviderConfig
	registry *Registry
}

func New(cfg ProviderConfig, registry *Registry) *Router {
	return &Router{cfg: cfg, registry: registry}
}

// Provider returns the configured provider identifier.
func (r *Router) Provider() string { return r.cfg.Provider }

// Adapter builds the adapter for the configured provider.
func (r *Router) Adapter() (adapter.Provider, bool) {
	b, ok := r.registry.Lookup(r.cfg.Provider)
	if !ok {
		return nil, false
	}
	return b(r.cfg), true
}

// Generate dispatches input (a string or an ordered message list) to the
// configured provider. Errors are always *adapter.ProviderError.
func (r *Router) Generate(ctx context.Context, input any) (string, error) {
	p, ok := r.Adapter()
	if !ok {
		metrics.GenerateErrors.WithLabelValues("unsupported", string(adapter.KindUnsupportedProvider)).Inc()
		slog.Warn("generate: unsupported provider", "provider", r.cfg.Provider)
		return "", adapter.UnsupportedProvider(r.cfg.Provider)
	}

	log := logging.WithProvider(p.ID(), r.cfg.Model)
	log.Debug("generate", "messages", messageCount(input))

	start := time.Now()
	text, err := adapter.Call(ctx, p, input)
	metrics.GenerateDuration.WithLabelValues(p.ID()).Observe(time.Since(start).Seconds())

	if err != nil {
		kind := adapter.KindOf(err)
		metrics.GenerateErrors.WithLabelValues(p.ID(), string(kind)).Inc()
		log.Warn("generate failed", "kind", kind, "error", err)
		return "", err
	}
	return text, nil
}

// GenerateText is Generate with failures rendered into the bracketed
// GenerationResult string. It never fails.
func (r *Router) GenerateText(ctx context.Context, input any) string {
	text, err := r.Generate(ctx, input)
	if err != nil {
		return adapter.Render(err)
	}
	return text
}

// messageCount reports how many messages input carries; a bare prompt is one.
func messageCount(input any) int {
	switch v := input.(type) {
	case string:
		return 1
	case []adapter.Message:
		return len(v)
	case []map[string]string:
		return len(v)
	case []map[string]any:
		return len(v)
	case []any:
		return len(v)
	}
	return 0
}
