package router

import (
	"net/http"
	"sync"

	"github.com/VAIBHAV-cell-sys/INDEPENDENT-AI-INTEGRATION/internal/adapter"
)

// Supported provider identifiers.
const (
	LocalLlama = "local_llama"
	OpenAI     = "openai"
	Perplexity = "perplexity"
	DeepSeek   = "deepseek"
	AIMLAPI    = "aimlapi"
)

// Providers lists the identifiers in display order.
var Providers = []string{OpenAI, Perplexity, DeepSeek, AIMLAPI, LocalLlama}

// Local inference backends for the local_llama provider.
const (
	BackendOllama   = "ollama"
	BackendLlamaCpp = "llamacpp"
)

// Builder constructs a provider adapter for one request.
type Builder func(cfg ProviderConfig) adapter.Provider

// Registry maps provider identifiers to adapter builders.
type Registry struct {
	mu       sync.RWMutex
	builders map[string]Builder
}

func NewRegistry() *Registry {
	return &Registry{builders: make(map[string]Builder)}
}

// Register adds or replaces the builder for id.
func (r *Registry) Register(id string, b Builder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.builders[id] = b
}

func (r *Registry) Lookup(id string) (Builder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.builders[id]
	return b, ok
}

// Options configures the built-in adapters.
type Options struct {
	Client       *http.Client
	LocalBackend string
	LocalURL     string
	// BaseURLs overrides the fixed endpoint of a provider, keyed by identifier.
	BaseURLs map[string]string
}

// NewDefaultRegistry registers the five built-in providers.
func NewDefaultRegistry(opts Options) *Registry {
	base := func(id, override string) string {
		if override != "" {
			return override
		}
		return opts.BaseURLs[id]
	}

	r := NewRegistry()
	r.Register(OpenAI, func(cfg ProviderConfig) adapter.Provider {
		return &adapter.OpenAI{BaseURL: base(OpenAI, cfg.BaseURL), APIKey: cfg.APIKey, Model: cfg.Model, Client: opts.Client}
	})
	r.Register(Perplexity, func(cfg ProviderConfig) adapter.Provider {
		return &adapter.Perplexity{BaseURL: base(Perplexity, cfg.BaseURL), APIKey: cfg.APIKey, Model: cfg.Model, Client: opts.Client}
	})
	r.Register(DeepSeek, func(cfg ProviderConfig) adapter.Provider {
		return &adapter.DeepSeek{BaseURL: base(DeepSeek, cfg.BaseURL), APIKey: cfg.APIKey, Model: cfg.Model, Client: opts.Client}
	})
	r.Register(AIMLAPI, func(cfg ProviderConfig) adapter.Provider {
		return &adapter.AIMLAPI{BaseURL: base(AIMLAPI, cfg.BaseURL), APIKey: cfg.APIKey, Model: cfg.Model, Client: opts.Client}
	})
	r.Register(LocalLlama, func(cfg ProviderConfig) adapter.Provider {
		url := base(LocalLlama, cfg.BaseURL)
		if url == "" {
			url = opts.LocalURL
		}
		if opts.LocalBackend == BackendLlamaCpp {
			return &adapter.LlamaCppAdapter{BaseURL: url, ModelPath: cfg.ModelPath, Params: cfg.Params, Client: opts.Client}
		}
		return &adapter.OllamaAdapter{BaseURL: url, ModelPath: cfg.ModelPath, Params: cfg.Params, Client: opts.Client}
	})
	return r
}

// NewMockRegistry binds every provider identifier to a MockAdapter.
func NewMockRegistry(m adapter.MockAdapter) *Registry {
	r := NewRegistry()
	for _, id := range Providers {
		id := id
		r.Register(id, func(ProviderConfig) adapter.Provider {
			mock := m
			mock.ProviderID = id
			return &mock
		})
	}
	return r
}
