package router

import "github.com/VAIBHAV-cell-sys/INDEPENDENT-AI-INTEGRATION/internal/adapter"

// Defaults holds the per-provider settings GetRouter fills in.
type Defaults struct {
	// Models maps provider identifier to its default model.
	Models    map[string]string
	ModelPath string
	Params    adapter.LocalParams
}

// DefaultDefaults returns the stock model choices.
func DefaultDefaults() Defaults {
	return Defaults{
		Models: map[string]string{
			OpenAI:     "gpt-4o-mini",
			Perplexity: "sonar-small-online",
			DeepSeek:   "deepseek-chat",
			AIMLAPI:    "gpt-4o",
		},
		ModelPath: "llama2:7b-chat",
		Params:    adapter.DefaultLocalParams(),
	}
}

// Factory turns a provider name and API key into a Router.
type Factory struct {
	Registry *Registry
	Defaults Defaults
}

func NewFactory(registry *Registry, defaults Defaults) *Factory {
	return &Factory{Registry: registry, Defaults: defaults}
}

// GetRouter builds the config for providerName. Names other than the four
// hosted providers, including "", select local_llama.
func (f *Factory) GetRouter(providerName, apiKey string) *Router {
	switch providerName {
	case OpenAI, Perplexity, DeepSeek, AIMLAPI:
		return New(ProviderConfig{
			Provider: providerName,
			APIKey:   apiKey,
			Model:    f.Defaults.Models[providerName],
		}, f.Registry)
	}
	return New(ProviderConfig{
		Provider:  LocalLlama,
		ModelPath: f.Defaults.ModelPath,
		Params:    f.Defaults.Params,
	}, f.Registry)
}

// ProviderInfo describes a provider for GET /api/providers.
type ProviderInfo struct {
	ID           string `json:"id"`
	DefaultModel string `json:"default_model"`
}

// Describe lists every supported provider with its default model.
func (f *Factory) Describe() []ProviderInfo {
	out := make([]ProviderInfo, 0, len(Providers))
	for _, id := range Providers {
		model := f.Defaults.Models[id]
		if id == LocalLlama {
			model = f.Defaults.ModelPath
		}
		out = append(out, ProviderInfo{ID: id, DefaultModel: model})
	}
	return out
}
