package adapter

import (
	"context"
	"net/http"
)

const (
	perplexityDefaultBaseURL = "https://api.perplexity.ai"
	perplexityDefaultModel   = "claude-3-sonnet-20240229"
)

// PerplexityModels is the set of model identifiers Perplexity accepts.
var PerplexityModels = []string{
	"sonar-small-online",
	"sonar-medium-online",
	"sonar-large-online",
	"gpt-4-turbo",
	"claude-3-sonnet-20240229",
	"gemini-pro",
}

// Perplexity calls the Perplexity chat completions API.
type Perplexity struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client
}

func (p *Perplexity) ID() string   { return "perplexity" }
func (p *Perplexity) Name() string { return "Perplexity" }

func (p *Perplexity) model() string {
	if p.Model == "" {
		return perplexityDefaultModel
	}
	return p.Model
}

func (p *Perplexity) ValidateModel() error {
	return checkModel(p.Name(), p.model(), PerplexityModels)
}

func (p *Perplexity) Generate(ctx context.Context, messages []Message) (string, error) {
	if err := p.ValidateModel(); err != nil {
		return "", err
	}
	ep := chatEndpoint{
		label:   p.Name(),
		url:     endpointURL(p.BaseURL, perplexityDefaultBaseURL, "/chat/completions"),
		apiKey:  p.APIKey,
		client:  p.Client,
		headers: map[string]string{"Accept-Charset": "utf-8"},
	}
	return ep.complete(ctx, chatRequest{
		Model:       p.model(),
		Messages:    messages,
		Temperature: Temperature,
	})
}

func (p *Perplexity) Available() bool {
	return p.APIKey != ""
}
