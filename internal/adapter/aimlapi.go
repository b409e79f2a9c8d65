package adapter

import (
	"context"
	"net/http"
)

const (
	aimlDefaultBaseURL = "https://api.aimlapi.com"
	aimlDefaultModel   = "gpt-4o"
	aimlMaxTokens      = 256
)

// AIMLAPI calls the aimlapi.com aggregator. Any model name is forwarded.
type AIMLAPI struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client
}

func (a *AIMLAPI) ID() string   { return "aimlapi" }
func (a *AIMLAPI) Name() string { return "AIML API" }

func (a *AIMLAPI) Generate(ctx context.Context, messages []Message) (string, error) {
	model := a.Model
	if model == "" {
		model = aimlDefaultModel
	}
	ep := chatEndpoint{
		label:  a.Name(),
		url:    endpointURL(a.BaseURL, aimlDefaultBaseURL, "/v1/chat/completions"),
		apiKey: a.APIKey,
		client: a.Client,
	}
	return ep.complete(ctx, chatRequest{
		Model:       model,
		Messages:    messages,
		Temperature: Temperature,
		MaxTokens:   aimlMaxTokens,
	})
}

func (a *AIMLAPI) Available() bool {
	return a.APIKey != ""
}
