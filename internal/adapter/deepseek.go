package adapter

import (
	"context"
	"net/http"
)

const (
	deepSeekDefaultBaseURL = "https://api.deepseek.com"
	deepSeekDefaultModel   = "deepseek-chat"
)

// DeepSeekModels is the set of model identifiers DeepSeek accepts.
var DeepSeekModels = []string{
	"deepseek-chat",
	"deepseek-coder",
}

// DeepSeek calls the DeepSeek chat completions API.
type DeepSeek struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client
}

func (d *DeepSeek) ID() string   { return "deepseek" }
func (d *DeepSeek) Name() string { return "DeepSeek" }

func (d *DeepSeek) model() string {
	if d.Model == "" {
		return deepSeekDefaultModel
	}
	return d.Model
}

func (d *DeepSeek) ValidateModel() error {
	return checkModel(d.Name(), d.model(), DeepSeekModels)
}

func (d *DeepSeek) Generate(ctx context.Context, messages []Message) (string, error) {
	if err := d.ValidateModel(); err != nil {
		return "", err
	}
	ep := chatEndpoint{
		label:  d.Name(),
		url:    endpointURL(d.BaseURL, deepSeekDefaultBaseURL, "/v1/chat/completions"),
		apiKey: d.APIKey,
		client: d.Client,
	}
	return ep.complete(ctx, chatRequest{
		Model:       d.model(),
		Messages:    messages,
		Temperature: Temperature,
	})
}

func (d *DeepSeek) Available() bool {
	return d.APIKey != ""
}
