package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// OllamaAdapter runs local_llama prompts on an Ollama instance via /api/generate.
// ModelPath is the Ollama model tag.
type OllamaAdapter struct {
	BaseURL   string
	ModelPath string
	Params    LocalParams
	Client    *http.Client
}

type ollamaOptions struct {
	NumPredict  int     `json:"num_predict,omitempty"`
	Temperature float64 `json:"temperature"`
	NumThread   int     `json:"num_thread,omitempty"`
	NumBatch    int     `json:"num_batch,omitempty"`
	NumCtx      int     `json:"num_ctx,omitempty"`
}

type ollamaGenerateRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Raw     bool          `json:"raw"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
}

func (o *OllamaAdapter) ID() string   { return localID }
func (o *OllamaAdapter) Name() string { return localLabel }

func (o *OllamaAdapter) Generate(ctx context.Context, messages []Message) (string, error) {
	return o.GenerateRaw(ctx, FormatTranscript(messages))
}

func (o *OllamaAdapter) GenerateRaw(ctx context.Context, prompt string) (string, error) {
	if o.ModelPath == "" {
		return "", fmt.Errorf("ollama: %w", errMissingModelPath)
	}

	reqBody := ollamaGenerateRequest{
		Model:  o.ModelPath,
		Prompt: prompt,
		Raw:    true,
		Stream: false,
		Options: ollamaOptions{
			NumPredict:  o.Params.MaxNewTokens,
			Temperature: o.Params.Temperature,
			NumThread:   o.Params.Threads,
			NumBatch:    o.Params.BatchSize,
			NumCtx:      o.Params.ContextLength,
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("ollama: marshal request: %w", err)
	}

	url := strings.TrimRight(o.BaseURL, "/") + "/api/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("ollama: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient(o.Client).Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", readRemoteError(localLabel, resp)
	}

	var genResp ollamaGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("ollama: decode response: %w", err)
	}

	return genResp.Response, nil
}

func (o *OllamaAdapter) Available() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(o.BaseURL, "/")+"/", nil)
	if err != nil {
		return false
	}

	resp, err := httpClient(o.Client).Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
