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

// LlamaCppAdapter runs local_llama prompts on llama-server's /completion endpoint.
// ModelPath is forwarded as the model field.
type LlamaCppAdapter struct {
	BaseURL   string
	ModelPath string
	Params    LocalParams
	Client    *http.Client
}

type llamaCppCompletionRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	NPredict    int     `json:"n_predict,omitempty"`
	Temperature float64 `json:"temperature"`
	NThreads    int     `json:"n_threads,omitempty"`
	NBatch      int     `json:"n_batch,omitempty"`
	NCtx        int     `json:"n_ctx,omitempty"`
	Stream      bool    `json:"stream"`
}

type llamaCppCompletionResponse struct {
	Content string `json:"content"`
}

func (l *LlamaCppAdapter) ID() string   { return localID }
func (l *LlamaCppAdapter) Name() string { return localLabel }

func (l *LlamaCppAdapter) Generate(ctx context.Context, messages []Message) (string, error) {
	return l.GenerateRaw(ctx, FormatTranscript(messages))
}

func (l *LlamaCppAdapter) GenerateRaw(ctx context.Context, prompt string) (string, error) {
	if l.ModelPath == "" {
		return "", fmt.Errorf("llamacpp: %w", errMissingModelPath)
	}

	reqBody := llamaCppCompletionRequest{
		Model:       l.ModelPath,
		Prompt:      prompt,
		NPredict:    l.Params.MaxNewTokens,
		Temperature: l.Params.Temperature,
		NThreads:    l.Params.Threads,
		NBatch:      l.Params.BatchSize,
		NCtx:        l.Params.ContextLength,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("llamacpp: marshal request: %w", err)
	}

	url := strings.TrimRight(l.BaseURL, "/") + "/completion"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("llamacpp: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient(l.Client).Do(req)
	if err != nil {
		return "", fmt.Errorf("llamacpp: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", readRemoteError(localLabel, resp)
	}

	var compResp llamaCppCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&compResp); err != nil {
		return "", fmt.Errorf("llamacpp: decode response: %w", err)
	}

	return compResp.Content, nil
}

func (l *LlamaCppAdapter) Available() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(l.BaseURL, "/")+"/health", nil)
	if err != nil {
		return false
	}

	resp, err := httpClient(l.Client).Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
