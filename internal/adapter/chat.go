package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxErrorBody bounds how much of a non-200 body is embedded in an error.
const maxErrorBody = 64 * 1024

// chatRequest is the body shared by every OpenAI-compatible /chat/completions endpoint.
type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type chatChoice struct {
	Message struct {
		Content *string `json:"content"`
	} `json:"message"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

var errMissingContent = errors.New("response missing choices[0].message.content")

// chatEndpoint posts chat requests to one fixed URL with Bearer auth.
type chatEndpoint struct {
	label   string
	url     string
	apiKey  string
	client  *http.Client
	headers map[string]string
}

func (c chatEndpoint) complete(ctx context.Context, reqBody chatRequest) (string, error) {
	tag := strings.ToLower(c.label)

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%s: marshal request: %w", tag, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%s: create request: %w", tag, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := httpClient(c.client).Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: request: %w", tag, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", readRemoteError(c.label, resp)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("%s: decode response: %w", tag, err)
	}

	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == nil {
		return "", fmt.Errorf("%s: %w", tag, errMissingContent)
	}

	return strings.TrimSpace(*chatResp.Choices[0].Message.Content), nil
}

func readRemoteError(label string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return remoteHTTP(label, resp.StatusCode, string(raw))
}

func httpClient(c *http.Client) *http.Client {
	if c == nil {
		return http.DefaultClient
	}
	return c
}

func endpointURL(baseURL, defaultBaseURL, path string) string {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return strings.TrimRight(baseURL, "/") + path
}
