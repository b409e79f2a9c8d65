package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const openAIDefaultModel = "gpt-3.5-turbo"

var errMissingAPIKey = errors.New("missing API key")

// OpenAI talks to the OpenAI chat completions API through the official SDK.
// BaseURL may point at any OpenAI-compatible server.
type OpenAI struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client
}

func (o *OpenAI) ID() string   { return "openai" }
func (o *OpenAI) Name() string { return "OpenAI" }

func (o *OpenAI) Generate(ctx context.Context, messages []Message) (string, error) {
	if o.APIKey == "" {
		return "", fmt.Errorf("openai: %w", errMissingAPIKey)
	}

	opts := []option.RequestOption{
		option.WithAPIKey(o.APIKey),
		option.WithMaxRetries(0),
	}
	if o.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(o.BaseURL))
	}
	if o.Client != nil {
		opts = append(opts, option.WithHTTPClient(o.Client))
	}
	client := openai.NewClient(opts...)

	model := o.Model
	if model == "" {
		model = openAIDefaultModel
	}

	completion, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(model),
		Messages:    toOpenAIMessages(messages),
		Temperature: openai.Float(Temperature),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", remoteHTTP(o.Name(), apiErr.StatusCode, openAIErrorBody(apiErr))
		}
		return "", fmt.Errorf("openai: request: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("openai: %w", errMissingContent)
	}
	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

func (o *OpenAI) Available() bool {
	return o.APIKey != ""
}

// openAIErrorBody returns the raw response body of a failed call. The SDK
// rewinds Response.Body after decoding, so non-JSON bodies from compatible
// servers survive. Message is the fallback when the body is empty.
func openAIErrorBody(apiErr *openai.Error) string {
	if apiErr.Response != nil && apiErr.Response.Body != nil {
		raw, _ := io.ReadAll(io.LimitReader(apiErr.Response.Body, maxErrorBody))
		if strings.TrimSpace(string(raw)) != "" {
			return string(raw)
		}
	}
	if apiErr.Message != "" {
		return apiErr.Message
	}
	return apiErr.Error()
}

func toOpenAIMessages(messages []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case "system":
			out = append(out, openai.SystemMessage(m.Content))
		case "developer":
			out = append(out, openai.DeveloperMessage(m.Content))
		case "assistant":
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}
