package adapter

import "context"

// Provider defines the contract for LLM backends.
type Provider interface {
	// ID is the registry identifier, e.g. "deepseek".
	ID() string
	// Name is the label used when rendering errors, e.g. "DeepSeek".
	Name() string
	Generate(ctx context.Context, messages []Message) (string, error)
	Available() bool
}

// ModelValidator is implemented by providers that only accept a fixed set of models.
type ModelValidator interface {
	ValidateModel() error
}

// RawPrompter is implemented by providers that take a single block of text.
// A plain string prompt is passed through untouched instead of being wrapped
// into a user message and flattened again.
type RawPrompter interface {
	GenerateRaw(ctx context.Context, prompt string) (string, error)
}

// Temperature is sent by every chat-completions provider.
const Temperature = 0.7
