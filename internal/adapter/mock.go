package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// MockAdapter returns simulated responses with a configurable delay.
// Used for development and testing without a real LLM backend.
type MockAdapter struct {
	ProviderID string
	Reply      string
	Delay      time.Duration
}

func (m *MockAdapter) ID() string {
	if m.ProviderID == "" {
		return "mock"
	}
	return m.ProviderID
}

func (m *MockAdapter) Name() string { return "Mock" }

// Generate returns Reply when set, otherwise the last message's content trimmed.
func (m *MockAdapter) Generate(ctx context.Context, messages []Message) (string, error) {
	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return "", fmt.Errorf("mock: %w", ctx.Err())
		}
	}

	if m.Reply != "" {
		return m.Reply, nil
	}
	if len(messages) == 0 {
		return "", nil
	}
	return strings.TrimSpace(messages[len(messages)-1].Content), nil
}

func (m *MockAdapter) Available() bool { return true }
