package adapter

import (
	"context"
	"testing"
	"time"
)

func TestMockAdapterGenerate(t *testing.T) {
	tests := []struct {
		name     string
		adapter  *MockAdapter
		messages []Message
		want     string
	}{
		{"echoes last message", &MockAdapter{}, []Message{{Role: "system", Content: "be nice"}, {Role: "user", Content: "hello"}}, "hello"},
		{"trims whitespace", &MockAdapter{}, []Message{{Role: "user", Content: "  hello world  "}}, "hello world"},
		{"fixed reply", &MockAdapter{Reply: "1. one\n2. two"}, []Message{{Role: "user", Content: "x"}}, "1. one\n2. two"},
		{"no messages", &MockAdapter{}, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.adapter.Generate(context.Background(), tt.messages)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMockAdapterContextCancel(t *testing.T) {
	m := &MockAdapter{Delay: 5 * time.Second}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Generate(ctx, []Message{{Role: "user", Content: "hello"}})
	if err == nil {
		t.Error("expected error on cancelled context, got nil")
	}
}

func TestMockAdapterAvailable(t *testing.T) {
	m := &MockAdapter{}
	if !m.Available() {
		t.Error("mock adapter should always be available")
	}
}

func TestMockAdapterID(t *testing.T) {
	if got := (&MockAdapter{}).ID(); got != "mock" {
		t.Errorf("default id: got %q, want %q", got, "mock")
	}
	if got := (&MockAdapter{ProviderID: "deepseek"}).ID(); got != "deepseek" {
		t.Errorf("id: got %q, want %q", got, "deepseek")
	}
}
