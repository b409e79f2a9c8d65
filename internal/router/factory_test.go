package router

import (
	"testing"

	"github.com/VAIBHAV-cell-sys/INDEPENDENT-AI-INTEGRATION/internal/adapter"
)

func TestGetRouter(t *testing.T) {
	f := NewFactory(NewRegistry(), DefaultDefaults())

	tests := []struct {
		name         string
		wantProvider string
		wantModel    string
	}{
		{"openai", OpenAI, "gpt-4o-mini"},
		{"perplexity", Perplexity, "sonar-small-online"},
		{"deepseek", DeepSeek, "deepseek-chat"},
		{"aimlapi", AIMLAPI, "gpt-4o"},
		{"", LocalLlama, ""},
		{"something-else", LocalLlama, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := f.GetRouter(tt.name, "key-1")
			if r.cfg.Provider != tt.wantProvider {
				t.Errorf("provider: got %q, want %q", r.cfg.Provider, tt.wantProvider)
			}
			if r.cfg.Model != tt.wantModel {
				t.Errorf("model: got %q, want %q", r.cfg.Model, tt.wantModel)
			}
			if tt.wantProvider == LocalLlama {
				if r.cfg.APIKey != "" {
					t.Error("local_llama config should not carry an API key")
				}
				if r.cfg.ModelPath != "llama2:7b-chat" {
					t.Errorf("model_path: got %q", r.cfg.ModelPath)
				}
				if r.cfg.Params != adapter.DefaultLocalParams() {
					t.Errorf("params: got %+v", r.cfg.Params)
				}
			} else if r.cfg.APIKey != "key-1" {
				t.Errorf("api key: got %q", r.cfg.APIKey)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	f := NewFactory(NewRegistry(), DefaultDefaults())
	got := f.Describe()
	if len(got) != len(Providers) {
		t.Fatalf("count: got %d, want %d", len(got), len(Providers))
	}
	if got[0].ID != OpenAI || got[0].DefaultModel != "gpt-4o-mini" {
		t.Errorf("first: got %+v", got[0])
	}
	if last := got[len(got)-1]; last.ID != LocalLlama || last.DefaultModel != "llama2:7b-chat" {
		t.Errorf("last: got %+v", last)
	}
}
