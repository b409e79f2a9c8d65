package adapter

import "errors"

// LocalParams tunes local inference.
type LocalParams struct {
	MaxNewTokens  int     `yaml:"max_new_tokens" json:"max_new_tokens"`
	Temperature   float64 `yaml:"temperature" json:"temperature"`
	Threads       int     `yaml:"threads" json:"threads"`
	BatchSize     int     `yaml:"batch_size" json:"batch_size"`
	ContextLength int     `yaml:"context_length" json:"context_length"`
}

// DefaultLocalParams matches the bundled llama-2-7b-chat setup.
func DefaultLocalParams() LocalParams {
	return LocalParams{
		MaxNewTokens:  300,
		Temperature:   0.3,
		Threads:       4,
		BatchSize:     8,
		ContextLength: 2048,
	}
}

const (
	localID    = "local_llama"
	localLabel = "Local LLaMA"
)

var errMissingModelPath = errors.New("model_path is required")
