package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/VAIBHAV-cell-sys/INDEPENDENT-AI-INTEGRATION/internal/adapter"
)

// Config holds all application configuration.
type Config struct {
	Port            int           `yaml:"port"`
	APIKey          string        `yaml:"api_key"`
	DefaultProvider string        `yaml:"default_provider"`
	SessionTTL      time.Duration `yaml:"session_ttl"`
	RateLimit       int           `yaml:"rate_limit"`
	PromptPath      string        `yaml:"prompt_path"`
	LogFormat       string        `yaml:"log_format"`
	LogLevel        string        `yaml:"log_level"`

	LocalBackend string              `yaml:"local_backend"`
	LocalURL     string              `yaml:"local_url"`
	ModelPath    string              `yaml:"model_path"`
	LocalParams  adapter.LocalParams `yaml:"local_params"`

	// Models maps provider identifier to its default model.
	Models map[string]string `yaml:"models"`
	// ProviderKeys are server-side fallback API keys by provider identifier.
	ProviderKeys map[string]string `yaml:"provider_keys"`
	// BaseURLs overrides provider endpoints by provider identifier.
	BaseURLs map[string]string `yaml:"base_urls"`
}

func defaults() Config {
	return Config{
		Port:            8080,
		DefaultProvider: "openai",
		SessionTTL:      24 * time.Hour,
		RateLimit:       30,
		LogFormat:       "text",
		LogLevel:        "info",
		LocalBackend:    "ollama",
		LocalURL:        "http://localhost:11434",
		ModelPath:       "llama2:7b-chat",
		LocalParams:     adapter.DefaultLocalParams(),
		Models: map[string]string{
			"openai":     "gpt-4o-mini",
			"perplexity": "sonar-small-online",
			"deepseek":   "deepseek-chat",
			"aimlapi":    "gpt-4o",
		},
		ProviderKeys: map[string]string{},
		BaseURLs:     map[string]string{},
	}
}

// providerKeyEnv names the environment variables holding fallback API keys.
var providerKeyEnv = map[string]string{
	"openai":     "APP_OPENAI_API_KEY",
	"perplexity": "APP_PERPLEXITY_API_KEY",
	"deepseek":   "APP_DEEPSEEK_API_KEY",
	"aimlapi":    "APP_AIMLAPI_API_KEY",
}

// Load loads configuration from a YAML file (if path is non-empty),
// then applies environment variable overrides. An empty path returns defaults + env overrides.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse yaml: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	// PORT is what most PaaS runtimes inject; APP_PORT wins when both are set.
	for _, name := range []string{"PORT", "APP_PORT"} {
		if v := os.Getenv(name); v != "" {
			p, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("config: invalid %s %q: %w", name, v, err)
			}
			cfg.Port = p
		}
	}
	if v := os.Getenv("APP_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid APP_RATE_LIMIT %q: %w", v, err)
		}
		cfg.RateLimit = n
	}
	if v := os.Getenv("APP_SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: invalid APP_SESSION_TTL %q: %w", v, err)
		}
		cfg.SessionTTL = d
	}

	strs := map[string]*string{
		"APP_API_KEY":          &cfg.APIKey,
		"APP_DEFAULT_PROVIDER": &cfg.DefaultProvider,
		"APP_PROMPT_PATH":      &cfg.PromptPath,
		"APP_LOG_FORMAT":       &cfg.LogFormat,
		"APP_LOG_LEVEL":        &cfg.LogLevel,
		"APP_LOCAL_BACKEND":    &cfg.LocalBackend,
		"APP_LOCAL_URL":        &cfg.LocalURL,
		"APP_MODEL_PATH":       &cfg.ModelPath,
	}
	for name, dst := range strs {
		if v := os.Getenv(name); v != "" {
			*dst = v
		}
	}

	if cfg.ProviderKeys == nil {
		cfg.ProviderKeys = map[string]string{}
	}
	for provider, name := range providerKeyEnv {
		if v := os.Getenv(name); v != "" {
			cfg.ProviderKeys[provider] = v
		}
	}
	return nil
}

func (c Config) validate() error {
	switch c.LocalBackend {
	case "ollama", "llamacpp":
	default:
		return fmt.Errorf("config: local_backend must be ollama or llamacpp, got %q", c.LocalBackend)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("config: session_ttl must be positive, got %s", c.SessionTTL)
	}
	return nil
}
