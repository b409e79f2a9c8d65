package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/VAIBHAV-cell-sys/INDEPENDENT-AI-INTEGRATION/internal/config"
	"github.com/VAIBHAV-cell-sys/INDEPENDENT-AI-INTEGRATION/internal/logging"
	"github.com/VAIBHAV-cell-sys/INDEPENDENT-AI-INTEGRATION/internal/router"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("ask", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to config.yaml")
	provider := fs.String("provider", "", "provider id (default: config default_provider)")
	apiKey := fs.String("api-key", "", "provider API key (default: APP_<PROVIDER>_API_KEY)")
	model := fs.String("model", "", "model override (model path / tag for local_llama)")
	messagesPath := fs.String("messages", "", "JSON file with a [{role, content}] array")
	timeout := fs.Duration("timeout", 2*time.Minute, "overall request timeout")
	verbose := fs.Bool("v", false, "debug logging to stderr")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: ask [flags] \"prompt\"  |  ask [flags] -messages file.json")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "dotenv: %v\n", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	level := "warn"
	if *verbose {
		level = "debug"
	}
	if err := logging.Init("text", level); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	input, err := readInput(fs.Args(), *messagesPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return 1
	}

	name := *provider
	if name == "" {
		name = cfg.DefaultProvider
	}
	key := *apiKey
	if key == "" {
		key = cfg.ProviderKeys[name]
	}

	defaults := router.Defaults{Models: cfg.Models, ModelPath: cfg.ModelPath, Params: cfg.LocalParams}
	if *model != "" {
		defaults = withModel(defaults, name, *model)
	}

	reg := router.NewDefaultRegistry(router.Options{
		Client:       &http.Client{Timeout: *timeout},
		LocalBackend: cfg.LocalBackend,
		LocalURL:     cfg.LocalURL,
		BaseURLs:     cfg.BaseURLs,
	})

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	fmt.Println(router.NewFactory(reg, defaults).GetRouter(name, key).GenerateText(ctx, input))
	return 0
}

// readInput returns the prompt string from args, or the message list from path.
func readInput(args []string, path string) (any, error) {
	if path != "" {
		if len(args) > 0 {
			return nil, errors.New("ask: give either a prompt or -messages, not both")
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("ask: read messages: %w", err)
		}
		var msgs []map[string]string
		if err := json.Unmarshal(data, &msgs); err != nil {
			return nil, fmt.Errorf("ask: parse messages: %w", err)
		}
		return msgs, nil
	}
	prompt := strings.TrimSpace(strings.Join(args, " "))
	if prompt == "" {
		return nil, errors.New("ask: prompt is required")
	}
	return prompt, nil
}

// withModel copies d with the model for provider replaced.
func withModel(d router.Defaults, provider, model string) router.Defaults {
	if !isHosted(provider) {
		d.ModelPath = model
		return d
	}
	models := make(map[string]string, len(d.Models)+1)
	for k, v := range d.Models {
		models[k] = v
	}
	models[provider] = model
	d.Models = models
	return d
}

func isHosted(provider string) bool {
	switch provider {
	case router.OpenAI, router.Perplexity, router.DeepSeek, router.AIMLAPI:
		return true
	}
	return false
}
