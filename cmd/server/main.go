package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/VAIBHAV-cell-sys/INDEPENDENT-AI-INTEGRATION/internal/adapter"
	"github.com/VAIBHAV-cell-sys/INDEPENDENT-AI-INTEGRATION/internal/config"
	"github.com/VAIBHAV-cell-sys/INDEPENDENT-AI-INTEGRATION/internal/logging"
	"github.com/VAIBHAV-cell-sys/INDEPENDENT-AI-INTEGRATION/internal/prompt"
	"github.com/VAIBHAV-cell-sys/INDEPENDENT-AI-INTEGRATION/internal/router"
	"github.com/VAIBHAV-cell-sys/INDEPENDENT-AI-INTEGRATION/internal/server"
	"github.com/VAIBHAV-cell-sys/INDEPENDENT-AI-INTEGRATION/internal/session"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	useMock := flag.Bool("mock", false, "answer every provider with a mock adapter")
	port := flag.Int("port", 0, "override listen port")
	flag.Parse()

	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("dotenv: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *port > 0 {
		cfg.Port = *port
	}
	if err := logging.Init(cfg.LogFormat, cfg.LogLevel); err != nil {
		log.Fatalf("logging: %v", err)
	}

	tmpl, err := prompt.LoadChatTemplate(cfg.PromptPath)
	if err != nil {
		slog.Error("prompt template", "path", cfg.PromptPath, "error", err)
		os.Exit(1)
	}

	factory := router.NewFactory(buildRegistry(cfg, *useMock), router.Defaults{
		Models:    cfg.Models,
		ModelPath: cfg.ModelPath,
		Params:    cfg.LocalParams,
	})

	handler := server.SetupMux(server.Deps{
		Factory:         factory,
		Sessions:        session.NewStore(cfg.SessionTTL),
		Template:        tmpl,
		DefaultProvider: cfg.DefaultProvider,
		ProviderKeys:    cfg.ProviderKeys,
		APIKey:          cfg.APIKey,
		RateLimit:       cfg.RateLimit,
	})

	if cfg.APIKey != "" {
		slog.Info("auth: API key required (X-API-Key header)")
	} else {
		slog.Info("auth: disabled (no api_key configured)")
	}
	for id := range cfg.ProviderKeys {
		slog.Info("server-side key configured", "provider", id)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("listening", "addr", addr, "default_provider", cfg.DefaultProvider)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server", "error", err)
			os.Exit(1)
		}
	}()

	<-done
	slog.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func buildRegistry(cfg config.Config, useMock bool) *router.Registry {
	if useMock {
		slog.Info("mode: mock adapter enabled")
		return router.NewMockRegistry(adapter.MockAdapter{Delay: 500 * time.Millisecond})
	}

	slog.Info("mode: live providers", "local_backend", cfg.LocalBackend, "local_url", cfg.LocalURL)
	return router.NewDefaultRegistry(router.Options{
		Client:       &http.Client{Timeout: 120 * time.Second},
		LocalBackend: cfg.LocalBackend,
		LocalURL:     cfg.LocalURL,
		BaseURLs:     cfg.BaseURLs,
	})
}
