// Command server runs the Sahayak content-generation API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/infatoz/sahayak-api/internal/api"
	"github.com/infatoz/sahayak-api/internal/config"
	"github.com/infatoz/sahayak-api/internal/flows"
	"github.com/infatoz/sahayak-api/internal/platform/gemini"
	"github.com/infatoz/sahayak-api/internal/platform/googleforms"
	"github.com/infatoz/sahayak-api/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env in the working directory is a local-development convenience;
	// its absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.Setup(cfg.Server)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	generator, err := gemini.NewGenerator(ctx, log, cfg.LLM)
	if err != nil {
		return fmt.Errorf("create generator: %w", err)
	}

	var formsOpts []googleforms.Option
	if cfg.Forms.BaseURL != "" {
		formsOpts = append(formsOpts, googleforms.WithBaseURL(cfg.Forms.BaseURL))
	}
	formsClient := googleforms.NewClient(log, formsOpts...)

	flowService := flows.NewService(log, generator, formsClient, cfg.LLM)
	handler := api.NewFlowHandler(flowService, log)

	return startHTTPServer(ctx, log, cfg.Server, newRouter(handler))
}
