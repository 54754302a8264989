package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/XavierBriggs/fortuna/services/football-feeds/internal/config"
	"github.com/XavierBriggs/fortuna/services/football-feeds/internal/handlers"
	"github.com/XavierBriggs/fortuna/services/football-feeds/internal/logging"
	"github.com/XavierBriggs/fortuna/services/football-feeds/internal/providers/kooora"
	"github.com/XavierBriggs/fortuna/services/football-feeds/internal/server"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_FILE"), "path to a YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "kooora-service: %v\n", err)
		os.Exit(1)
	}
}

// run wires the service and serves until SIGINT or SIGTERM
func run(configPath string) error {
	// Load configuration
	cfg, err := config.Load(config.KoooraService, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.New(cfg.Logging, cfg.Service)
	logger.Info("starting", "provider", cfg.Provider.BaseURL)

	client := kooora.New(kooora.Config{
		BaseURL:   cfg.Provider.BaseURL,
		UserAgent: cfg.Provider.UserAgent,
		Timeout:   cfg.Provider.Timeout,
	})
	defer client.Close()

	handler := handlers.NewKoooraHandler(client,
		handlers.WithLogger(logger),
		handlers.WithTimeout(cfg.Server.RequestTimeout),
		handlers.WithSwallowUpstreamErrors(cfg.SwallowUpstreamErrors),
	)

	// Setup router
	r := server.NewRouter(cfg.Server, logger)
	handler.Routes(r)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, server.New(cfg.Server, r), logger); err != nil {
		logger.Error("server stopped", "error", err)
		return err
	}

	logger.Info("stopped")
	return nil
}
