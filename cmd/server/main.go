package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"wifi-analytics/internal/app"
	"wifi-analytics/internal/shared/configs"
)

func main() {
	configPath := flag.String("config", "./configs/configs.yml", "path to the YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := configs.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- application.Start()
	}()

	select {
	case err := <-serveErr:
		// the listener failed before any shutdown was requested
		shutdownCtx, cancel := context.WithTimeout(context.Background(), application.ShutdownTimeout())
		defer cancel()
		_ = application.Shutdown(shutdownCtx)
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	// A second signal during shutdown kills the process.
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), application.ShutdownTimeout())
	defer cancel()
	if err := application.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
