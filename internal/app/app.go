package app

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	internalhttp "wifi-analytics/internal/http"
	"wifi-analytics/internal/shared/configs"
	"wifi-analytics/internal/shared/loggers"
)

const appName = "wifi-analytics"

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server
	services  *Services

	// cancelRequests aborts the contexts of in-flight requests.
	cancelRequests context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := NewLogger(config.Log, os.Stdout)
	if err != nil {
		return nil, err
	}

	services, err := NewServices(appLogger.WithContext(context.Background()), config)
	if err != nil {
		return nil, err
	}

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(services.QueryService, services.ReportService, httpLogger, internalhttp.RouterOptions{
		RequestTimeout: time.Duration(config.Server.RequestTimeout) * time.Second,
	})

	// Request contexts derive from baseCtx so a timed out shutdown can stop running scans.
	baseCtx, cancelRequests := context.WithCancel(context.Background())

	// Create HTTP server
	server := &http.Server{
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:         config,
		appLogger:      appLogger,
		server:         server,
		services:       services,
		cancelRequests: cancelRequests,
	}, nil
}

// NewLogger builds the application logger tagged with the app name.
func NewLogger(config configs.LogConfig, w io.Writer) (loggers.Logger, error) {
	appLogger, err := loggers.NewWithOptions(loggers.Options{
		Level:  config.Level,
		Format: config.Format,
		Writer: w,
	})
	if err != nil {
		return appLogger, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return appLogger.With().Str(loggers.FieldApp, appName).Logger(), nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Str(loggers.FieldDatasetKey, app.config.Dataset.LogKey).
		Msgf("Starting %s service on port %d (log_level=%s)", appName, app.config.Server.Port, app.config.Log.Level)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application. In-flight queries see their request context
// cancelled once ctx expires.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	err := app.server.Shutdown(ctx)
	app.cancelRequests()
	if err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Release storage
	if err := app.services.Close(); err != nil {
		return fmt.Errorf("storage close failed: %w", err)
	}
	app.appLogger.Info().Msg("Storage closed")

	return nil
}

// ShutdownTimeout is how long Shutdown may wait for in-flight requests.
func (app *App) ShutdownTimeout() time.Duration {
	return time.Duration(app.config.Server.ShutdownTimeout) * time.Second
}
