package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"petro-catalog/internal/catalog"
	"petro-catalog/internal/config"
	"petro-catalog/internal/contact"
	"petro-catalog/internal/database"
	"petro-catalog/internal/handler"
	"petro-catalog/internal/prefs"
	"petro-catalog/internal/rfq"
	"petro-catalog/internal/router"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting petro-catalog API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Select the catalogue data source
	source, cleanup, err := newSource(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	// Load the catalogue snapshot; a failing source degrades to demo data
	store := catalog.NewStore(logger)
	if err := store.Load(ctx, source); err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	// Initialize theme preference state
	themeStore := prefs.NewFileStore(cfg.Theme.StorePath)
	theme, err := prefs.NewTheme(themeStore, cfg.Theme.SystemDark, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize theme state: %w", err)
	}

	// Initialize quote-request session manager and contact link builder
	rfqManager := rfq.NewManager(logger)
	contacts := contact.NewBuilder(cfg.Contact.PhoneNumber, cfg.Contact.ChatEndpoint)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(store, logger)
	menuHandler := handler.NewMenuHandler(store, logger)
	contentHandler := handler.NewContentHandler(contacts, logger)
	rfqHandler := handler.NewRFQHandler(rfqManager, logger)
	prefsHandler := handler.NewPrefsHandler(theme, logger)

	// Initialize router
	mux := router.New(productHandler, menuHandler, contentHandler, rfqHandler, prefsHandler, cfg.Auth.APIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newSource builds the configured catalogue source. The S3 source falls back
// to the local file source when it cannot be initialised; the returned
// cleanup closes the database pool for the postgres source.
func newSource(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (catalog.Source, func(), error) {
	switch cfg.Catalog.Source {
	case "postgres":
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return catalog.NewPostgresSource(pool, logger), pool.Close, nil

	case "s3":
		source, err := catalog.NewS3Source(ctx, cfg.S3.Bucket, cfg.S3.Region, cfg.S3.Key, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 catalog source, falling back to local file")
			return catalog.NewFileSource(cfg.Catalog.FilePath, logger), nil, nil
		}
		return source, nil, nil

	default:
		return catalog.NewFileSource(cfg.Catalog.FilePath, logger), nil, nil
	}
}
