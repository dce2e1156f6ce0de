package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sales-admin/internal/client"
	"sales-admin/internal/config"
	"sales-admin/internal/draft"
	"sales-admin/internal/router"
	"sales-admin/internal/web"
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
	logger.Info().Str("api", cfg.API.BaseURL).Msg("starting sales-admin server")

	// Initialize the shared API client core and per-entity resource clients
	core := client.New(cfg.API.BaseURL, time.Duration(cfg.API.Timeout)*time.Second, logger)
	customers := client.NewCustomerClient(core)
	products := client.NewProductClient(core)
	orders := client.NewOrderClient(core)

	// Initialize the order draft store
	drafts := draft.NewStore(time.Duration(cfg.Draft.TTL) * time.Minute)

	// Initialize view rendering
	renderer, err := web.NewRenderer(logger)
	if err != nil {
		return fmt.Errorf("failed to initialize templates: %w", err)
	}

	// Initialize view handlers
	customerHandler := web.NewCustomerHandler(customers, renderer, logger)
	productHandler := web.NewProductHandler(products, renderer, logger)
	orderHandler := web.NewOrderHandler(orders, customers, products, drafts, renderer, logger)

	// Initialize router
	mux := router.New(customerHandler, productHandler, orderHandler, logger)

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

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
