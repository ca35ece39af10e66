// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	app "fintrack/internal"
	"fintrack/internal/config"
	"fintrack/internal/util"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		desc, err := config.Description()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(desc)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create and initialize the application
	application := app.NewApplication()
	if err := application.Initialize(ctx); err != nil {
		application.Logger.Error("Failed to initialize application", util.Err(err))
		if application.DB != nil {
			_ = application.Shutdown(ctx)
		}
		os.Exit(1)
	}

	// Start HTTP server. The write timeout leaves room for the per-request timeout.
	server := &http.Server{
		Addr:         ":" + application.Config.ServerPort,
		Handler:      application.HTTPHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: application.Config.RequestTimeout + 5*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Run server in a goroutine
	go func() {
		application.Logger.Info("Starting HTTP server", "port", application.Config.ServerPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			application.Logger.Error("HTTP server failed to start", util.Err(err))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	application.Logger.Info("Shutting down HTTP server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		application.Logger.Error("HTTP server shutdown failed", util.Err(err))
		os.Exit(1)
	}

	if err := application.Shutdown(shutdownCtx); err != nil {
		application.Logger.Error("Application shutdown failed", util.Err(err))
		os.Exit(1)
	}

	application.Logger.Info("Application gracefully stopped.")
}
