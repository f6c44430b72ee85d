package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"catalogo-iluminacao/app"
	"catalogo-iluminacao/config"
	"catalogo-iluminacao/logging"
)

func main() {
	// Load .env in development (ignores error if file doesn't exist)
	// In production, variables should be set directly
	if os.Getenv("ENV") != "production" {
		// Use Overload to ensure .env values override system environment variables
		if err := godotenv.Overload(".env"); err != nil {
			log.Printf("Warning: .env file not found, using system environment variables")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := logging.Init(cfg.LogLevel); err != nil {
		log.Fatal(err)
	}
	defer logging.Sync()
	logger := logging.L()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.Initialize(ctx, cfg)
	if err != nil {
		logger.Fatalf("❌ %v", err)
	}

	// Listen before activating: the loader's first attempt is this very server
	listener, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		logger.Fatalf("❌ Server failed to start: %v", err)
	}

	srv := &http.Server{
		Handler:           application.Handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Infof("🚀 Server starting on %s", cfg.Addr())
		logger.Infof("Catalog page: %s/", cfg.PublicBaseURL)
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("❌ Server failed: %v", err)
		}
	}()

	go application.Store.Activate(ctx)

	<-ctx.Done()
	logger.Infof("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("❌ Shutdown: %v", err)
	}
}
