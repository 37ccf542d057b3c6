package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dhruv435/slugma-admin/internal/config"
	"github.com/Dhruv435/slugma-admin/internal/events"
	"github.com/Dhruv435/slugma-admin/internal/handlers"
	"github.com/Dhruv435/slugma-admin/internal/store"
)

func main() {
	// Configure slog as early as possible in main.
	// Using TextHandler for console readability; for production JSONHandler might be preferred.
	handlerOpts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, handlerOpts))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Init DB
	db, err := store.NewStore(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize store", "error", err)
		os.Exit(1)
	}

	// Run Migrations
	if err := db.Migrate(cfg.MigrationsDir); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// 3. Order event publisher (optional; storefront notifications)
	var publisher *events.Publisher
	if cfg.AMQPURL != "" {
		publisher, err = events.Connect(cfg.AMQPURL, cfg.OrderExchange)
		if err != nil {
			slog.Error("Failed to connect to AMQP broker", "error", err)
			os.Exit(1)
		}
		defer publisher.Close()
		slog.Info("Order event publisher enabled", "exchange", cfg.OrderExchange)
	}

	// 4. Make sure the upload directory exists before the first image lands
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		slog.Error("Failed to create upload directory", "error", err, "dir", cfg.UploadDir)
		os.Exit(1)
	}

	// 5. Routes + middleware chain
	handler := handlers.NewRouter(handlers.Deps{
		Store:      db,
		Publisher:  publisher,
		JWTKey:     cfg.JWTKey,
		TokenTTL:   cfg.TokenTTL,
		UploadDir:  cfg.UploadDir,
		LoginEvery: time.Second,
	})

	// 6. Start Server with Graceful Shutdown
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to listen and serve", "error", err)
			os.Exit(1)
		}
	}()

	<-stop

	slog.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited gracefully.")
}
