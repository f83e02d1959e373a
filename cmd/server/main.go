package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/takakun00-maker/op-inventory-app/internal/config"
	"github.com/takakun00-maker/op-inventory-app/internal/handlers"
	"github.com/takakun00-maker/op-inventory-app/internal/scan"
	"github.com/takakun00-maker/op-inventory-app/internal/service"
	"github.com/takakun00-maker/op-inventory-app/internal/store"
)

func main() {
	// Configure slog as early as possible in main.
	// Using TextHandler for console readability; for production JSONHandler might be preferred.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
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

	if err := db.InitSchema(); err != nil {
		slog.Error("Failed to init schema", "error", err)
		os.Exit(1)
	}

	// 3. Services
	inventorySvc := service.NewInventoryService(db)

	// Barcode decoding is optional; without it the API runs in a
	// degraded, search-only mode.
	var decoder scan.Decoder
	if cfg.ScannerEnabled {
		decoder = scan.NewZXingDecoder()
	} else {
		slog.Warn("Barcode scanner disabled; manual search only")
	}

	// 4. Setup Handlers
	inventoryHandler := &handlers.InventoryHandler{Store: db, Service: inventorySvc}
	orderHandler := &handlers.OrderHandler{Store: db, Service: inventorySvc}
	scanHandler := &handlers.ScanHandler{Decoder: decoder, Service: inventorySvc}

	mux := handlers.NewMux(inventoryHandler, orderHandler, scanHandler)

	// Chain: Logger -> Security Headers -> Mux
	handler := handlers.LoggingMiddleware(
		handlers.SecurityHeadersMiddleware(mux),
	)

	// 5. Start Server with Graceful Shutdown
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("Server starting", "port", cfg.Port, "db", cfg.DBPath)
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
