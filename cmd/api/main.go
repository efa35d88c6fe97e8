package main

import (
	"context"
	"log"
	"time"

	"ecommerce-api-client/internal/clients/supplier"
	"ecommerce-api-client/internal/core/cache"
	"ecommerce-api-client/internal/core/config"
	"ecommerce-api-client/internal/core/logger"
	"ecommerce-api-client/internal/core/server"
	orderadapter "ecommerce-api-client/internal/features/orders/adapters"
	orderhandler "ecommerce-api-client/internal/features/orders/handler"
	orderservice "ecommerce-api-client/internal/features/orders/service"

	"go.uber.org/zap"
)

// @title Supplier Order Gateway API
// @version 1.0
// @description HTTP gateway that relays orders to the supplier e-commerce API and records accepted submissions.
// @contact.name API Support
// @contact.email support@ordergateway.io
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Initialize the supplier client
	client, err := supplier.NewWithTimeouts(
		cfg.Supplier.URL,
		time.Duration(cfg.Supplier.TimeoutSeconds)*time.Second,
		time.Duration(cfg.Supplier.ConnectTimeoutSeconds)*time.Second,
	)
	if err != nil {
		l.Fatal("Supplier client init failed", zap.Error(err))
	}
	if cfg.Supplier.Email != "" {
		client = client.WithCredentials(cfg.Supplier.Email, cfg.Supplier.Token)
	}
	l.Info("Supplier client ready", zap.String("url", cfg.Supplier.URL))

	// Initialize the submission store and run a health check
	store, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Redis init failed", zap.Error(err))
	}
	defer store.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		l.Fatal("Redis health check failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	submissionLog := orderadapter.NewRedisSubmissionLog(
		store,
		int64(cfg.Submissions.MaxEntries),
		time.Duration(cfg.Submissions.TTLHours)*time.Hour,
	)

	// Initialize Order Service & Handlers
	orderService := orderservice.NewOrderService(client, submissionLog)
	orderHandler := orderhandler.NewOrderHandler(orderService)
	healthHandler := orderhandler.NewHealthHandler(store)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Post("/api/orders", orderHandler.PlaceOrder)
	srv.App.Get("/api/orders/recent", orderHandler.RecentActivity)
	srv.App.Get("/health", healthHandler.Health)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
