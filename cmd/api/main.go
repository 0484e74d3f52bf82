package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketplace-settlement/config"
	httpHandler "marketplace-settlement/internal/adapter/http/handler"
	"marketplace-settlement/internal/adapter/payment"
	pgStorage "marketplace-settlement/internal/adapter/storage/postgres"
	redisStorage "marketplace-settlement/internal/adapter/storage/redis"
	"marketplace-settlement/internal/core/ports"
	"marketplace-settlement/internal/realtime"
	"marketplace-settlement/internal/service"
	"marketplace-settlement/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Marketplace Settlement Service")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize stores
	orderStore := pgStorage.NewOrderStore(pool)
	couponStore := pgStorage.NewCouponStore(pool)
	processedStore := redisStorage.NewProcessedStore(rdb)

	// Initialize core services
	sigSvc := service.NewHMACSignatureService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Issuer)
	lifecycleSvc := service.NewLifecycleService(orderStore, log)
	notifierSvc := service.NewNotifierService(
		cfg.Partner.WebhookURL,
		cfg.Partner.Secret,
		cfg.Partner.CouponPrefix,
		sigSvc,
		&http.Client{Timeout: 10 * time.Second},
		log,
	)
	webhookSvc := service.NewPartnerWebhookService(
		cfg.Partner.Secret,
		sigSvc,
		processedStore,
		couponStore,
		log,
	)

	// Initialize payment gateway client
	gateway := payment.NewClient(cfg.Payment, log)

	// Initialize realtime hub and the Redis stats bridge feeding it
	hub := realtime.NewHub(log)
	wsHandler := realtime.NewHandler(hub, tokenSvc, cfg.Realtime.SendBuffer, log)
	statsPub := redisStorage.NewPublisher(rdb, cfg.Realtime.EventsChannel)
	bridge := redisStorage.NewBridge(rdb, cfg.Realtime.EventsChannel, hub, log)
	go bridge.Run(ctx)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Lifecycle:      lifecycleSvc,
		Orders:         orderStore,
		Gateway:        gateway,
		Notifier:       notifierSvc,
		StatsPub:       statsPub,
		Webhooks:       webhookSvc,
		WSHandler:      wsHandler.Serve,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
