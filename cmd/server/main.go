package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"tally/internal/platform/config"
	"tally/internal/platform/httpserver"
	"tally/internal/platform/logger"
	"tally/internal/platform/metrics"
	platformredis "tally/internal/platform/redis"
	"tally/internal/receipt"
	receiptmetrics "tally/internal/receipt/metrics"
	"tally/internal/receipt/service"
	"tally/internal/receipt/store/memory"
	"tally/internal/receipt/store/redisstore"
	httptransport "tally/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal packages.
func main() {
	// Optional .env for local development; a missing file is not an error.
	_ = godotenv.Load()

	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	store, cleanup, err := newStore(cfg)
	if err != nil {
		log.Error("store init failed", "store", cfg.Store, "error", err)
		os.Exit(1)
	}
	defer cleanup()

	svc, err := receipt.NewService(store, log, receiptmetrics.New())
	if err != nil {
		log.Error("service init failed", "error", err)
		os.Exit(1)
	}

	router := httptransport.NewRouter(receipt.NewHandler(svc, log), log, metrics.New())
	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting tally", "addr", cfg.Addr, "store", cfg.Store)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}

// newStore selects the receipt store backend. The cleanup func is a no-op
// for the in-memory store.
func newStore(cfg config.Server) (service.ReceiptStore, func(), error) {
	switch cfg.Store {
	case config.StoreRedis:
		client, err := platformredis.New(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		if client == nil {
			return nil, nil, errors.New("TALLY_REDIS_URL is required when TALLY_STORE=redis")
		}
		return redisstore.New(client.Client), func() { _ = client.Close() }, nil
	default:
		return memory.New(), func() {}, nil
	}
}
