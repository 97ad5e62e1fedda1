// Command cleanup-tokens deletes expired and revoked refresh tokens. It is
// intended to be invoked by an external cron job, not as an in-process
// goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/wadirect-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wadirect-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/wadirect-backend/internal/app"
	"github.com/heartmarshall/wadirect-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	deleted, err := token.New(pool).DeleteStale(ctx)
	if err != nil {
		logger.Error("cleanup stale tokens", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("stale refresh tokens deleted", slog.Int64("count", deleted))
}
