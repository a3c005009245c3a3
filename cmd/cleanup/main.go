// Command cleanup removes non-favorite stories older than
// story.retention_days. It is intended to be invoked by an external cron
// job, not as an in-process goroutine. A retention of 0 disables it.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/evernest-backend/internal/adapter/postgres"
	"github.com/heartmarshall/evernest-backend/internal/adapter/postgres/story"
	"github.com/heartmarshall/evernest-backend/internal/app"
	"github.com/heartmarshall/evernest-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if cfg.Story.RetentionDays == 0 {
		logger.Info("story retention disabled, nothing to do")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	threshold := time.Now().AddDate(0, 0, -cfg.Story.RetentionDays)

	deleted, err := story.New(pool).DeleteOlderThan(ctx, threshold)
	if err != nil {
		logger.Error("story cleanup failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	logger.Info("story cleanup completed",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
	)
}
