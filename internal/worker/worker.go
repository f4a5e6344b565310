// Package worker runs the background jobs of the customer service on River.
package worker

import (
	"context"
	"customers/internal/config"
	"customers/pkg/emailgateway"
	"customers/pkg/logger"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the River client.
type Options struct {
	// MaxWorkers is the concurrency of the default queue.
	MaxWorkers int
	// JobTimeout bounds a single job attempt.
	JobTimeout time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers: cfg.Worker.MaxWorkers,
		JobTimeout: cfg.Worker.JobTimeout,
	}
}

// Deps are the collaborators the workers need.
type Deps struct {
	Gateway emailgateway.Gateway
}

// Workers registers every worker of the service.
func Workers(deps Deps, opts Options) *river.Workers {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewPromotionNotificationWorker(deps.Gateway, opts.JobTimeout))

	return workers
}

func Start(ctx context.Context, dbPool *pgxpool.Pool, deps Deps, opts Options) (*river.Client[pgx.Tx], error) {
	maxWorkers := opts.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 10
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: Workers(deps, opts),
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
