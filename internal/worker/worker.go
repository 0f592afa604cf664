package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"

	"leadscore/internal/leads"
	"leadscore/internal/scoring"
	"leadscore/pkg/logger"
	"leadscore/pkg/storage"
)

// Start registers the batch scoring worker and starts a River client bound to
// the given connection pool. The returned client must be stopped by the
// caller during shutdown.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	engine *scoring.Engine,
	strg storage.Storage,
	options leads.Options,
	maxQueueWorkers int) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewBatchScorerWorker(engine, strg, options))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxQueueWorkers},
		},
		Workers: workers,
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
