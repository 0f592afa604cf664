package worker

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"leadscore/internal/leads"
	"leadscore/internal/scoring"
	"leadscore/pkg/domain"
	"leadscore/pkg/logger"
	"leadscore/pkg/metrics"
	"leadscore/pkg/storage"
)

// BatchScorerWorker is a River worker that scores the items of a submitted
// batch. Items are scored through the engine's bounded pool one chunk at a
// time; each chunk's outcomes and progress counters are persisted in a single
// transaction, so pollers always observe a consistent batch state and a retry
// after a crash resumes from the last persisted chunk instead of starting
// over.
//
// Between chunks the worker re-reads the batch header: when the owner has
// cancelled the batch, the worker stops dispatching and leaves the remaining
// items pending. Already-scored items keep their results.
type BatchScorerWorker struct {
	river.WorkerDefaults[leads.JobArgs]

	engine  *scoring.Engine
	storage storage.Storage
	options leads.Options
}

// NewBatchScorerWorker constructs a BatchScorerWorker using the provided
// scoring engine and storage.
func NewBatchScorerWorker(engine *scoring.Engine, strg storage.Storage, options leads.Options) *BatchScorerWorker {
	return &BatchScorerWorker{
		engine:  engine,
		storage: strg,
		options: options,
	}
}

// Work executes a single batch scoring job.
func (w *BatchScorerWorker) Work(ctx context.Context, job *river.Job[leads.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("batchID", uuid.UUID(job.Args.BatchID).String()))

	batch, err := w.storage.BatchByID(ctx, job.Args.UserID, job.Args.BatchID)
	if err != nil {
		return fmt.Errorf("could not get batch: %w", err)
	}
	if batch == nil {
		// the batch is gone, retrying will not bring it back
		return river.JobCancel(fmt.Errorf("batch not found")) //nolint: wrapcheck
	}
	if batch.Status == domain.BatchStatusCancelled {
		logger.Info(ctx, "batch was cancelled before scoring started")

		return nil
	}

	marked, err := w.storage.UpdateBatchStatus(ctx, batch.ID, domain.BatchStatusRunning,
		domain.BatchStatusPending, domain.BatchStatusRunning)
	if err != nil {
		return fmt.Errorf("could not mark batch running: %w", err)
	}
	if marked == nil {
		// a cancel won the race against the header read above
		logger.Info(ctx, "batch is no longer pending, skipping")

		return nil
	}

	pending, err := w.storage.PendingBatchItems(ctx, batch.ID)
	if err != nil {
		return fmt.Errorf("could not get pending batch items: %w", err)
	}

	chunkSize := w.options.ChunkSize
	if chunkSize <= 0 {
		chunkSize = scoring.DefaultChunkSize
	}

	for start := 0; start < len(pending); start += chunkSize {
		end := min(start+chunkSize, len(pending))

		cancelled, err := w.scoreChunk(ctx, job.Args.UserID, batch.ID, pending[start:end])
		if err != nil {
			return err
		}
		if cancelled {
			logger.Info(ctx, "batch cancelled, leaving remaining items pending",
				zap.Int("processed", end), zap.Int("total", len(pending)))

			return nil
		}
	}

	// only a still-running batch completes: a cancel that landed after the
	// last chunk's status check must not be overwritten
	completed, err := w.storage.UpdateBatchStatus(ctx, batch.ID, domain.BatchStatusCompleted,
		domain.BatchStatusRunning)
	if err != nil {
		return fmt.Errorf("could not mark batch completed: %w", err)
	}
	if completed == nil {
		logger.Info(ctx, "batch was cancelled during the final chunk, keeping its status")

		return nil
	}

	logger.Info(ctx, "batch scored successfully", zap.Int("items", len(pending)))

	return nil
}

// scoreChunk scores one chunk of items and persists outcomes plus progress in
// a single transaction. It reports whether the batch has been cancelled.
func (w *BatchScorerWorker) scoreChunk(ctx context.Context,
	userID domain.UserID,
	batchID domain.BatchID,
	chunk []storage.BatchItem) (bool, error) {
	// re-read the header so an owner-side cancel takes effect between chunks
	batch, err := w.storage.BatchByID(ctx, userID, batchID)
	if err != nil {
		return false, fmt.Errorf("could not refresh batch: %w", err)
	}
	if batch == nil || batch.Status == domain.BatchStatusCancelled {
		return true, nil
	}

	profiles := make([]domain.CompanyProfile, len(chunk))
	for i, item := range chunk {
		profiles[i] = item.Profile
	}

	result := w.engine.ScoreBatch(ctx, profiles, scoring.BatchOptions{
		Workers:   w.options.Workers,
		ChunkSize: len(profiles),
	})

	items := make([]storage.BatchItem, 0, len(result.Items))
	for _, res := range result.Items {
		item := chunk[res.Index]
		item.Outcome = res.Outcome
		item.Error = res.Error
		item.Reason = res.Reason

		items = append(items, item)

		if res.Outcome != nil {
			metrics.LeadsScored.WithLabelValues(string(res.Outcome.Tier)).Inc()
			metrics.BatchItemsProcessed.WithLabelValues("scored").Inc()
		} else {
			metrics.BatchItemsProcessed.WithLabelValues("failed").Inc()
		}
	}

	if err := w.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		return tx.RecordBatchItems(ctx, batchID, items, storage.BatchProgress{
			Completed: len(items),
			Succeeded: result.Succeeded,
			Failed:    result.Failed,
		})
	}); err != nil {
		return false, fmt.Errorf("could not record batch items: %w", err)
	}

	// ctx cancellation (e.g. shutdown) surfaces as a truncated chunk; let
	// River retry the job, it will resume from the pending items.
	if result.Status == domain.BatchStatusCancelled {
		return false, fmt.Errorf("batch job interrupted: %w", ctx.Err())
	}

	return false, nil
}
