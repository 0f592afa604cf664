package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"leadscore/pkg/domain"
	"leadscore/pkg/storage"
)

const (
	batchesTable    = "batches"
	batchItemsTable = "batch_items"
)

// CreateBatch stores the batch header and all of its pending items. Callers
// run this inside a transaction so a half-written batch is never visible.
func (p *PgSQL) CreateBatch(ctx context.Context, batch storage.Batch, items []storage.BatchItem) (*storage.Batch, error) {
	var row PgBatch
	row.FromStorage(batch)

	var result PgBatch
	found, err := p.Builder.Insert(batchesTable).
		Rows(row).
		Returning(&PgBatch{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store batch into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store batch into pg: no row returned")
	}

	if len(items) > 0 {
		for i := range items {
			items[i].BatchID = domain.BatchID(result.ID)
		}

		pgItems, err := storageBatchItemsToPg(items)
		if err != nil {
			return nil, err
		}

		if _, err := p.Builder.Insert(batchItemsTable).
			Rows(pgItems).
			Executor().ExecContext(ctx); err != nil {
			return nil, fmt.Errorf("could not store batch items into pg: %w", err)
		}
	}

	return result.ToStorage(), nil
}

// BatchByID returns a batch header by its ID scoped to the owning user.
func (p *PgSQL) BatchByID(ctx context.Context, userID domain.UserID, id domain.BatchID) (*storage.Batch, error) {
	var row PgBatch
	found, err := p.Builder.From(batchesTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch batch by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToStorage(), nil
}

// BatchItems returns all items of a user's batch ordered by submission index.
func (p *PgSQL) BatchItems(ctx context.Context, userID domain.UserID, id domain.BatchID) ([]storage.BatchItem, error) {
	batch, err := p.BatchByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, nil
	}

	var rows []PgBatchItem
	if err := p.Builder.From(batchItemsTable).
		Where(goqu.I("batch_id").Eq(uuid.UUID(id))).
		Order(goqu.I("idx").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch batch items from pg: %w", err)
	}

	return pgBatchItemsToStorage(rows)
}

// PendingBatchItems returns the not-yet-processed items of a batch ordered by
// submission index. The worker uses this to resume a batch after a retry
// without re-scoring finished items.
func (p *PgSQL) PendingBatchItems(ctx context.Context, id domain.BatchID) ([]storage.BatchItem, error) {
	var rows []PgBatchItem
	if err := p.Builder.From(batchItemsTable).
		Where(
			goqu.I("batch_id").Eq(uuid.UUID(id)),
			goqu.I("outcome").IsNull(),
			goqu.I("last_error").IsNull(),
		).
		Order(goqu.I("idx").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch pending batch items from pg: %w", err)
	}

	return pgBatchItemsToStorage(rows)
}

// UpdateBatchStatus transitions a batch to the given lifecycle state,
// returning the updated header. A non-empty from list makes the transition
// conditional: the update only applies while the batch is still in one of
// those states, so a terminal status written by a concurrent caller is never
// overwritten. (nil, nil) means no row matched.
func (p *PgSQL) UpdateBatchStatus(ctx context.Context,
	id domain.BatchID,
	status domain.BatchStatus,
	from ...domain.BatchStatus) (*storage.Batch, error) {
	where := []goqu.Expression{goqu.I("id").Eq(uuid.UUID(id))}
	if len(from) > 0 {
		states := make([]string, len(from))
		for i, s := range from {
			states[i] = string(s)
		}
		where = append(where, goqu.I("status").In(states))
	}

	var row PgBatch
	found, err := p.Builder.Update(batchesTable).
		Set(goqu.Record{
			"status":     string(status),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(where...).
		Returning(&PgBatch{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update batch status in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToStorage(), nil
}

// RecordBatchItems persists a chunk of finished item outcomes and bumps the
// batch counters in the same call. Run inside a transaction, pollers either
// see a chunk fully applied or not at all.
func (p *PgSQL) RecordBatchItems(ctx context.Context, id domain.BatchID, items []storage.BatchItem, progress storage.BatchProgress) error {
	for _, item := range items {
		rec := goqu.Record{}
		if item.Outcome != nil {
			outcome, err := json.Marshal(item.Outcome)
			if err != nil {
				return fmt.Errorf("could not marshal batch item outcome: %w", err)
			}

			rec["outcome"] = outcome
		}
		if item.Error != "" {
			rec["last_error"] = item.Error
		}
		if item.Reason != "" {
			rec["failure_reason"] = item.Reason
		}

		if _, err := p.Builder.Update(batchItemsTable).
			Set(rec).Where(
			goqu.I("batch_id").Eq(uuid.UUID(id)),
			goqu.I("idx").Eq(item.Index),
		).Executor().ExecContext(ctx); err != nil {
			return fmt.Errorf("could not update batch item in pg: %w", err)
		}
	}

	if _, err := p.Builder.Update(batchesTable).
		Set(goqu.Record{
			"completed":  goqu.L("completed + ?", progress.Completed),
			"succeeded":  goqu.L("succeeded + ?", progress.Succeeded),
			"failed":     goqu.L("failed + ?", progress.Failed),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
	).Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not update batch progress in pg: %w", err)
	}

	return nil
}
