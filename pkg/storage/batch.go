package storage

import (
	"context"
	"time"

	"leadscore/pkg/domain"
)

// Batch is the persistence model for an asynchronous scoring batch.
type Batch struct {
	ID             domain.BatchID
	UserID         domain.UserID
	Status         domain.BatchStatus
	TotalSubmitted int
	Completed      int
	Succeeded      int
	Failed         int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// BatchItem is one submitted profile within a batch, keyed by its submission
// index. Outcome, Error and Reason stay NULL until the item has been
// processed; Reason is the stable failure category accompanying Error.
type BatchItem struct {
	BatchID       domain.BatchID
	Index         int
	CompanyDomain string
	Profile       domain.CompanyProfile
	Outcome       *domain.ScoringOutcome
	Error         string
	Reason        string
}

// BatchProgress is the delta applied when persisting a chunk of finished
// items.
type BatchProgress struct {
	Completed int
	Succeeded int
	Failed    int
}

// BatchStorage persists scoring batches and their items. Lookups return
// (nil, nil) when no row matches; callers map that to a semantic not-found
// error.
type BatchStorage interface {
	// CreateBatch stores the batch header and all its pending items.
	CreateBatch(ctx context.Context, batch Batch, items []BatchItem) (*Batch, error)
	// BatchByID returns the batch header.
	BatchByID(ctx context.Context, userID domain.UserID, id domain.BatchID) (*Batch, error)
	// BatchItems returns the batch's items ordered by submission index.
	BatchItems(ctx context.Context, userID domain.UserID, id domain.BatchID) ([]BatchItem, error)
	// PendingBatchItems returns the not-yet-processed items of a batch
	// ordered by submission index, regardless of owner.
	PendingBatchItems(ctx context.Context, id domain.BatchID) ([]BatchItem, error)
	// UpdateBatchStatus transitions the batch lifecycle state. A non-empty
	// from restricts the transition to batches currently in one of those
	// states; (nil, nil) means no row matched, either because the batch does
	// not exist or because a concurrent transition got there first.
	UpdateBatchStatus(ctx context.Context, id domain.BatchID, status domain.BatchStatus, from ...domain.BatchStatus) (*Batch, error)
	// RecordBatchItems writes finished item outcomes and bumps the batch
	// counters in one step, so pollers never observe items without matching
	// progress.
	RecordBatchItems(ctx context.Context, id domain.BatchID, items []BatchItem, progress BatchProgress) error
}
