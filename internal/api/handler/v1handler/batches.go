package v1handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"leadscore/pkg/domain"
	"leadscore/pkg/storage"
)

// CreateBatchRequest is the payload for submitting a scoring batch.
type CreateBatchRequest struct {
	Profiles []domain.CompanyProfile `json:"profiles"`
}

// Batch is the API representation of a scoring batch, including its live
// progress counters.
type Batch struct {
	ID             string             `json:"id"`
	Status         domain.BatchStatus `json:"status"`
	TotalSubmitted int                `json:"total_submitted"`
	Completed      int                `json:"completed"`
	Succeeded      int                `json:"succeeded"`
	Failed         int                `json:"failed"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at,omitempty"`
}

// BatchItem is the API representation of one submitted profile within a
// batch. Outcome and Error stay empty until the item has been processed;
// failed items additionally carry a stable Reason code (INVALID_PROFILE,
// INTERNAL, ...) so clients never have to parse the error message.
type BatchItem struct {
	Index         int                    `json:"index"`
	CompanyDomain string                 `json:"company_domain"`
	Outcome       *domain.ScoringOutcome `json:"outcome,omitempty"`
	Error         string                 `json:"error,omitempty"`
	Reason        string                 `json:"reason,omitempty"`
}

// BatchItemList wraps a batch's items.
type BatchItemList struct {
	Items []BatchItem `json:"items"`
}

// StorageBatchToV1 maps a persistence batch to its API representation.
func StorageBatchToV1(in *storage.Batch) *Batch {
	return &Batch{
		ID:             uuid.UUID(in.ID).String(),
		Status:         in.Status,
		TotalSubmitted: in.TotalSubmitted,
		Completed:      in.Completed,
		Succeeded:      in.Succeeded,
		Failed:         in.Failed,
		CreatedAt:      in.CreatedAt,
		UpdatedAt:      in.UpdatedAt,
	}
}

// CreateBatch accepts a list of profiles and enqueues them for asynchronous
// scoring. The batch is returned immediately in PENDING state; clients poll
// GetBatch for progress.
func (h *Handler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateBatchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	batch, err := h.deps.Leads.CreateBatch(ctx, GetUserIDFromContext(ctx), req.Profiles)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusAccepted, StorageBatchToV1(batch))
}

// GetBatch returns a batch header with its progress counters.
func (h *Handler) GetBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := batchIDFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	batch, err := h.deps.Leads.Batch(ctx, GetUserIDFromContext(ctx), id)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, StorageBatchToV1(batch))
}

// ListBatchItems returns a batch's items ordered by submission index.
func (h *Handler) ListBatchItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := batchIDFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	items, err := h.deps.Leads.BatchItems(ctx, GetUserIDFromContext(ctx), id)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	out := make([]BatchItem, 0, len(items))
	for i := range items {
		out = append(out, BatchItem{
			Index:         items[i].Index,
			CompanyDomain: items[i].CompanyDomain,
			Outcome:       items[i].Outcome,
			Error:         items[i].Error,
			Reason:        items[i].Reason,
		})
	}

	writeJSON(ctx, w, http.StatusOK, BatchItemList{Items: out})
}

// CancelBatch stops a pending or running batch. Items that were already
// scored keep their results.
func (h *Handler) CancelBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := batchIDFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	batch, err := h.deps.Leads.CancelBatch(ctx, GetUserIDFromContext(ctx), id)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, StorageBatchToV1(batch))
}

func batchIDFromRequest(r *http.Request) (domain.BatchID, error) {
	id, err := uuidFromRequest(r)

	return domain.BatchID(id), err
}
