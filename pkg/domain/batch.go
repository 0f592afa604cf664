package domain

import (
	"time"

	"github.com/google/uuid"
)

// BatchID uniquely identifies a scoring batch within the system.
type BatchID uuid.UUID

// BatchStatus is the lifecycle state of a persisted scoring batch.
type BatchStatus string

const (
	BatchStatusPending   BatchStatus = "PENDING"
	BatchStatusRunning   BatchStatus = "RUNNING"
	BatchStatusCompleted BatchStatus = "COMPLETED"
	BatchStatusCancelled BatchStatus = "CANCELLED"
	BatchStatusFailed    BatchStatus = "FAILED"
)

// Batch is a persisted scoring batch: a set of company profiles submitted
// together and scored asynchronously.
type Batch struct {
	ID             BatchID     `json:"id"`
	UserID         UserID      `json:"user_id"`
	Status         BatchStatus `json:"status"`
	TotalSubmitted int         `json:"total_submitted"`
	Completed      int         `json:"completed"`
	Succeeded      int         `json:"succeeded"`
	Failed         int         `json:"failed"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// BatchItemResult is the per-profile outcome within a batch run. Exactly one
// of Outcome and Error is set: a profile either scored successfully or failed
// with a reason, and one failure never affects its neighbors. Reason carries
// the stable failure category (an error kind name such as INVALID_PROFILE)
// alongside the human-readable Error, so consumers can branch on failures
// without parsing messages.
type BatchItemResult struct {
	Index   int             `json:"index"`
	Domain  string          `json:"domain"`
	Outcome *ScoringOutcome `json:"outcome,omitempty"`
	Error   string          `json:"error,omitempty"`
	Reason  string          `json:"reason,omitempty"`
}

// BatchResult is the aggregate outcome of running a batch of profiles. When a
// run is cancelled, Items holds only the profiles that were actually
// processed, so Succeeded+Failed == len(Items) <= TotalSubmitted always
// holds.
type BatchResult struct {
	TotalSubmitted int               `json:"total_submitted"`
	Succeeded      int               `json:"succeeded"`
	Failed         int               `json:"failed"`
	Status         BatchStatus       `json:"status"`
	Items          []BatchItemResult `json:"items"`
}
