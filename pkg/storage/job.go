package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs, most importantly the batch scoring
// job created alongside a new batch. The args value is the job payload; opts
// customizes insertion (queue, delay, uniqueness).
//
// Implementations live under pkg/storage/<backend>/ and are reached through
// the higher-level Storage or TxStorage interfaces, so an enqueue performed
// inside WithTx only becomes visible when the transaction commits.
type JobStorage interface {
	// AddJob enqueues a job and reports whether a new row was actually
	// inserted (false when uniqueness collapsed it into an existing job).
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
