package leads

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"

	"leadscore/pkg/domain"
)

// JobArgs contains the arguments for a batch scoring job submitted to River.
// The batch ID is the unique key, so re-submitting the same batch never
// produces duplicate work.
type JobArgs struct {
	// BatchID identifies the batch to score. It is marked as unique so River
	// can enforce one job per batch according to InsertOpts.UniqueOpts.
	BatchID domain.BatchID `json:"batch_id" river:"unique"`
	// UserID is the batch owner, carried so the worker can load the batch
	// without a separate ownership lookup.
	UserID domain.UserID `json:"user_id"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the batch
// scoring worker.
func (args JobArgs) Kind() string { return "ScoreBatchJob" }

// InsertOpts returns the River options that control how the job is enqueued,
// including the maximum retry attempts and uniqueness constraints to prevent
// duplicate jobs for the same batch across active job states.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		// make sure we only have one active job per batch
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
