package scoring

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"leadscore/pkg/domain"
	"leadscore/pkg/serrors"
)

const (
	// DefaultWorkers bounds batch concurrency when the caller does not.
	DefaultWorkers = 4
	// DefaultChunkSize bounds how many profiles are dispatched per round.
	DefaultChunkSize = 100
)

// Progress is a poll-only view of a running batch. The producer side
// increments the counter as items finish; any number of readers may poll
// Completed concurrently.
type Progress struct {
	total     int64
	completed atomic.Int64
}

// NewProgress creates a tracker for a batch of the given size.
func NewProgress(total int) *Progress {
	return &Progress{total: int64(total)}
}

// Total returns the number of items the batch was created with.
func (p *Progress) Total() int64 { return p.total }

// Completed returns how many items have finished (scored or failed) so far.
func (p *Progress) Completed() int64 { return p.completed.Load() }

// BatchOptions tunes a batch run. Zero values fall back to the defaults.
type BatchOptions struct {
	Workers   int
	ChunkSize int
	// Progress, when non-nil, is incremented once per finished item.
	Progress *Progress
}

// ScoreBatch scores a set of profiles concurrently through a bounded worker
// pool. Results land in slots indexed by submission position, so Items always
// preserves input order regardless of completion order. A failing profile
// yields an item with its error string and never affects its neighbors.
//
// Cancelling ctx stops dispatching new items; in-flight items finish and
// their results are kept. The returned result then carries status CANCELLED
// and only the processed items.
func (e *Engine) ScoreBatch(ctx context.Context, profiles []domain.CompanyProfile, opts BatchOptions) domain.BatchResult {
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	chunk := opts.ChunkSize
	if chunk <= 0 {
		chunk = DefaultChunkSize
	}

	type slot struct {
		processed bool
		result    domain.BatchItemResult
	}

	slots := make([]slot, len(profiles))
	sem := make(chan struct{}, workers)

	var wg sync.WaitGroup

	cancelled := false

dispatch:
	for start := 0; start < len(profiles); start += chunk {
		end := min(start+chunk, len(profiles))
		for i := start; i < end; i++ {
			if ctx.Err() != nil {
				cancelled = true

				break dispatch
			}

			select {
			case <-ctx.Done():
				cancelled = true

				break dispatch
			case sem <- struct{}{}:
			}

			wg.Add(1)

			go func(i int) {
				defer wg.Done()
				defer func() { <-sem }()

				slots[i] = slot{processed: true, result: e.scoreItem(i, profiles[i])}
				if opts.Progress != nil {
					opts.Progress.completed.Add(1)
				}
			}(i)
		}
	}

	wg.Wait()

	result := domain.BatchResult{
		TotalSubmitted: len(profiles),
		Status:         domain.BatchStatusCompleted,
	}
	if cancelled {
		result.Status = domain.BatchStatusCancelled
	}

	for i := range slots {
		if !slots[i].processed {
			continue
		}

		item := slots[i].result

		result.Items = append(result.Items, item)
		if item.Error != "" {
			result.Failed++
		} else {
			result.Succeeded++
		}
	}

	return result
}

// scoreItem isolates one profile: an error or even a panic while scoring is
// captured into the item instead of taking down the batch.
func (e *Engine) scoreItem(index int, profile domain.CompanyProfile) (item domain.BatchItemResult) {
	item = domain.BatchItemResult{Index: index, Domain: profile.Domain}

	defer func() {
		if r := recover(); r != nil {
			item.Outcome = nil
			item.Error = fmt.Sprintf("scoring panicked: %v", r)
			item.Reason = serrors.ErrInternal.Error()
		}
	}()

	outcome, err := e.ScoreLead(profile)
	if err != nil {
		item.Error = err.Error()
		item.Reason = failureReason(err)

		return item
	}

	item.Outcome = &outcome

	return item
}

// failureReason names the category of a scoring failure: the semantic kind
// when the error carries one (INVALID_PROFILE, ENRICHMENT_UNAVAILABLE, ...)
// and INTERNAL for anything untagged.
func failureReason(err error) string {
	if k := serrors.KindOf(err); k != nil {
		return k.Error()
	}

	return serrors.ErrInternal.Error()
}
