package leads

import (
	"context"

	"leadscore/pkg/domain"
	"leadscore/pkg/storage"
)

//go:generate mockgen -package mockleads -source=interface.go -destination=mock/mockleads.go *
type Leads interface {
	// Score synchronously scores a single profile and persists the outcome.
	Score(ctx context.Context, userID domain.UserID, profile domain.CompanyProfile) (*storage.Lead, error)
	// EnrichScore fetches a profile from the enrichment provider by company
	// domain, merges it over the submitted profile and scores the result.
	EnrichScore(ctx context.Context, userID domain.UserID, profile domain.CompanyProfile) (*storage.Lead, error)
	// Lead returns a single stored lead.
	Lead(ctx context.Context, userID domain.UserID, leadID domain.LeadID) (*storage.Lead, error)
	// UserLeads returns a page of the user's leads, newest first.
	UserLeads(ctx context.Context,
		userID domain.UserID,
		tier domain.Tier,
		minScore *int,
		cursor string,
		limit uint) ([]storage.Lead, string, error)
	// Recommendation returns the stored recommendation for a lead.
	Recommendation(ctx context.Context, userID domain.UserID, leadID domain.LeadID) (*domain.Recommendation, error)
	// Delete removes a lead belonging to the given user.
	Delete(ctx context.Context, userID domain.UserID, leadID domain.LeadID) error

	// CreateBatch stores a batch of profiles and enqueues its scoring job.
	CreateBatch(ctx context.Context, userID domain.UserID, profiles []domain.CompanyProfile) (*storage.Batch, error)
	// Batch returns a batch header, including live progress counters.
	Batch(ctx context.Context, userID domain.UserID, batchID domain.BatchID) (*storage.Batch, error)
	// BatchItems returns a batch's items ordered by submission index.
	BatchItems(ctx context.Context, userID domain.UserID, batchID domain.BatchID) ([]storage.BatchItem, error)
	// CancelBatch stops a pending or running batch. Already-scored items keep
	// their results; unprocessed items stay pending forever.
	CancelBatch(ctx context.Context, userID domain.UserID, batchID domain.BatchID) (*storage.Batch, error)
}
