package leads

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"leadscore/internal/config"
	"leadscore/internal/scoring"
	"leadscore/pkg/domain"
	"leadscore/pkg/enrichment"
	"leadscore/pkg/metrics"
	"leadscore/pkg/serrors"
	"leadscore/pkg/storage"
)

// Options configure batch execution and job retries. These settings are
// typically derived from application configuration.
type Options struct {
	// Workers bounds how many profiles a single batch job scores concurrently.
	Workers int
	// ChunkSize is how many finished items are persisted per progress write.
	ChunkSize int
	// MaxAttempts is the maximum number of attempts the background worker
	// should make when processing a batch job before marking it failed.
	MaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Workers:     cfg.Batch.Workers,
		ChunkSize:   cfg.Batch.ChunkSize,
		MaxAttempts: cfg.Batch.MaxAttempts,
	}
}

// service is the concrete implementation of the Leads interface. It
// coordinates the scoring engine, the enrichment provider and persistence.
type service struct {
	options  Options
	engine   *scoring.Engine
	enricher enrichment.Enricher
	storage  storage.Storage
}

// New creates a new Leads service backed by the provided scoring engine,
// enrichment provider and storage. The enricher may be nil when enrichment is
// not configured; EnrichScore then reports it as unavailable.
func New(engine *scoring.Engine, enricher enrichment.Enricher, strg storage.Storage, options Options) Leads {
	return &service{
		options:  options,
		engine:   engine,
		enricher: enricher,
		storage:  strg,
	}
}

// Score validates, scores and persists one profile. Scoring the same company
// domain again for the same user overwrites the previous outcome.
func (s service) Score(ctx context.Context, userID domain.UserID, profile domain.CompanyProfile) (*storage.Lead, error) {
	companyDomain, err := NormalizeDomain(profile.Domain)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInvalidProfile, err, "invalid company domain")
	}
	profile.Domain = companyDomain

	start := time.Now()
	outcome, err := s.engine.ScoreLead(profile)
	if err != nil {
		return nil, fmt.Errorf("could not score profile: %w", err)
	}
	metrics.ScoringDuration.Observe(time.Since(start).Seconds())
	metrics.LeadsScored.WithLabelValues(string(outcome.Tier)).Inc()

	lead, err := s.storage.UpsertLead(ctx, storage.Lead{
		UserID:        userID,
		CompanyDomain: companyDomain,
		Profile:       profile,
		Outcome:       &outcome,
		Tier:          outcome.Tier,
		TotalScore:    outcome.Breakdown.TotalScore,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store lead: %w", err)
	}

	return lead, nil
}

// EnrichScore fetches provider data for the profile's company domain, fills
// the gaps in the submitted profile with it and scores the merged result.
// Submitted values always win over enriched ones.
func (s service) EnrichScore(ctx context.Context, userID domain.UserID, profile domain.CompanyProfile) (*storage.Lead, error) {
	if s.enricher == nil {
		return nil, serrors.With(serrors.ErrEnrichmentUnavailable, "enrichment is not configured")
	}

	companyDomain, err := NormalizeDomain(profile.Domain)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInvalidProfile, err, "invalid company domain")
	}
	profile.Domain = companyDomain

	enriched, err := s.enricher.Enrich(ctx, companyDomain)
	if err != nil {
		return nil, fmt.Errorf("could not enrich profile: %w", err)
	}

	merged := mergeProfiles(profile, *enriched)

	return s.Score(ctx, userID, merged)
}

// Lead fetches a single lead by ID for the given user. It returns a not-found
// error when no matching lead exists.
func (s service) Lead(ctx context.Context, userID domain.UserID, leadID domain.LeadID) (*storage.Lead, error) {
	lead, err := s.storage.LeadByID(ctx, userID, leadID)
	if err != nil {
		return nil, fmt.Errorf("could not get lead: %w", err)
	}
	if lead == nil {
		return nil, serrors.With(serrors.ErrNotFound, "lead not found")
	}

	return lead, nil
}

// UserLeads returns a page of leads for the given user, optionally filtered
// by tier and minimum score. Pagination is cursor-based: the opaque cursor
// string returned with one page is passed back to fetch the next.
func (s service) UserLeads(ctx context.Context,
	userID domain.UserID,
	tier domain.Tier,
	minScore *int,
	cursor string,
	limit uint) ([]storage.Lead, string, error) {
	parsed, err := parseCursor(cursor)
	if err != nil {
		return nil, "", err
	}

	page, err := s.storage.UserLeads(ctx, storage.LeadFilter{
		UserID:   userID,
		Tier:     tier,
		MinScore: minScore,
		Cursor:   parsed,
		Limit:    limit,
	})
	if err != nil {
		return nil, "", fmt.Errorf("could not get user leads: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = formatCursor(page.NextCursor)
	}

	return page.Leads, next, nil
}

// parseCursor decodes a listing cursor of the form "<RFC3339Nano>|<uuid>",
// the inverse of formatCursor. An empty cursor means the first page.
func parseCursor(raw string) (*storage.LeadCursor, error) {
	if raw == "" {
		return nil, nil
	}

	ts, rawID, ok := strings.Cut(raw, "|")
	if !ok {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid cursor %q", raw)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	return &storage.LeadCursor{CreatedAt: createdAt, ID: domain.LeadID(id)}, nil
}

func formatCursor(c *storage.LeadCursor) string {
	return c.CreatedAt.Format(time.RFC3339Nano) + "|" + uuid.UUID(c.ID).String()
}

// Recommendation returns the stored recommendation for a lead.
func (s service) Recommendation(ctx context.Context, userID domain.UserID, leadID domain.LeadID) (*domain.Recommendation, error) {
	lead, err := s.Lead(ctx, userID, leadID)
	if err != nil {
		return nil, err
	}
	if lead.Outcome == nil {
		return nil, serrors.With(serrors.ErrNotFound, "lead has not been scored yet")
	}

	return &lead.Outcome.Recommendation, nil
}

// Delete removes a lead belonging to the given user. If the lead does not
// exist, a not-found error is returned.
func (s service) Delete(ctx context.Context, userID domain.UserID, leadID domain.LeadID) error {
	lead, err := s.storage.DeleteLead(ctx, userID, leadID)
	if err != nil {
		return fmt.Errorf("could not delete lead: %w", err)
	}
	if lead == nil {
		return serrors.With(serrors.ErrNotFound, "lead not found")
	}

	return nil
}

// CreateBatch stores the batch with its items and enqueues the scoring job in
// one transaction, so a visible batch always has a job backing it. Invalid
// profiles are accepted here and surface as failed items when the batch runs.
func (s service) CreateBatch(ctx context.Context, userID domain.UserID, profiles []domain.CompanyProfile) (*storage.Batch, error) {
	if len(profiles) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "batch has no profiles")
	}

	items := make([]storage.BatchItem, len(profiles))
	for i, profile := range profiles {
		if companyDomain, err := NormalizeDomain(profile.Domain); err == nil {
			profile.Domain = companyDomain
		}

		items[i] = storage.BatchItem{
			Index:         i,
			CompanyDomain: profile.Domain,
			Profile:       profile,
		}
	}

	var batch *storage.Batch
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		created, err := tx.CreateBatch(ctx, storage.Batch{
			UserID:         userID,
			Status:         domain.BatchStatusPending,
			TotalSubmitted: len(profiles),
		}, items)
		if err != nil {
			return fmt.Errorf("could not store batch: %w", err)
		}
		batch = created

		if _, err := tx.AddJob(ctx, JobArgs{
			BatchID:     batch.ID,
			UserID:      userID,
			maxAttempts: s.options.MaxAttempts,
		}, nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not create batch: %w", err)
	}

	return batch, nil
}

// Batch fetches a batch header by ID for the given user. The header carries
// the live progress counters, so polling this is enough to track a running
// batch.
func (s service) Batch(ctx context.Context, userID domain.UserID, batchID domain.BatchID) (*storage.Batch, error) {
	batch, err := s.storage.BatchByID(ctx, userID, batchID)
	if err != nil {
		return nil, fmt.Errorf("could not get batch: %w", err)
	}
	if batch == nil {
		return nil, serrors.With(serrors.ErrNotFound, "batch not found")
	}

	return batch, nil
}

// BatchItems returns a batch's items ordered by submission index.
func (s service) BatchItems(ctx context.Context, userID domain.UserID, batchID domain.BatchID) ([]storage.BatchItem, error) {
	items, err := s.storage.BatchItems(ctx, userID, batchID)
	if err != nil {
		return nil, fmt.Errorf("could not get batch items: %w", err)
	}
	if items == nil {
		return nil, serrors.With(serrors.ErrNotFound, "batch not found")
	}

	return items, nil
}

// CancelBatch marks a pending or running batch as cancelled. The batch worker
// checks the status between chunks and stops dispatching new items; results
// of already-scored items remain valid.
func (s service) CancelBatch(ctx context.Context, userID domain.UserID, batchID domain.BatchID) (*storage.Batch, error) {
	batch, err := s.Batch(ctx, userID, batchID)
	if err != nil {
		return nil, err
	}

	switch batch.Status {
	case domain.BatchStatusPending, domain.BatchStatusRunning:
	default:
		return nil, serrors.With(serrors.ErrConflict, "batch is already %s", batch.Status)
	}

	// the transition is conditional so a completion racing this cancel wins
	updated, err := s.storage.UpdateBatchStatus(ctx, batchID, domain.BatchStatusCancelled,
		domain.BatchStatusPending, domain.BatchStatusRunning)
	if err != nil {
		return nil, fmt.Errorf("could not cancel batch: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrConflict, "batch is no longer active")
	}

	return updated, nil
}

// mergeProfiles overlays enriched data under the submitted profile: any field
// the caller filled in stays, anything missing is taken from the provider.
func mergeProfiles(submitted, enriched domain.CompanyProfile) domain.CompanyProfile {
	out := submitted

	if out.Name == "" {
		out.Name = enriched.Name
	}
	if out.Industry == "" {
		out.Industry = enriched.Industry
	}
	if out.Headquarters == "" {
		out.Headquarters = enriched.Headquarters
	}
	if len(out.TechStack) == 0 {
		out.TechStack = enriched.TechStack
	}
	if len(out.Contacts) == 0 {
		out.Contacts = enriched.Contacts
	}

	m, em := &out.Metrics, enriched.Metrics
	if m.EmployeeCount == nil {
		m.EmployeeCount = em.EmployeeCount
	}
	if m.AnnualRevenue == nil {
		m.AnnualRevenue = em.AnnualRevenue
	}
	if m.FoundedYear == nil {
		m.FoundedYear = em.FoundedYear
	}
	if m.GrowthRatePct == nil {
		m.GrowthRatePct = em.GrowthRatePct
	}
	if m.FundingTotal == nil {
		m.FundingTotal = em.FundingTotal
	}
	if m.LastFundingRound == "" {
		m.LastFundingRound = em.LastFundingRound
	}

	sig, esig := &out.Signals, enriched.Signals
	if len(sig.JobPostings) == 0 {
		sig.JobPostings = esig.JobPostings
	}
	if len(sig.RecentNews) == 0 {
		sig.RecentNews = esig.RecentNews
	}
	if sig.WebsiteVisits == nil {
		sig.WebsiteVisits = esig.WebsiteVisits
	}
	if sig.ContentDownloads == nil {
		sig.ContentDownloads = esig.ContentDownloads
	}
	if sig.ContractRenewal == nil {
		sig.ContractRenewal = esig.ContractRenewal
	}
	sig.DemoRequested = sig.DemoRequested || esig.DemoRequested
	sig.PricingPageViewed = sig.PricingPageViewed || esig.PricingPageViewed
	sig.CompetitorUser = sig.CompetitorUser || esig.CompetitorUser

	return out
}
