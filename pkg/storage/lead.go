package storage

import (
	"context"
	"time"

	"leadscore/pkg/domain"
)

// Lead is the persistence model for a scored lead. The profile and scoring
// outcome are stored as JSONB documents; tier and score are lifted into
// columns so listings can filter and sort without unpacking JSON.
type Lead struct {
	ID            domain.LeadID
	UserID        domain.UserID
	CompanyDomain string
	Profile       domain.CompanyProfile
	Outcome       *domain.ScoringOutcome
	Tier          domain.Tier
	TotalScore    int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// LeadCursor is a keyset position in the (created_at DESC, id DESC) listing
// order: the created_at and id of the last row of a page. The id tie-breaker
// keeps rows sharing a timestamp from being skipped across page boundaries.
type LeadCursor struct {
	CreatedAt time.Time
	ID        domain.LeadID
}

// LeadFilter narrows and pages lead listings. Cursor is the keyset cursor:
// only leads strictly after it in listing order are returned.
type LeadFilter struct {
	UserID   domain.UserID
	Tier     domain.Tier
	MinScore *int
	Cursor   *LeadCursor
	Limit    uint
}

// UserLeads is a page of leads together with the cursor for the next page,
// nil when there are no further pages.
type UserLeads struct {
	Leads      []Lead
	NextCursor *LeadCursor
}

// LeadStorage persists scored leads. Lookups return (nil, nil) when no row
// matches; callers map that to a semantic not-found error.
type LeadStorage interface {
	// UpsertLead inserts the lead or, when the user already has a lead with
	// the same company domain, replaces its profile and scoring outcome.
	UpsertLead(ctx context.Context, lead Lead) (*Lead, error)
	// LeadByID returns the lead, excluding soft-deleted rows.
	LeadByID(ctx context.Context, userID domain.UserID, id domain.LeadID) (*Lead, error)
	// UserLeads lists a user's leads newest first, applying the filter.
	UserLeads(ctx context.Context, filter LeadFilter) (UserLeads, error)
	// DeleteLead soft-deletes the lead, returning the deleted record.
	DeleteLead(ctx context.Context, userID domain.UserID, id domain.LeadID) (*Lead, error)
}
