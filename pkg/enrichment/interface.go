// Package enrichment defines the abstraction for company data providers that
// augment sparse lead profiles with firmographic and signal data.
package enrichment

import (
	"context"

	"leadscore/pkg/domain"
)

// Enricher is the abstraction for enrichment providers. Implementations look
// up everything the provider knows about a company domain.
//
//go:generate mockgen -package mockenrichment -source=interface.go -destination=mock/mockenrichment.go *
type Enricher interface {
	// Enrich returns the provider's profile for the given company domain.
	// Provider outages and timeouts are reported as
	// serrors.ErrEnrichmentUnavailable so callers can degrade gracefully.
	Enrich(ctx context.Context, companyDomain string) (*domain.CompanyProfile, error)
}
