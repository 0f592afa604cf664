package domain

import (
	"time"

	"github.com/google/uuid"
)

// LeadID uniquely identifies a scored lead within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type LeadID uuid.UUID

// CompanyMetrics holds the quantitative attributes of a company. Zero values
// are ambiguous for optional numeric fields, so pointers distinguish "absent"
// from "actually zero".
type CompanyMetrics struct {
	EmployeeCount    *int     `json:"employee_count,omitempty"`
	AnnualRevenue    *float64 `json:"annual_revenue,omitempty"`
	FoundedYear      *int     `json:"founded_year,omitempty"`
	GrowthRatePct    *float64 `json:"growth_rate_pct,omitempty"`
	FundingTotal     *float64 `json:"funding_total,omitempty"`
	LastFundingRound string   `json:"last_funding_round,omitempty"`
}

// Contact is a known person at the company.
type Contact struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Email     string `json:"email,omitempty"`
	Seniority string `json:"seniority,omitempty"`
}

// Signals carries the behavioral and market signals observed for a company.
type Signals struct {
	JobPostings       []string   `json:"job_postings,omitempty"`
	RecentNews        []string   `json:"recent_news,omitempty"`
	WebsiteVisits     *int       `json:"website_visits,omitempty"`
	ContentDownloads  *int       `json:"content_downloads,omitempty"`
	DemoRequested     bool       `json:"demo_requested,omitempty"`
	PricingPageViewed bool       `json:"pricing_page_viewed,omitempty"`
	CompetitorUser    bool       `json:"competitor_user,omitempty"`
	ContractRenewal   *time.Time `json:"contract_renewal,omitempty"`
}

// CompanyProfile is the input to scoring: everything known about a company at
// evaluation time. Domain is the canonical identifier and the only mandatory
// field.
type CompanyProfile struct {
	Domain       string         `json:"domain"`
	Name         string         `json:"name,omitempty"`
	Industry     string         `json:"industry,omitempty"`
	Headquarters string         `json:"headquarters,omitempty"`
	Metrics      CompanyMetrics `json:"metrics"`
	TechStack    []string       `json:"tech_stack,omitempty"`
	Contacts     []Contact      `json:"contacts,omitempty"`
	Signals      Signals        `json:"signals"`
}

// Lead is a persisted company profile together with its most recent scoring
// outcome.
type Lead struct {
	ID        LeadID          `json:"id"`
	UserID    UserID          `json:"user_id"`
	Profile   CompanyProfile  `json:"profile"`
	Breakdown *ScoreBreakdown `json:"breakdown,omitempty"`
	Tier      Tier            `json:"tier,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
