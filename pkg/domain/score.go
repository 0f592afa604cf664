package domain

// Category is one of the scoring dimensions a company profile is evaluated
// against. Every category contributes a weighted share of the total score.
type Category string

const (
	CategoryCompanyFit        Category = "company_fit"
	CategoryGrowthIndicators  Category = "growth_indicators"
	CategoryTechnologyFit     Category = "technology_fit"
	CategoryEngagementSignals Category = "engagement_signals"
	CategoryTimingSignals     Category = "timing_signals"
	CategoryBuyingSignals     Category = "buying_signals"
)

// Categories lists all scoring categories in their canonical order.
func Categories() []Category {
	return []Category{
		CategoryCompanyFit,
		CategoryGrowthIndicators,
		CategoryTechnologyFit,
		CategoryEngagementSignals,
		CategoryTimingSignals,
		CategoryBuyingSignals,
	}
}

// Tier is the qualification bucket a total score maps to.
type Tier string

const (
	TierHot         Tier = "Hot"
	TierWarm        Tier = "Warm"
	TierCold        Tier = "Cold"
	TierUnqualified Tier = "Unqualified"
)

// CategoryScore is the outcome of evaluating a single category: the raw
// points awarded, the category ceiling they are measured against and how many
// of the category's criteria could actually be evaluated from the profile.
type CategoryScore struct {
	Points          float64  `json:"points"`
	MaxPoints       float64  `json:"max_points"`
	FieldsEvaluated int      `json:"fields_evaluated"`
	FieldsPresent   int      `json:"fields_present"`
	Factors         []string `json:"factors,omitempty"`
}

// ScoreBreakdown is the full result of scoring one profile.
type ScoreBreakdown struct {
	CategoryScores map[Category]CategoryScore `json:"category_scores"`
	TotalScore     int                        `json:"total_score"`
	Confidence     float64                    `json:"confidence"`
}

// Action is a single recommended follow-up step.
type Action struct {
	Priority int    `json:"priority"`
	Text     string `json:"text"`
}

// EmailTemplate is a ready-to-personalize outreach email. Placeholders the
// scoring model could not fill (e.g. the contact's first name) are left in
// the text for the rep.
type EmailTemplate struct {
	Subject string `json:"subject" yaml:"subject"`
	Body    string `json:"body" yaml:"body"`
}

// CallScript outlines a discovery call: how to open, what to probe for and
// how to close.
type CallScript struct {
	Opening       string   `json:"opening" yaml:"opening"`
	TalkingPoints []string `json:"talking_points,omitempty" yaml:"talking_points,omitempty"`
	Closing       string   `json:"closing" yaml:"closing"`
}

// Recommendation is the deterministic guidance derived from a score breakdown
// and tier: what to do, when, how, what to send and say, and what would
// improve the score. Email and CallScript are nil for tiers whose playbook
// defines no outreach templates.
type Recommendation struct {
	Actions      []Action       `json:"actions"`
	Timing       string         `json:"timing"`
	Approach     string         `json:"approach"`
	Email        *EmailTemplate `json:"email,omitempty"`
	CallScript   *CallScript    `json:"call_script,omitempty"`
	Content      []string       `json:"content,omitempty"`
	Positioning  string         `json:"positioning,omitempty"`
	Improvements []string       `json:"improvements,omitempty"`
}

// ScoringOutcome bundles everything produced by scoring one profile.
type ScoringOutcome struct {
	Breakdown      ScoreBreakdown `json:"breakdown"`
	Tier           Tier           `json:"tier"`
	Recommendation Recommendation `json:"recommendation"`
}
