package scoring

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"leadscore/pkg/domain"
	"leadscore/pkg/serrors"
)

// Engine scores company profiles against a validated Model. An Engine is
// immutable after construction and safe for concurrent use.
type Engine struct {
	model *Model
	now   func() time.Time
}

// Option customizes an Engine.
type Option func(*Engine)

// WithClock overrides the clock used for time-relative fields such as company
// age and contract renewal distance. Tests use this to keep scores stable.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an Engine for the given model. The model must already be
// validated (LoadModel and ParseModel do this).
func NewEngine(model *Model, opts ...Option) *Engine {
	e := &Engine{model: model, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Model returns the scoring model the engine evaluates against.
func (e *Engine) Model() *Model { return e.model }

// ValidateProfile checks that a profile is scoreable. Only the company domain
// is mandatory; everything else degrades confidence rather than failing.
func ValidateProfile(p *domain.CompanyProfile) error {
	d := strings.TrimSpace(p.Domain)
	switch {
	case d == "":
		return serrors.With(serrors.ErrInvalidProfile, "company domain is required")
	case strings.ContainsAny(d, " \t"):
		return serrors.With(serrors.ErrInvalidProfile, "company domain %q contains whitespace", d)
	case !strings.Contains(d, "."):
		return serrors.With(serrors.ErrInvalidProfile, "company domain %q is not a valid hostname", d)
	}

	return nil
}

// ScoreLead evaluates a single profile: per-category sub-scores, the weighted
// total, the qualification tier and the recommendation. It returns
// ErrInvalidProfile when the profile cannot be scored at all.
func (e *Engine) ScoreLead(profile domain.CompanyProfile) (domain.ScoringOutcome, error) {
	if err := ValidateProfile(&profile); err != nil {
		return domain.ScoringOutcome{}, err
	}

	now := e.now()
	breakdown := domain.ScoreBreakdown{
		CategoryScores: make(map[domain.Category]domain.CategoryScore, len(e.model.Categories)),
	}

	var weightedSum float64
	var evaluated, present int
	for _, cat := range domain.Categories() {
		cm, ok := e.model.Categories[cat]
		if !ok {
			continue
		}

		cs := e.scoreCategory(&cm, &profile, now)
		breakdown.CategoryScores[cat] = cs

		weightedSum += e.model.Weights[cat] * (cs.Points / cs.MaxPoints) * 100
		evaluated += cs.FieldsEvaluated
		present += cs.FieldsPresent
	}

	breakdown.TotalScore = clamp(roundHalfUp(weightedSum), 0, 100)
	if evaluated > 0 {
		breakdown.Confidence = float64(present) / float64(evaluated)
	}

	tier := e.Classify(breakdown.TotalScore)

	return domain.ScoringOutcome{
		Breakdown:      breakdown,
		Tier:           tier,
		Recommendation: e.Recommend(&profile, &breakdown, tier),
	}, nil
}

// scoreCategory runs one category's rule table over the profile. Unless the
// category allows bonus points, the sum is capped at the category ceiling.
func (e *Engine) scoreCategory(cm *CategoryModel, p *domain.CompanyProfile, now time.Time) domain.CategoryScore {
	cs := domain.CategoryScore{
		MaxPoints:       cm.MaxPoints,
		FieldsEvaluated: len(cm.Criteria),
	}

	for i := range cm.Criteria {
		c := &cm.Criteria[i]

		ev := evalCriterion(c, p, now)
		if ev.present {
			cs.FieldsPresent++
		}
		if ev.satisfied && ev.points > 0 {
			cs.Points += ev.points
			cs.Factors = append(cs.Factors, fmt.Sprintf("%s: +%s", c.Name, trimFloat(ev.points)))
		}
	}

	if !cm.AllowBonus && cs.Points > cm.MaxPoints {
		cs.Points = cm.MaxPoints
	}

	return cs
}

// Classify maps a total score onto a qualification tier using the model's
// inclusive lower bounds.
func (e *Engine) Classify(total int) domain.Tier {
	t := e.model.Thresholds
	switch {
	case total >= t.Hot:
		return domain.TierHot
	case total >= t.Warm:
		return domain.TierWarm
	case total >= t.Cold:
		return domain.TierCold
	default:
		return domain.TierUnqualified
	}
}

// roundHalfUp rounds to the nearest integer with .5 always going up, so a
// 79.5 weighted sum becomes the 80 needed for the next tier.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
