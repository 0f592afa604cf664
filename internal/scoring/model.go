package scoring

import (
	"bytes"
	"fmt"
	"io/fs"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"leadscore/pkg/domain"
	"leadscore/pkg/serrors"
)

// weightSumTolerance is the permitted deviation of the category weight sum
// from 1.0.
const weightSumTolerance = 0.01

// CriterionType selects how a Criterion is evaluated against a profile field.
type CriterionType string

const (
	// CriterionThreshold awards points when a numeric field meets a minimum,
	// or the points of the highest matching step when steps are configured.
	CriterionThreshold CriterionType = "threshold"
	// CriterionMembership awards points when a string field (or any element
	// of a list field) matches one of the configured values.
	CriterionMembership CriterionType = "membership"
	// CriterionPresence awards points when the field is present and
	// non-empty (for booleans, when the field is true).
	CriterionPresence CriterionType = "presence"
	// CriterionComposite combines child criteria with an all/any mode.
	CriterionComposite CriterionType = "composite"
)

// Step is one band of a graded threshold criterion. Bands are evaluated
// against the field value and the highest matching Min wins.
type Step struct {
	Min    float64 `yaml:"min" json:"min"`
	Points float64 `yaml:"points" json:"points"`
}

// Criterion is one data-driven scoring rule. Which fields are meaningful
// depends on Type; Validate rejects combinations that make no sense.
type Criterion struct {
	Name   string        `yaml:"name" json:"name"`
	Type   CriterionType `yaml:"type" json:"type"`
	Field  string        `yaml:"field,omitempty" json:"field,omitempty"`
	Points float64       `yaml:"points,omitempty" json:"points,omitempty"`

	// Threshold criteria.
	Min   *float64 `yaml:"min,omitempty" json:"min,omitempty"`
	Max   *float64 `yaml:"max,omitempty" json:"max,omitempty"`
	Steps []Step   `yaml:"steps,omitempty" json:"steps,omitempty"`

	// Membership criteria.
	Values []string `yaml:"values,omitempty" json:"values,omitempty"`

	// Composite criteria.
	Mode     string      `yaml:"mode,omitempty" json:"mode,omitempty"` // "all" or "any"
	Children []Criterion `yaml:"children,omitempty" json:"children,omitempty"`
}

// CategoryModel is the rule table and ceiling for one scoring category.
// AllowBonus permits the raw sum of criterion points to exceed MaxPoints;
// the excess still counts toward the weighted total.
type CategoryModel struct {
	MaxPoints  float64     `yaml:"max_points" json:"max_points"`
	AllowBonus bool        `yaml:"allow_bonus" json:"allow_bonus"`
	Criteria   []Criterion `yaml:"criteria" json:"criteria"`
}

// Thresholds are the inclusive lower bounds of the qualification tiers.
// Anything below Cold is Unqualified.
type Thresholds struct {
	Hot  int `yaml:"hot" json:"hot"`
	Warm int `yaml:"warm" json:"warm"`
	Cold int `yaml:"cold" json:"cold"`
}

// TierPlaybook is the recommendation template for one tier: the follow-up
// actions plus optional outreach material (email, call script, content to
// share, competitive positioning). All strings may reference profile fields
// with {{name}}, {{domain}} and {{industry}} placeholders.
type TierPlaybook struct {
	Actions     []string              `yaml:"actions" json:"actions"`
	Timing      string                `yaml:"timing" json:"timing"`
	Approach    string                `yaml:"approach" json:"approach"`
	Email       *domain.EmailTemplate `yaml:"email,omitempty" json:"email,omitempty"`
	CallScript  *domain.CallScript    `yaml:"call_script,omitempty" json:"call_script,omitempty"`
	Content     []string              `yaml:"content,omitempty" json:"content,omitempty"`
	Positioning string                `yaml:"positioning,omitempty" json:"positioning,omitempty"`
}

// ImprovementRule suggests how to raise a weak category. The suggestion is
// emitted when the category's points fall below Floor.
type ImprovementRule struct {
	Floor      float64 `yaml:"floor" json:"floor"`
	Suggestion string  `yaml:"suggestion" json:"suggestion"`
}

// Model is a complete scoring configuration: weights, per-category rule
// tables, tier thresholds and recommendation playbooks. Models are plain data
// so new scoring behavior ships as configuration, not code.
type Model struct {
	Name    string `yaml:"name" json:"name"`
	Version string `yaml:"version" json:"version"`

	Weights      map[domain.Category]float64         `yaml:"weights" json:"weights"`
	Categories   map[domain.Category]CategoryModel   `yaml:"categories" json:"categories"`
	Thresholds   Thresholds                          `yaml:"thresholds" json:"thresholds"`
	Playbooks    map[domain.Tier]TierPlaybook        `yaml:"playbooks" json:"playbooks"`
	Improvements map[domain.Category]ImprovementRule `yaml:"improvements" json:"improvements"`
}

// LoadModel reads and validates a scoring model from a YAML file.
func LoadModel(path string) (*Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrConfiguration, err, "could not read scoring model %q", path)
	}

	return ParseModel(raw)
}

// LoadModelFS is LoadModel reading from an fs.FS, used for the embedded
// default model.
func LoadModelFS(fsys fs.FS, path string) (*Model, error) {
	raw, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrConfiguration, err, "could not read scoring model %q", path)
	}

	return ParseModel(raw)
}

// ParseModel decodes and validates a scoring model from YAML bytes.
func ParseModel(raw []byte) (*Model, error) {
	var m Model
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, serrors.Wrap(serrors.ErrConfiguration, err, "could not parse scoring model")
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// Validate checks the model for internal consistency. All violations are
// reported as ErrConfiguration.
func (m *Model) Validate() error {
	if len(m.Weights) == 0 {
		return serrors.With(serrors.ErrConfiguration, "scoring model has no category weights")
	}

	var sum float64
	for cat, w := range m.Weights {
		if w < 0 {
			return serrors.With(serrors.ErrConfiguration, "weight for category %q is negative", cat)
		}
		if _, ok := m.Categories[cat]; !ok {
			return serrors.With(serrors.ErrConfiguration, "weighted category %q has no rule table", cat)
		}

		sum += w
	}
	if math.Abs(sum-1) > weightSumTolerance {
		return serrors.With(serrors.ErrConfiguration, "category weights sum to %.4f, want 1.0", sum)
	}

	for cat, cm := range m.Categories {
		if _, ok := m.Weights[cat]; !ok {
			return serrors.With(serrors.ErrConfiguration, "category %q has rules but no weight", cat)
		}
		if cm.MaxPoints <= 0 {
			return serrors.With(serrors.ErrConfiguration, "category %q max_points must be positive", cat)
		}
		if len(cm.Criteria) == 0 {
			return serrors.With(serrors.ErrConfiguration, "category %q has no criteria", cat)
		}

		for i := range cm.Criteria {
			if err := validateCriterion(&cm.Criteria[i], true); err != nil {
				return serrors.Wrap(serrors.ErrConfiguration, err, "category %q criterion %q", cat, cm.Criteria[i].Name)
			}
		}
	}

	if m.Thresholds.Hot <= m.Thresholds.Warm || m.Thresholds.Warm <= m.Thresholds.Cold || m.Thresholds.Cold < 0 {
		return serrors.With(serrors.ErrConfiguration,
			"tier thresholds must descend: hot %d > warm %d > cold %d >= 0",
			m.Thresholds.Hot, m.Thresholds.Warm, m.Thresholds.Cold)
	}

	for _, tier := range []domain.Tier{domain.TierHot, domain.TierWarm, domain.TierCold, domain.TierUnqualified} {
		if _, ok := m.Playbooks[tier]; !ok {
			return serrors.With(serrors.ErrConfiguration, "tier %q has no playbook", tier)
		}
	}

	return nil
}

// validateCriterion checks one rule. Children of composite criteria are pure
// conditions, so requirePoints is false for them: only the composite itself
// awards points.
func validateCriterion(c *Criterion, requirePoints bool) error {
	if c.Name == "" {
		return fmt.Errorf("criterion has no name")
	}

	switch c.Type {
	case CriterionThreshold:
		if c.Field == "" {
			return fmt.Errorf("threshold criterion needs a field")
		}
		if len(c.Steps) == 0 && c.Min == nil {
			return fmt.Errorf("threshold criterion needs min or steps")
		}
		if requirePoints && len(c.Steps) == 0 && c.Points <= 0 {
			return fmt.Errorf("threshold criterion needs positive points")
		}
	case CriterionMembership:
		if c.Field == "" || len(c.Values) == 0 {
			return fmt.Errorf("membership criterion needs a field and values")
		}
		if requirePoints && c.Points <= 0 {
			return fmt.Errorf("membership criterion needs positive points")
		}
	case CriterionPresence:
		if c.Field == "" {
			return fmt.Errorf("presence criterion needs a field")
		}
		if requirePoints && c.Points <= 0 {
			return fmt.Errorf("presence criterion needs positive points")
		}
	case CriterionComposite:
		if c.Mode != "all" && c.Mode != "any" {
			return fmt.Errorf("composite criterion mode must be all or any, got %q", c.Mode)
		}
		if len(c.Children) == 0 {
			return fmt.Errorf("composite criterion needs children")
		}
		if requirePoints && c.Points <= 0 {
			return fmt.Errorf("composite criterion needs positive points")
		}
		for i := range c.Children {
			if err := validateCriterion(&c.Children[i], false); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unknown criterion type %q", c.Type)
	}

	return nil
}
