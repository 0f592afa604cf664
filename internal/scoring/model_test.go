package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"leadscore/internal/scoring"
	"leadscore/pkg/domain"
	"leadscore/pkg/serrors"
)

func TestDefaultModelValid(t *testing.T) {
	model, err := scoring.DefaultModel()
	require.NoError(t, err)
	require.Equal(t, "default", model.Name)
	require.Len(t, model.Weights, 6)
	require.Len(t, model.Categories, 6)
	require.Equal(t, 80, model.Thresholds.Hot)
	require.Equal(t, 60, model.Thresholds.Warm)
	require.Equal(t, 40, model.Thresholds.Cold)
}

func TestModelValidateWeightSum(t *testing.T) {
	model := pointsModel(t, 50)
	model.Weights[domain.CategoryCompanyFit] = 0.9

	err := model.Validate()
	require.ErrorIs(t, err, serrors.ErrConfiguration)
	require.Contains(t, err.Error(), "sum")
}

func TestModelValidateSlightWeightDrift(t *testing.T) {
	// Floating point drift within the tolerance must be accepted.
	model := pointsModel(t, 50)
	model.Weights[domain.CategoryCompanyFit] = 0.995

	require.NoError(t, model.Validate())
}

func TestModelValidateMissingRuleTable(t *testing.T) {
	model := pointsModel(t, 50)
	model.Weights[domain.CategoryBuyingSignals] = 0
	model.Weights[domain.CategoryCompanyFit] = 1.0

	err := model.Validate()
	require.ErrorIs(t, err, serrors.ErrConfiguration)
}

func TestModelValidateNonPositiveCeiling(t *testing.T) {
	model := pointsModel(t, 50)
	cm := model.Categories[domain.CategoryCompanyFit]
	cm.MaxPoints = 0
	model.Categories[domain.CategoryCompanyFit] = cm

	err := model.Validate()
	require.ErrorIs(t, err, serrors.ErrConfiguration)
	require.Contains(t, err.Error(), "max_points")
}

func TestModelValidateThresholdOrder(t *testing.T) {
	model := pointsModel(t, 50)
	model.Thresholds = scoring.Thresholds{Hot: 60, Warm: 60, Cold: 40}

	err := model.Validate()
	require.ErrorIs(t, err, serrors.ErrConfiguration)
}

func TestModelValidateMissingPlaybook(t *testing.T) {
	model := pointsModel(t, 50)
	delete(model.Playbooks, domain.TierCold)

	err := model.Validate()
	require.ErrorIs(t, err, serrors.ErrConfiguration)
	require.Contains(t, err.Error(), "playbook")
}

func TestModelValidateCriteria(t *testing.T) {
	broken := []scoring.Criterion{
		{Name: "", Type: scoring.CriterionPresence, Field: "industry", Points: 1},
		{Name: "x", Type: "bogus"},
		{Name: "x", Type: scoring.CriterionThreshold, Field: "metrics.employee_count"},
		{Name: "x", Type: scoring.CriterionMembership, Field: "industry", Points: 1},
		{Name: "x", Type: scoring.CriterionComposite, Mode: "sometimes", Points: 1},
		{Name: "x", Type: scoring.CriterionComposite, Mode: "all", Points: 1},
	}

	for i, c := range broken {
		model := pointsModel(t, 50)
		cm := model.Categories[domain.CategoryCompanyFit]
		cm.Criteria = []scoring.Criterion{c}
		model.Categories[domain.CategoryCompanyFit] = cm

		require.ErrorIs(t, model.Validate(), serrors.ErrConfiguration, "criterion %d", i)
	}
}

func TestParseModelRejectsGarbage(t *testing.T) {
	_, err := scoring.ParseModel([]byte("weights: ["))
	require.ErrorIs(t, err, serrors.ErrConfiguration)
}
