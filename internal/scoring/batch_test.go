package scoring_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"leadscore/internal/scoring"
	"leadscore/pkg/domain"
	"leadscore/pkg/serrors"
)

func batchProfiles(n int) []domain.CompanyProfile {
	profiles := make([]domain.CompanyProfile, n)
	for i := range profiles {
		profiles[i] = domain.CompanyProfile{
			Domain:   fmt.Sprintf("company-%02d.com", i),
			Industry: "saas",
		}
	}

	return profiles
}

func TestScoreBatchPreservesOrder(t *testing.T) {
	engine := defaultEngine(t)

	profiles := batchProfiles(30)
	// Sprinkle invalid profiles through the batch.
	profiles[3].Domain = ""
	profiles[17].Domain = "not a domain"
	profiles[29].Domain = "nodot"

	result := engine.ScoreBatch(context.Background(), profiles, scoring.BatchOptions{Workers: 8})

	require.Equal(t, domain.BatchStatusCompleted, result.Status)
	require.Equal(t, 30, result.TotalSubmitted)
	require.Equal(t, 27, result.Succeeded)
	require.Equal(t, 3, result.Failed)
	require.Len(t, result.Items, 30)

	for i, item := range result.Items {
		require.Equal(t, i, item.Index)
		require.Equal(t, profiles[i].Domain, item.Domain)

		switch i {
		case 3, 17, 29:
			require.Nil(t, item.Outcome)
			require.NotEmpty(t, item.Error)
			require.Equal(t, serrors.ErrInvalidProfile.Error(), item.Reason)
		default:
			require.NotNil(t, item.Outcome)
			require.Empty(t, item.Error)
			require.Empty(t, item.Reason)
		}
	}
}

func TestScoreBatchItemIsolation(t *testing.T) {
	engine := defaultEngine(t)

	profiles := batchProfiles(5)
	profiles[2].Domain = ""

	result := engine.ScoreBatch(context.Background(), profiles, scoring.BatchOptions{Workers: 1})

	require.Equal(t, 4, result.Succeeded)
	require.Equal(t, 1, result.Failed)
	// The failure sits between successes without disturbing them, and carries
	// a machine-readable category next to the message.
	require.NotNil(t, result.Items[1].Outcome)
	require.NotEmpty(t, result.Items[2].Error)
	require.Equal(t, "INVALID_PROFILE", result.Items[2].Reason)
	require.NotNil(t, result.Items[3].Outcome)
}

func TestScoreBatchEmpty(t *testing.T) {
	engine := defaultEngine(t)

	result := engine.ScoreBatch(context.Background(), nil, scoring.BatchOptions{})

	require.Equal(t, domain.BatchStatusCompleted, result.Status)
	require.Zero(t, result.TotalSubmitted)
	require.Empty(t, result.Items)
}

func TestScoreBatchProgress(t *testing.T) {
	engine := defaultEngine(t)

	profiles := batchProfiles(20)
	progress := scoring.NewProgress(len(profiles))

	require.Equal(t, int64(20), progress.Total())
	require.Zero(t, progress.Completed())

	engine.ScoreBatch(context.Background(), profiles, scoring.BatchOptions{
		Workers:  4,
		Progress: progress,
	})

	require.Equal(t, int64(20), progress.Completed())
}

func TestScoreBatchCancellation(t *testing.T) {
	engine := defaultEngine(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := engine.ScoreBatch(ctx, batchProfiles(50), scoring.BatchOptions{Workers: 2})

	require.Equal(t, domain.BatchStatusCancelled, result.Status)
	require.Equal(t, 50, result.TotalSubmitted)
	require.LessOrEqual(t, len(result.Items), 50)
	require.Equal(t, len(result.Items), result.Succeeded+result.Failed)

	// Whatever was processed before cancellation is still ordered and valid.
	for i := 1; i < len(result.Items); i++ {
		require.Greater(t, result.Items[i].Index, result.Items[i-1].Index)
	}
}

func TestScoreBatchCancelMidFlight(t *testing.T) {
	engine := defaultEngine(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	result := engine.ScoreBatch(ctx, batchProfiles(5000), scoring.BatchOptions{Workers: 2, ChunkSize: 10})

	require.Equal(t, 5000, result.TotalSubmitted)
	require.Equal(t, len(result.Items), result.Succeeded+result.Failed)
}
