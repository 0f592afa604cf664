package httpapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"leadscore/pkg/enrichment/httpapi"
	"leadscore/pkg/serrors"
)

func TestClientEnrich(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/companies/acme.io", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"name": "Acme",
			"industry": "saas",
			"metrics": {"employee_count": 120},
			"tech_stack": ["aws", "postgresql"]
		}`))
	}))
	defer srv.Close()

	client := httpapi.New(srv.Client(), srv.URL, "test-key")

	profile, err := client.Enrich(context.Background(), "acme.io")
	require.NoError(t, err)
	require.Equal(t, "acme.io", profile.Domain)
	require.Equal(t, "Acme", profile.Name)
	require.Equal(t, "saas", profile.Industry)
	require.NotNil(t, profile.Metrics.EmployeeCount)
	require.Equal(t, 120, *profile.Metrics.EmployeeCount)
	require.Equal(t, []string{"aws", "postgresql"}, profile.TechStack)
}

func TestClientEnrichNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unknown company", http.StatusNotFound)
	}))
	defer srv.Close()

	client := httpapi.New(srv.Client(), srv.URL, "test-key")

	_, err := client.Enrich(context.Background(), "nobody.example")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestClientEnrichProviderDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := httpapi.New(srv.Client(), srv.URL, "test-key")

	_, err := client.Enrich(context.Background(), "acme.io")
	require.ErrorIs(t, err, serrors.ErrEnrichmentUnavailable)
}

func TestClientEnrichUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	client := httpapi.New(http.DefaultClient, srv.URL, "test-key")

	_, err := client.Enrich(context.Background(), "acme.io")
	require.ErrorIs(t, err, serrors.ErrEnrichmentUnavailable)
}

func TestClientEnrichRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := httpapi.New(srv.Client(), srv.URL, "test-key")

	_, err := client.Enrich(context.Background(), "acme.io")
	require.ErrorIs(t, err, serrors.ErrRateLimited)
}
