// Package httpapi provides an enrichment.Enricher implementation backed by a
// REST-style company data API.
package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"leadscore/pkg/domain"
	"leadscore/pkg/enrichment"
	"leadscore/pkg/serrors"
)

// Client talks to a company enrichment REST API and fulfills the
// enrichment.Enricher interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the provider
	baseURL    string       // baseURL is the provider API root, without trailing slash
	apiKey     string       // apiKey authenticates requests to the provider
}

// Enrich fetches the provider's company record for the given domain and maps
// it onto a domain.CompanyProfile. Network failures, timeouts and provider
// 5xx responses are reported as ErrEnrichmentUnavailable; an unknown company
// is ErrNotFound.
func (c *Client) Enrich(ctx context.Context, companyDomain string) (*domain.CompanyProfile, error) {
	req, err := http.NewRequestWithContext(ctx,
		http.MethodGet,
		c.baseURL+"/v1/companies/"+url.PathEscape(companyDomain),
		nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrEnrichmentUnavailable, err, "could not reach enrichment provider")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrEnrichmentUnavailable, err, "could not read response body")
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, serrors.With(serrors.ErrNotFound, "company %q not found", companyDomain)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode >= 500 {
		return nil, serrors.With(serrors.ErrEnrichmentUnavailable,
			"provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("enrich failed: %s", strings.TrimSpace(string(b)))
	}

	var profile domain.CompanyProfile
	if err := json.Unmarshal(b, &profile); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}
	profile.Domain = companyDomain

	return &profile, nil
}

// Ensure Client conforms to the enrichment.Enricher interface at compile time.
var _ enrichment.Enricher = (*Client)(nil)

// New constructs a Client that uses the provided http.Client, API root URL
// and key to interact with the enrichment provider.
func New(httpClient *http.Client, baseURL, apiKey string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}
