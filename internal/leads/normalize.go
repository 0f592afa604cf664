package leads

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizeDomain returns a canonical representation of a company domain.
//
// The normalization rules are intentionally strict to help with lead
// de-duplication:
//   - Trim surrounding whitespace
//   - Strip an http:// or https:// scheme if present
//   - Drop any path, query or fragment that came along with a pasted URL
//   - Strip a leading "www."
//   - Lower-case the result
//
// The result must look like a hostname (at least one dot, no whitespace);
// otherwise an error is returned.
func NormalizeDomain(raw string) (string, error) {
	d := strings.TrimSpace(raw)
	if d == "" {
		return "", fmt.Errorf("domain is empty")
	}

	// people paste full URLs; accept them and keep the host
	if strings.Contains(d, "://") {
		u, err := url.Parse(d)
		if err != nil {
			return "", fmt.Errorf("could not parse domain: %w", err)
		}

		d = u.Host
	} else if i := strings.IndexAny(d, "/?#"); i >= 0 {
		d = d[:i]
	}

	// drop a port if present
	if i := strings.LastIndex(d, ":"); i >= 0 {
		d = d[:i]
	}

	d = strings.ToLower(d)
	d = strings.TrimPrefix(d, "www.")

	if d == "" || !strings.Contains(d, ".") || strings.ContainsAny(d, " \t") {
		return "", fmt.Errorf("%q is not a valid domain", raw)
	}

	return d, nil
}
