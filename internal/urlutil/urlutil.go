// Package urlutil holds small URL helpers shared by the transport and the
// portal metadata extractor.
package urlutil

import (
	"fmt"
	"net/url"
)

// Validate checks that urlStr is an absolute http(s) URL with a host.
func Validate(urlStr string) error {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid URL scheme: must be http or https, got %q", parsed.Scheme)
	}

	if parsed.Host == "" {
		return fmt.Errorf("invalid URL: missing host")
	}

	return nil
}

// Resolve resolves a possibly-relative href against a base URL. On any
// parse failure the href is returned unchanged.
func Resolve(base, href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if u.IsAbs() {
		return href
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return href
	}
	return baseURL.ResolveReference(u).String()
}
