package config

import (
	"fmt"
	"net/url"
)

// validateURL checks an absolute http(s) URL. field names the setting in
// error messages, e.g. "authentication.oidc.issuer_url".
func validateURL(raw, field string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", field)
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", field, err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s must have http or https scheme", field)
	}

	if parsed.Host == "" {
		return fmt.Errorf("%s must include a host", field)
	}

	return nil
}
