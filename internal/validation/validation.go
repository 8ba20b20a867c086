package validation

import (
	"fmt"
	"net/url"
	"strings"

	"qr-supercharge/internal/constants"
)

// NormalizeHTTPURL validates and normalizes a URL string for QR generation.
// It ensures an http/https scheme, a non-empty hostname, and returns a
// cleaned absolute URL.
func NormalizeHTTPURL(s string) (string, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return "", fmt.Errorf("URL is required")
	}
	// If missing scheme, default to https
	if !strings.Contains(v, "://") {
		v = "https://" + v
	}
	u, err := url.ParseRequestURI(v)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("only http and https URLs are supported")
	}
	if u.Host == "" {
		return "", fmt.Errorf("URL must include a valid host")
	}
	if len(v) > constants.MaxURLLength {
		return "", fmt.Errorf("URL is too long")
	}
	return u.String(), nil
}

// ValidateVersionRange checks that a start/max version pair is usable
func ValidateVersionRange(start, max int) error {
	if start < constants.MinVersion || start > constants.MaxVersion {
		return fmt.Errorf("start version must be between %d and %d", constants.MinVersion, constants.MaxVersion)
	}
	if max < constants.MinVersion || max > constants.MaxVersion {
		return fmt.Errorf("max version must be between %d and %d", constants.MinVersion, constants.MaxVersion)
	}
	if start > max {
		return fmt.Errorf("start version %d exceeds max version %d", start, max)
	}
	return nil
}
