package helpers

import (
	"net/url"
	"strings"
)

// FallbackLabel is embedded when no domain can be extracted from the URL
const FallbackLabel = "QR-CODE"

// ExtractDomain returns the uppercased host of a URL, without any www.
// prefix or port, for use as the default label text.
// For example: "https://www.example.com/path" -> "EXAMPLE.COM"
func ExtractDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return FallbackLabel
	}

	host := u.Hostname()
	if host == "" {
		return FallbackLabel
	}

	host = strings.TrimPrefix(host, "www.")
	if host == "" {
		return FallbackLabel
	}
	return strings.ToUpper(host)
}
