package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://github.com", "GITHUB.COM"},
		{"https://www.example.com", "EXAMPLE.COM"},
		{"http://example.com:8080/path?q=1", "EXAMPLE.COM"},
		{"https://sub.domain.co.uk/x", "SUB.DOMAIN.CO.UK"},
		{"not a url", FallbackLabel},
		{"", FallbackLabel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractDomain(tt.url), "url %q", tt.url)
	}
}
