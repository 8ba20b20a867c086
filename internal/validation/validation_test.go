package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHTTPURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"https://example.com", "https://example.com", false},
		{"example.com", "https://example.com", false},
		{"  https://example.com/path  ", "https://example.com/path", false},
		{"http://example.com", "http://example.com", false},
		{"ftp://example.com", "", true},
		{"", "", true},
		{"https://", "", true},
	}

	for _, tt := range tests {
		got, err := NormalizeHTTPURL(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		assert.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestNormalizeHTTPURLLengthCap(t *testing.T) {
	long := "https://example.com/" + strings.Repeat("a", 5000)
	_, err := NormalizeHTTPURL(long)
	assert.Error(t, err)
}

func TestValidateVersionRange(t *testing.T) {
	assert.NoError(t, ValidateVersionRange(5, 40))
	assert.NoError(t, ValidateVersionRange(1, 1))
	assert.Error(t, ValidateVersionRange(0, 40))
	assert.Error(t, ValidateVersionRange(5, 41))
	assert.Error(t, ValidateVersionRange(10, 5))
}
