package services

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qr-supercharge/internal/constants"
	"qr-supercharge/internal/errors"
	"qr-supercharge/internal/models"
	"qr-supercharge/pkg/qrmatrix"
	"qr-supercharge/pkg/qrscan"
)

func TestEncodeRenderDecodeRoundTrip(t *testing.T) {
	matrix, err := qrmatrix.NewEncoder().Encode("https://example.com", 5, models.ECLevelH)
	require.NoError(t, err)
	require.Equal(t, 37, matrix.Size())

	renderer := NewRenderer(constants.DefaultModuleSize, constants.DefaultQuietZone)
	decoded, err := qrscan.NewDecoder().Decode(renderer.Image(matrix))
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", decoded)
}

func TestEncodeRejectsOversizedPayload(t *testing.T) {
	_, err := qrmatrix.NewEncoder().Encode(strings.Repeat("a", 200), 1, models.ECLevelH)
	require.Error(t, err)

	var tooLarge *errors.PayloadTooLargeError
	assert.True(t, stderrors.As(err, &tooLarge))
}

func TestGenerateWithRealEncoderAndDecoder(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping end-to-end generation")
	}

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	renderer := NewRenderer(constants.DefaultModuleSize, constants.DefaultQuietZone)
	g := NewGenerator(qrmatrix.NewEncoder(), qrscan.NewDecoder(), renderer, logger)

	result, err := g.Generate(Request{
		URL:          "https://example.com",
		Text:         "TEST",
		StartVersion: 9,
		MaxVersion:   40,
	})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, result.Version, 9)
	assert.Equal(t, "TEST", result.EmbeddedText)

	// The returned matrix must still decode to the original payload
	decoded, err := qrscan.NewDecoder().Decode(renderer.Image(result.Matrix))
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", decoded)
}
