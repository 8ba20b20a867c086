package services

import (
	stderrors "errors"
	"image"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qr-supercharge/internal/errors"
	"qr-supercharge/internal/models"
	"qr-supercharge/internal/placement"
)

// stubEncoder records the versions it was asked for and produces an
// all-light matrix of the right size, or fails below minVersion.
type stubEncoder struct {
	minVersion int
	versions   []int
}

func (e *stubEncoder) Encode(text string, version int, level models.ECLevel) (models.Matrix, error) {
	e.versions = append(e.versions, version)
	if version < e.minVersion {
		return nil, &errors.PayloadTooLargeError{Version: version, Length: len(text)}
	}
	return models.NewMatrix(placement.MatrixSize(version)), nil
}

// stubDecoder answers per version, inferring the version from the image
// side length (the tests render at one pixel per module with no quiet zone).
type stubDecoder struct {
	payload     string
	minVersion  int
	alwaysFail  bool
	invocations int
}

func (d *stubDecoder) Decode(img image.Image) (string, error) {
	d.invocations++
	if d.alwaysFail {
		return "", stderrors.New("not found")
	}
	version := (img.Bounds().Dx() - 17) / 4
	if version < d.minVersion {
		return "", stderrors.New("not found")
	}
	return d.payload, nil
}

func newTestGenerator(enc MatrixEncoder, dec Decoder) *Generator {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewGenerator(enc, dec, NewRenderer(1, 0), logger)
}

func TestGenerateSucceedsAtStartVersion(t *testing.T) {
	enc := &stubEncoder{}
	dec := &stubDecoder{payload: "https://github.com"}
	g := newTestGenerator(enc, dec)

	result, err := g.Generate(Request{URL: "https://github.com", StartVersion: 5, MaxVersion: 40})
	require.NoError(t, err)

	assert.Equal(t, 5, result.Version)
	assert.Equal(t, 1, result.Iterations)
	assert.Equal(t, []int{5}, enc.versions)
	assert.True(t, strings.HasPrefix("GITHUB.COM", result.EmbeddedText))
	assert.NotEmpty(t, result.EmbeddedText)
}

func TestGenerateEscalatesOneVersionAtATime(t *testing.T) {
	enc := &stubEncoder{}
	dec := &stubDecoder{payload: "https://example.com", minVersion: 9}
	g := newTestGenerator(enc, dec)

	result, err := g.Generate(Request{URL: "https://example.com", Text: "GO", StartVersion: 5, MaxVersion: 40})
	require.NoError(t, err)

	assert.Equal(t, 9, result.Version)
	assert.Equal(t, 5, result.Iterations)
	assert.Equal(t, []int{5, 6, 7, 8, 9}, enc.versions)
}

func TestGenerateExhaustsVersionRange(t *testing.T) {
	enc := &stubEncoder{}
	dec := &stubDecoder{alwaysFail: true}
	g := newTestGenerator(enc, dec)

	_, err := g.Generate(Request{URL: "https://example.com", Text: "GO", StartVersion: 5, MaxVersion: 8})
	require.Error(t, err)

	var exhausted *errors.VersionRangeExhaustedError
	require.True(t, stderrors.As(err, &exhausted))
	assert.Equal(t, 5, exhausted.StartVersion)
	assert.Equal(t, 8, exhausted.MaxVersion)
	assert.Equal(t, 4, exhausted.Iterations)
	assert.Equal(t, []int{5, 6, 7, 8}, enc.versions)
}

func TestGenerateEncoderFailureSkipsVerification(t *testing.T) {
	enc := &stubEncoder{minVersion: 41}
	dec := &stubDecoder{payload: "https://example.com"}
	g := newTestGenerator(enc, dec)

	_, err := g.Generate(Request{URL: "https://example.com", Text: "GO", StartVersion: 38, MaxVersion: 40})
	require.Error(t, err)

	var exhausted *errors.VersionRangeExhaustedError
	require.True(t, stderrors.As(err, &exhausted))
	assert.Zero(t, dec.invocations, "decoder must not run when encoding fails")
}

func TestGenerateVerifiesExactPayload(t *testing.T) {
	enc := &stubEncoder{}
	dec := &stubDecoder{payload: "https://example.com/other"}
	g := newTestGenerator(enc, dec)

	_, err := g.Generate(Request{URL: "https://example.com", Text: "GO", StartVersion: 5, MaxVersion: 6})
	require.Error(t, err)

	var exhausted *errors.VersionRangeExhaustedError
	assert.True(t, stderrors.As(err, &exhausted))
}

func TestGenerateIsIdempotent(t *testing.T) {
	run := func() *models.Result {
		g := newTestGenerator(&stubEncoder{}, &stubDecoder{payload: "https://example.com"})
		result, err := g.Generate(Request{URL: "https://example.com", Text: "HI", StartVersion: 5, MaxVersion: 40})
		require.NoError(t, err)
		return result
	}

	first := run()
	second := run()
	assert.Equal(t, first.Matrix, second.Matrix)
	assert.Equal(t, first.Version, second.Version)
	assert.Equal(t, first.EmbeddedText, second.EmbeddedText)
}

func TestGenerateRejectsInvalidRange(t *testing.T) {
	g := newTestGenerator(&stubEncoder{}, &stubDecoder{payload: "x"})

	_, err := g.Generate(Request{URL: "https://example.com", StartVersion: 10, MaxVersion: 5})
	assert.Error(t, err)

	_, err = g.Generate(Request{URL: "https://example.com", StartVersion: 0, MaxVersion: 41})
	assert.Error(t, err)
}

func TestGenerateDefaultsVersionRange(t *testing.T) {
	enc := &stubEncoder{}
	g := newTestGenerator(enc, &stubDecoder{payload: "https://example.com"})

	result, err := g.Generate(Request{URL: "https://example.com", Text: "GO"})
	require.NoError(t, err)
	assert.Equal(t, 5, result.Version)
}
