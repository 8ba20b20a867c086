package services

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"qr-supercharge/internal/constants"
	"qr-supercharge/internal/errors"
	"qr-supercharge/internal/helpers"
	"qr-supercharge/internal/models"
	"qr-supercharge/internal/overlay"
	"qr-supercharge/internal/placement"
)

// MatrixEncoder produces a module matrix for a payload at a fixed version
type MatrixEncoder interface {
	Encode(text string, version int, level models.ECLevel) (models.Matrix, error)
}

// Decoder reads the payload back out of a rendered image
type Decoder interface {
	Decode(img image.Image) (string, error)
}

// Request describes one end-to-end embedding request
type Request struct {
	URL          string
	Text         string
	StartVersion int
	MaxVersion   int
}

// Generator drives the version-escalation loop: encode, place, compose,
// embed, render, decode, compare. Whatever it returns has been round-trip
// verified against the original payload.
type Generator struct {
	encoder  MatrixEncoder
	decoder  Decoder
	renderer *Renderer
	zones    *cache.Cache
	logger   *logrus.Logger
}

// NewGenerator creates a new generator service
func NewGenerator(encoder MatrixEncoder, decoder Decoder, renderer *Renderer, logger *logrus.Logger) *Generator {
	return &Generator{
		encoder:  encoder,
		decoder:  decoder,
		renderer: renderer,
		zones:    cache.New(cache.NoExpiration, 0),
		logger:   logger,
	}
}

// Generate finds the smallest QR version in the requested range whose
// embedded label survives decoding. Every per-version failure advances to
// the next version; running past MaxVersion yields VersionRangeExhaustedError.
func (g *Generator) Generate(req Request) (*models.Result, error) {
	start := req.StartVersion
	if start == 0 {
		start = constants.DefaultStartVersion
	}
	maxVersion := req.MaxVersion
	if maxVersion == 0 {
		maxVersion = constants.DefaultMaxVersion
	}
	if start < constants.MinVersion || maxVersion > constants.MaxVersion || start > maxVersion {
		return nil, fmt.Errorf("invalid version range %d..%d", start, maxVersion)
	}

	label := strings.TrimSpace(req.Text)
	if label == "" {
		label = helpers.ExtractDomain(req.URL)
	}

	iterations := 0
	for version := start; version <= maxVersion; version++ {
		iterations++
		g.logger.Debugf("Attempt %d: trying QR version %d", iterations, version)

		result, err := g.attempt(req.URL, label, version)
		if err != nil {
			g.logger.Debugf("Version %d rejected: %v", version, err)
			continue
		}

		result.Iterations = iterations
		g.logger.Infof("Generated verified QR code: version=%d text=%q iterations=%d",
			result.Version, result.EmbeddedText, iterations)
		return result, nil
	}

	return nil, &errors.VersionRangeExhaustedError{
		StartVersion: start,
		MaxVersion:   maxVersion,
		Iterations:   iterations,
	}
}

// attempt runs one iteration of the loop at a fixed version
func (g *Generator) attempt(url, label string, version int) (*models.Result, error) {
	matrix, err := g.encoder.Encode(url, version, models.ECLevelH)
	if err != nil {
		return nil, err
	}

	zone := g.safeZone(version)
	if zone.Area() == 0 {
		return nil, &errors.NoSafePlacementError{Version: version}
	}

	mask, actual := overlay.Compose(label, zone)
	if actual == "" {
		return nil, &errors.LabelDoesNotFitError{Version: version, Text: label}
	}

	candidate := overlay.Embed(matrix, zone, mask)

	decoded, err := g.decoder.Decode(g.renderer.Image(candidate))
	if err != nil {
		return nil, &errors.VerificationFailedError{Version: version}
	}
	if decoded != url {
		return nil, &errors.VerificationFailedError{Version: version, Decoded: decoded}
	}

	return &models.Result{
		Version:      version,
		Matrix:       candidate,
		EmbeddedText: actual,
	}, nil
}

// safeZone memoizes placement.SafeZone per version; the computation depends
// only on the version, so cached entries never expire
func (g *Generator) safeZone(version int) models.Rect {
	key := strconv.Itoa(version)
	if zone, found := g.zones.Get(key); found {
		return zone.(models.Rect)
	}
	zone := placement.SafeZone(version)
	g.zones.Set(key, zone, cache.NoExpiration)
	return zone
}

// Renderer exposes the renderer so callers can rasterize the final matrix
// with the same scale used during verification
func (g *Generator) Renderer() *Renderer {
	return g.renderer
}
