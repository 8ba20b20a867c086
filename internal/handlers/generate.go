package handlers

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"qr-supercharge/internal/services"
	"qr-supercharge/internal/validation"
)

// GenerateRequest is the body of POST /api/generate
type GenerateRequest struct {
	URL          string `json:"url" binding:"required"`
	Text         string `json:"text"`
	StartVersion int    `json:"start_version"`
	MaxVersion   int    `json:"max_version"`
}

// GenerateResponse is the reply for POST /api/generate
type GenerateResponse struct {
	Success      bool   `json:"success"`
	QRCode       string `json:"qr_code,omitempty"`
	Version      int    `json:"version,omitempty"`
	EmbeddedText string `json:"embedded_text,omitempty"`
	Iterations   int    `json:"iterations,omitempty"`
	Error        string `json:"error,omitempty"`
}

// Generate produces a verified QR code with an embedded label and returns
// it as a base64 PNG data URI
func (h *Handler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, GenerateResponse{Success: false, Error: err.Error()})
		return
	}

	resp, status := h.generate(c, req)
	c.JSON(status, resp)
}

// QRImage streams the generated QR code directly as a PNG, for use in
// <img> tags and downloads
func (h *Handler) QRImage(c *gin.Context) {
	req := GenerateRequest{
		URL:  c.Query("url"),
		Text: c.Query("text"),
	}
	if v, err := strconv.Atoi(c.DefaultQuery("start_version", "0")); err == nil {
		req.StartVersion = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("max_version", "0")); err == nil {
		req.MaxVersion = v
	}

	resp, status := h.generate(c, req)
	if !resp.Success {
		c.JSON(status, gin.H{"error": resp.Error})
		return
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(resp.QRCode, dataURIPrefix))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to decode cached image"})
		return
	}

	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "image/png", raw)
}

const dataURIPrefix = "data:image/png;base64,"

// generate runs validation, the cache lookup, and the generator loop
func (h *Handler) generate(c *gin.Context, req GenerateRequest) (GenerateResponse, int) {
	normalizedURL, err := validation.NormalizeHTTPURL(req.URL)
	if err != nil {
		return GenerateResponse{Success: false, Error: err.Error()}, http.StatusBadRequest
	}

	startVersion := req.StartVersion
	if startVersion == 0 {
		startVersion = h.cfg.Generator.StartVersion
	}
	maxVersion := req.MaxVersion
	if maxVersion == 0 {
		maxVersion = h.cfg.Generator.MaxVersion
	}
	if err := validation.ValidateVersionRange(startVersion, maxVersion); err != nil {
		return GenerateResponse{Success: false, Error: err.Error()}, http.StatusBadRequest
	}

	key := cacheKey(normalizedURL, req.Text, startVersion, maxVersion)
	if cached, found := h.results.Get(key); found {
		return cached.(GenerateResponse), http.StatusOK
	}

	if h.checker != nil {
		if err := h.checker.Check(c.Request.Context(), normalizedURL); err != nil {
			h.logger.Warnf("URL preflight failed for %s: %v", normalizedURL, err)
		}
	}

	result, err := h.generator.Generate(services.Request{
		URL:          normalizedURL,
		Text:         req.Text,
		StartVersion: startVersion,
		MaxVersion:   maxVersion,
	})
	if err != nil {
		h.logger.Errorf("Generation failed for %s: %v", normalizedURL, err)
		return GenerateResponse{Success: false, Error: err.Error()}, http.StatusUnprocessableEntity
	}

	pngBytes, err := h.generator.Renderer().PNG(result.Matrix)
	if err != nil {
		return GenerateResponse{Success: false, Error: "failed to encode PNG"}, http.StatusInternalServerError
	}

	resp := GenerateResponse{
		Success:      true,
		QRCode:       dataURIPrefix + base64.StdEncoding.EncodeToString(pngBytes),
		Version:      result.Version,
		EmbeddedText: result.EmbeddedText,
		Iterations:   result.Iterations,
	}
	h.results.Set(key, resp, cache.DefaultExpiration)
	return resp, http.StatusOK
}

// cacheKey identifies a generation request for response caching
func cacheKey(url, text string, start, max int) string {
	return fmt.Sprintf("%s|%s|%d|%d", url, text, start, max)
}
