package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"qr-supercharge/internal/constants"
)

// URLChecker performs an advisory reachability check on target URLs before
// a code is generated for them
type URLChecker struct {
	httpClient *resty.Client
	logger     *logrus.Logger
}

// NewURLChecker creates a new URL checker
func NewURLChecker(logger *logrus.Logger) *URLChecker {
	httpClient := resty.New().
		SetTimeout(constants.DefaultTimeout * time.Second).
		SetRetryCount(constants.DefaultRetryCount).
		SetRetryWaitTime(constants.DefaultRetryWaitTime * time.Second)

	return &URLChecker{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Check issues a HEAD request against the URL. A network failure or a 5xx
// answer is returned as an error; callers treat the result as advisory and
// may still generate a code for an unreachable URL.
func (c *URLChecker) Check(ctx context.Context, url string) error {
	c.logger.Debugf("Preflight check for %s", url)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		Head(url)
	if err != nil {
		return fmt.Errorf("URL preflight request failed: %w", err)
	}

	if resp.StatusCode() >= http.StatusInternalServerError {
		return fmt.Errorf("URL preflight returned status %d", resp.StatusCode())
	}
	return nil
}
