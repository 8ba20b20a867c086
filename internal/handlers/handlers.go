package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"qr-supercharge/internal/config"
	"qr-supercharge/internal/constants"
	"qr-supercharge/internal/services"
)

// Handler holds the dependencies of the HTTP API
type Handler struct {
	generator *services.Generator
	checker   *services.URLChecker
	results   *cache.Cache
	cfg       *config.Config
	logger    *logrus.Logger
}

// New creates a new handler. checker may be nil, in which case no URL
// preflight is performed.
func New(generator *services.Generator, checker *services.URLChecker, cfg *config.Config, logger *logrus.Logger) *Handler {
	expiration := time.Duration(cfg.Server.CacheExpirationMinutes) * time.Minute
	return &Handler{
		generator: generator,
		checker:   checker,
		results:   cache.New(expiration, constants.CacheCleanupInterval*time.Minute),
		cfg:       cfg,
		logger:    logger,
	}
}

// Register wires the API routes onto the engine
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/health", h.Health)

	api := r.Group("/api")
	api.POST("/generate", h.Generate)
	api.GET("/qr", h.QRImage)
}

// Health reports service liveness
func (h *Handler) Health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
