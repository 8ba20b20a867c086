package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"qr-supercharge/internal/config"
	"qr-supercharge/internal/handlers"
	"qr-supercharge/internal/services"
	"qr-supercharge/pkg/qrmatrix"
	"qr-supercharge/pkg/qrscan"
)

func main() {
	// Setup logger
	logger := setupLogger()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration:", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	// Initialize services
	renderer := services.NewRenderer(cfg.Generator.ModuleSize, cfg.Generator.QuietZone)
	generator := services.NewGenerator(qrmatrix.NewEncoder(), qrscan.NewDecoder(), renderer, logger)

	var checker *services.URLChecker
	if cfg.Generator.CheckURL {
		checker = services.NewURLChecker(logger)
	}

	// Setup router
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	h := handlers.New(generator, checker, cfg, logger)
	h.Register(r)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r,
	}

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		<-sigCh
		logger.Info("Received shutdown signal")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Errorf("Server shutdown failed: %v", err)
		}
	}()

	logger.Infof("Starting QR Supercharge API on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("Server failed:", err)
	}
}

// setupLogger sets up the logger
func setupLogger() *logrus.Logger {
	logger := logrus.New()

	// Set log level from environment variable or default to info
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		log.Printf("Invalid log level %s, defaulting to info", logLevel)
		level = logrus.InfoLevel
	}

	logger.SetLevel(level)

	// Set formatter
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return logger
}
