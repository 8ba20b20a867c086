package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pborman/getopt/v2"
	"github.com/sirupsen/logrus"

	"qr-supercharge/internal/constants"
	"qr-supercharge/internal/helpers"
	"qr-supercharge/internal/services"
	"qr-supercharge/internal/validation"
	"qr-supercharge/pkg/qrmatrix"
	"qr-supercharge/pkg/qrscan"
)

func main() {
	text := getopt.StringLong("text", 't', "", "label text to embed (defaults to domain from URL)")
	output := getopt.StringLong("output", 'o', "", "output file path")
	verbose := getopt.BoolLong("verbose", 'v', "show verbose output")
	startVersion := getopt.IntLong("start-version", 's', constants.DefaultStartVersion, "starting QR version")
	maxVersion := getopt.IntLong("max-version", 'm', constants.DefaultMaxVersion, "maximum QR version")
	getopt.SetParameters("URL")
	getopt.Parse()

	args := getopt.Args()
	if len(args) != 1 {
		getopt.Usage()
		os.Exit(2)
	}

	if err := run(args[0], *text, *output, *startVersion, *maxVersion, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(rawURL, text, output string, startVersion, maxVersion int, verbose bool) error {
	logger := setupLogger(verbose)

	url, err := validation.NormalizeHTTPURL(rawURL)
	if err != nil {
		return err
	}
	if err := validation.ValidateVersionRange(startVersion, maxVersion); err != nil {
		return err
	}

	// Determine text to embed
	if text == "" {
		text = helpers.ExtractDomain(url)
	}
	if len(text) > constants.RecommendedMaxLabelLength {
		fmt.Fprintf(os.Stderr, "Warning: text is %d characters, may be too long (recommended: 10-%d)\n",
			len(text), constants.RecommendedMaxLabelLength)
	}

	// Determine output file
	if output == "" {
		domain := strings.ReplaceAll(strings.ToLower(helpers.ExtractDomain(url)), ".", "_")
		output = domain + ".png"
	}
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	logger.Infof("Generating QR code for: %s", url)
	logger.Infof("Embedding text: %s", text)

	renderer := services.NewRenderer(constants.DefaultModuleSize, constants.DefaultQuietZone)
	generator := services.NewGenerator(qrmatrix.NewEncoder(), qrscan.NewDecoder(), renderer, logger)

	result, err := generator.Generate(services.Request{
		URL:          url,
		Text:         text,
		StartVersion: startVersion,
		MaxVersion:   maxVersion,
	})
	if err != nil {
		return err
	}

	pngBytes, err := renderer.PNG(result.Matrix)
	if err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	if err := os.WriteFile(output, pngBytes, 0o644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}

	fmt.Printf("Generated QR code: %s\n", output)
	fmt.Printf("  QR Version: %d\n", result.Version)
	fmt.Printf("  Iterations: %d\n", result.Iterations)
	fmt.Printf("  Embedded Text: %s\n", result.EmbeddedText)
	return nil
}

// setupLogger sets up the logger
func setupLogger(verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
	return logger
}
