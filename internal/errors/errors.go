package errors

import (
	"fmt"
)

// PayloadTooLargeError represents an error when the payload does not fit a QR version
type PayloadTooLargeError struct {
	Version int
	Length  int
}

// Error returns the error message
func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("payload of %d bytes does not fit QR version %d", e.Length, e.Version)
}

// NoSafePlacementError represents an error when a version has no clear region for a label
type NoSafePlacementError struct {
	Version int
}

// Error returns the error message
func (e *NoSafePlacementError) Error() string {
	return fmt.Sprintf("no safe placement region exists at QR version %d", e.Version)
}

// LabelDoesNotFitError represents an error when not even one glyph fits the safe zone
type LabelDoesNotFitError struct {
	Version int
	Text    string
}

// Error returns the error message
func (e *LabelDoesNotFitError) Error() string {
	return fmt.Sprintf("label %q does not fit the safe zone at QR version %d", e.Text, e.Version)
}

// VerificationFailedError represents an error when the embedded code no longer decodes to the payload
type VerificationFailedError struct {
	Version int
	Decoded string
}

// Error returns the error message
func (e *VerificationFailedError) Error() string {
	if e.Decoded == "" {
		return fmt.Sprintf("QR version %d not decodable after embedding", e.Version)
	}
	return fmt.Sprintf("QR version %d decoded to unexpected payload after embedding", e.Version)
}

// VersionRangeExhaustedError represents the terminal failure after all versions were tried
type VersionRangeExhaustedError struct {
	StartVersion int
	MaxVersion   int
	Iterations   int
}

// Error returns the error message
func (e *VersionRangeExhaustedError) Error() string {
	return fmt.Sprintf("could not generate scannable QR code after %d iterations: maximum version %d reached",
		e.Iterations, e.MaxVersion)
}
