// Package qrmatrix adapts the skip2/go-qrcode encoder to the module matrix
// contract the embedding pipeline works with.
package qrmatrix

import (
	qrcode "github.com/skip2/go-qrcode"

	"qr-supercharge/internal/errors"
	"qr-supercharge/internal/models"
)

// Encoder produces module matrices for a fixed QR version
type Encoder struct{}

// NewEncoder creates a new matrix encoder
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode builds the module matrix for the payload at exactly the given
// version and error-correction level. A payload that does not fit the
// version is reported as a PayloadTooLargeError.
func (e *Encoder) Encode(text string, version int, level models.ECLevel) (models.Matrix, error) {
	code, err := qrcode.NewWithForcedVersion(text, version, toRecoveryLevel(level))
	if err != nil {
		return nil, &errors.PayloadTooLargeError{Version: version, Length: len(text)}
	}

	bitmap := code.Bitmap()
	n := 4*version + 17

	// Bitmap includes the quiet zone; keep only the symbol itself.
	border := (len(bitmap) - n) / 2
	if border < 0 {
		border = 0
		n = len(bitmap)
	}

	matrix := make(models.Matrix, n)
	for r := 0; r < n; r++ {
		matrix[r] = make([]bool, n)
		copy(matrix[r], bitmap[r+border][border:border+n])
	}
	return matrix, nil
}

// toRecoveryLevel maps the domain error-correction level onto skip2's enum
func toRecoveryLevel(level models.ECLevel) qrcode.RecoveryLevel {
	switch level {
	case models.ECLevelL:
		return qrcode.Low
	case models.ECLevelM:
		return qrcode.Medium
	case models.ECLevelQ:
		return qrcode.High
	default:
		return qrcode.Highest
	}
}
