// Package qrscan adapts the gozxing QR reader to the decoder contract used
// for round-trip verification.
package qrscan

import (
	"errors"
	"fmt"
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// ErrNotFound is returned when the image contains no decodable QR code
var ErrNotFound = errors.New("no QR code found in image")

// Decoder reads QR codes back out of rendered images
type Decoder struct {
	hints map[gozxing.DecodeHintType]interface{}
}

// NewDecoder creates a new decoder
func NewDecoder() *Decoder {
	return &Decoder{
		hints: map[gozxing.DecodeHintType]interface{}{
			gozxing.DecodeHintType_TRY_HARDER: true,
		},
	}
}

// Decode returns the payload of the QR code in the image, or ErrNotFound
// when nothing decodes. A fresh reader is used per call so decoders can be
// shared across requests.
func (d *Decoder) Decode(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("creating binary bitmap: %w", err)
	}

	result, err := qrcode.NewQRCodeReader().Decode(bmp, d.hints)
	if err != nil {
		return "", ErrNotFound
	}
	return result.GetText(), nil
}
