package services

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"qr-supercharge/internal/models"
)

// Renderer rasterizes module matrices into scannable images
type Renderer struct {
	moduleSize int
	quietZone  int
}

// NewRenderer creates a renderer with the given pixels-per-module scale and
// quiet zone width in modules
func NewRenderer(moduleSize, quietZone int) *Renderer {
	if moduleSize < 1 {
		moduleSize = 1
	}
	if quietZone < 0 {
		quietZone = 0
	}
	return &Renderer{
		moduleSize: moduleSize,
		quietZone:  quietZone,
	}
}

// Image renders the matrix onto a white canvas, dark modules as black squares
func (r *Renderer) Image(matrix models.Matrix) image.Image {
	n := matrix.Size()
	side := (n + 2*r.quietZone) * r.moduleSize

	img := image.NewRGBA(image.Rect(0, 0, side, side))
	white := color.RGBA{255, 255, 255, 255}
	black := color.RGBA{0, 0, 0, 255}

	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			img.SetRGBA(x, y, white)
		}
	}

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if !matrix[row][col] {
				continue
			}
			startX := (col + r.quietZone) * r.moduleSize
			startY := (row + r.quietZone) * r.moduleSize
			for y := startY; y < startY+r.moduleSize; y++ {
				for x := startX; x < startX+r.moduleSize; x++ {
					img.SetRGBA(x, y, black)
				}
			}
		}
	}
	return img
}

// PNG renders the matrix and encodes it as PNG bytes
func (r *Renderer) PNG(matrix models.Matrix) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, r.Image(matrix)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
