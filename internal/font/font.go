// Package font holds the fixed 3x5 pixel alphabet used for QR labels.
package font

import (
	"strings"

	"qr-supercharge/internal/constants"
	"qr-supercharge/internal/models"
)

// Glyph returns the pixel pattern for a character, or false if the
// character is not part of the supported alphabet
func Glyph(r rune) ([constants.GlyphHeight]string, bool) {
	g, ok := glyphs[r]
	return g, ok
}

// Supported reports whether the character has a glyph
func Supported(r rune) bool {
	_, ok := glyphs[r]
	return ok
}

// Normalize uppercases the text and silently drops characters outside
// the glyph alphabet
func Normalize(text string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(text) {
		if Supported(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TextWidth returns the pixel width of n glyphs tiled with the standard spacing
func TextWidth(n int) int {
	if n <= 0 {
		return 0
	}
	return n*constants.GlyphWidth + (n-1)*constants.GlyphSpacing
}

// TextHeight returns the pixel height of a rendered label
func TextHeight() int {
	return constants.GlyphHeight
}

// Render tiles the glyphs of text left to right, with one blank column
// between neighbours, into a label mask. Text must already be normalized;
// unsupported characters are skipped. An empty text yields an empty mask.
func Render(text string) models.Mask {
	var chars []rune
	for _, r := range text {
		if Supported(r) {
			chars = append(chars, r)
		}
	}
	if len(chars) == 0 {
		return models.Mask{}
	}

	width := TextWidth(len(chars))
	mask := make(models.Mask, constants.GlyphHeight)
	for row := range mask {
		mask[row] = make([]bool, width)
	}

	col := 0
	for _, r := range chars {
		g := glyphs[r]
		for row := 0; row < constants.GlyphHeight; row++ {
			for x := 0; x < constants.GlyphWidth; x++ {
				if g[row][x] == '#' {
					mask[row][col+x] = true
				}
			}
		}
		col += constants.GlyphWidth + constants.GlyphSpacing
	}
	return mask
}
