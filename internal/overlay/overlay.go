// Package overlay fits label masks into safe zones and burns them into
// module matrices.
package overlay

import (
	"qr-supercharge/internal/constants"
	"qr-supercharge/internal/font"
	"qr-supercharge/internal/models"
)

// Compose renders as many leading characters of text as fit within the zone
// and returns the mask together with the text actually rendered. The text is
// normalized first (uppercased, unsupported characters dropped) and never
// truncated mid-glyph. A zone too small for a single glyph yields an empty
// mask and an empty string.
func Compose(text string, zone models.Rect) (models.Mask, string) {
	normalized := []rune(font.Normalize(text))
	if len(normalized) == 0 || zone.Height() < font.TextHeight() {
		return models.Mask{}, ""
	}

	fit := maxGlyphs(zone.Width())
	if fit == 0 {
		return models.Mask{}, ""
	}
	if fit > len(normalized) {
		fit = len(normalized)
	}

	actual := string(normalized[:fit])
	return font.Render(actual), actual
}

// maxGlyphs returns how many glyphs fit in a row of the given module width
func maxGlyphs(width int) int {
	if width < constants.GlyphWidth {
		return 0
	}
	return (width + constants.GlyphSpacing) / (constants.GlyphWidth + constants.GlyphSpacing)
}

// Offset returns the top-left module of the mask when centered inside the
// zone, leftover space floor-halved on each axis
func Offset(zone models.Rect, mask models.Mask) (row, col int) {
	row = zone.RowStart + (zone.Height()-mask.Height())/2
	col = zone.ColStart + (zone.Width()-mask.Width())/2
	return row, col
}

// Embed returns a copy of the matrix with the mask written into the zone:
// dark pixels become dark modules, the rest of the mask footprint becomes
// light, and a one-module light halo is cleared around the label where the
// zone allows. The input matrix is never mutated.
func Embed(matrix models.Matrix, zone models.Rect, mask models.Mask) models.Matrix {
	out := matrix.Clone()
	if mask.Height() == 0 || mask.Width() == 0 {
		return out
	}

	offRow, offCol := Offset(zone, mask)

	clearTop := max(offRow-constants.LabelPadding, zone.RowStart)
	clearBottom := min(offRow+mask.Height()-1+constants.LabelPadding, zone.RowEnd)
	clearLeft := max(offCol-constants.LabelPadding, zone.ColStart)
	clearRight := min(offCol+mask.Width()-1+constants.LabelPadding, zone.ColEnd)
	for r := clearTop; r <= clearBottom; r++ {
		for c := clearLeft; c <= clearRight; c++ {
			out[r][c] = false
		}
	}

	for r := 0; r < mask.Height(); r++ {
		for c := 0; c < mask.Width(); c++ {
			out[offRow+r][offCol+c] = mask[r][c]
		}
	}
	return out
}
