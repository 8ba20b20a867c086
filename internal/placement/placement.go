// Package placement computes where a label can be burned into a QR module
// grid without touching the structural patterns decoders depend on.
package placement

import (
	"qr-supercharge/internal/models"
)

// alignmentCenters lists the alignment pattern center coordinates per QR
// version. Centers pair row x col over the same list; the three combinations
// overlapping finder patterns are skipped when marking cells.
var alignmentCenters = [41][]int{
	2:  {6, 18},
	3:  {6, 22},
	4:  {6, 26},
	5:  {6, 30},
	6:  {6, 34},
	7:  {6, 22, 38},
	8:  {6, 24, 42},
	9:  {6, 26, 46},
	10: {6, 28, 50},
	11: {6, 30, 54},
	12: {6, 32, 58},
	13: {6, 34, 62},
	14: {6, 26, 46, 66},
	15: {6, 26, 48, 70},
	16: {6, 26, 50, 74},
	17: {6, 30, 54, 78},
	18: {6, 30, 56, 82},
	19: {6, 30, 58, 86},
	20: {6, 34, 62, 90},
	21: {6, 28, 50, 72, 94},
	22: {6, 26, 50, 74, 98},
	23: {6, 30, 54, 78, 102},
	24: {6, 28, 54, 80, 106},
	25: {6, 32, 58, 84, 110},
	26: {6, 30, 58, 86, 114},
	27: {6, 34, 62, 90, 118},
	28: {6, 26, 50, 74, 98, 122},
	29: {6, 30, 54, 78, 102, 126},
	30: {6, 26, 52, 78, 104, 130},
	31: {6, 30, 56, 82, 108, 134},
	32: {6, 34, 60, 86, 112, 138},
	33: {6, 30, 58, 86, 114, 142},
	34: {6, 34, 62, 90, 118, 146},
	35: {6, 30, 54, 78, 102, 126, 150},
	36: {6, 24, 50, 76, 102, 128, 154},
	37: {6, 28, 54, 80, 106, 132, 158},
	38: {6, 32, 58, 84, 110, 136, 162},
	39: {6, 26, 54, 82, 110, 138, 166},
	40: {6, 30, 58, 86, 114, 142, 170},
}

// MatrixSize returns the module side length for a QR version
func MatrixSize(version int) int {
	return 4*version + 17
}

// AlignmentCenters returns the alignment pattern center coordinates for a
// version, nil for version 1
func AlignmentCenters(version int) []int {
	if version < 2 || version >= len(alignmentCenters) {
		return nil
	}
	return alignmentCenters[version]
}

// Occupied marks every module that belongs to a structural pattern for the
// given version: finder patterns with their separators (the 9x9 corner
// blocks, which also cover the format information strips), the two timing
// lines, alignment patterns, the dark module, and for versions >= 7 the two
// version information blocks.
func Occupied(version int) [][]bool {
	n := MatrixSize(version)
	occ := make([][]bool, n)
	for i := range occ {
		occ[i] = make([]bool, n)
	}

	markRect := func(r0, r1, c0, c1 int) {
		for r := r0; r <= r1; r++ {
			if r < 0 || r >= n {
				continue
			}
			for c := c0; c <= c1; c++ {
				if c >= 0 && c < n {
					occ[r][c] = true
				}
			}
		}
	}

	// Finder corners with separator and format strips
	markRect(0, 8, 0, 8)
	markRect(0, 8, n-8, n-1)
	markRect(n-8, n-1, 0, 8)

	// Timing patterns, row and column 6
	markRect(6, 6, 0, n-1)
	markRect(0, n-1, 6, 6)

	// Alignment patterns, 5x5 around each center pair
	centers := AlignmentCenters(version)
	for _, cr := range centers {
		for _, cc := range centers {
			if overlapsFinder(cr, cc, n) {
				continue
			}
			markRect(cr-2, cr+2, cc-2, cc+2)
		}
	}

	// Dark module
	occ[n-8][8] = true

	// Version information blocks
	if version >= 7 {
		markRect(0, 5, n-11, n-9)
		markRect(n-11, n-9, 0, 5)
	}

	return occ
}

// overlapsFinder reports whether an alignment center lands on a finder corner
func overlapsFinder(row, col, n int) bool {
	return (row <= 8 && col <= 8) ||
		(row <= 8 && col >= n-8) ||
		(row >= n-8 && col <= 8)
}

// SafeZone returns the largest axis-aligned rectangle of modules that is
// clear of every structural pattern at the given version. Ties on area are
// broken toward the wider rectangle, then the lower band of the matrix,
// then the horizontal center, so placement stays deterministic and favors
// the horizontal band below the timing row where labels read best. A
// rectangle with zero area means no placement is possible.
func SafeZone(version int) models.Rect {
	occ := Occupied(version)
	n := len(occ)

	// heights[j] = run of consecutive free cells ending at the current row
	heights := make([]int, n)

	best := models.Rect{RowStart: 0, RowEnd: -1, ColStart: 0, ColEnd: -1}
	bestArea := 0

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if occ[i][j] {
				heights[j] = 0
			} else {
				heights[j]++
			}
		}

		for j := 0; j < n; j++ {
			if heights[j] == 0 {
				continue
			}
			minH := heights[j]
			for k := j; k >= 0 && heights[k] > 0; k-- {
				if heights[k] < minH {
					minH = heights[k]
				}
				cand := models.Rect{
					RowStart: i - minH + 1,
					RowEnd:   i,
					ColStart: k,
					ColEnd:   j,
				}
				if better(cand, best, bestArea, n) {
					best = cand
					bestArea = cand.Area()
				}
			}
		}
	}

	return best
}

// better ranks candidate rectangles: larger area first, then the wider
// one, then the lower center row, then the center column nearest the
// matrix middle.
func better(cand, best models.Rect, bestArea, n int) bool {
	area := cand.Area()
	if area != bestArea {
		return area > bestArea
	}
	if cand.Width() != best.Width() {
		return cand.Width() > best.Width()
	}
	// Center row doubled to stay in integers
	candRow := cand.RowStart + cand.RowEnd
	bestRow := best.RowStart + best.RowEnd
	if candRow != bestRow {
		return candRow > bestRow
	}
	candOff := abs(cand.ColStart + cand.ColEnd - (n - 1))
	bestOff := abs(best.ColStart + best.ColEnd - (n - 1))
	return candOff < bestOff
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
