package models

// Matrix represents a square QR module grid, true marking a dark module
type Matrix [][]bool

// NewMatrix creates an all-light matrix of the given side length
func NewMatrix(size int) Matrix {
	m := make(Matrix, size)
	for i := range m {
		m[i] = make([]bool, size)
	}
	return m
}

// Size returns the side length of the matrix
func (m Matrix) Size() int {
	return len(m)
}

// Clone returns a deep copy of the matrix
func (m Matrix) Clone() Matrix {
	c := make(Matrix, len(m))
	for i, row := range m {
		c[i] = make([]bool, len(row))
		copy(c[i], row)
	}
	return c
}

// Rect is a rectangular region of modules with inclusive bounds
type Rect struct {
	RowStart int
	RowEnd   int
	ColStart int
	ColEnd   int
}

// Width returns the number of columns the rectangle spans
func (r Rect) Width() int {
	w := r.ColEnd - r.ColStart + 1
	if w < 0 {
		return 0
	}
	return w
}

// Height returns the number of rows the rectangle spans
func (r Rect) Height() int {
	h := r.RowEnd - r.RowStart + 1
	if h < 0 {
		return 0
	}
	return h
}

// Area returns the number of modules the rectangle covers
func (r Rect) Area() int {
	return r.Width() * r.Height()
}

// Mask is a pixel grid for a rendered label, true marking a dark pixel
type Mask [][]bool

// Width returns the pixel width of the mask
func (m Mask) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Height returns the pixel height of the mask
func (m Mask) Height() int {
	return len(m)
}
