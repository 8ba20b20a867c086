package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectDimensions(t *testing.T) {
	r := Rect{RowStart: 2, RowEnd: 6, ColStart: 3, ColEnd: 10}
	assert.Equal(t, 8, r.Width())
	assert.Equal(t, 5, r.Height())
	assert.Equal(t, 40, r.Area())
}

func TestRectZeroArea(t *testing.T) {
	r := Rect{RowStart: 0, RowEnd: -1, ColStart: 0, ColEnd: -1}
	assert.Equal(t, 0, r.Width())
	assert.Equal(t, 0, r.Height())
	assert.Equal(t, 0, r.Area())
}

func TestMatrixClone(t *testing.T) {
	m := NewMatrix(4)
	m[1][2] = true

	c := m.Clone()
	assert.Equal(t, m, c)

	c[1][2] = false
	assert.True(t, m[1][2], "clone must not share storage with the original")
	assert.Equal(t, 4, m.Size())
}

func TestMaskDimensions(t *testing.T) {
	var empty Mask
	assert.Equal(t, 0, empty.Width())
	assert.Equal(t, 0, empty.Height())

	m := Mask{{true, false, true}, {false, true, false}}
	assert.Equal(t, 3, m.Width())
	assert.Equal(t, 2, m.Height())
}
