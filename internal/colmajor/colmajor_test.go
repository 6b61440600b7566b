package colmajor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archivekit/sda/internal/colmajor"
)

func TestRavelUnravelColumnMajorRoundTrip(t *testing.T) {
	shape := []int{2, 3}
	rowMajor := []int{1, 2, 3, 4, 5, 6} // logical [[1,2,3],[4,5,6]]

	colMajor := colmajor.RavelColumnMajor(rowMajor, shape)
	// Column-major order for a 2x3 matrix reads down each column first.
	assert.Equal(t, []int{1, 4, 2, 5, 3, 6}, colMajor)

	back := colmajor.UnravelColumnMajor(colMajor, shape)
	assert.Equal(t, rowMajor, back)
}

func TestRavelIndexColumnMajorRoundTrip(t *testing.T) {
	shape := []int{5, 5}
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			idx := colmajor.RavelIndexColumnMajor([]int{row, col}, shape)
			back := colmajor.UnravelIndexColumnMajor(idx, shape)
			require.Equal(t, []int{row, col}, back)
		}
	}
}

func TestReverseAxesIsInvolutive(t *testing.T) {
	shape := []int{2, 3}
	data := []int{1, 2, 3, 4, 5, 6}
	reversed := colmajor.ReverseAxes(data, shape)
	assert.Equal(t, []int{1, 4, 2, 5, 3, 6}, reversed)

	revShape := []int{3, 2}
	back := colmajor.ReverseAxes(reversed, revShape)
	assert.Equal(t, data, back)
}

func TestTranspose2DMatchesReverseAxes(t *testing.T) {
	data := []int{1, 2, 3, 4, 5, 6}
	assert.Equal(t, colmajor.ReverseAxes(data, []int{2, 3}), colmajor.Transpose2D(data, 2, 3))
}

func TestAtLeast2D(t *testing.T) {
	rows, cols := colmajor.AtLeast2D(nil)
	assert.Equal(t, 1, rows)
	assert.Equal(t, 1, cols)

	rows, cols = colmajor.AtLeast2D([]int{5})
	assert.Equal(t, 1, rows)
	assert.Equal(t, 5, cols)

	rows, cols = colmajor.AtLeast2D([]int{2, 3, 4})
	assert.Equal(t, 2, rows)
	assert.Equal(t, 12, cols)
}

func TestAtLeast2DShapeNeverCollapsesHigherRanks(t *testing.T) {
	assert.Equal(t, []int{1, 1}, colmajor.AtLeast2DShape(nil))
	assert.Equal(t, []int{1, 5}, colmajor.AtLeast2DShape([]int{5}))
	assert.Equal(t, []int{2, 3, 4}, colmajor.AtLeast2DShape([]int{2, 3, 4}))
}

func TestReduceShape(t *testing.T) {
	assert.Nil(t, colmajor.ReduceShape(1, 1))
	assert.Equal(t, []int{5}, colmajor.ReduceShape(1, 5))
	assert.Equal(t, []int{3, 2}, colmajor.ReduceShape(3, 2))
}

func TestCount(t *testing.T) {
	assert.Equal(t, 1, colmajor.Count(nil))
	assert.Equal(t, 24, colmajor.Count([]int{2, 3, 4}))
}
