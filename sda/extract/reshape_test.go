package extract

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/archivekit/sda/sda/value"
)

// Package-internal: reshape.go's helpers are unexported and only
// reachable from decodeNumericDataset, so they're exercised directly
// here rather than through a full archive round trip.

func TestReverseAxesAnyInvertsOnDiskLayout(t *testing.T) {
	onDisk := []float64{1, 4, 2, 5, 3, 6} // 3x2 on-disk dataset
	logical, kind := reverseAxesAny(onDisk, []int{3, 2})
	assert.Equal(t, reflect.Float64, kind)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, logical.([]float64))
}

func TestReduceRank2SquashesRowArray(t *testing.T) {
	assert.Nil(t, reduceRank2([]int{1, 1}))
	assert.Equal(t, []int{5}, reduceRank2([]int{1, 5}))
	assert.Equal(t, []int{5}, reduceRank2([]int{5, 1}))
	assert.Equal(t, []int{2, 3}, reduceRank2([]int{2, 3}))
}

func TestBuildResultDispatchesByRank(t *testing.T) {
	assert.Equal(t, 7.0, buildResult([]float64{7}, nil))
	assert.Equal(t, []float64{1, 2, 3}, buildResult([]float64{1, 2, 3}, []int{3}))

	arr := buildResult([]float64{1, 2, 3, 4}, []int{2, 2})
	assert.Equal(t, value.Array[float64]{Shape: []int{2, 2}, Data: []float64{1, 2, 3, 4}}, arr)
}

func TestNumericResultScalarReduction(t *testing.T) {
	got := numericResult([]float64{3.5}, nil, reflect.Float64)
	assert.Equal(t, 3.5, got)
}
