package extract

import (
	"reflect"

	"github.com/archivekit/sda/internal/colmajor"
	"github.com/archivekit/sda/sda/value"
)

// reverseAxesAny inverts the on-disk axis reversal insert/value.go applied
// on write, dispatching on the dataset's concrete element kind since
// colmajor.ReverseAxes needs its type parameter at compile time. Returns
// the data row-major in the reverse of onDiskShape (the pre-storage,
// atleast_2d'd logical shape) alongside that element kind.
func reverseAxesAny(raw any, onDiskShape []int) (any, reflect.Kind) {
	rv := reflect.ValueOf(raw)
	kind := rv.Type().Elem().Kind()
	switch kind {
	case reflect.Int8:
		return colmajor.ReverseAxes(raw.([]int8), onDiskShape), kind
	case reflect.Int16:
		return colmajor.ReverseAxes(raw.([]int16), onDiskShape), kind
	case reflect.Int32:
		return colmajor.ReverseAxes(raw.([]int32), onDiskShape), kind
	case reflect.Int64:
		return colmajor.ReverseAxes(raw.([]int64), onDiskShape), kind
	case reflect.Uint8:
		return colmajor.ReverseAxes(raw.([]uint8), onDiskShape), kind
	case reflect.Uint16:
		return colmajor.ReverseAxes(raw.([]uint16), onDiskShape), kind
	case reflect.Uint32:
		return colmajor.ReverseAxes(raw.([]uint32), onDiskShape), kind
	case reflect.Uint64:
		return colmajor.ReverseAxes(raw.([]uint64), onDiskShape), kind
	case reflect.Float32:
		return colmajor.ReverseAxes(raw.([]float32), onDiskShape), kind
	default:
		return colmajor.ReverseAxes(raw.([]float64), onDiskShape), kind
	}
}

// reverseIntSlice returns shape with its dimensions reversed.
func reverseIntSlice(shape []int) []int {
	out := make([]int, len(shape))
	for i, d := range shape {
		out[len(shape)-1-i] = d
	}
	return out
}

// reduceRank2 undoes atleast_2d on a rank-2 shape via colmajor.ReduceShape
// (row- and column-array squeeze-on-read); ranks other than 2 were never padded on
// write and pass through unchanged.
func reduceRank2(shape []int) []int {
	if len(shape) == 2 {
		return colmajor.ReduceShape(shape[0], shape[1])
	}
	return shape
}

// numericResult builds the extracted Go value for a reduced shape: a bare
// scalar, a flat slice, or an sda.Array[T] carrier, dispatching on the
// dataset's element kind.
func numericResult(logical any, shape []int, kind reflect.Kind) any {
	switch kind {
	case reflect.Int8:
		return buildResult(logical.([]int8), shape)
	case reflect.Int16:
		return buildResult(logical.([]int16), shape)
	case reflect.Int32:
		return buildResult(logical.([]int32), shape)
	case reflect.Int64:
		return buildResult(logical.([]int64), shape)
	case reflect.Uint8:
		return buildResult(logical.([]uint8), shape)
	case reflect.Uint16:
		return buildResult(logical.([]uint16), shape)
	case reflect.Uint32:
		return buildResult(logical.([]uint32), shape)
	case reflect.Uint64:
		return buildResult(logical.([]uint64), shape)
	case reflect.Float32:
		return buildResult(logical.([]float32), shape)
	default:
		return buildResult(logical.([]float64), shape)
	}
}

func buildResult[T any](data []T, shape []int) any {
	switch len(shape) {
	case 0:
		return data[0]
	case 1:
		return append([]T(nil), data...)
	default:
		return value.Array[T]{Shape: append([]int(nil), shape...), Data: data}
	}
}
