// Package colmajor provides the column-major ravel/reshape/transpose
// primitives the SDA wire format requires, independent of any numeric
// array library. HDF5 datasets store data in C (row-major) order; SDA's
// on-disk convention layers a MATLAB-compatible column-major view on top
// of that for 2-D arrays (via transpose) and for N-D flattening (via
// explicit column-major ravel). See spec.md Design Notes.
package colmajor

// Strides returns the row-major (C-order) strides for shape.
func Strides(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= shape[i]
	}
	return strides
}

// Count returns the total number of elements described by shape.
func Count(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}

// unravelColumnMajor converts a flat column-major (Fortran) index into a
// multi-index for the given shape.
func unravelColumnMajor(flat int, shape []int) []int {
	idx := make([]int, len(shape))
	for i := 0; i < len(shape); i++ {
		idx[i] = flat % shape[i]
		flat /= shape[i]
	}
	return idx
}

// ravelIndexRowMajor converts a multi-index into a flat row-major (C) index.
func ravelIndexRowMajor(idx []int, strides []int) int {
	flat := 0
	for i, s := range strides {
		flat += idx[i] * s
	}
	return flat
}

// RavelColumnMajor takes data laid out in row-major (C) order matching
// shape and returns a new slice holding the same elements in column-major
// (Fortran) order. This is the operation numpy's `ravel(order='F')`
// performs, used for dense complex arrays and object arrays/cells.
func RavelColumnMajor[T any](data []T, shape []int) []T {
	n := Count(shape)
	out := make([]T, n)
	strides := Strides(shape)
	for flat := 0; flat < n; flat++ {
		idx := unravelColumnMajor(flat, shape)
		out[flat] = data[ravelIndexRowMajor(idx, strides)]
	}
	return out
}

// UnravelColumnMajor takes data laid out in column-major (Fortran) order
// for the given shape and returns the equivalent row-major (C) ordering.
// It is the inverse of RavelColumnMajor.
func UnravelColumnMajor[T any](data []T, shape []int) []T {
	n := Count(shape)
	out := make([]T, n)
	strides := Strides(shape)
	for flat := 0; flat < n; flat++ {
		idx := unravelColumnMajor(flat, shape)
		out[ravelIndexRowMajor(idx, strides)] = data[flat]
	}
	return out
}

// RavelIndexColumnMajor converts a multi-index into a flat column-major
// index for shape, i.e. the inverse of UnravelIndexColumnMajor.
func RavelIndexColumnMajor(idx []int, shape []int) int {
	flat := 0
	stride := 1
	for i := 0; i < len(shape); i++ {
		flat += idx[i] * stride
		stride *= shape[i]
	}
	return flat
}

// UnravelIndexColumnMajor converts a flat column-major index into a
// multi-index for shape. Used to recover (row, col) from a sparse-complex
// record's stored flat index.
func UnravelIndexColumnMajor(flat int, shape []int) []int {
	return unravelColumnMajor(flat, shape)
}

// Transpose2D transposes a row-major rows x cols matrix into a row-major
// cols x rows matrix. This implements the MATLAB on-disk transpose
// convention applied to every 2-D numeric/logical/character dataset.
func Transpose2D[T any](data []T, rows, cols int) []T {
	return ReverseAxes(data, []int{rows, cols})
}

// ReverseAxes permutes data, logically shaped as shape and stored
// row-major, into the row-major layout of its axis-reversed shape. For
// rank 2 this is an ordinary matrix transpose; numpy's ndarray.T applies
// the same reversal at any rank, which is what the reference toolbox
// relies on when writing a dense array with more than two dimensions.
func ReverseAxes[T any](data []T, shape []int) []T {
	n := len(shape)
	revShape := make([]int, n)
	for i, d := range shape {
		revShape[n-1-i] = d
	}
	strides := Strides(shape)
	revStrides := Strides(revShape)

	out := make([]T, len(data))
	idx := make([]int, n)
	for flat := range data {
		rem := flat
		for i, s := range strides {
			idx[i] = rem / s
			rem %= s
		}
		dest := 0
		for i, v := range idx {
			dest += v * revStrides[n-1-i]
		}
		out[dest] = data[flat]
	}
	return out
}

// AtLeast2D returns the shape padded on the left with 1s until it has at
// least two dimensions, mirroring numpy's atleast_2d semantics for the
// shapes SDA deals with (scalars and vectors). A shape of rank 3 or more
// is collapsed to (shape[0], product of the remaining dimensions).
func AtLeast2D(shape []int) (rows, cols int) {
	switch len(shape) {
	case 0:
		return 1, 1
	case 1:
		return 1, shape[0]
	default:
		rows, cols = shape[0], 1
		for _, d := range shape[1:] {
			cols *= d
		}
		return rows, cols
	}
}

// AtLeast2DShape pads shape on the left with a single 1 when its rank is
// less than 2, and returns ranks 2 and above unchanged. Unlike AtLeast2D it
// never collapses higher ranks down to two dimensions, since ReverseAxes
// needs the real rank to reverse every axis, not just the first two.
func AtLeast2DShape(shape []int) []int {
	switch len(shape) {
	case 0:
		return []int{1, 1}
	case 1:
		return []int{1, shape[0]}
	default:
		out := make([]int, len(shape))
		copy(out, shape)
		return out
	}
}

// ReduceShape undoes AtLeast2D+transpose on read: a 2-D row array (shape
// (1, N)) or column array (shape (N, 1)) squeezes to a 1-D array of
// length N, and a (1, 1) array scalarizes further. Returns the reduced
// shape; an empty slice means scalar.
func ReduceShape(rows, cols int) []int {
	if rows == 1 {
		if cols == 1 {
			return nil
		}
		return []int{cols}
	}
	if cols == 1 {
		return []int{rows}
	}
	return []int{rows, cols}
}
