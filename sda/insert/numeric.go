package insert

import (
	"github.com/archivekit/sda/internal/colmajor"
	"github.com/archivekit/sda/internal/h5io"
	"github.com/archivekit/sda/sda/record"
	"github.com/archivekit/sda/sda/value"
)

// numericArrayInserter handles every dense real numeric input: scalars,
// []T, [][]T, and Array[T] for the ten supported integer/float widths.
// Per SPEC_FULL.md §4, scalar dispatch is not a separate code path: a bare
// int32 decomposes to a nil-shape dense value and runs through the same
// atleast_2d-and-transpose pipeline as an array.
type numericArrayInserter struct{}

func (numericArrayInserter) Kind() record.Kind { return record.Numeric }

func (numericArrayInserter) CanInsert(v any) bool {
	if isCharArray(v) {
		return false
	}
	d, err := decomposeDense(v)
	if err != nil && err != ErrRaggedArray {
		return false
	}
	return numericKinds[d.kind]
}

func (numericArrayInserter) Prepare(v any, deflate int) (Prepared, error) {
	d, err := decomposeDense(v)
	if err != nil {
		return Prepared{}, err
	}
	shape2 := colmajor.AtLeast2DShape(d.shape)
	onDisk := reverseAxesAny(d.flat, shape2, d.kind)
	onDiskShape := make([]int, len(shape2))
	for i, dd := range shape2 {
		onDiskShape[len(shape2)-1-i] = dd
	}

	size := colmajor.Count(d.shape)
	empty := size == 0 || (size == 1 && isAllNaN(d.flat, d.kind))

	return Prepared{
		GroupAttrs: map[string]any{
			"RecordType": "numeric",
			"Empty":      yesNo(empty),
			"Deflate":    deflate,
		},
		Dataset: &Dataset{
			DType: dtypeOfKind(d.kind),
			Shape: onDiskShape,
			Flat:  onDisk,
			Attrs: map[string]any{
				"RecordType": "numeric",
				"Empty":      yesNo(empty),
				"Complex":    "no",
				"Sparse":     "no",
			},
		},
	}, nil
}

func (numericArrayInserter) Children(v any) ([]Child, error) { return nil, nil }

// numericComplexInserter handles dense complex128/complex64 scalars,
// slices, and Array[complex64|complex128], splitting into the 2xN
// real/imaginary row pair spec.md §4.2 requires.
type numericComplexInserter struct{}

func (numericComplexInserter) Kind() record.Kind { return record.Numeric }

func (numericComplexInserter) CanInsert(v any) bool {
	d, err := decomposeDense(v)
	if err != nil && err != ErrRaggedArray {
		return false
	}
	return complexKinds[d.kind]
}

func (numericComplexInserter) Prepare(v any, deflate int) (Prepared, error) {
	d, err := decomposeDense(v)
	if err != nil {
		return Prepared{}, err
	}
	shape2 := colmajor.AtLeast2DShape(d.shape)
	ravelled := ravelColumnMajorComplex(d.flat, shape2, d.kind)
	n := len(ravelled)

	flat := make([]float64, 2*n)
	for i, c := range ravelled {
		flat[i] = real(c)
		flat[n+i] = imag(c)
	}

	size := colmajor.Count(d.shape)
	empty := size == 0 || (size == 1 && isNaNComplex(ravelled[0]))

	return Prepared{
		GroupAttrs: map[string]any{
			"RecordType": "numeric",
			"Empty":      yesNo(empty),
			"Deflate":    deflate,
		},
		Dataset: &Dataset{
			DType: h5io.Float64,
			Shape: []int{2, n},
			Flat:  flat,
			Attrs: map[string]any{
				"RecordType": "numeric",
				"Empty":      yesNo(empty),
				"Complex":    "yes",
				"Sparse":     "no",
				"ArraySize":  shape2,
			},
		},
	}, nil
}

func (numericComplexInserter) Children(v any) ([]Child, error) { return nil, nil }

func isNaNComplex(c complex128) bool {
	r, i := real(c), imag(c)
	return r != r && i != i
}

// sparseInserter handles real-valued COO sparse matrices, stored as a
// 3xN [row+1, col+1, value] dataset per spec.md §4.2. No ArraySize is
// stored; extraction infers the matrix bounds from the stored indices.
type sparseInserter struct{}

func (sparseInserter) Kind() record.Kind { return record.Numeric }

func (sparseInserter) CanInsert(v any) bool {
	_, ok := v.(value.Sparse)
	return ok
}

func (sparseInserter) Prepare(v any, deflate int) (Prepared, error) {
	s, ok := v.(value.Sparse)
	if !ok {
		return Prepared{}, ErrUnsupportedType
	}
	n := len(s.Values)
	flat := make([]float64, 3*n)
	for i, r := range s.Rows {
		flat[i] = float64(r + 1)
	}
	for i, c := range s.Cols {
		flat[n+i] = float64(c + 1)
	}
	copy(flat[2*n:], s.Values)

	empty := n == 0
	return Prepared{
		GroupAttrs: map[string]any{
			"RecordType": "numeric",
			"Empty":      yesNo(empty),
			"Deflate":    deflate,
		},
		Dataset: &Dataset{
			DType: h5io.Float64,
			Shape: []int{3, n},
			Flat:  flat,
			Attrs: map[string]any{
				"RecordType": "numeric",
				"Empty":      yesNo(empty),
				"Complex":    "no",
				"Sparse":     "yes",
			},
		},
	}, nil
}

func (sparseInserter) Children(v any) ([]Child, error) { return nil, nil }

// sparseComplexInserter handles complex-valued COO sparse matrices,
// stored as a 3xN [flat_index+1, real, imag] dataset, flat_index being
// the column-major-unraveled (row, col) position. ArraySize preserves
// the original matrix shape, since the flat index alone can't recover it.
type sparseComplexInserter struct{}

func (sparseComplexInserter) Kind() record.Kind { return record.Numeric }

func (sparseComplexInserter) CanInsert(v any) bool {
	_, ok := v.(value.SparseComplex)
	return ok
}

func (sparseComplexInserter) Prepare(v any, deflate int) (Prepared, error) {
	s, ok := v.(value.SparseComplex)
	if !ok {
		return Prepared{}, ErrUnsupportedType
	}
	n := len(s.Values)
	shape := []int{s.Shape[0], s.Shape[1]}
	flat := make([]float64, 3*n)
	for i := 0; i < n; i++ {
		idx := colmajor.RavelIndexColumnMajor([]int{s.Rows[i], s.Cols[i]}, shape)
		flat[i] = float64(idx + 1)
		flat[n+i] = real(s.Values[i])
		flat[2*n+i] = imag(s.Values[i])
	}

	empty := n == 0
	return Prepared{
		GroupAttrs: map[string]any{
			"RecordType": "numeric",
			"Empty":      yesNo(empty),
			"Deflate":    deflate,
		},
		Dataset: &Dataset{
			DType: h5io.Float64,
			Shape: []int{3, n},
			Flat:  flat,
			Attrs: map[string]any{
				"RecordType": "numeric",
				"Empty":      yesNo(empty),
				"Complex":    "yes",
				"Sparse":     "yes",
				"ArraySize":  shape,
			},
		},
	}, nil
}

func (sparseComplexInserter) Children(v any) ([]Child, error) { return nil, nil }
