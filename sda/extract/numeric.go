package extract

import (
	"github.com/archivekit/sda/internal/colmajor"
	"github.com/archivekit/sda/internal/h5io"
	"github.com/archivekit/sda/sda/value"
)

// decodeNumericDataset reads ds and reverses whichever of the four
// numeric write pipelines (insert/numeric.go) produced it, dispatching on
// the dataset's own Complex/Sparse attributes.
func decodeNumericDataset(ds *h5io.Dataset) (any, error) {
	attrs, err := ds.GetAttrs()
	if err != nil {
		return nil, err
	}
	complexFlag := attrString(attrs, "Complex") == "yes"
	sparseFlag := attrString(attrs, "Sparse") == "yes"

	switch {
	case sparseFlag && complexFlag:
		return decodeSparseComplex(ds, attrs)
	case sparseFlag:
		return decodeSparse(ds)
	case complexFlag:
		return decodeComplex(ds, attrs)
	default:
		return decodeDenseReal(ds)
	}
}

// decodeDenseReal inverts numericArrayInserter: atleast_2d-shape then
// axis-reversal on write, axis-reversal then row-array-squeeze on read.
func decodeDenseReal(ds *h5io.Dataset) (any, error) {
	onDiskShape, err := ds.Shape()
	if err != nil {
		return nil, err
	}
	raw, err := ds.Read()
	if err != nil {
		return nil, err
	}
	logical, kind := reverseAxesAny(raw, onDiskShape)
	shape := reduceRank2(reverseIntSlice(onDiskShape))
	return numericResult(logical, shape, kind), nil
}

// decodeComplex inverts numericComplexInserter's 2xN real/imaginary row
// split, unraveling the column-major flattening ArraySize records back to
// the original shape.
func decodeComplex(ds *h5io.Dataset, attrs map[string]any) (any, error) {
	raw, err := ds.Read()
	if err != nil {
		return nil, err
	}
	flat := raw.([]float64)
	n := len(flat) / 2
	c := make([]complex128, n)
	for i := 0; i < n; i++ {
		c[i] = complex(flat[i], flat[n+i])
	}

	arraySize := attrIntSlice(attrs, "ArraySize")
	unravelled := colmajor.UnravelColumnMajor(c, arraySize)
	shape := reduceRank2(arraySize)

	switch len(shape) {
	case 0:
		return unravelled[0], nil
	case 1:
		return append([]complex128(nil), unravelled...), nil
	default:
		return value.Array[complex128]{Shape: append([]int(nil), shape...), Data: unravelled}, nil
	}
}

// decodeSparse inverts sparseInserter's 3xN [row+1, col+1, value] layout.
// ArraySize is never stored for real sparse records; bounds are inferred
// from the maximum stored index, per spec.md §4.2.
func decodeSparse(ds *h5io.Dataset) (any, error) {
	raw, err := ds.Read()
	if err != nil {
		return nil, err
	}
	flat := raw.([]float64)
	n := len(flat) / 3
	rows := make([]int, n)
	cols := make([]int, n)
	values := make([]float64, n)
	maxRow, maxCol := 0, 0
	for i := 0; i < n; i++ {
		r := int(flat[i]) - 1
		c := int(flat[n+i]) - 1
		rows[i] = r
		cols[i] = c
		values[i] = flat[2*n+i]
		if r+1 > maxRow {
			maxRow = r + 1
		}
		if c+1 > maxCol {
			maxCol = c + 1
		}
	}
	return value.Sparse{Shape: [2]int{maxRow, maxCol}, Rows: rows, Cols: cols, Values: values}, nil
}

// decodeSparseComplex inverts sparseComplexInserter's 3xN
// [flat_index+1, real, imag] layout, unraveling flat_index against the
// stored ArraySize to recover (row, col).
func decodeSparseComplex(ds *h5io.Dataset, attrs map[string]any) (any, error) {
	raw, err := ds.Read()
	if err != nil {
		return nil, err
	}
	flat := raw.([]float64)
	n := len(flat) / 3
	shapeAttr := attrIntSlice(attrs, "ArraySize")
	shape := [2]int{shapeAttr[0], shapeAttr[1]}

	rows := make([]int, n)
	cols := make([]int, n)
	values := make([]complex128, n)
	for i := 0; i < n; i++ {
		idx := colmajor.UnravelIndexColumnMajor(int(flat[i])-1, shapeAttr)
		rows[i] = idx[0]
		cols[i] = idx[1]
		values[i] = complex(flat[n+i], flat[2*n+i])
	}
	return value.SparseComplex{Shape: shape, Rows: rows, Cols: cols, Values: values}, nil
}
