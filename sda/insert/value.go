package insert

import (
	"errors"
	"reflect"

	"github.com/archivekit/sda/internal/colmajor"
	"github.com/archivekit/sda/internal/h5io"
)

// dense is the decomposed form of a scalar, []T, [][]T, or sda.Array[T]
// input: its logical row-major shape plus a reflect.Value over the flat
// element slice (concrete type []int8, []float64, []complex128, ...).
// shape is nil for a scalar.
type dense struct {
	shape []int
	kind  reflect.Kind
	flat  reflect.Value
}

var numericKinds = map[reflect.Kind]bool{
	reflect.Int8: true, reflect.Int16: true, reflect.Int32: true, reflect.Int64: true,
	reflect.Uint8: true, reflect.Uint16: true, reflect.Uint32: true, reflect.Uint64: true,
	reflect.Float32: true, reflect.Float64: true,
}

var complexKinds = map[reflect.Kind]bool{
	reflect.Complex64: true, reflect.Complex128: true,
}

// errNotDense means v's shape/type is not one decomposeDense recognizes
// at all (as opposed to ErrRaggedArray, which means it recognized a
// [][]T by type but its rows disagree on length). CanInsert treats only
// errNotDense as "not mine"; ErrRaggedArray is claimed so Prepare can
// report it instead of the input silently falling through to the
// registry's generic ErrUnsupportedType.
var errNotDense = errors.New("insert: not a dense numeric/complex value")

// decomposeDense recognizes a numeric/complex scalar, a []T slice, a
// rectangular [][]T slice, or any struct exposing Shape []int and Data []T
// fields (the shape every sda.Array[T] instantiation has — inspected
// structurally since a type parameter can't be reflected over directly).
func decomposeDense(v any) (dense, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return dense{}, errNotDense
	}

	if rv.Kind() == reflect.Struct {
		return decomposeArrayStruct(rv)
	}

	if isNumericOrComplexKind(rv.Kind()) {
		flat := reflect.MakeSlice(reflect.SliceOf(rv.Type()), 1, 1)
		flat.Index(0).Set(rv)
		return dense{shape: nil, kind: rv.Kind(), flat: flat}, nil
	}

	if rv.Kind() != reflect.Slice {
		return dense{}, errNotDense
	}
	elemType := rv.Type().Elem()
	if elemType.Kind() == reflect.Slice {
		return decompose2D(rv)
	}
	if !isNumericOrComplexKind(elemType.Kind()) {
		return dense{}, errNotDense
	}
	return dense{shape: []int{rv.Len()}, kind: elemType.Kind(), flat: rv}, nil
}

func isNumericOrComplexKind(k reflect.Kind) bool {
	return numericKinds[k] || complexKinds[k]
}

func decomposeArrayStruct(rv reflect.Value) (dense, error) {
	shapeField := rv.FieldByName("Shape")
	dataField := rv.FieldByName("Data")
	if !shapeField.IsValid() || !dataField.IsValid() {
		return dense{}, errNotDense
	}
	if shapeField.Kind() != reflect.Slice || shapeField.Type().Elem().Kind() != reflect.Int {
		return dense{}, errNotDense
	}
	if dataField.Kind() != reflect.Slice || !isNumericOrComplexKind(dataField.Type().Elem().Kind()) {
		return dense{}, errNotDense
	}
	shape := make([]int, shapeField.Len())
	for i := range shape {
		shape[i] = int(shapeField.Index(i).Int())
	}
	return dense{shape: shape, kind: dataField.Type().Elem().Kind(), flat: dataField}, nil
}

// decompose2D recognizes a [][]T slice by element type alone: a row
// length mismatch still reports the element kind (so CanInsert can claim
// the value) but returns ErrRaggedArray rather than silently producing a
// garbage flattening.
func decompose2D(rv reflect.Value) (dense, error) {
	rows := rv.Len()
	elemType := rv.Type().Elem().Elem()
	if !isNumericOrComplexKind(elemType.Kind()) {
		return dense{}, errNotDense
	}
	cols := 0
	if rows > 0 {
		cols = rv.Index(0).Len()
	}
	flat := reflect.MakeSlice(reflect.SliceOf(elemType), 0, rows*cols)
	for r := 0; r < rows; r++ {
		row := rv.Index(r)
		if row.Len() != cols {
			return dense{kind: elemType.Kind()}, ErrRaggedArray
		}
		flat = reflect.AppendSlice(flat, row)
	}
	return dense{shape: []int{rows, cols}, kind: elemType.Kind(), flat: flat}, nil
}

func dtypeOfKind(k reflect.Kind) h5io.DType {
	switch k {
	case reflect.Int8:
		return h5io.Int8
	case reflect.Int16:
		return h5io.Int16
	case reflect.Int32:
		return h5io.Int32
	case reflect.Int64:
		return h5io.Int64
	case reflect.Uint8:
		return h5io.Uint8
	case reflect.Uint16:
		return h5io.Uint16
	case reflect.Uint32:
		return h5io.Uint32
	case reflect.Uint64:
		return h5io.Uint64
	case reflect.Float32:
		return h5io.Float32
	default:
		return h5io.Float64
	}
}

// reverseAxesAny applies colmajor.ReverseAxes to a reflect.Value flat slice
// whose concrete element type is one of the ten supported real widths,
// dispatching by kind since the generic primitive needs its type parameter
// at compile time.
func reverseAxesAny(flat reflect.Value, shape []int, kind reflect.Kind) any {
	switch kind {
	case reflect.Int8:
		return colmajor.ReverseAxes(flat.Interface().([]int8), shape)
	case reflect.Int16:
		return colmajor.ReverseAxes(flat.Interface().([]int16), shape)
	case reflect.Int32:
		return colmajor.ReverseAxes(flat.Interface().([]int32), shape)
	case reflect.Int64:
		return colmajor.ReverseAxes(flat.Interface().([]int64), shape)
	case reflect.Uint8:
		return colmajor.ReverseAxes(flat.Interface().([]uint8), shape)
	case reflect.Uint16:
		return colmajor.ReverseAxes(flat.Interface().([]uint16), shape)
	case reflect.Uint32:
		return colmajor.ReverseAxes(flat.Interface().([]uint32), shape)
	case reflect.Uint64:
		return colmajor.ReverseAxes(flat.Interface().([]uint64), shape)
	case reflect.Float32:
		return colmajor.ReverseAxes(flat.Interface().([]float32), shape)
	case reflect.Float64:
		return colmajor.ReverseAxes(flat.Interface().([]float64), shape)
	default:
		return colmajor.ReverseAxes(flat.Interface().([]float64), shape)
	}
}

// ravelColumnMajorComplex ravels a complex flat slice (any width) into
// column-major order and returns it widened to []complex128, the common
// carrier used when splitting into real/imaginary rows.
func ravelColumnMajorComplex(flat reflect.Value, shape []int, kind reflect.Kind) []complex128 {
	if kind == reflect.Complex64 {
		src := flat.Interface().([]complex64)
		widened := make([]complex128, len(src))
		for i, c := range src {
			widened[i] = complex128(c)
		}
		return colmajor.RavelColumnMajor(widened, shape)
	}
	return colmajor.RavelColumnMajor(flat.Interface().([]complex128), shape)
}

// isAllNaN reports whether every element of a real float flat slice is NaN,
// used to detect the 1x1 NaN empty-numeric sentinel.
func isAllNaN(flat reflect.Value, kind reflect.Kind) bool {
	if kind != reflect.Float32 && kind != reflect.Float64 {
		return false
	}
	if flat.Len() == 0 {
		return false
	}
	for i := 0; i < flat.Len(); i++ {
		f := flat.Index(i).Float()
		if f == f { // not NaN
			return false
		}
	}
	return true
}
