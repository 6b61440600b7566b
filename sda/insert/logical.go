package insert

import (
	"reflect"

	"github.com/archivekit/sda/internal/colmajor"
	"github.com/archivekit/sda/internal/h5io"
	"github.com/archivekit/sda/sda/record"
)

// logicalInserter handles bool, []bool, and [][]bool, cast to unsigned
// 8-bit 0/1 and transposed like every other 2-D dataset (spec.md §4.2).
type logicalInserter struct{}

func (logicalInserter) Kind() record.Kind { return record.Logical }

func (logicalInserter) CanInsert(v any) bool {
	_, _, ok := decomposeLogical(v)
	return ok
}

func (logicalInserter) Prepare(v any, deflate int) (Prepared, error) {
	shape, flat, ok := decomposeLogical(v)
	if !ok {
		return Prepared{}, ErrUnsupportedType
	}
	rows, cols := colmajor.AtLeast2D(shape)
	onDisk := colmajor.Transpose2D(flat, rows, cols)

	empty := len(flat) == 0
	return Prepared{
		GroupAttrs: map[string]any{
			"RecordType": "logical",
			"Empty":      yesNo(empty),
			"Deflate":    deflate,
		},
		Dataset: &Dataset{
			DType: h5io.Uint8,
			Shape: []int{cols, rows},
			Flat:  onDisk,
			Attrs: map[string]any{
				"RecordType": "logical",
				"Empty":      yesNo(empty),
			},
		},
	}, nil
}

func (logicalInserter) Children(v any) ([]Child, error) { return nil, nil }

// decomposeLogical recognizes bool, []bool, and rectangular [][]bool,
// returning its logical shape ([] for scalar, [n] for a vector) and a
// flattened 0/1 byte slice in row-major order.
func decomposeLogical(v any) (shape []int, flat []uint8, ok bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, nil, false
	}
	switch rv.Kind() {
	case reflect.Bool:
		return nil, []uint8{b2u(rv.Bool())}, true
	case reflect.Slice:
		elem := rv.Type().Elem()
		if elem.Kind() == reflect.Bool {
			out := make([]uint8, rv.Len())
			for i := range out {
				out[i] = b2u(rv.Index(i).Bool())
			}
			return []int{rv.Len()}, out, true
		}
		if elem.Kind() == reflect.Slice && elem.Elem().Kind() == reflect.Bool {
			rows := rv.Len()
			cols := 0
			if rows > 0 {
				cols = rv.Index(0).Len()
			}
			out := make([]uint8, 0, rows*cols)
			for r := 0; r < rows; r++ {
				row := rv.Index(r)
				if row.Len() != cols {
					return nil, nil, false
				}
				for c := 0; c < cols; c++ {
					out = append(out, b2u(row.Index(c).Bool()))
				}
			}
			return []int{rows, cols}, out, true
		}
	}
	return nil, nil, false
}

func b2u(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
