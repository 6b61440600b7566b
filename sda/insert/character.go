package insert

import (
	"github.com/archivekit/sda/internal/colmajor"
	"github.com/archivekit/sda/internal/h5io"
	"github.com/archivekit/sda/sda/record"
	"github.com/archivekit/sda/sda/value"
)

// characterInserter handles a Go string (ASCII-encoded, hard error on
// non-ASCII content per SPEC_FULL.md §6) or a pre-existing CharArray
// (the S1-equivalent byte grid extract() returns for non-1xN character
// records), stored and transposed exactly like a numeric/logical array.
type characterInserter struct{}

func (characterInserter) Kind() record.Kind { return record.Character }

func (characterInserter) CanInsert(v any) bool {
	if _, ok := v.(string); ok {
		return true
	}
	return isCharArray(v)
}

func (characterInserter) Prepare(v any, deflate int) (Prepared, error) {
	shape, flat, err := decomposeCharacter(v)
	if err != nil {
		return Prepared{}, err
	}
	rows, cols := colmajor.AtLeast2D(shape)
	onDisk := colmajor.Transpose2D(flat, rows, cols)

	empty := len(flat) == 0
	return Prepared{
		GroupAttrs: map[string]any{
			"RecordType": "character",
			"Empty":      yesNo(empty),
			"Deflate":    deflate,
		},
		Dataset: &Dataset{
			DType: h5io.Uint8,
			Shape: []int{cols, rows},
			Flat:  onDisk,
			Attrs: map[string]any{
				"RecordType": "character",
				"Empty":      yesNo(empty),
			},
		},
	}, nil
}

func (characterInserter) Children(v any) ([]Child, error) { return nil, nil }

// decomposeCharacter reduces a string or CharArray to its logical shape
// and a flat byte slice in row-major order. A string is treated as a
// 1xN row of single-byte characters, matching spec.md §4.2.
func decomposeCharacter(v any) ([]int, []uint8, error) {
	if s, ok := v.(string); ok {
		b, err := h5io.EncodeASCII(s)
		if err != nil {
			return nil, nil, err
		}
		if len(b) == 0 {
			return []int{0}, nil, nil
		}
		return []int{len(b)}, b, nil
	}

	ca := v.(value.CharArray)
	return ca.Shape, ca.Data, nil
}

// isCharArray recognizes sda.CharArray, which is otherwise structurally
// identical to the Array[uint8] numeric instantiation — the one genuine
// predicate overlap Go's static typing doesn't resolve for free, so
// characterInserter is tried before numericArrayInserter in the registry.
func isCharArray(v any) bool {
	_, ok := v.(value.CharArray)
	return ok
}
