package insert

import (
	"fmt"

	"github.com/archivekit/sda/internal/colmajor"
	"github.com/archivekit/sda/sda/record"
	"github.com/archivekit/sda/sda/value"
)

// cellInserter handles sda.Cell ([]any, a 1xN ordered list) and
// sda.ObjectArray (an N-D arrangement of cells), storing each element as
// a child labelled "element 1".."element N" in column-major order
// (spec.md §4.2). Composite children get their own subgroup; simple
// children are written directly under this group, per SPEC_FULL.md §4 —
// that branching lives in the caller that walks Children, not here.
type cellInserter struct{}

func (cellInserter) Kind() record.Kind { return record.Cell }

func (cellInserter) CanInsert(v any) bool {
	_, _, ok := cellElements(v)
	return ok
}

func (cellInserter) Prepare(v any, deflate int) (Prepared, error) {
	shape, elems, ok := cellElements(v)
	if !ok {
		return Prepared{}, ErrUnsupportedType
	}
	empty := len(elems) == 0
	return Prepared{
		GroupAttrs: map[string]any{
			"RecordType": "cell",
			"Empty":      yesNo(empty),
			"Deflate":    deflate,
			"RecordSize": shape,
		},
	}, nil
}

func (cellInserter) Children(v any) ([]Child, error) {
	shape, elems, ok := cellElements(v)
	if !ok {
		return nil, ErrUnsupportedType
	}
	ordered := colmajor.RavelColumnMajor(elems, shape)
	children := make([]Child, len(ordered))
	for i, e := range ordered {
		children[i] = Child{Label: fmt.Sprintf("element %d", i+1), Value: e}
	}
	return children, nil
}

// cellElements recognizes sda.Cell ([]any, treated as shape (1, N)) and
// sda.ObjectArray (Shape []int, Data []any), returning the logical
// row-major shape and element slice common to both.
func cellElements(v any) (shape []int, elems []any, ok bool) {
	switch c := v.(type) {
	case value.Cell:
		return []int{1, len(c)}, []any(c), true
	case value.ObjectArray:
		return c.Shape, c.Data, true
	default:
		return nil, nil, false
	}
}
