package insert

import (
	"fmt"

	"github.com/archivekit/sda/internal/colmajor"
	"github.com/archivekit/sda/sda/record"
	"github.com/archivekit/sda/sda/value"
)

// objectsInserter handles sda.Objects{Class string, Shape []int, Items
// []map[string]any}: same cell-of-structures layout as the homogeneous
// as-structures promotion, plus a Class group attribute. Each item is
// written as an ordinary structure child — only the root carries Class,
// matching the {cell, objects, structures} equivalence class (spec.md
// §3, §4.2). Homogeneity of the items' field signatures is validated by
// the façade before this inserter is reached, the same way it validates
// an as-structures cell, so the check lives in one place.
type objectsInserter struct{}

func (objectsInserter) Kind() record.Kind { return record.Objects }

func (objectsInserter) CanInsert(v any) bool {
	_, _, _, ok := asObjects(v)
	return ok
}

func (objectsInserter) Prepare(v any, deflate int) (Prepared, error) {
	class, shape, items, ok := asObjects(v)
	if !ok {
		return Prepared{}, ErrUnsupportedType
	}
	empty := len(items) == 0
	return Prepared{
		GroupAttrs: map[string]any{
			"RecordType": "objects",
			"Empty":      yesNo(empty),
			"Deflate":    deflate,
			"RecordSize": shape,
			"Class":      class,
		},
	}, nil
}

func (objectsInserter) Children(v any) ([]Child, error) {
	_, shape, items, ok := asObjects(v)
	if !ok {
		return nil, ErrUnsupportedType
	}
	elems := make([]any, len(items))
	for i, m := range items {
		elems[i] = m
	}
	ordered := colmajor.RavelColumnMajor(elems, shape)
	children := make([]Child, len(ordered))
	for i, e := range ordered {
		children[i] = Child{Label: fmt.Sprintf("element %d", i+1), Value: e}
	}
	return children, nil
}

// asObjects recognizes sda.Objects (Class string, Shape []int, Items
// []map[string]any).
func asObjects(v any) (class string, shape []int, items []map[string]any, ok bool) {
	o, ok := v.(value.Objects)
	if !ok {
		return "", nil, nil, false
	}
	return o.Class, o.Shape, o.Items, true
}
