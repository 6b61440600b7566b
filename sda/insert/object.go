package insert

import (
	"strings"

	"github.com/archivekit/sda/sda/record"
	"github.com/archivekit/sda/sda/value"
)

// objectInserter handles sda.Object{Class string, Fields map[string]any}:
// identical layout to a structure record, plus a Class group attribute
// (spec.md §4.2).
type objectInserter struct{}

func (objectInserter) Kind() record.Kind { return record.Object }

func (objectInserter) CanInsert(v any) bool {
	_, _, ok := asObject(v)
	return ok
}

func (objectInserter) Prepare(v any, deflate int) (Prepared, error) {
	class, fields, ok := asObject(v)
	if !ok {
		return Prepared{}, ErrUnsupportedType
	}
	keys, err := sortedFieldNames(fields)
	if err != nil {
		return Prepared{}, err
	}
	empty := len(keys) == 0
	return Prepared{
		GroupAttrs: map[string]any{
			"RecordType": "object",
			"Empty":      yesNo(empty),
			"Deflate":    deflate,
			"FieldNames": strings.Join(keys, " "),
			"Class":      class,
		},
	}, nil
}

func (objectInserter) Children(v any) ([]Child, error) {
	_, fields, ok := asObject(v)
	if !ok {
		return nil, ErrUnsupportedType
	}
	keys, err := sortedFieldNames(fields)
	if err != nil {
		return nil, err
	}
	children := make([]Child, len(keys))
	for i, k := range keys {
		children[i] = Child{Label: k, Value: fields[k]}
	}
	return children, nil
}

// asObject recognizes sda.Object (Class string, Fields map[string]any).
func asObject(v any) (class string, fields map[string]any, ok bool) {
	o, ok := v.(value.Object)
	if !ok {
		return "", nil, false
	}
	return o.Class, o.Fields, true
}
