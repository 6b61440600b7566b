package insert

import (
	"fmt"
	"sort"
	"strings"

	"github.com/archivekit/sda/sda/record"
)

// structureInserter handles map[string]any: keys sorted lexicographically,
// validated against the MATLAB identifier rule, joined into the
// FieldNames group attribute (spec.md §4.2).
type structureInserter struct{}

func (structureInserter) Kind() record.Kind { return record.Structure }

func (structureInserter) CanInsert(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

func (structureInserter) Prepare(v any, deflate int) (Prepared, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return Prepared{}, ErrUnsupportedType
	}
	keys, err := sortedFieldNames(m)
	if err != nil {
		return Prepared{}, err
	}
	empty := len(keys) == 0
	return Prepared{
		GroupAttrs: map[string]any{
			"RecordType": "structure",
			"Empty":      yesNo(empty),
			"Deflate":    deflate,
			"FieldNames": strings.Join(keys, " "),
		},
	}, nil
}

func (structureInserter) Children(v any) ([]Child, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, ErrUnsupportedType
	}
	keys, err := sortedFieldNames(m)
	if err != nil {
		return nil, err
	}
	children := make([]Child, len(keys))
	for i, k := range keys {
		children[i] = Child{Label: k, Value: m[k]}
	}
	return children, nil
}

// sortedFieldNames validates every key against the MATLAB identifier
// rule and returns them lexicographically sorted.
func sortedFieldNames(m map[string]any) ([]string, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		if !record.ValidFieldLabel(k) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFieldLabel, k)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
