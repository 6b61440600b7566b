package extract

import (
	"fmt"
	"strings"

	"github.com/archivekit/sda/internal/colmajor"
	"github.com/archivekit/sda/internal/h5io"
	"github.com/archivekit/sda/sda/record"
	"github.com/archivekit/sda/sda/value"
)

// extractCellLike reconstructs a cell, structures, or objects record: its
// RecordSize children, named "element 1".."element N" in column-major
// order, unraveled back to row-major and reassembled per kind. objects
// additionally carries Class and asserts every element is a structure.
func extractCellLike(group *h5io.Group, attrs map[string]any, isObjects bool) (any, error) {
	shape := attrIntSlice(attrs, "RecordSize")
	n := colmajor.Count(shape)

	colMajor := make([]any, n)
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("element %d", i+1)
		v, err := extractChild(group, name)
		if err != nil {
			return nil, err
		}
		colMajor[i] = v
	}
	rowMajor := colmajor.UnravelColumnMajor(colMajor, shape)

	if isObjects {
		items := make([]map[string]any, len(rowMajor))
		for i, v := range rowMajor {
			m, ok := v.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: objects element %d is not a structure", ErrMalformedArchive, i+1)
			}
			items[i] = m
		}
		return value.Objects{Class: attrString(attrs, "Class"), Shape: shape, Items: items}, nil
	}

	if len(shape) == 2 && shape[0] <= 1 {
		return value.Cell(rowMajor), nil
	}
	return value.ObjectArray{Shape: shape, Data: rowMajor}, nil
}

// extractStructureFields reconstructs the field map common to structure
// and object records from the FieldNames group attribute.
func extractStructureFields(group *h5io.Group, attrs map[string]any) (map[string]any, error) {
	names := strings.Fields(attrString(attrs, "FieldNames"))
	fields := make(map[string]any, len(names))
	for _, name := range names {
		v, err := extractChild(group, name)
		if err != nil {
			return nil, err
		}
		fields[name] = v
	}
	return fields, nil
}

// extractChild reads one composite child by name, branching on whether
// the driver stored it as a bare dataset (a nested simple record — every
// Simple kind, including file, is also Bare) or a subgroup (a nested
// composite record). This mirrors insert/write.go's writeChild.
func extractChild(parent *h5io.Group, name string) (any, error) {
	childKind, err := parent.ChildKind(name)
	if err != nil {
		return nil, err
	}
	if childKind == h5io.KindDataset {
		ds, err := parent.OpenDataset(name)
		if err != nil {
			return nil, err
		}
		attrs, err := ds.GetAttrs()
		if err != nil {
			return nil, err
		}
		return decodeSimple(ds, record.Kind(attrString(attrs, "RecordType")))
	}

	sub, err := parent.OpenSubgroup(name)
	if err != nil {
		return nil, err
	}
	return Extract(sub, name)
}
