// Package extract implements the read half of the SDA wire format: given
// an already-opened record group, reconstruct the Go value insert wrote,
// inverting each of sda/insert's per-kind layouts. See spec.md
// §4.3-4.4 and SPEC_FULL.md §4.
package extract

import (
	"fmt"

	"github.com/archivekit/sda/internal/h5io"
	"github.com/archivekit/sda/sda/record"
	"github.com/archivekit/sda/sda/value"
)

// Extract reconstructs the record stored in group, dispatching on its
// RecordType attribute. label is the name the record's own dataset would
// carry for a simple (bare-dataset) kind — the top-level record label, or
// a child's own name when called recursively for a nested composite.
func Extract(group *h5io.Group, label string) (any, error) {
	attrs, err := group.GetAttrs()
	if err != nil {
		return nil, err
	}
	kind := record.Kind(attrString(attrs, "RecordType"))
	if !record.Supported(kind) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedRecordType, kind)
	}
	if attrString(attrs, "Empty") == "yes" {
		return emptyValue(kind, attrs)
	}

	// file is checked before the generic Bare() branch: its top-level
	// group carries RecordType="file" while the bare dataset underneath
	// carries RecordType="numeric" (see insert/file.go), so only the
	// group-level tag tells Extract to run decodeFile instead of treating
	// it as a plain numeric dataset.
	if kind == record.File {
		ds, err := group.OpenDataset(label)
		if err != nil {
			return nil, err
		}
		return decodeFile(ds)
	}
	if kind.Bare() {
		ds, err := group.OpenDataset(label)
		if err != nil {
			return nil, err
		}
		return decodeSimple(ds, kind)
	}

	switch kind {
	case record.Cell, record.Structures:
		return extractCellLike(group, attrs, false)
	case record.Objects:
		return extractCellLike(group, attrs, true)
	case record.Structure:
		return extractStructureFields(group, attrs)
	case record.Object:
		fields, err := extractStructureFields(group, attrs)
		if err != nil {
			return nil, err
		}
		return value.Object{Class: attrString(attrs, "Class"), Fields: fields}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedRecordType, kind)
	}
}

// decodeSimple reads a bare dataset's own Empty/RecordType attributes and
// decodes it per kind. Used both for a top-level bare record (whose Empty
// was already checked against the group, redundantly but harmlessly) and
// for a nested bare child, which carries no group of its own to check.
func decodeSimple(ds *h5io.Dataset, kind record.Kind) (any, error) {
	attrs, err := ds.GetAttrs()
	if err != nil {
		return nil, err
	}
	if attrString(attrs, "Empty") == "yes" {
		return emptyValue(kind, attrs)
	}
	switch kind {
	case record.Numeric:
		return decodeNumericDataset(ds)
	case record.Logical:
		return decodeLogical(ds)
	case record.Character:
		return decodeCharacter(ds)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedRecordType, kind)
	}
}

// emptyValue returns the canonical Go value for an Empty-flagged record.
// Object, Objects, Cell, and Structures need their own construction to
// preserve type identity (value.Object/value.Objects carry Class;
// value.Cell is a named []any) where record.Empty's generic []any{} would
// lose it; everything else delegates directly.
func emptyValue(kind record.Kind, attrs map[string]any) (any, error) {
	switch kind {
	case record.Object:
		return value.Object{Class: attrString(attrs, "Class"), Fields: map[string]any{}}, nil
	case record.Objects:
		return value.Objects{Class: attrString(attrs, "Class")}, nil
	case record.Cell, record.Structures:
		return value.Cell{}, nil
	default:
		return record.Empty(kind)
	}
}
