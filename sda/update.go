package sda

import (
	"fmt"

	"github.com/archivekit/sda/internal/h5io"
	"github.com/archivekit/sda/sda/insert"
	"github.com/archivekit/sda/sda/record"
	"github.com/archivekit/sda/sda/signature"
)

// UpdateObject replaces an existing, non-empty "object" record's field
// values by deleting and re-inserting the record, requiring value's
// signature to be equivalent to the existing record's (spec.md §4.4) — it
// cannot change the record's shape, only refresh leaf values. The record's
// Class, Deflate, and Description are preserved.
func (a *Archive) UpdateObject(label string, value map[string]any) error {
	f, err := h5io.Open(a.path, a.mode)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIOError, err)
	}
	if !f.Writable() {
		f.Close()
		return ErrNotWritable
	}
	if !f.HasLabel(label) {
		f.Close()
		return fmt.Errorf("%w: %q", ErrLabelNotFound, label)
	}

	group, err := f.OpenRecordGroup(label)
	if err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrIOError, err)
	}
	attrs, err := group.GetAttrs()
	if err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrIOError, err)
	}
	if record.Kind(stringAttr(attrs, "RecordType")) != record.Object {
		f.Close()
		return fmt.Errorf("%w: %q is not an object record", ErrValueError, label)
	}
	if stringAttr(attrs, "Empty") == "yes" {
		f.Close()
		return fmt.Errorf("%w: %q is empty", ErrValueError, label)
	}
	class := stringAttr(attrs, "Class")
	deflate := intAttr(attrs, "Deflate")
	description := stringAttr(attrs, "Description")

	reg := insert.NewRegistry()
	existingSig, err := signature.UnnestRecord(group)
	if err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrIOError, err)
	}
	newSig, err := signature.Unnest(reg, value)
	if err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrValueError, err)
	}
	if !signature.AreEquivalent(newSig, existingSig) {
		f.Close()
		return fmt.Errorf("%w: %q: new value's signature does not match the existing record", ErrValueError, label)
	}

	if err := f.DeleteLabel(label); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrIOError, err)
	}
	f.Close()

	obj := Object{Class: class, Fields: value}
	return a.Insert(label, obj, &InsertOptions{Description: description, Deflate: deflate})
}

// UpdateObjects overwrites an existing, non-empty "objects" record,
// requiring every new element to be a structure and all to share one
// signature equal to the existing record's first element's signature.
// The record's Class, Deflate, and Description are preserved.
func (a *Archive) UpdateObjects(label string, value []map[string]any) error {
	if len(value) == 0 {
		return fmt.Errorf("%w: update_objects requires at least one element", ErrValueError)
	}

	f, err := h5io.Open(a.path, a.mode)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIOError, err)
	}
	if !f.Writable() {
		f.Close()
		return ErrNotWritable
	}
	if !f.HasLabel(label) {
		f.Close()
		return fmt.Errorf("%w: %q", ErrLabelNotFound, label)
	}

	group, err := f.OpenRecordGroup(label)
	if err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrIOError, err)
	}
	attrs, err := group.GetAttrs()
	if err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrIOError, err)
	}
	if record.Kind(stringAttr(attrs, "RecordType")) != record.Objects {
		f.Close()
		return fmt.Errorf("%w: %q is not an objects record", ErrValueError, label)
	}
	if stringAttr(attrs, "Empty") == "yes" {
		f.Close()
		return fmt.Errorf("%w: %q is empty", ErrValueError, label)
	}
	class := stringAttr(attrs, "Class")
	deflate := intAttr(attrs, "Deflate")
	description := stringAttr(attrs, "Description")

	reg := insert.NewRegistry()
	items := make([]any, len(value))
	for i, m := range value {
		items[i] = m
	}
	if err := signature.ValidateStructures(reg, Cell(items)); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrValueError, err)
	}

	firstGroup, err := group.OpenSubgroup("element 1")
	if err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrIOError, err)
	}
	existingSig, err := signature.UnnestRecord(firstGroup)
	if err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrIOError, err)
	}
	newSig, err := signature.Unnest(reg, value[0])
	if err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrValueError, err)
	}
	if !signature.AreEquivalent(newSig, existingSig) {
		f.Close()
		return fmt.Errorf("%w: %q: new elements' signature does not match the existing record", ErrValueError, label)
	}

	if err := f.DeleteLabel(label); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrIOError, err)
	}
	f.Close()

	objs := Objects{Class: class, Shape: []int{1, len(value)}, Items: value}
	return a.Insert(label, objs, &InsertOptions{Description: description, Deflate: deflate})
}
