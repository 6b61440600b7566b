package sda

import (
	"fmt"

	"github.com/archivekit/sda/internal/h5io"
)

// Replace deletes label's existing record and re-inserts value in its
// place, carrying over the existing record's Deflate level and
// Description (spec.md §4.4) rather than resetting them to defaults.
func (a *Archive) Replace(label string, value any) error {
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
	description := stringAttr(attrs, "Description")
	deflate := intAttr(attrs, "Deflate")

	if err := f.DeleteLabel(label); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrIOError, err)
	}
	f.Close()

	return a.Insert(label, value, &InsertOptions{Description: description, Deflate: deflate})
}
