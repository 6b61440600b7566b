package sda

import (
	"fmt"
	"os"

	"github.com/archivekit/sda/internal/h5io"
	"github.com/archivekit/sda/sda/extract"
	"github.com/archivekit/sda/sda/record"
)

// Extract reconstructs the value stored under label.
func (a *Archive) Extract(label string) (any, error) {
	f, err := h5io.Open(a.path, ModeRead)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOError, err)
	}
	defer f.Close()
	if !f.HasLabel(label) {
		return nil, fmt.Errorf("%w: %q", ErrLabelNotFound, label)
	}
	group, err := f.OpenRecordGroup(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOError, err)
	}
	v, err := extract.Extract(group, label)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOError, err)
	}
	return v, nil
}

// ExtractToFile requires label's record type to be "file", writing the
// extracted bytes to path. overwrite controls whether an existing file at
// path is replaced.
func (a *Archive) ExtractToFile(label, path string, overwrite bool) error {
	f, err := h5io.Open(a.path, ModeRead)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIOError, err)
	}
	defer f.Close()
	if !f.HasLabel(label) {
		return fmt.Errorf("%w: %q", ErrLabelNotFound, label)
	}
	group, err := f.OpenRecordGroup(label)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIOError, err)
	}
	attrs, err := group.GetAttrs()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIOError, err)
	}
	if record.Kind(stringAttr(attrs, "RecordType")) != record.File {
		return fmt.Errorf("%w: %q is not a file record", ErrValueError, label)
	}

	v, err := extract.Extract(group, label)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIOError, err)
	}
	data, _ := v.([]byte)

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %q already exists", ErrIOError, path)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrIOError, err)
	}
	return nil
}
