package sda

import (
	"fmt"

	"github.com/archivekit/sda/internal/h5io"
)

// Describe updates label's Description attribute in place.
func (a *Archive) Describe(label, description string) error {
	f, err := h5io.Open(a.path, a.mode)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIOError, err)
	}
	defer f.Close()
	if !f.Writable() {
		return ErrNotWritable
	}
	if !f.HasLabel(label) {
		return fmt.Errorf("%w: %q", ErrLabelNotFound, label)
	}
	group, err := f.OpenRecordGroup(label)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIOError, err)
	}
	if err := group.SetAttrs(map[string]any{"Description": description}); err != nil {
		return fmt.Errorf("%w: %v", ErrIOError, err)
	}
	if err := touchHeader(f); err != nil {
		return err
	}
	a.log.Debug("sda: updated description", "label", label)
	return nil
}
