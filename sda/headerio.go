package sda

import (
	"fmt"

	"github.com/archivekit/sda/internal/h5io"
	"github.com/archivekit/sda/sda/header"
)

// readHeader reads f's root attributes into header.Attrs, mapping the
// on-disk "yes"/"no" Writable string to a bool. A Writable value other
// than "yes" or "no" is rejected with ErrBadSDAFile.
func readHeader(f *h5io.File) (header.Attrs, error) {
	raw, err := f.GetRootAttrs()
	if err != nil {
		return header.Attrs{}, fmt.Errorf("%w: %v", ErrIOError, err)
	}
	writable := stringAttr(raw, "Writable")
	if !header.ValidWritable(writable) {
		return header.Attrs{}, fmt.Errorf("%w: invalid or missing Writable attribute", ErrBadSDAFile)
	}
	return header.Attrs{
		FileFormat:    stringAttr(raw, "FileFormat"),
		FormatVersion: stringAttr(raw, "FormatVersion"),
		Writable:      writable == "yes",
		Created:       stringAttr(raw, "Created"),
		Updated:       stringAttr(raw, "Updated"),
	}, nil
}

// writeHeader writes attrs as f's root attributes, mapping Writable back
// to the "yes"/"no" string convention.
func writeHeader(f *h5io.File, attrs header.Attrs) error {
	writable := "no"
	if attrs.Writable {
		writable = "yes"
	}
	err := f.SetRootAttrs(map[string]any{
		"FileFormat":    attrs.FileFormat,
		"FormatVersion": attrs.FormatVersion,
		"Writable":      writable,
		"Created":       attrs.Created,
		"Updated":       attrs.Updated,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIOError, err)
	}
	return nil
}

// touchHeader bumps Updated/FormatVersion on f's header, the invariant
// spec.md §3 requires after every successful mutation.
func touchHeader(f *h5io.File) error {
	attrs, err := readHeader(f)
	if err != nil {
		return err
	}
	attrs.Touch()
	return writeHeader(f, attrs)
}
