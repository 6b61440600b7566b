// Package sda implements the Sandia Data Archive format: labelled,
// typed records stored in an HDF5 container, readable and writable
// without any MATLAB/Python runtime. See SPEC_FULL.md for the full
// component design and spec.md for the format this module implements.
package sda

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/archivekit/sda/internal/h5io"
	"github.com/archivekit/sda/sda/header"
)

// Archive is a handle onto one SDA container at a filesystem path. Per
// spec.md §5, no HDF5 descriptor is held between public calls: every
// method here opens internal/h5io for the minimum mode it needs, does its
// work, and closes before returning.
type Archive struct {
	path string
	mode Mode
	log  *slog.Logger
}

// Open opens or creates the archive at path in the given mode, validating
// its header when the file already exists (ModeCreate instead truncates
// an existing file and writes a fresh header). It is Open with
// DefaultOptions(); use OpenWithOptions to override logging.
func Open(path string, mode Mode) (*Archive, error) {
	return OpenWithOptions(path, mode, DefaultOptions())
}

// OpenWithOptions is Open with an explicit Options override.
func OpenWithOptions(path string, mode Mode, opts *Options) (*Archive, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	logger := opts.Logger
	if logger == nil {
		logger = DefaultOptions().Logger
	}

	existed := fileExists(path)
	if (mode == ModeRead || mode == ModeReadWrite) && !existed {
		return nil, fmt.Errorf("%w: %q does not exist", ErrIOError, path)
	}
	if mode == ModeCreateExclusive && existed {
		return nil, fmt.Errorf("%w: %q already exists", ErrIOError, path)
	}

	f, err := h5io.Open(path, mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOError, err)
	}
	defer f.Close()

	// Every later Archive method reopens path in this same mode. Once
	// this call returns, the file exists either way, so ModeCreate and
	// ModeCreateExclusive are normalized to ModeReadWrite for those
	// reopens — reusing the original mode would truncate (ModeCreate) or
	// fail outright (ModeCreateExclusive) on the very next call.
	reopenMode := mode
	if mode == ModeCreate || mode == ModeCreateExclusive {
		reopenMode = ModeReadWrite
	}
	a := &Archive{path: path, mode: reopenMode, log: logger}

	if !existed || mode == ModeCreate {
		if err := writeHeader(f, header.New()); err != nil {
			return nil, err
		}
		a.log.Debug("sda: archive created", "path", path)
		return a, nil
	}

	attrs, err := readHeader(f)
	if err != nil {
		return nil, err
	}
	if err := header.Validate(attrs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSDAFile, err)
	}
	if mode != ModeRead && !attrs.Writable {
		return nil, ErrNotWritable
	}
	return a, nil
}

// Path returns the filesystem path this handle was opened against.
func (a *Archive) Path() string { return a.path }

// Labels enumerates the top-level record labels in the archive.
func (a *Archive) Labels() ([]string, error) {
	f, err := h5io.Open(a.path, ModeRead)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOError, err)
	}
	defer f.Close()
	labels, err := f.Labels()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOError, err)
	}
	return labels, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
