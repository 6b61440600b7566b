package sda

import "errors"

// ErrBadSDAFile is returned when an archive's header attributes are
// missing or fail header.Validate — the file is not a valid SDA
// container at all, as opposed to one this library simply can't
// currently write to.
var ErrBadSDAFile = errors.New("sda: not a valid SDA archive")

// ErrIOError wraps a filesystem or HDF5 driver failure: the archive
// itself may be well-formed, but the operation could not complete.
var ErrIOError = errors.New("sda: I/O error")

// ErrValueError is returned for a rejected input: an unsupported value
// type, an invalid label or field name, an out-of-range Deflate level, or
// a failed as-structures/update-object(s) signature check.
var ErrValueError = errors.New("sda: invalid value")

// ErrNotWritable is returned by any mutating operation against an
// archive opened read-only or whose header's Writable attribute is "no".
var ErrNotWritable = errors.New("sda: archive is not writable")

// ErrLabelExists is returned by Insert when label is already present.
var ErrLabelExists = errors.New("sda: label already exists")

// ErrLabelNotFound is returned by any operation naming a label absent
// from the archive.
var ErrLabelNotFound = errors.New("sda: label not found")
