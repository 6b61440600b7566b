// Package h5io is the only package in this module that imports the HDF5
// driver (github.com/scigolib/hdf5). It turns that driver's group/dataset/
// attribute primitives into the small, SDA-shaped interface the rest of
// the module needs: records are groups with typed attributes, records
// wrap at most one dataset, and composite records nest either groups or
// bare datasets as children. Every other package in this module talks to
// the types here, never to the driver directly.
package h5io

import "fmt"

// Mode mirrors the open modes spec.md §4.4 enumerates for Archive.Open.
type Mode int

const (
	// ModeRead opens an existing archive read-only ("r").
	ModeRead Mode = iota
	// ModeReadWrite opens an existing archive for read/write ("r+").
	ModeReadWrite
	// ModeCreate truncates or creates the archive for write ("w").
	ModeCreate
	// ModeCreateExclusive creates the archive, failing if it exists ("w-"/"x").
	ModeCreateExclusive
	// ModeOpenOrCreate opens if present, else creates ("a", the default).
	ModeOpenOrCreate
)

func (m Mode) writable() bool {
	return m != ModeRead
}

// Kind distinguishes a named child of a group being itself a group
// (a composite sub-record) or a bare dataset (a simple sub-record stored
// directly under its parent, per SPEC_FULL.md §4).
type Kind int

const (
	KindGroup Kind = iota
	KindDataset
)

// DType enumerates the dataset element types this module ever writes.
// It is the closed numeric width set spec.md §3 names, plus the uint8
// encodings used for logical and character records.
type DType int

const (
	Int8 DType = iota
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	Complex64
	Complex128
)

// ErrNotFound indicates a requested label or child does not exist.
var ErrNotFound = fmt.Errorf("h5io: not found")

// ErrWrongKind indicates a child was opened as a group when it is a
// dataset, or vice versa.
var ErrWrongKind = fmt.Errorf("h5io: wrong node kind")
