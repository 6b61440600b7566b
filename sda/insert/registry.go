// Package insert implements the SDA inserter pipeline: the ordered
// registry that resolves an arbitrary Go value to a record kind, and the
// per-kind preparation that turns that value into the group/dataset
// attributes and payload internal/h5io needs to write it. See spec.md
// §4.1-4.2 and SPEC_FULL.md §4.
package insert

import (
	"github.com/archivekit/sda/internal/h5io"
	"github.com/archivekit/sda/sda/record"
)

// Dataset is the prepared payload for a simple record's single dataset.
type Dataset struct {
	DType h5io.DType
	Shape []int
	Flat  any
	Attrs map[string]any
}

// Child is one ordered (label, value) pair a composite inserter's
// children must be written as, either as a bare dataset directly under
// the parent group (simple child) or as a nested subgroup (composite
// child) — the caller re-resolves each child's own inserter to tell
// which.
type Child struct {
	Label string
	Value any
}

// Prepared is the result of running a value through its inserter: the
// group-level attributes every record/sub-record carries, and either a
// Dataset (simple kinds) or nothing (composite kinds, whose Children are
// fetched separately).
type Prepared struct {
	GroupAttrs map[string]any
	Dataset    *Dataset
}

// Inserter encodes one record kind: recognizing values it can encode,
// and preparing the attributes/payload for the group insert writes.
type Inserter interface {
	Kind() record.Kind
	CanInsert(v any) bool
	Prepare(v any, deflate int) (Prepared, error)
	Children(v any) ([]Child, error)
}

// Registry holds the ordered list of inserters tried against an input
// value, mirroring the reference toolbox's InserterRegistry: the first
// whose CanInsert returns true wins. Go's static typing makes most of
// these predicates mutually exclusive by concrete type, but the ordered
// list is kept anyway since it is the actual dispatch mechanism and new
// inserters may not stay that way.
type Registry struct {
	inserters []Inserter
}

// NewRegistry builds the standard registry, tried in this order:
// character, numeric (dense real, dense complex, sparse, sparse-complex),
// logical, file, objects, object, cell, structure.
func NewRegistry() *Registry {
	return &Registry{inserters: []Inserter{
		&characterInserter{}, // tried before numericArrayInserter: CharArray and Array[uint8] are structurally identical
		&numericArrayInserter{},
		&numericComplexInserter{},
		&sparseInserter{},
		&sparseComplexInserter{},
		&logicalInserter{},
		&fileInserter{},
		&objectsInserter{},
		&objectInserter{},
		&cellInserter{},
		&structureInserter{},
	}}
}

// Resolve returns the first inserter whose predicate claims v, or
// ErrUnsupportedType if none does.
func (r *Registry) Resolve(v any) (Inserter, error) {
	for _, ins := range r.inserters {
		if ins.CanInsert(v) {
			return ins, nil
		}
	}
	return nil, ErrUnsupportedType
}
