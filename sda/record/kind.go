// Package record defines the SDA record-type taxonomy: the closed set of
// kinds a group in an archive can be, their canonical empty values, and
// the equivalence classes used by update-object(s) and signature
// comparison. See spec.md §3.
package record

// Kind is one of the closed set of SDA record types. The zero value is
// not a valid Kind; always use one of the named constants.
type Kind string

const (
	Numeric    Kind = "numeric"
	Logical    Kind = "logical"
	Character  Kind = "character"
	File       Kind = "file"
	Cell       Kind = "cell"
	Structure  Kind = "structure"
	Structures Kind = "structures"
	Object     Kind = "object"
	Objects    Kind = "objects"
)

// Simple reports whether k is stored as a single dataset under one group
// (numeric, logical, character, file) rather than as a nested group tree.
func (k Kind) Simple() bool {
	switch k {
	case Numeric, Logical, Character, File:
		return true
	default:
		return false
	}
}

// Bare reports whether k, when nested as a cell/structure child, is
// written as a dataset directly inside the parent's group with no
// subgroup of its own. Numeric, logical, character, and file all
// qualify — file is a SimpleRecordInserter like the rest, tagged only on
// the child dataset's own RecordType attribute, with no group-level tag
// to preserve. Only the composite kinds (cell, structure, structures,
// object, objects) get their own subgroup when nested. See SPEC_FULL.md
// §4.
func (k Kind) Bare() bool {
	switch k {
	case Numeric, Logical, Character, File:
		return true
	default:
		return false
	}
}

// Supported reports whether k is one of the closed set this library
// recognizes. Anything else (notably MATLAB function handles) is a
// read-time error, never a panic.
func Supported(k Kind) bool {
	switch k {
	case Numeric, Logical, Character, File, Cell, Structure, Structures, Object, Objects:
		return true
	default:
		return false
	}
}

// structureEquivalent and cellEquivalent are the two equivalence classes
// spec.md §3 defines for update-object(s) and signature comparison.
var (
	structureEquivalent = map[Kind]bool{Structure: true, Object: true}
	cellEquivalent      = map[Kind]bool{Cell: true, Objects: true, Structures: true}
)

// Equivalent reports whether two record kinds are equivalent for the
// purposes of update-object(s): equal kinds, or both members of
// {structure, object}, or both members of {cell, objects, structures}.
func Equivalent(a, b Kind) bool {
	if a == b {
		return true
	}
	if structureEquivalent[a] && structureEquivalent[b] {
		return true
	}
	if cellEquivalent[a] && cellEquivalent[b] {
		return true
	}
	return false
}
