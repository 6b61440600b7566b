// Package signature implements the structural comparison spec.md §4.5
// requires for update-object(s) and as-structures validation: a
// signature is the (path, record_type) sequence a breadth-first walk
// over a composite value (Unnest) or an on-disk group (UnnestRecord)
// produces, and two signatures are equivalent when they list equal paths
// and record.Equivalent kinds.
package signature

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/archivekit/sda/internal/h5io"
	"github.com/archivekit/sda/sda/insert"
	"github.com/archivekit/sda/sda/record"
)

// Node is one (path, record_type) pair in a signature.
type Node struct {
	Path       string
	RecordType record.Kind
}

// Unnest builds value's signature by walking it through reg the same way
// insert.WriteTopLevel would, without writing anything: a breadth-first
// walk over composite children (spec.md §3's "sub-trees appended after
// all siblings"), root first, cells in positional order, structures in
// sorted-key order (insert's own Children order already sorts them).
func Unnest(reg *insert.Registry, value any) ([]Node, error) {
	type item struct {
		path  string
		value any
	}
	var nodes []Node
	queue := []item{{path: "", value: value}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		ins, err := reg.Resolve(cur.value)
		if err != nil {
			return nil, err
		}
		kind := ins.Kind()
		nodes = append(nodes, Node{Path: cur.path, RecordType: kind})
		if kind.Simple() {
			continue
		}

		children, err := ins.Children(cur.value)
		if err != nil {
			return nil, err
		}
		for _, c := range children {
			childPath := c.Label
			if cur.path != "" {
				childPath = cur.path + "/" + c.Label
			}
			queue = append(queue, item{path: childPath, value: c.Value})
		}
	}
	return nodes, nil
}

// UnnestRecord builds group's on-disk signature the same way, walking
// child names in the same order Unnest would visit the equivalent
// in-memory value: numerically for "element N" labels (matching a cell's
// positional order) and lexicographically otherwise (matching a
// structure's sorted FieldNames).
func UnnestRecord(group *h5io.Group) ([]Node, error) {
	type item struct {
		path  string
		group *h5io.Group
		ds    *h5io.Dataset
	}
	var nodes []Node
	queue := []item{{path: "", group: group}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		var attrs map[string]any
		var err error
		if cur.group != nil {
			attrs, err = cur.group.GetAttrs()
		} else {
			attrs, err = cur.ds.GetAttrs()
		}
		if err != nil {
			return nil, err
		}
		kind := record.Kind(attrString(attrs, "RecordType"))
		nodes = append(nodes, Node{Path: cur.path, RecordType: kind})

		// A dataset item is always a leaf. A group item stops here too
		// when its own kind is Simple (numeric, logical, character,
		// file): its one child dataset is that record's payload, not a
		// nested sub-record, and must not produce a second node — this
		// is what keeps a leaf's signature one node long on both sides
		// of AreEquivalent, matching Unnest's kind.Simple() stop.
		if cur.group == nil || kind.Simple() {
			continue
		}
		names, err := cur.group.ChildNames()
		if err != nil {
			return nil, err
		}
		sort.Slice(names, func(i, j int) bool { return lessChildName(names[i], names[j]) })

		for _, name := range names {
			childPath := name
			if cur.path != "" {
				childPath = cur.path + "/" + name
			}
			childKind, err := cur.group.ChildKind(name)
			if err != nil {
				return nil, err
			}
			if childKind == h5io.KindDataset {
				ds, err := cur.group.OpenDataset(name)
				if err != nil {
					return nil, err
				}
				queue = append(queue, item{path: childPath, ds: ds})
				continue
			}
			sub, err := cur.group.OpenSubgroup(name)
			if err != nil {
				return nil, err
			}
			queue = append(queue, item{path: childPath, group: sub})
		}
	}
	return nodes, nil
}

// AreEquivalent reports whether two signatures have equal length,
// componentwise equal paths, and componentwise record.Equivalent kinds.
func AreEquivalent(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Path != b[i].Path {
			return false
		}
		if !record.Equivalent(a[i].RecordType, b[i].RecordType) {
			return false
		}
	}
	return true
}

// ValidateStructures requires value to resolve to a cell record whose
// elements all produce the same signature, that signature's root being a
// structure — the check insert/objects.go's doc comment defers here to
// avoid an insert<->signature import cycle, shared by as-structures
// promotion and update_objects.
func ValidateStructures(reg *insert.Registry, value any) error {
	ins, err := reg.Resolve(value)
	if err != nil {
		return err
	}
	if ins.Kind() != record.Cell {
		return ErrNotCell
	}
	children, err := ins.Children(value)
	if err != nil {
		return err
	}
	if len(children) == 0 {
		return nil
	}

	var first []Node
	for i, c := range children {
		sig, err := Unnest(reg, c.Value)
		if err != nil {
			return err
		}
		if len(sig) == 0 || sig[0].RecordType != record.Structure {
			return fmt.Errorf("%w: element %d", ErrNotStructure, i+1)
		}
		if i == 0 {
			first = sig
			continue
		}
		if !AreEquivalent(first, sig) {
			return fmt.Errorf("%w: element %d", ErrNotHomogeneous, i+1)
		}
	}
	return nil
}

func attrString(attrs map[string]any, key string) string {
	s, _ := attrs[key].(string)
	return s
}

// lessChildName orders two sibling names the way a cell's positional
// elements or a structure's sorted field names would compare: "element N"
// labels sort numerically by N; everything else sorts lexicographically.
func lessChildName(a, b string) bool {
	an, aok := elementIndex(a)
	bn, bok := elementIndex(b)
	if aok && bok {
		return an < bn
	}
	return a < b
}

func elementIndex(name string) (int, bool) {
	const prefix = "element "
	if !strings.HasPrefix(name, prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(name[len(prefix):])
	if err != nil {
		return 0, false
	}
	return n, true
}
