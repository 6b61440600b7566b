package insert

import (
	"fmt"

	"github.com/archivekit/sda/internal/h5io"
	"github.com/archivekit/sda/sda/record"
)

// WriteTopLevel resolves value's inserter, creates its top-level group,
// and writes its dataset (simple kinds) or recurses into its children
// (composite kinds). recordTypeOverride, when non-empty, rewrites the
// written RecordType after Prepare runs — used by the façade's
// as_structures promotion, which reuses the cell inserter's layout under
// a "structures" record type. Any failure deletes the partially created
// group before returning, per spec.md §3's partial-insert invariant.
func WriteTopLevel(reg *Registry, file *h5io.File, label, description string, value any, deflate int, recordTypeOverride string) (record.Kind, error) {
	ins, err := reg.Resolve(value)
	if err != nil {
		return "", err
	}
	kind := ins.Kind()

	group, err := file.CreateRecordGroup(label)
	if err != nil {
		return "", err
	}

	if err := writeGroup(reg, group, label, value, deflate, ins, description, recordTypeOverride); err != nil {
		if delErr := file.DeleteLabel(label); delErr != nil {
			return "", fmt.Errorf("insert: %w (cleanup also failed: %v)", err, delErr)
		}
		return "", err
	}

	if recordTypeOverride != "" {
		return record.Kind(recordTypeOverride), nil
	}
	return kind, nil
}

func writeGroup(reg *Registry, group *h5io.Group, label string, value any, deflate int, ins Inserter, description, recordTypeOverride string) error {
	prepared, err := ins.Prepare(value, deflate)
	if err != nil {
		return err
	}
	attrs := prepared.GroupAttrs
	attrs["Description"] = description
	if recordTypeOverride != "" {
		attrs["RecordType"] = recordTypeOverride
	}
	if err := group.SetAttrs(attrs); err != nil {
		return err
	}

	if ins.Kind().Simple() {
		ds, err := group.CreateDataset(label, prepared.Dataset.DType, prepared.Dataset.Shape, prepared.Dataset.Flat, deflate)
		if err != nil {
			return err
		}
		return ds.SetAttrs(prepared.Dataset.Attrs)
	}

	children, err := ins.Children(value)
	if err != nil {
		return err
	}
	for _, c := range children {
		if err := writeChild(reg, group, c.Label, c.Value, deflate); err != nil {
			return err
		}
	}
	return nil
}

// writeChild writes one composite child. A bare kind (numeric, logical,
// character, file) is written as a dataset directly under parent with no
// subgroup of its own — file's FileInserter is a plain SimpleRecordInserter
// subclass in the reference toolbox, so a nested file takes the same
// insert_below_group path as any other simple kind and its child dataset
// carries no group-level "file" tag at all. Only a composite kind
// (cell, structure, structures, object, objects) gets a nested subgroup,
// recursing into its own children the same way. See SPEC_FULL.md §4.
func writeChild(reg *Registry, parent *h5io.Group, label string, value any, deflate int) error {
	ins, err := reg.Resolve(value)
	if err != nil {
		return err
	}
	prepared, err := ins.Prepare(value, deflate)
	if err != nil {
		return err
	}
	kind := ins.Kind()

	if kind.Bare() {
		ds, err := parent.CreateDataset(label, prepared.Dataset.DType, prepared.Dataset.Shape, prepared.Dataset.Flat, deflate)
		if err != nil {
			return err
		}
		return ds.SetAttrs(prepared.Dataset.Attrs)
	}

	// Every Simple kind is also Bare, so reaching here means kind is
	// composite (cell, structure, structures, object, objects): it gets
	// its own subgroup and recurses into its children.
	sub, err := parent.CreateSubgroup(label)
	if err != nil {
		return err
	}
	if err := sub.SetAttrs(prepared.GroupAttrs); err != nil {
		return err
	}

	children, err := ins.Children(value)
	if err != nil {
		return err
	}
	for _, c := range children {
		if err := writeChild(reg, sub, c.Label, c.Value, deflate); err != nil {
			return err
		}
	}
	return nil
}
