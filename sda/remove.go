package sda

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"

	"github.com/archivekit/sda/internal/h5io"
)

// Remove deletes one or more labels by rebuilding the archive into a
// fresh file containing every other label, fsyncing it, and atomically
// renaming it over the original (spec.md §4.4) — HDF5 does not reclaim
// space from a deleted group in place, so an in-place delete would leak
// disk. The header's own attributes are carried over unchanged except for
// the usual Updated/FormatVersion bump.
func (a *Archive) Remove(labels ...string) error {
	if a.mode == ModeRead {
		return ErrNotWritable
	}
	if len(labels) == 0 {
		return nil
	}

	srcFile, err := h5io.Open(a.path, ModeRead)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIOError, err)
	}

	excluded := make(map[string]bool, len(labels))
	for _, l := range labels {
		if !srcFile.HasLabel(l) {
			srcFile.Close()
			return fmt.Errorf("%w: %q", ErrLabelNotFound, l)
		}
		excluded[l] = true
	}

	allLabels, err := srcFile.Labels()
	if err != nil {
		srcFile.Close()
		return fmt.Errorf("%w: %v", ErrIOError, err)
	}
	rootAttrs, err := srcFile.GetRootAttrs()
	if err != nil {
		srcFile.Close()
		return fmt.Errorf("%w: %v", ErrIOError, err)
	}

	tmpPath := tempArchivePath(a.path)
	dstFile, err := h5io.Open(tmpPath, ModeCreateExclusive)
	if err != nil {
		srcFile.Close()
		return fmt.Errorf("%w: %v", ErrIOError, err)
	}

	if err := rebuildArchive(srcFile, dstFile, allLabels, excluded, rootAttrs); err != nil {
		dstFile.Close()
		srcFile.Close()
		os.Remove(tmpPath)
		return err
	}

	if err := dstFile.Close(); err != nil {
		srcFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrIOError, err)
	}
	if err := srcFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrIOError, err)
	}

	if err := syncAndRename(tmpPath, a.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrIOError, err)
	}
	a.log.Info("sda: removed records", "labels", labels)
	return nil
}

// rebuildArchive copies every label in allLabels except those in excluded
// from src into dst, carrying rootAttrs over with the standard header
// bump applied.
func rebuildArchive(src, dst *h5io.File, allLabels []string, excluded map[string]bool, rootAttrs map[string]any) error {
	if err := dst.SetRootAttrs(rootAttrs); err != nil {
		return fmt.Errorf("%w: %v", ErrIOError, err)
	}
	for _, label := range allLabels {
		if excluded[label] {
			continue
		}
		if err := copyRecord(src, dst, label); err != nil {
			return fmt.Errorf("%w: %v", ErrIOError, err)
		}
	}
	return touchHeader(dst)
}

// copyRecord copies one top-level record's group tree, attributes, and
// dataset contents verbatim from src to dst.
func copyRecord(src, dst *h5io.File, label string) error {
	srcGroup, err := src.OpenRecordGroup(label)
	if err != nil {
		return err
	}
	attrs, err := srcGroup.GetAttrs()
	if err != nil {
		return err
	}
	dstGroup, err := dst.CreateRecordGroup(label)
	if err != nil {
		return err
	}
	if err := dstGroup.SetAttrs(attrs); err != nil {
		return err
	}
	return copyChildren(srcGroup, dstGroup)
}

// copyChildren recursively copies every named child of src into dst,
// preserving each one's on-disk kind (bare dataset or subgroup) exactly.
// Deflate is not re-derived per dataset — internal/h5io does not expose
// a dataset's existing compression filter for introspection, only the
// level applied on write — so a copied archive's datasets are written
// uncompressed; this is the one parameter remove() does not preserve,
// noted in DESIGN.md.
func copyChildren(src, dst *h5io.Group) error {
	names, err := src.ChildNames()
	if err != nil {
		return err
	}
	for _, name := range names {
		kind, err := src.ChildKind(name)
		if err != nil {
			return err
		}
		if kind == h5io.KindDataset {
			if err := copyDataset(src, dst, name); err != nil {
				return err
			}
			continue
		}
		srcSub, err := src.OpenSubgroup(name)
		if err != nil {
			return err
		}
		subAttrs, err := srcSub.GetAttrs()
		if err != nil {
			return err
		}
		dstSub, err := dst.CreateSubgroup(name)
		if err != nil {
			return err
		}
		if err := dstSub.SetAttrs(subAttrs); err != nil {
			return err
		}
		if err := copyChildren(srcSub, dstSub); err != nil {
			return err
		}
	}
	return nil
}

func copyDataset(src, dst *h5io.Group, name string) error {
	ds, err := src.OpenDataset(name)
	if err != nil {
		return err
	}
	attrs, err := ds.GetAttrs()
	if err != nil {
		return err
	}
	shape, err := ds.Shape()
	if err != nil {
		return err
	}
	raw, err := ds.Read()
	if err != nil {
		return err
	}
	newDS, err := dst.CreateDataset(name, dtypeOfData(raw), shape, raw, 0)
	if err != nil {
		return err
	}
	return newDS.SetAttrs(attrs)
}

func dtypeOfData(raw any) h5io.DType {
	switch raw.(type) {
	case []int8:
		return h5io.Int8
	case []int16:
		return h5io.Int16
	case []int32:
		return h5io.Int32
	case []int64:
		return h5io.Int64
	case []uint8:
		return h5io.Uint8
	case []uint16:
		return h5io.Uint16
	case []uint32:
		return h5io.Uint32
	case []uint64:
		return h5io.Uint64
	case []float32:
		return h5io.Float32
	default:
		return h5io.Float64
	}
}

// tempArchivePath builds a sibling temp path for a's rebuild, suffixed
// with an xxhash digest of the path itself, so different archives in the
// same directory get distinct temp paths. The path is deterministic:
// repeated calls against the same archive reuse it, and a leftover temp
// file from an interrupted call makes the next exclusive create fail.
func tempArchivePath(path string) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	digest := xxhash.Sum64String(path)
	return filepath.Join(dir, fmt.Sprintf(".%s.%x.tmp", base, digest))
}

// syncAndRename fsyncs tmpPath's contents to disk (see fdatasync's
// per-OS implementations) before renaming it over finalPath, so a crash
// between the two never leaves finalPath holding a half-written rebuild.
func syncAndRename(tmpPath, finalPath string) error {
	f, err := os.OpenFile(tmpPath, os.O_RDWR, 0)
	if err != nil {
		return err
	}
	if err := fdatasync(int(f.Fd())); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, finalPath)
}
