package h5io

import (
	"fmt"
	"strings"

	hdf5 "github.com/scigolib/hdf5"
)

// File is a scoped handle onto one archive on disk. Callers open one,
// perform a single façade operation, and close it — per spec.md §5 a
// File is never kept open across public Archive operations.
type File struct {
	path string
	mode Mode
	fw   *hdf5.FileWriter // set for every mode except ModeRead
	fr   *hdf5.File       // set only for ModeRead
}

// Open opens the archive at path in the given mode, creating it first if
// the mode requires that (ModeCreate, ModeCreateExclusive, or
// ModeOpenOrCreate against a missing file).
func Open(path string, mode Mode) (*File, error) {
	if mode == ModeRead {
		fr, err := hdf5.Open(path)
		if err != nil {
			return nil, fmt.Errorf("h5io: open %q: %w", path, err)
		}
		return &File{path: path, mode: mode, fr: fr}, nil
	}

	var fw *hdf5.FileWriter
	var err error
	switch mode {
	case ModeCreate:
		fw, err = hdf5.CreateForWrite(path, hdf5.CreateTruncate)
	case ModeCreateExclusive:
		fw, err = hdf5.CreateForWrite(path, hdf5.CreateExclusive)
	case ModeReadWrite, ModeOpenOrCreate:
		fw, err = hdf5.OpenForWrite(path)
	default:
		return nil, fmt.Errorf("h5io: unknown mode %d", mode)
	}
	if err != nil {
		return nil, fmt.Errorf("h5io: open %q: %w", path, err)
	}
	return &File{path: path, mode: mode, fw: fw}, nil
}

// Close releases the underlying driver handle.
func (f *File) Close() error {
	if f.fw != nil {
		return f.fw.Close()
	}
	if f.fr != nil {
		return f.fr.Close()
	}
	return nil
}

// Path returns the filesystem path this handle was opened against.
func (f *File) Path() string { return f.path }

// Writable reports whether this handle was opened in a write-capable mode.
func (f *File) Writable() bool { return f.mode.writable() }

func rootPath(label string) string { return "/" + label }

// SetRootAttrs writes (overwriting) the archive header attributes.
func (f *File) SetRootAttrs(attrs map[string]any) error {
	if f.fw == nil {
		return fmt.Errorf("h5io: file opened read-only")
	}
	for name, value := range attrs {
		if err := f.fw.WriteRootAttribute(name, value); err != nil {
			return fmt.Errorf("h5io: write root attribute %q: %w", name, err)
		}
	}
	return nil
}

// GetRootAttrs reads every attribute set on the archive root.
func (f *File) GetRootAttrs() (map[string]any, error) {
	if f.fr != nil {
		return f.fr.RootAttributes()
	}
	return f.fw.RootAttributes()
}

// Labels enumerates the top-level record labels in the archive.
func (f *File) Labels() ([]string, error) {
	if f.fr != nil {
		return f.fr.RootChildren()
	}
	return f.fw.RootChildren()
}

// HasLabel reports whether label exists at the archive root.
func (f *File) HasLabel(label string) bool {
	labels, err := f.Labels()
	if err != nil {
		return false
	}
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}

// DeleteLabel removes a top-level record and everything under it.
func (f *File) DeleteLabel(label string) error {
	if f.fw == nil {
		return fmt.Errorf("h5io: file opened read-only")
	}
	return f.fw.Delete(rootPath(label))
}

// CreateRecordGroup creates the top-level group for a new record.
func (f *File) CreateRecordGroup(label string) (*Group, error) {
	if f.fw == nil {
		return nil, fmt.Errorf("h5io: file opened read-only")
	}
	gw, err := f.fw.CreateGroup(rootPath(label))
	if err != nil {
		return nil, fmt.Errorf("h5io: create group %q: %w", label, err)
	}
	return &Group{fw: f.fw, path: rootPath(label), gw: gw}, nil
}

// OpenRecordGroup opens an existing top-level record's group.
func (f *File) OpenRecordGroup(label string) (*Group, error) {
	path := rootPath(label)
	if f.fr != nil {
		g, err := f.fr.Group(path)
		if err != nil {
			return nil, fmt.Errorf("h5io: open group %q: %w", label, err)
		}
		return &Group{fr: f.fr, path: path, g: g}, nil
	}
	gw, err := f.fw.Group(path)
	if err != nil {
		return nil, fmt.Errorf("h5io: open group %q: %w", label, err)
	}
	return &Group{fw: f.fw, path: path, gw: gw}, nil
}

// Group is a scoped view over one HDF5 group: a record, or the group of a
// composite sub-record nested under one.
type Group struct {
	path string
	fw   *hdf5.FileWriter
	gw   *hdf5.GroupWriter
	fr   *hdf5.File
	g    *hdf5.Group
}

func join(parent, name string) string {
	if strings.HasSuffix(parent, "/") {
		return parent + name
	}
	return parent + "/" + name
}

// SetAttrs writes (overwriting) every named attribute on this group.
func (g *Group) SetAttrs(attrs map[string]any) error {
	if g.gw == nil {
		return fmt.Errorf("h5io: group opened read-only")
	}
	for name, value := range attrs {
		if err := g.gw.WriteAttribute(name, value); err != nil {
			return fmt.Errorf("h5io: write attribute %q on %q: %w", name, g.path, err)
		}
	}
	return nil
}

// GetAttrs reads every attribute on this group.
func (g *Group) GetAttrs() (map[string]any, error) {
	if g.g != nil {
		return g.g.Attributes()
	}
	return g.gw.Attributes()
}

// CreateSubgroup creates a child group for a nested composite sub-record.
func (g *Group) CreateSubgroup(name string) (*Group, error) {
	if g.fw == nil {
		return nil, fmt.Errorf("h5io: group opened read-only")
	}
	path := join(g.path, name)
	gw, err := g.fw.CreateGroup(path)
	if err != nil {
		return nil, fmt.Errorf("h5io: create subgroup %q: %w", path, err)
	}
	return &Group{fw: g.fw, path: path, gw: gw}, nil
}

// CreateDataset creates a dataset named name directly under this group
// (used both for a record's own dataset and for a simple sub-record
// nested directly under a composite's group, per SPEC_FULL.md §4).
func (g *Group) CreateDataset(name string, dtype DType, shape []int, flat any, deflate int) (*Dataset, error) {
	if g.fw == nil {
		return nil, fmt.Errorf("h5io: group opened read-only")
	}
	path := join(g.path, name)
	dims := make([]uint64, len(shape))
	for i, d := range shape {
		dims[i] = uint64(d)
	}
	dw, err := g.fw.CreateDataset(path, toDriverType(dtype), dims)
	if err != nil {
		return nil, fmt.Errorf("h5io: create dataset %q: %w", path, err)
	}
	if deflate > 0 {
		if err := dw.SetDeflate(deflate); err != nil {
			return nil, fmt.Errorf("h5io: set deflate on %q: %w", path, err)
		}
	}
	if err := dw.Write(flat); err != nil {
		return nil, fmt.Errorf("h5io: write dataset %q: %w", path, err)
	}
	return &Dataset{dw: dw, path: path}, nil
}

// ChildNames lists the names directly under this group, in the order the
// driver reports them (record insertion order for groups written by this
// module).
func (g *Group) ChildNames() ([]string, error) {
	if g.g != nil {
		return g.g.Children()
	}
	return g.gw.Children()
}

// ChildKind reports whether name is itself a group or a bare dataset.
func (g *Group) ChildKind(name string) (Kind, error) {
	path := join(g.path, name)
	if g.g != nil {
		obj, err := g.g.Child(name)
		if err != nil {
			return 0, fmt.Errorf("h5io: child %q: %w", path, err)
		}
		switch obj.(type) {
		case *hdf5.Group:
			return KindGroup, nil
		default:
			return KindDataset, nil
		}
	}
	isGroup, err := g.gw.IsGroup(name)
	if err != nil {
		return 0, fmt.Errorf("h5io: child %q: %w", path, err)
	}
	if isGroup {
		return KindGroup, nil
	}
	return KindDataset, nil
}

// OpenSubgroup opens a child that is itself a group.
func (g *Group) OpenSubgroup(name string) (*Group, error) {
	path := join(g.path, name)
	if g.g != nil {
		sub, err := g.g.Group(name)
		if err != nil {
			return nil, fmt.Errorf("h5io: open subgroup %q: %w", path, err)
		}
		return &Group{fr: g.fr, path: path, g: sub}, nil
	}
	sub, err := g.gw.Group(name)
	if err != nil {
		return nil, fmt.Errorf("h5io: open subgroup %q: %w", path, err)
	}
	return &Group{fw: g.fw, path: path, gw: sub}, nil
}

// OpenDataset opens a child that is a bare dataset.
func (g *Group) OpenDataset(name string) (*Dataset, error) {
	path := join(g.path, name)
	if g.g != nil {
		ds, err := g.g.Dataset(name)
		if err != nil {
			return nil, fmt.Errorf("h5io: open dataset %q: %w", path, err)
		}
		return &Dataset{d: ds, path: path}, nil
	}
	dw, err := g.gw.Dataset(name)
	if err != nil {
		return nil, fmt.Errorf("h5io: open dataset %q: %w", path, err)
	}
	return &Dataset{dw: dw, path: path}, nil
}

// Dataset is a scoped view over one HDF5 dataset.
type Dataset struct {
	path string
	dw   *hdf5.DatasetWriter
	d    *hdf5.Dataset
}

// SetAttrs writes (overwriting) every named attribute on this dataset.
func (d *Dataset) SetAttrs(attrs map[string]any) error {
	if d.dw == nil {
		return fmt.Errorf("h5io: dataset opened read-only")
	}
	for name, value := range attrs {
		if err := d.dw.WriteAttribute(name, value); err != nil {
			return fmt.Errorf("h5io: write attribute %q on %q: %w", name, d.path, err)
		}
	}
	return nil
}

// GetAttrs reads every attribute on this dataset.
func (d *Dataset) GetAttrs() (map[string]any, error) {
	if d.d != nil {
		return d.d.Attributes()
	}
	return d.dw.Attributes()
}

// Shape returns the dataset's on-disk dimensions.
func (d *Dataset) Shape() ([]int, error) {
	var dims []uint64
	var err error
	if d.d != nil {
		dims, err = d.d.Dims()
	} else {
		dims, err = d.dw.Dims()
	}
	if err != nil {
		return nil, fmt.Errorf("h5io: shape of %q: %w", d.path, err)
	}
	out := make([]int, len(dims))
	for i, dd := range dims {
		out[i] = int(dd)
	}
	return out, nil
}

// Read reads the dataset's full contents as a flat, row-major slice.
// The concrete element type matches the dataset's on-disk DType (e.g.
// []float64, []uint8, []complex128).
func (d *Dataset) Read() (any, error) {
	if d.d != nil {
		return d.d.ReadAll()
	}
	return d.dw.ReadAll()
}

func toDriverType(t DType) hdf5.DataType {
	switch t {
	case Int8:
		return hdf5.Int8
	case Int16:
		return hdf5.Int16
	case Int32:
		return hdf5.Int32
	case Int64:
		return hdf5.Int64
	case Uint8:
		return hdf5.Uint8
	case Uint16:
		return hdf5.Uint16
	case Uint32:
		return hdf5.Uint32
	case Uint64:
		return hdf5.Uint64
	case Float32:
		return hdf5.Float32
	case Float64:
		return hdf5.Float64
	case Complex64:
		return hdf5.Float32
	case Complex128:
		return hdf5.Float64
	default:
		return hdf5.Float64
	}
}
