package insert

import (
	"fmt"
	"io"

	"github.com/archivekit/sda/internal/colmajor"
	"github.com/archivekit/sda/internal/h5io"
	"github.com/archivekit/sda/sda/record"
	"github.com/archivekit/sda/sda/value"
)

// fileInserter handles sda.File{Source io.Reader}: the full contents of
// Source are read into memory and stored as a numeric uint8 dense array,
// with the group (but not the dataset) marked RecordType="file" so
// extract_to_file can find it while generic numeric extraction still
// handles the dataset underneath (spec.md §4.2).
type fileInserter struct{}

func (fileInserter) Kind() record.Kind { return record.File }

func (fileInserter) CanInsert(v any) bool {
	f, ok := v.(value.File)
	return ok && f.Source != nil
}

func (fileInserter) Prepare(v any, deflate int) (Prepared, error) {
	f, ok := v.(value.File)
	if !ok || f.Source == nil {
		return Prepared{}, ErrUnsupportedType
	}
	data, err := io.ReadAll(f.Source)
	if err != nil {
		return Prepared{}, fmt.Errorf("insert: reading file source: %w", err)
	}

	shape := []int{len(data)}
	rows, cols := colmajor.AtLeast2D(shape)
	onDisk := colmajor.Transpose2D(data, rows, cols)

	empty := len(data) == 0
	return Prepared{
		GroupAttrs: map[string]any{
			"RecordType": "file",
			"Empty":      yesNo(empty),
			"Deflate":    deflate,
		},
		Dataset: &Dataset{
			DType: h5io.Uint8,
			Shape: []int{cols, rows},
			Flat:  onDisk,
			Attrs: map[string]any{
				"RecordType": "numeric",
				"Empty":      yesNo(empty),
				"Complex":    "no",
				"Sparse":     "no",
			},
		},
	}, nil
}

func (fileInserter) Children(v any) ([]Child, error) { return nil, nil }
