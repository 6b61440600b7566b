package extract

import (
	"fmt"

	"github.com/archivekit/sda/internal/colmajor"
	"github.com/archivekit/sda/internal/h5io"
)

// decodeFile inverts fileInserter: the dataset's bytes are stored exactly
// like a numeric uint8 vector (atleast_2d to a 1xN row, then transposed),
// so reversing the axes alone recovers the original byte order — there is
// never a squeeze to a bare byte, since a file's content is always a
// slice regardless of length.
func decodeFile(ds *h5io.Dataset) ([]byte, error) {
	onDiskShape, err := ds.Shape()
	if err != nil {
		return nil, err
	}
	raw, err := ds.Read()
	if err != nil {
		return nil, err
	}
	data, ok := raw.([]uint8)
	if !ok {
		return nil, fmt.Errorf("%w: file dataset has non-byte dtype", ErrMalformedArchive)
	}
	return colmajor.ReverseAxes(data, onDiskShape), nil
}
