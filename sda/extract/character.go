package extract

import (
	"github.com/archivekit/sda/internal/colmajor"
	"github.com/archivekit/sda/internal/h5io"
	"github.com/archivekit/sda/sda/value"
)

// decodeCharacter inverts characterInserter. A 1xN row decodes to a
// plain ASCII string (the common case, including the single-character
// 1x1 squeeze); any other shape decodes to a CharArray preserving the
// byte grid, matching the S1-equivalent array-of-characters case.
func decodeCharacter(ds *h5io.Dataset) (any, error) {
	onDiskShape, err := ds.Shape()
	if err != nil {
		return nil, err
	}
	raw, err := ds.Read()
	if err != nil {
		return nil, err
	}
	data := raw.([]uint8)
	logical := colmajor.ReverseAxes(data, onDiskShape)
	preShape := reverseIntSlice(onDiskShape)
	rows, cols := preShape[0], preShape[1]

	if rows == 1 {
		s, err := h5io.DecodeASCII(logical)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return value.CharArray{Shape: []int{rows, cols}, Data: logical}, nil
}
