package extract

import "github.com/archivekit/sda/internal/h5io"

// decodeLogical inverts logicalInserter: axis-reversal then row-array
// squeeze, widening the stored 0/1 bytes back to bool.
func decodeLogical(ds *h5io.Dataset) (any, error) {
	onDiskShape, err := ds.Shape()
	if err != nil {
		return nil, err
	}
	raw, err := ds.Read()
	if err != nil {
		return nil, err
	}
	logicalAny, _ := reverseAxesAny(raw, onDiskShape)
	logical := logicalAny.([]uint8)
	shape := reduceRank2(reverseIntSlice(onDiskShape))

	bools := make([]bool, len(logical))
	for i, b := range logical {
		bools[i] = b != 0
	}

	switch len(shape) {
	case 0:
		return bools[0], nil
	case 1:
		return bools, nil
	default:
		rows, cols := shape[0], shape[1]
		grid := make([][]bool, rows)
		for r := 0; r < rows; r++ {
			grid[r] = bools[r*cols : (r+1)*cols]
		}
		return grid, nil
	}
}
