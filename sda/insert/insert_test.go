package insert_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archivekit/sda/internal/h5io"
	"github.com/archivekit/sda/sda/insert"
	"github.com/archivekit/sda/sda/record"
	"github.com/archivekit/sda/sda/value"
)

func resolve(t *testing.T, v any) insert.Inserter {
	t.Helper()
	reg := insert.NewRegistry()
	ins, err := reg.Resolve(v)
	require.NoError(t, err)
	return ins
}

func TestResolveUnsupportedType(t *testing.T) {
	reg := insert.NewRegistry()
	_, err := reg.Resolve(make(chan int))
	assert.ErrorIs(t, err, insert.ErrUnsupportedType)
}

func TestNumericScalarDecomposesToOneByOne(t *testing.T) {
	ins := resolve(t, float64(3.5))
	assert.Equal(t, record.Numeric, ins.Kind())

	p, err := ins.Prepare(float64(3.5), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, p.Dataset.Shape)
	assert.Equal(t, []float64{3.5}, p.Dataset.Flat)
	assert.Equal(t, "no", p.GroupAttrs["Empty"])
}

func TestNumericScalarNaNIsEmpty(t *testing.T) {
	ins := resolve(t, record.NaN())
	p, err := ins.Prepare(record.NaN(), 0)
	require.NoError(t, err)
	assert.Equal(t, "yes", p.GroupAttrs["Empty"])
}

func TestNumericDenseArrayTransposedOnDisk(t *testing.T) {
	// logical [[1,2,3],[4,5,6]] (2x3) should be stored column-major as
	// a 3x2 on-disk dataset: [1,4,2,5,3,6].
	v := [][]float64{{1, 2, 3}, {4, 5, 6}}
	ins := resolve(t, v)
	p, err := ins.Prepare(v, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, p.Dataset.Shape)
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, p.Dataset.Flat)
}

func TestNumericDenseArrayRejectsRaggedRows(t *testing.T) {
	v := [][]float64{{1, 2, 3}, {4, 5}}
	ins := resolve(t, v)
	_, err := ins.Prepare(v, 0)
	assert.ErrorIs(t, err, insert.ErrRaggedArray)
}

func TestNumericComplexSplitsIntoRealImagRows(t *testing.T) {
	v := []complex128{1 + 2i, 3 + 4i}
	ins := resolve(t, v)
	assert.Equal(t, record.Numeric, ins.Kind())

	p, err := ins.Prepare(v, 0)
	require.NoError(t, err)
	assert.Equal(t, "yes", p.Dataset.Attrs["Complex"])
	assert.Equal(t, []int{2, 2}, p.Dataset.Shape)
	flat := p.Dataset.Flat.([]float64)
	assert.Equal(t, []float64{1, 3, 2, 4}, flat)
}

func TestSparseInserterEncodesOneBasedCOO(t *testing.T) {
	s := value.Sparse{
		Shape:  [2]int{5, 5},
		Rows:   []int{0, 1, 2, 3, 4},
		Cols:   []int{0, 1, 2, 3, 4},
		Values: []float64{1, 1, 1, 1, 1},
	}
	ins := resolve(t, s)
	assert.Equal(t, record.Numeric, ins.Kind())

	p, err := ins.Prepare(s, 0)
	require.NoError(t, err)
	assert.Equal(t, "yes", p.Dataset.Attrs["Sparse"])
	assert.Equal(t, []int{3, 5}, p.Dataset.Shape)
	flat := p.Dataset.Flat.([]float64)
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, flat[0:5]) // rows, 1-based
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, flat[5:10]) // cols, 1-based
}

func TestSparseComplexPreservesArraySize(t *testing.T) {
	s := value.SparseComplex{
		Shape:  [2]int{2, 2},
		Rows:   []int{0, 1},
		Cols:   []int{0, 1},
		Values: []complex128{1 + 1i, 2 + 2i},
	}
	ins := resolve(t, s)
	p, err := ins.Prepare(s, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, p.Dataset.Attrs["ArraySize"])
	assert.Equal(t, "yes", p.Dataset.Attrs["Sparse"])
	assert.Equal(t, "yes", p.Dataset.Attrs["Complex"])
}

func TestLogicalInserterEncodesZeroOne(t *testing.T) {
	ins := resolve(t, true)
	assert.Equal(t, record.Logical, ins.Kind())
	p, err := ins.Prepare(true, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, p.Dataset.Shape)
	assert.Equal(t, []uint8{1}, p.Dataset.Flat)
}

func TestLogicalSliceEncoding(t *testing.T) {
	v := []bool{true, false, true}
	ins := resolve(t, v)
	p, err := ins.Prepare(v, 0)
	require.NoError(t, err)
	assert.Equal(t, []uint8{1, 0, 1}, p.Dataset.Flat)
	assert.Equal(t, "no", p.GroupAttrs["Empty"])
}

func TestCharacterInserterEncodesStringAsRow(t *testing.T) {
	ins := resolve(t, "hello")
	assert.Equal(t, record.Character, ins.Kind())
	p, err := ins.Prepare("hello", 0)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 1}, p.Dataset.Shape)
	assert.Equal(t, []uint8("hello"), p.Dataset.Flat)
}

func TestCharacterInserterEmptyString(t *testing.T) {
	ins := resolve(t, "")
	p, err := ins.Prepare("", 0)
	require.NoError(t, err)
	assert.Equal(t, "yes", p.GroupAttrs["Empty"])
}

func TestFileInserterReadsSourceFully(t *testing.T) {
	src := &fakeReader{data: []byte("payload")}
	v := value.File{Source: src}
	ins := resolve(t, v)
	assert.Equal(t, record.File, ins.Kind())

	p, err := ins.Prepare(v, 0)
	require.NoError(t, err)
	assert.Equal(t, "file", p.GroupAttrs["RecordType"])
	assert.Equal(t, "numeric", p.Dataset.Attrs["RecordType"])
	assert.Equal(t, h5io.Uint8, p.Dataset.DType)
}

func TestCellInserterOrdersElementsColumnMajor(t *testing.T) {
	v := value.Cell{"a", "b", "c"}
	ins := resolve(t, v)
	assert.Equal(t, record.Cell, ins.Kind())

	children, err := ins.Children(v)
	require.NoError(t, err)
	require.Len(t, children, 3)
	assert.Equal(t, "element 1", children[0].Label)
	assert.Equal(t, "element 2", children[1].Label)
	assert.Equal(t, "element 3", children[2].Label)
	assert.Equal(t, "a", children[0].Value)

	p, err := ins.Prepare(v, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, p.GroupAttrs["RecordSize"])
}

func TestStructureInserterSortsFieldNames(t *testing.T) {
	v := map[string]any{"B": 2.0, "A": 1.0}
	ins := resolve(t, v)
	assert.Equal(t, record.Structure, ins.Kind())

	p, err := ins.Prepare(v, 0)
	require.NoError(t, err)
	assert.Equal(t, "A B", p.GroupAttrs["FieldNames"])

	children, err := ins.Children(v)
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, "A", children[0].Label)
	assert.Equal(t, "B", children[1].Label)
}

func TestStructureInserterRejectsInvalidFieldLabel(t *testing.T) {
	v := map[string]any{"1bad": 1.0}
	ins := resolve(t, v)
	_, err := ins.Prepare(v, 0)
	assert.ErrorIs(t, err, insert.ErrInvalidFieldLabel)
}

type fakeReader struct {
	data []byte
	pos  int
}

func (r *fakeReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
