package sda_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archivekit/sda/sda"
	"github.com/archivekit/sda/sda/record"
)

func writeTestFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

func readTestFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func openFresh(t *testing.T) *sda.Archive {
	t.Helper()
	path := filepath.Join(t.TempDir(), "archive.sda")
	a, err := sda.Open(path, sda.ModeCreate)
	require.NoError(t, err)
	return a
}

// S1: a 5x1 float64 zero vector round-trips through insert/extract as a
// plain []float64 of length 5, the row-array squeezed on read.
func TestScenarioDenseZeroVectorSqueezesToSlice(t *testing.T) {
	a := openFresh(t)
	v := sda.Array[float64]{Shape: []int{5, 1}, Data: make([]float64, 5)}
	require.NoError(t, a.Insert("zeros", v, nil))

	got, err := a.Extract("zeros")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0, 0}, got)
}

// S2: a 4x3 complex128 dense array round-trips to the same logical
// values, and Probe reports it as Complex with ArraySize (4,3).
func TestScenarioDenseComplexArrayRoundTrips(t *testing.T) {
	a := openFresh(t)
	data := make([]complex128, 12)
	for i := range data {
		data[i] = complex(float64(i), float64(-i))
	}
	v := sda.Array[complex128]{Shape: []int{4, 3}, Data: data}
	require.NoError(t, a.Insert("cplx", v, nil))

	got, err := a.Extract("cplx")
	require.NoError(t, err)
	arr, ok := got.(sda.Array[complex128])
	require.True(t, ok)
	assert.Equal(t, []int{4, 3}, arr.Shape)
	assert.Equal(t, data, arr.Data)

	rows, err := a.Probe("cplx")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "yes", rows[0].Complex)
	assert.Equal(t, "[4 3]", rows[0].ArraySize)
}

// S3: a 5x5 sparse identity matrix round-trips with its COO triples
// intact and Probe reports it as sparse.
func TestScenarioSparseIdentityRoundTrips(t *testing.T) {
	a := openFresh(t)
	s := sda.Sparse{
		Shape:  [2]int{5, 5},
		Rows:   []int{0, 1, 2, 3, 4},
		Cols:   []int{0, 1, 2, 3, 4},
		Values: []float64{1, 1, 1, 1, 1},
	}
	require.NoError(t, a.Insert("identity", s, nil))

	got, err := a.Extract("identity")
	require.NoError(t, err)
	out, ok := got.(sda.Sparse)
	require.True(t, ok)
	assert.Equal(t, [2]int{5, 5}, out.Shape)
	assert.ElementsMatch(t, s.Rows, out.Rows)
	assert.ElementsMatch(t, s.Cols, out.Cols)

	rows, err := a.Probe("identity")
	require.NoError(t, err)
	assert.Equal(t, "yes", rows[0].Sparse)
}

// S4: NaN inserts as an empty numeric record.
func TestScenarioNaNIsEmptyNumeric(t *testing.T) {
	a := openFresh(t)
	require.NoError(t, a.Insert("nanval", record.NaN(), nil))

	rows, err := a.Probe("nanval")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "numeric", rows[0].RecordType)
	assert.Equal(t, "yes", rows[0].Empty)

	got, err := a.Extract("nanval")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got.(float64)))
}

// S5: a scalar bool inserts as a 1x1 logical record and extracts back to
// a plain bool.
func TestScenarioBoolRoundTripsAsLogicalScalar(t *testing.T) {
	a := openFresh(t)
	require.NoError(t, a.Insert("flag", true, nil))

	rows, err := a.Probe("flag")
	require.NoError(t, err)
	assert.Equal(t, "logical", rows[0].RecordType)

	got, err := a.Extract("flag")
	require.NoError(t, err)
	assert.Equal(t, true, got)
}

// S6: a string round-trips through a character record unchanged.
func TestScenarioStringRoundTripsAsCharacter(t *testing.T) {
	a := openFresh(t)
	require.NoError(t, a.Insert("greeting", "hello, archive!!!", nil))

	rows, err := a.Probe("greeting")
	require.NoError(t, err)
	assert.Equal(t, "character", rows[0].RecordType)

	got, err := a.Extract("greeting")
	require.NoError(t, err)
	assert.Equal(t, "hello, archive!!!", got)
}

// S7: a structure's field names are stored sorted and space-joined.
func TestScenarioStructureFieldNamesSorted(t *testing.T) {
	a := openFresh(t)
	v := map[string]any{"A2": "second", "A1": "first"}
	require.NoError(t, a.Insert("rec", v, nil))

	rows, err := a.Probe("rec")
	require.NoError(t, err)
	assert.Equal(t, "structure", rows[0].RecordType)
	assert.Equal(t, "A1 A2", rows[0].FieldNames)

	got, err := a.Extract("rec")
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

// S8: a two-element list inserts as a cell record with RecordSize (1,2)
// and round-trips element order.
func TestScenarioListRoundTripsAsCell(t *testing.T) {
	a := openFresh(t)
	v := sda.Cell{"A1", "A2"}
	require.NoError(t, a.Insert("lst", v, nil))

	rows, err := a.Probe("lst")
	require.NoError(t, err)
	assert.Equal(t, "cell", rows[0].RecordType)
	assert.Equal(t, "[1 2]", rows[0].RecordSize)

	got, err := a.Extract("lst")
	require.NoError(t, err)
	assert.Equal(t, sda.Cell{"A1", "A2"}, got)
}

// S9: Remove deletes exactly the named label and leaves the rest intact.
func TestScenarioRemovePreservesOthers(t *testing.T) {
	a := openFresh(t)
	require.NoError(t, a.Insert("exampleA1", 1.0, nil))
	require.NoError(t, a.Insert("exampleA2", 2.0, nil))

	require.NoError(t, a.Remove("exampleA1"))

	labels, err := a.Labels()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"exampleA2"}, labels)

	_, err = a.Extract("exampleA1")
	assert.ErrorIs(t, err, sda.ErrLabelNotFound)

	got, err := a.Extract("exampleA2")
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)
}

func TestInsertRejectsDuplicateLabel(t *testing.T) {
	a := openFresh(t)
	require.NoError(t, a.Insert("dup", 1.0, nil))
	err := a.Insert("dup", 2.0, nil)
	assert.ErrorIs(t, err, sda.ErrLabelExists)

	// A rejected insert must not disturb the existing label.
	got, err := a.Extract("dup")
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestInsertRejectsInvalidLabel(t *testing.T) {
	a := openFresh(t)
	err := a.Insert("bad/label", 1.0, nil)
	assert.ErrorIs(t, err, sda.ErrValueError)
}

func TestInsertRejectsDeflateOutOfRange(t *testing.T) {
	a := openFresh(t)
	err := a.Insert("x", 1.0, &sda.InsertOptions{Deflate: 10})
	assert.ErrorIs(t, err, sda.ErrValueError)
}

func TestInsertRejectsUnsupportedType(t *testing.T) {
	a := openFresh(t)
	err := a.Insert("ch", make(chan int), nil)
	assert.ErrorIs(t, err, sda.ErrValueError)

	labels, lerr := a.Labels()
	require.NoError(t, lerr)
	assert.NotContains(t, labels, "ch")
}

func TestDescribeUpdatesDescriptionOnly(t *testing.T) {
	a := openFresh(t)
	require.NoError(t, a.Insert("rec", 1.0, &sda.InsertOptions{Description: "first"}))
	require.NoError(t, a.Describe("rec", "second"))

	rows, err := a.Probe("rec")
	require.NoError(t, err)
	assert.Equal(t, "second", rows[0].Description)
}

func TestReplacePreservesDescriptionAndDeflate(t *testing.T) {
	a := openFresh(t)
	require.NoError(t, a.Insert("rec", 1.0, &sda.InsertOptions{Description: "keep me", Deflate: 3}))
	require.NoError(t, a.Replace("rec", 99.0))

	got, err := a.Extract("rec")
	require.NoError(t, err)
	assert.Equal(t, 99.0, got)

	rows, err := a.Probe("rec")
	require.NoError(t, err)
	assert.Equal(t, "keep me", rows[0].Description)
	assert.Equal(t, 3, rows[0].Deflate)
}

func TestUpdateObjectRequiresEquivalentSignature(t *testing.T) {
	a := openFresh(t)
	require.NoError(t, a.Insert("obj", sda.Object{Class: "Point", Fields: map[string]any{"X": 1.0, "Y": 2.0}}, nil))

	err := a.UpdateObject("obj", map[string]any{"X": 10.0})
	assert.ErrorIs(t, err, sda.ErrValueError)

	require.NoError(t, a.UpdateObject("obj", map[string]any{"X": 10.0, "Y": 20.0}))
	got, err := a.Extract("obj")
	require.NoError(t, err)
	obj := got.(sda.Object)
	assert.Equal(t, "Point", obj.Class)
	assert.Equal(t, 10.0, obj.Fields["X"])
}

func TestUpdateObjectsRequiresNonEmptyAndEquivalentSignature(t *testing.T) {
	a := openFresh(t)
	items := []map[string]any{
		{"X": 1.0}, {"X": 2.0},
	}
	require.NoError(t, a.Insert("objs", sda.Objects{Class: "P", Shape: []int{1, 2}, Items: items}, nil))

	err := a.UpdateObjects("objs", nil)
	assert.ErrorIs(t, err, sda.ErrValueError)

	mismatched := []map[string]any{{"X": 1.0, "Extra": 2.0}}
	err = a.UpdateObjects("objs", mismatched)
	assert.Error(t, err)

	replacement := []map[string]any{{"X": 10.0}, {"X": 20.0}}
	require.NoError(t, a.UpdateObjects("objs", replacement))
}

func TestExtractToFileRequiresFileRecordType(t *testing.T) {
	a := openFresh(t)
	require.NoError(t, a.Insert("numbers", []uint8{1, 2, 3}, nil))

	dst := filepath.Join(t.TempDir(), "out.bin")
	err := a.ExtractToFile("numbers", dst, true)
	assert.ErrorIs(t, err, sda.ErrValueError)
}

func TestInsertFromFileRoundTrips(t *testing.T) {
	a := openFresh(t)
	srcPath := filepath.Join(t.TempDir(), "payload.txt")
	require.NoError(t, writeTestFile(srcPath, []byte("hello file")))

	label, err := a.InsertFromFile(srcPath, "a payload", 0)
	require.NoError(t, err)
	assert.Equal(t, "payload.txt", label)

	dstPath := filepath.Join(t.TempDir(), "copy.txt")
	require.NoError(t, a.ExtractToFile(label, dstPath, false))

	got, err := readTestFile(dstPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello file"), got)
}

func TestOpenRejectsMissingFileInReadMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.sda")
	_, err := sda.Open(path, sda.ModeRead)
	assert.ErrorIs(t, err, sda.ErrIOError)
}

func TestOpenRejectsCreateExclusiveOverExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.sda")
	_, err := sda.Open(path, sda.ModeCreateExclusive)
	require.NoError(t, err)

	_, err = sda.Open(path, sda.ModeCreateExclusive)
	assert.ErrorIs(t, err, sda.ErrIOError)
}

func TestSecondInsertAfterModeCreateDoesNotTruncate(t *testing.T) {
	// Regression test: the first Archive opened with ModeCreate must not
	// have every later mutating call reopen the file in a mode that
	// truncates or refuses it.
	a := openFresh(t)
	require.NoError(t, a.Insert("one", 1.0, nil))
	require.NoError(t, a.Insert("two", 2.0, nil))

	labels, err := a.Labels()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"one", "two"}, labels)
}

// A file nested inside a cell or structure is a bare child like any other
// simple kind (kind.Bare() covers file alongside numeric/logical/character):
// no subgroup wraps it, so it round-trips as the plain uint8 payload any
// other numeric dataset would, losing its group-level "file" tag the way
// the reference toolbox's FileInserter does for a nested file.
func TestScenarioNestedFileRoundTripsAsBareDataset(t *testing.T) {
	a := openFresh(t)
	cell := sda.Cell{sda.File{Source: strings.NewReader("hello")}, "sibling"}
	require.NoError(t, a.Insert("withfile", cell, nil))

	got, err := a.Extract("withfile")
	require.NoError(t, err)
	gotCell, ok := got.(sda.Cell)
	require.True(t, ok)
	assert.Equal(t, []uint8("hello"), gotCell[0])
	assert.Equal(t, "sibling", gotCell[1])

	structure := map[string]any{"Payload": sda.File{Source: strings.NewReader("world")}}
	require.NoError(t, a.Insert("withfile2", structure, nil))

	got2, err := a.Extract("withfile2")
	require.NoError(t, err)
	gotStruct, ok := got2.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []uint8("world"), gotStruct["Payload"])
}
