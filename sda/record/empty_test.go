package record_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archivekit/sda/sda/record"
)

func TestEmptyPerKind(t *testing.T) {
	v, err := record.Empty(record.Numeric)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v.(float64)))

	v, err = record.Empty(record.Character)
	require.NoError(t, err)
	assert.Equal(t, "", v)

	v, err = record.Empty(record.File)
	require.NoError(t, err)
	assert.Equal(t, []byte{}, v)

	v, err = record.Empty(record.Logical)
	require.NoError(t, err)
	assert.Equal(t, []bool{}, v)

	v, err = record.Empty(record.Structure)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, v)
}

func TestEmptyRejectsObject(t *testing.T) {
	_, err := record.Empty(record.Object)
	assert.Error(t, err, "object needs a Class, which Empty cannot supply")
}

func TestValidLabel(t *testing.T) {
	assert.True(t, record.ValidLabel("example A1"))
	assert.False(t, record.ValidLabel(""))
	assert.False(t, record.ValidLabel("a/b"))
	assert.False(t, record.ValidLabel(`a\b`))
}

func TestValidDeflate(t *testing.T) {
	assert.True(t, record.ValidDeflate(0))
	assert.True(t, record.ValidDeflate(9))
	assert.False(t, record.ValidDeflate(-1))
	assert.False(t, record.ValidDeflate(10))
}

func TestValidFieldLabel(t *testing.T) {
	assert.True(t, record.ValidFieldLabel("A1"))
	assert.True(t, record.ValidFieldLabel("field_name"))
	assert.False(t, record.ValidFieldLabel("1field"))
	assert.False(t, record.ValidFieldLabel("has space"))
}
