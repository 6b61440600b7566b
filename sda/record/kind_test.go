package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/archivekit/sda/sda/record"
)

func TestSimpleKinds(t *testing.T) {
	simple := []record.Kind{record.Numeric, record.Logical, record.Character, record.File}
	for _, k := range simple {
		assert.True(t, k.Simple(), "%s should be simple", k)
	}
	composite := []record.Kind{record.Cell, record.Structure, record.Structures, record.Object, record.Objects}
	for _, k := range composite {
		assert.False(t, k.Simple(), "%s should not be simple", k)
	}
}

func TestBareKindsIncludeFile(t *testing.T) {
	bare := []record.Kind{record.Numeric, record.Logical, record.Character, record.File}
	for _, k := range bare {
		assert.True(t, k.Bare(), "%s should be bare", k)
	}
	assert.False(t, record.Cell.Bare())
	assert.False(t, record.Structure.Bare())
}

func TestSupported(t *testing.T) {
	for _, k := range []record.Kind{
		record.Numeric, record.Logical, record.Character, record.File,
		record.Cell, record.Structure, record.Structures, record.Object, record.Objects,
	} {
		assert.True(t, record.Supported(k), "%s should be supported", k)
	}
	assert.False(t, record.Supported(record.Kind("function_handle")))
}

func TestEquivalenceClasses(t *testing.T) {
	assert.True(t, record.Equivalent(record.Structure, record.Object))
	assert.True(t, record.Equivalent(record.Object, record.Structure))

	assert.True(t, record.Equivalent(record.Cell, record.Objects))
	assert.True(t, record.Equivalent(record.Cell, record.Structures))
	assert.True(t, record.Equivalent(record.Objects, record.Structures))

	assert.True(t, record.Equivalent(record.Numeric, record.Numeric))

	assert.False(t, record.Equivalent(record.Structure, record.Cell))
	assert.False(t, record.Equivalent(record.Numeric, record.Logical))
	assert.False(t, record.Equivalent(record.Object, record.Objects))
}
