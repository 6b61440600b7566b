package header_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/archivekit/sda/sda/header"
)

func TestNewProducesValidHeader(t *testing.T) {
	a := header.New()
	assert.NoError(t, header.Validate(a))
	assert.True(t, a.Writable)
	assert.Equal(t, header.FormatVersion11, a.FormatVersion)
}

func TestTouchAdvancesUpdatedAndNormalizesVersion(t *testing.T) {
	a := header.Attrs{
		FileFormat:    header.FileFormat,
		FormatVersion: header.FormatVersion10,
		Writable:      true,
		Created:       "01-Jan-2020",
		Updated:       "01-Jan-2020",
	}
	a.Touch()
	assert.Equal(t, header.FormatVersion11, a.FormatVersion)
	assert.True(t, header.ValidDate(a.Updated))
}

func TestValidateRejectsEachMissingField(t *testing.T) {
	base := header.New()

	withoutFormat := base
	withoutFormat.FileFormat = "NOT_SDA"
	assert.Error(t, header.Validate(withoutFormat))

	withoutVersion := base
	withoutVersion.FormatVersion = "2.0"
	assert.Error(t, header.Validate(withoutVersion))

	withoutCreated := base
	withoutCreated.Created = ""
	assert.Error(t, header.Validate(withoutCreated))

	withoutUpdated := base
	withoutUpdated.Updated = "not a date"
	assert.Error(t, header.Validate(withoutUpdated))
}

func TestNowStringDropsMidnightTimeOfDay(t *testing.T) {
	midnight := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	s := header.NowString(midnight)
	assert.Equal(t, "05-Mar-2024", s)
	assert.True(t, header.ValidDate(s))

	withTime := time.Date(2024, time.March, 5, 13, 30, 0, 0, time.UTC)
	s = header.NowString(withTime)
	assert.Equal(t, "05-Mar-2024 13:30:00", s)
	assert.True(t, header.ValidDate(s))
}

func TestValidFormatVersion(t *testing.T) {
	assert.True(t, header.ValidFormatVersion("1.0"))
	assert.True(t, header.ValidFormatVersion("1.1"))
	assert.False(t, header.ValidFormatVersion("1.2"))
	assert.False(t, header.ValidFormatVersion("2.0"))
}
