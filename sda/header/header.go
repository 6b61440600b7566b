// Package header implements the SDA archive header: its ASCII-encoded
// attribute conventions, date formatting/validation, and the small set of
// validators spec.md §7 names (FileFormat, FormatVersion, Writable,
// Created/Updated). See spec.md §3, §6.
package header

import (
	"fmt"
	"regexp"
	"time"
)

const (
	// FileFormat is the constant value every SDA archive's root
	// FileFormat attribute must carry.
	FileFormat = "SDA"

	// FormatVersion10 and FormatVersion11 are the two supported
	// FormatVersion values. Writes always stamp FormatVersion11.
	FormatVersion10 = "1.0"
	FormatVersion11 = "1.1"

	// DateLayout is the full timestamp layout, used when the time of
	// day is non-zero.
	DateLayout = "02-Jan-2006 15:04:05"
	// DateLayoutShort omits the time of day when it is exactly midnight.
	DateLayoutShort = "02-Jan-2006"
)

// Attrs is the set of header attributes stored on an archive's root.
type Attrs struct {
	FileFormat    string
	FormatVersion string
	Writable      bool
	Created       string
	Updated       string
}

// NowString formats t (or the current time, if the zero Time is passed)
// as an SDA date string, dropping the time-of-day component when it is
// exactly midnight, matching the reference toolbox's `datestr` behavior.
func NowString(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format(DateLayoutShort)
	}
	return t.Format(DateLayout)
}

// ValidDate reports whether s parses as either the full or short date
// layout.
func ValidDate(s string) bool {
	if _, err := time.Parse(DateLayout, s); err == nil {
		return true
	}
	_, err := time.Parse(DateLayoutShort, s)
	return err == nil
}

// ValidFileFormat reports whether s is the required constant.
func ValidFileFormat(s string) bool { return s == FileFormat }

var formatVersionRE = regexp.MustCompile(`^1\.(\d+)$`)

// ValidFormatVersion reports whether s is "1.0" or "1.1" (or, generously,
// any "1.X" with X <= 1 — the reference toolbox's own check is this
// loose, matched here for read compatibility with archives it wrote).
func ValidFormatVersion(s string) bool {
	m := formatVersionRE.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	return m[1] == "0" || m[1] == "1"
}

// ValidWritable reports whether s is "yes" or "no".
func ValidWritable(s string) bool { return s == "yes" || s == "no" }

// New builds the header attributes for a freshly created archive.
func New() Attrs {
	now := NowString(time.Time{})
	return Attrs{
		FileFormat:    FileFormat,
		FormatVersion: FormatVersion11,
		Writable:      true,
		Created:       now,
		Updated:       now,
	}
}

// Touch advances Updated to now and normalizes FormatVersion to 1.1, the
// invariant every successful mutation must uphold (spec.md §3).
func (a *Attrs) Touch() {
	a.FormatVersion = FormatVersion11
	a.Updated = NowString(time.Time{})
}

// Validate checks FileFormat, FormatVersion, Created and Updated against
// their validators, returning a descriptive error naming the first
// attribute found invalid or missing. Empty-string fields are treated as
// missing. Writable is not checked here, since Attrs holds it as a bool;
// its on-disk string is checked with ValidWritable where it is decoded.
func Validate(a Attrs) error {
	if a.FileFormat == "" || !ValidFileFormat(a.FileFormat) {
		return fmt.Errorf("header: invalid or missing FileFormat attribute")
	}
	if a.FormatVersion == "" || !ValidFormatVersion(a.FormatVersion) {
		return fmt.Errorf("header: invalid or missing FormatVersion attribute")
	}
	if a.Created == "" || !ValidDate(a.Created) {
		return fmt.Errorf("header: invalid or missing Created attribute")
	}
	if a.Updated == "" || !ValidDate(a.Updated) {
		return fmt.Errorf("header: invalid or missing Updated attribute")
	}
	return nil
}
