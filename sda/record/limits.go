package record

import (
	"regexp"
	"strings"
)

// MaxDeflate is the highest compression level the Deflate attribute
// accepts; 0 disables compression.
const MaxDeflate = 9

// ValidDeflate reports whether level is a legal Deflate value (0-9).
func ValidDeflate(level int) bool {
	return level >= 0 && level <= MaxDeflate
}

// ValidLabel reports whether label is usable as a top-level record label:
// non-empty and free of path separators, since labels become HDF5 group
// names directly under the root.
func ValidLabel(label string) bool {
	if label == "" {
		return false
	}
	return !strings.ContainsAny(label, "/\\")
}

var matlabFieldLabel = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// ValidFieldLabel reports whether label satisfies the MATLAB identifier
// rule structure field names must follow.
func ValidFieldLabel(label string) bool {
	return matlabFieldLabel.MatchString(label)
}
