package extract

import "errors"

// ErrUnsupportedRecordType is returned when a group's RecordType attribute
// is missing or not one of the closed set record.Supported recognizes.
var ErrUnsupportedRecordType = errors.New("extract: unsupported record type")

// ErrMalformedArchive is returned when an archive's on-disk shape
// contradicts what its own attributes claim (e.g. an objects element that
// isn't a structure record).
var ErrMalformedArchive = errors.New("extract: malformed archive")
