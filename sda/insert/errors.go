package insert

import "errors"

// ErrUnsupportedType is returned by Resolve when no registered inserter's
// predicate claims the value.
var ErrUnsupportedType = errors.New("insert: unsupported value type")

// ErrInvalidFieldLabel is returned when a structure/object key fails the
// MATLAB identifier rule.
var ErrInvalidFieldLabel = errors.New("insert: invalid field label")

// ErrRaggedArray is returned when a [][]T input's rows have unequal length.
var ErrRaggedArray = errors.New("insert: ragged 2-D array")
