package signature

import "errors"

// ErrNotCell is returned by ValidateStructures when the input does not
// resolve to a cell record at all.
var ErrNotCell = errors.New("signature: value is not a cell")

// ErrNotStructure is returned by ValidateStructures when a cell element's
// own signature root is not a structure record.
var ErrNotStructure = errors.New("signature: cell element is not a structure")

// ErrNotHomogeneous is returned by ValidateStructures when a cell's
// elements do not all share one signature.
var ErrNotHomogeneous = errors.New("signature: cell elements are not homogeneous")
