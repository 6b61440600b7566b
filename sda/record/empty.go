package record

import (
	"fmt"
	"math"
)

// Empty returns the canonical Go value extract() reconstructs for an
// "Empty"-flagged record of the given kind. cell, structure, structures,
// and objects share the empty list/map representation; object additionally
// needs a Class, so it is handled by the caller (sda/extract's emptyValue,
// which also gives objects its Class) rather than here.
func Empty(k Kind) (any, error) {
	switch k {
	case Numeric:
		return NaN(), nil
	case Character:
		return "", nil
	case File:
		return []byte{}, nil
	case Logical:
		return []bool{}, nil
	case Cell, Structures, Objects:
		return []any{}, nil
	case Structure:
		return map[string]any{}, nil
	default:
		return nil, fmt.Errorf("record: kind %q has no empty value", k)
	}
}

// NaN returns the float64 NaN value used as the empty sentinel for
// numeric records.
func NaN() float64 {
	return math.NaN()
}
