package extract

import "reflect"

// attrString coerces an attribute to a string, returning "" if absent or
// of some other type.
func attrString(attrs map[string]any, key string) string {
	s, _ := attrs[key].(string)
	return s
}

// attrInt coerces an attribute to int regardless of which concrete
// numeric type the driver's attribute round trip produced.
func attrInt(attrs map[string]any, key string) int {
	v, ok := attrs[key]
	if !ok {
		return 0
	}
	return coerceInt(reflect.ValueOf(v))
}

// attrIntSlice coerces a stored shape-like attribute (RecordSize,
// ArraySize) to []int, regardless of which concrete element width the
// driver's attribute round trip produced.
func attrIntSlice(attrs map[string]any, key string) []int {
	v, ok := attrs[key]
	if !ok {
		return nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil
	}
	out := make([]int, rv.Len())
	for i := range out {
		out[i] = coerceInt(rv.Index(i))
	}
	return out
}

func coerceInt(rv reflect.Value) int {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return int(rv.Float())
	default:
		return 0
	}
}
