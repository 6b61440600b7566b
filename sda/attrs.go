package sda

import "reflect"

// stringAttr, intAttr read one attribute out of a group/dataset/root
// attribute map of unknown concrete numeric width, the way extract's own
// attrs.go does for the read pipeline — duplicated here in miniature
// rather than imported, since extract's helpers are unexported.
func stringAttr(attrs map[string]any, key string) string {
	s, _ := attrs[key].(string)
	return s
}

func attrIntSliceLocal(attrs map[string]any, key string) []int {
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
		out[i] = intFromReflect(rv.Index(i))
	}
	return out
}

func intFromReflect(rv reflect.Value) int {
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

func intAttr(attrs map[string]any, key string) int {
	v, ok := attrs[key]
	if !ok {
		return 0
	}
	rv := reflect.ValueOf(v)
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
