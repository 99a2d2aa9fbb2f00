package field

import (
	"fmt"
	"reflect"
)

// asSlice normalizes any slice or array raw value into []any.
func asSlice(raw any) ([]any, bool) {
	if items, ok := raw.([]any); ok {
		return items, true
	}

	v := reflect.ValueOf(raw)
	if !v.IsValid() || (v.Kind() != reflect.Slice && v.Kind() != reflect.Array) {
		return nil, false
	}

	out := make([]any, v.Len())
	for i := range out {
		out[i] = v.Index(i).Interface()
	}

	return out, true
}

// asMapping normalizes any string-keyed map raw value into map[string]any.
func asMapping(raw any) (map[string]any, bool) {
	if m, ok := raw.(map[string]any); ok {
		return m, true
	}

	v := reflect.ValueOf(raw)
	if !v.IsValid() || v.Kind() != reflect.Map || v.Type().Key().Kind() != reflect.String {
		return nil, false
	}

	out := make(map[string]any, v.Len())

	iter := v.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}

	return out, true
}

// isFalsy reports whether raw counts as "no value supplied": nil, false,
// empty string, numeric zero, or an empty container.
func isFalsy(raw any) bool {
	switch v := raw.(type) {
	case nil:
		return true
	case bool:
		return !v
	case string:
		return v == ""
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

func toText(raw any) string {
	if s, ok := raw.(string); ok {
		return s
	}
	return fmt.Sprint(raw)
}
