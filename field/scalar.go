package field

import (
	"math"
	"reflect"
	"strconv"
)

// toInt converts an int, float, or numeric string (including "12.0"-style)
// into an int. Floats truncate.
func toInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return int(f), true
	case float64:
		return int(v), true
	case float32:
		return int(v), true
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint()), true
	default:
		return 0, false
	}
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	default:
		return 0, false
	}
}

// adaptInt accepts literal defaults that already match the numeric shape.
// Strings are deliberately not accepted as literals: a literal default must
// match the target kind, only runtime input gets the lenient parse.
func adaptInt(lit any) (any, bool) {
	switch lit.(type) {
	case string:
		return nil, false
	default:
		n, ok := toInt(lit)
		return n, ok
	}
}

func adaptFloat(lit any) (any, bool) {
	switch lit.(type) {
	case string:
		return nil, false
	default:
		f, ok := toFloat(lit)
		return f, ok
	}
}

type intAccessor struct {
	accessorBase
}

// Int returns an integer accessor. Raw input may be an int, a float
// (truncated), or a numeric string such as "12" or "12.0". Empty, nil, and
// malformed input fall back to the default source.
func Int(opts ...Option) Accessor {
	c := applyOptions(opts)

	return &intAccessor{accessorBase{
		kind:     KindInt,
		defaults: newDefaultSource(c, adaptInt, nil),
	}}
}

func (a *intAccessor) Coerce(raw any) (any, error) {
	if raw == nil || raw == "" {
		return a.defaults.value()
	}

	if n, ok := toInt(raw); ok {
		return n, nil
	}

	return a.defaults.value()
}

type floatAccessor struct {
	accessorBase
}

// Float returns a float accessor with the same lenient input forms as Int,
// canonicalized to float64.
func Float(opts ...Option) Accessor {
	c := applyOptions(opts)

	return &floatAccessor{accessorBase{
		kind:     KindFloat,
		defaults: newDefaultSource(c, adaptFloat, nil),
	}}
}

func (a *floatAccessor) Coerce(raw any) (any, error) {
	if raw == nil || raw == "" {
		return a.defaults.value()
	}

	if f, ok := toFloat(raw); ok {
		return f, nil
	}

	return a.defaults.value()
}

type boolIntAccessor struct {
	accessorBase
}

// BoolInt returns an accessor that canonicalizes truthy input to integer 1
// and falsey input to 0. Only bool and integer raw forms are accepted; any
// other input falls back to the default source.
func BoolInt(opts ...Option) Accessor {
	c := applyOptions(opts)

	adapt := func(lit any) (any, bool) {
		switch v := lit.(type) {
		case bool:
			if v {
				return 1, true
			}
			return 0, true
		case int:
			if v != 0 {
				return 1, true
			}
			return 0, true
		default:
			return nil, false
		}
	}

	return &boolIntAccessor{accessorBase{
		kind:     KindBoolInt,
		defaults: newDefaultSource(c, adapt, nil),
	}}
}

func (a *boolIntAccessor) Coerce(raw any) (any, error) {
	switch v := raw.(type) {
	case nil:
		return a.defaults.value()
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.Int() != 0 {
			return 1, nil
		}
		return 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if rv.Uint() != 0 {
			return 1, nil
		}
		return 0, nil
	case reflect.Float32, reflect.Float64:
		// decoded JSON delivers every number as a float; integral values
		// still count as ints here
		f := rv.Float()
		if f != math.Trunc(f) {
			return a.defaults.value()
		}
		if f != 0 {
			return 1, nil
		}
		return 0, nil
	default:
		// only bool/int raw forms are accepted
		return a.defaults.value()
	}
}

type stringAccessor struct {
	accessorBase
}

// String returns a plain text slot. Strings and byte slices pass through;
// nil and non-textual input fall back to the default source. An empty
// string is a concrete value, not a missing one.
func String(opts ...Option) Accessor {
	c := applyOptions(opts)

	adapt := func(lit any) (any, bool) {
		s, ok := lit.(string)
		return s, ok
	}

	return &stringAccessor{accessorBase{
		kind:     KindString,
		defaults: newDefaultSource(c, adapt, nil),
	}}
}

func (a *stringAccessor) Coerce(raw any) (any, error) {
	switch v := raw.(type) {
	case nil:
		return a.defaults.value()
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return a.defaults.value()
	}
}
