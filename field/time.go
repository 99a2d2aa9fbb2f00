package field

import "time"

// CommonTimeLayout is the canonical serialization layout for timestamps.
const CommonTimeLayout = "2006-01-02T15:04:05"

// DefaultTimeLayouts is the ordered list of layouts tried when coercing a
// timestamp from text. The first match wins. Layouts without a seconds (or
// minutes) component leave the missing parts at zero.
var DefaultTimeLayouts = []string{
	CommonTimeLayout,
	"20060102T150405",
	"20060102T1504",
	"2006.01.02 15:04",
}

type timeAccessor struct {
	accessorBase
	layouts []string
}

// Time returns a timestamp accessor. Raw input may be a time.Time or a
// string in one of the configured layouts; anything else falls back to the
// default source. An accessor with no configured default defaults to the
// current time, so timestamp attributes are never required.
func Time(opts ...Option) Accessor {
	c := applyOptions(opts)

	layouts := c.layouts
	if len(layouts) == 0 {
		layouts = DefaultTimeLayouts
	}

	adapt := func(lit any) (any, bool) {
		switch v := lit.(type) {
		case time.Time:
			return v, true
		case string:
			if t, ok := parseTime(v, layouts); ok {
				return t, true
			}
			return nil, false
		default:
			return nil, false
		}
	}

	now := func() any { return time.Now() }

	return &timeAccessor{
		accessorBase: accessorBase{
			kind:     KindTime,
			defaults: newDefaultSource(c, adapt, now),
		},
		layouts: layouts,
	}
}

func (a *timeAccessor) Coerce(raw any) (any, error) {
	switch v := raw.(type) {
	case nil:
		return a.defaults.value()
	case time.Time:
		return v, nil
	case string:
		if v == "" {
			return a.defaults.value()
		}
		if t, ok := parseTime(v, a.layouts); ok {
			return t, nil
		}
		return a.defaults.value()
	default:
		return a.defaults.value()
	}
}

func parseTime(s string, layouts []string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
