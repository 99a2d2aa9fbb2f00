package field

type intListAccessor struct {
	accessorBase
}

// IntList returns an accessor for lists of integers. Items are converted
// with the same lenient rules as Int; items that fail to convert are
// dropped. Non-list raw input falls back to the default source.
func IntList(opts ...Option) Accessor {
	c := applyOptions(opts)

	adapt := func(lit any) (any, bool) {
		items, ok := asSlice(lit)
		if !ok {
			return nil, false
		}

		out := make([]int, 0, len(items))
		for _, item := range items {
			if n, ok := toInt(item); ok {
				out = append(out, n)
			}
		}

		return out, true
	}

	return &intListAccessor{accessorBase{
		kind:     KindIntList,
		defaults: newDefaultSource(c, adapt, nil),
	}}
}

func (a *intListAccessor) Coerce(raw any) (any, error) {
	items, ok := asSlice(raw)
	if !ok {
		// only a list is accepted
		return a.defaults.value()
	}

	out := make([]int, 0, len(items))
	for _, item := range items {
		if n, ok := toInt(item); ok {
			out = append(out, n)
		}
	}

	return out, nil
}
