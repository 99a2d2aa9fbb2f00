package field

import "sort"

// Blueprint describes a composite target from the accessor's point of view:
// how to recognize an existing instance, how to build one from an untyped
// mapping, and whether constructing an empty instance is safe. Entity types
// implement it; the accessors never depend on a concrete entity package.
type Blueprint interface {
	// Name is the target's type name, used in error messages.
	Name() string

	// Instance reports whether v already is an instance of the target.
	Instance(v any) bool

	// FromMapping constructs a target instance from an untyped mapping.
	FromMapping(m map[string]any) (any, error)

	// Empty constructs an instance with every attribute defaulted.
	Empty() (any, error)

	// HasRequired reports whether the target has at least one attribute
	// with no default source.
	HasRequired() bool
}

// objectFallback resolves the composite tail of the default precedence
// chain: empty construction when the target needs nothing, nil when the
// attribute is optional, raise otherwise.
func objectFallback(target Blueprint, optional bool) Factory {
	if !target.HasRequired() {
		return func() any {
			v, err := target.Empty()
			if err != nil {
				return nil
			}
			return v
		}
	}

	if optional {
		return func() any { return nil }
	}

	return nil
}

func adaptInstance(target Blueprint) func(any) (any, bool) {
	return func(lit any) (any, bool) {
		if target.Instance(lit) {
			return lit, true
		}
		return nil, false
	}
}

type objectAccessor struct {
	accessorBase
	target   Blueprint
	optional bool
}

// Object returns an accessor for a single nested entity. A mapping raw
// value is expanded as constructor input for the target, a matching
// instance is kept, and falsy input falls back to the default source. A
// truthy value of any other shape is an InvalidCompositeValueError unless
// the attribute is optional.
func Object(target Blueprint, opts ...Option) Accessor {
	c := applyOptions(opts)

	return &objectAccessor{
		accessorBase: accessorBase{
			kind:     KindObject,
			defaults: newDefaultSource(c, adaptInstance(target), objectFallback(target, c.optional)),
		},
		target:   target,
		optional: c.optional,
	}
}

func (a *objectAccessor) Coerce(raw any) (any, error) {
	if isFalsy(raw) {
		return a.defaults.value()
	}

	if a.target.Instance(raw) {
		return raw, nil
	}

	if m, ok := asMapping(raw); ok {
		return a.target.FromMapping(m)
	}

	if a.optional {
		return a.defaults.value()
	}

	return nil, &InvalidCompositeValueError{Target: a.target.Name(), Raw: raw}
}

type objectListAccessor struct {
	accessorBase
	target Blueprint
}

// ObjectList returns an accessor for a list of nested entities. Per item, a
// mapping is constructed, an instance is kept, and anything else is
// silently skipped. Non-list or empty raw input falls back to the default
// source (an empty list when nothing else is configured).
func ObjectList(target Blueprint, opts ...Option) Accessor {
	c := applyOptions(opts)

	adapt := func(lit any) (any, bool) {
		items, ok := asSlice(lit)
		if !ok {
			return nil, false
		}

		out := make([]any, 0, len(items))
		for _, item := range items {
			if target.Instance(item) {
				out = append(out, item)
			}
		}

		return out, true
	}

	empty := func() any { return []any{} }

	return &objectListAccessor{
		accessorBase: accessorBase{
			kind:     KindObjectList,
			defaults: newDefaultSource(c, adapt, empty),
		},
		target: target,
	}
}

func (a *objectListAccessor) Coerce(raw any) (any, error) {
	items, ok := asSlice(raw)
	if !ok || len(items) == 0 {
		return a.defaults.value()
	}

	out := make([]any, 0, len(items))
	for _, item := range items {
		switch {
		case a.target.Instance(item):
			out = append(out, item)
		default:
			m, ok := asMapping(item)
			if !ok {
				// skip items of the wrong shape
				continue
			}

			obj, err := a.target.FromMapping(m)
			if err != nil {
				return nil, err
			}
			out = append(out, obj)
		}
	}

	return out, nil
}

type objectMapAccessor struct {
	accessorBase
	target Blueprint
}

// ObjectMap returns an accessor for a string-keyed map of nested entities.
// Per value, a mapping is constructed, an instance is kept, and anything
// else is skipped, the same rule as ObjectList. Non-mapping raw input
// falls back to the default source (an empty map when nothing else is
// configured).
func ObjectMap(target Blueprint, opts ...Option) Accessor {
	c := applyOptions(opts)

	adapt := func(lit any) (any, bool) {
		m, ok := asMapping(lit)
		if !ok {
			return nil, false
		}

		out := make(map[string]any, len(m))
		for k, v := range m {
			if target.Instance(v) {
				out[k] = v
			}
		}

		return out, true
	}

	empty := func() any { return map[string]any{} }

	return &objectMapAccessor{
		accessorBase: accessorBase{
			kind:     KindObjectMap,
			defaults: newDefaultSource(c, adapt, empty),
		},
		target: target,
	}
}

func (a *objectMapAccessor) Coerce(raw any) (any, error) {
	m, ok := asMapping(raw)
	if !ok {
		return a.defaults.value()
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]any, len(m))
	for _, k := range keys {
		v := m[k]

		switch {
		case a.target.Instance(v):
			out[k] = v
		default:
			vm, ok := asMapping(v)
			if !ok {
				// skip values of the wrong shape, same as the list rule
				continue
			}

			obj, err := a.target.FromMapping(vm)
			if err != nil {
				return nil, err
			}
			out[k] = obj
		}
	}

	return out, nil
}

// WrapperAttr is the attribute name that receives a bare string when it is
// wrapped into a composite value.
const WrapperAttr = "value"

type stringWrapperAccessor struct {
	accessorBase
	target Blueprint
}

// StringWrapper returns an accessor whose target wraps a bare string in its
// designated "value" attribute. A matching instance is kept, a mapping is
// expanded as constructor input, and any other non-nil, non-false value is
// rendered to text and wrapped. Targets without a "value" attribute simply
// discard the wrapped text during construction.
func StringWrapper(target Blueprint, opts ...Option) Accessor {
	c := applyOptions(opts)

	return &stringWrapperAccessor{
		accessorBase: accessorBase{
			kind:     KindStringWrapper,
			defaults: newDefaultSource(c, adaptInstance(target), objectFallback(target, c.optional)),
		},
		target: target,
	}
}

func (a *stringWrapperAccessor) Coerce(raw any) (any, error) {
	if raw == nil || raw == false {
		return a.defaults.value()
	}

	if a.target.Instance(raw) {
		return raw, nil
	}

	if m, ok := asMapping(raw); ok {
		return a.target.FromMapping(m)
	}

	return a.target.FromMapping(map[string]any{WrapperAttr: toText(raw)})
}
