package entity

import "fmt"

// Entity is a typed record instance: boxed values per attribute name plus a
// reference to the shared, read-only accessor table of its type. Instances
// are not safe for unsynchronized sharing across goroutines; the type is.
type Entity struct {
	typ    *Type
	values map[string]any
}

// Type returns the entity's type.
func (e *Entity) Type() *Type { return e.typ }

// Has reports whether the attribute holds an explicitly set value, as
// opposed to one the default source would produce on read.
func (e *Entity) Has(name string) bool {
	_, ok := e.values[name]
	return ok
}

// Get returns the stored value for the attribute, unchanged. When no value
// was ever set it returns the accessor's default, produced fresh per call;
// with no default source the read fails with field.ErrMissingDefault.
func (e *Entity) Get(name string) (any, error) {
	at, ok := e.typ.Attr(name)
	if !ok {
		return nil, fmt.Errorf("%s: %w: %q", e.typ.name, ErrUnknownAttribute, name)
	}

	if v, ok := e.values[name]; ok {
		return v, nil
	}

	v, err := at.Accessor.Default()
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", e.typ.name, name, err)
	}

	return v, nil
}

// MustGet is Get for call sites where an unreadable attribute is a
// programmer error, such as custom exporters over fully imported entities.
func (e *Entity) MustGet(name string) any {
	v, err := e.Get(name)
	if err != nil {
		panic(err)
	}

	return v
}

// Set coerces raw through the attribute's accessor and stores the canonical
// value. Malformed input degrades to the accessor's default; only strict
// identifier parses, wrong-shape composites, and default exhaustion error.
func (e *Entity) Set(name string, raw any) error {
	at, ok := e.typ.Attr(name)
	if !ok {
		return fmt.Errorf("%s: %w: %q", e.typ.name, ErrUnknownAttribute, name)
	}

	v, err := at.Accessor.Coerce(raw)
	if err != nil {
		return fmt.Errorf("%s.%s: %w", e.typ.name, name, err)
	}

	e.values[name] = v

	return nil
}
