package entity

import (
	"fmt"

	"entitycast/field"
)

// Attribute declares one named slot of a Type. The accessor is the shared
// policy object governing coercion and defaults for that slot.
type Attribute struct {
	Name     string
	Accessor field.Accessor
}

// Attr builds an attribute declaration.
func Attr(name string, acc field.Accessor) Attribute {
	return Attribute{Name: name, Accessor: acc}
}

// Type is a named, ordered attribute set declared at definition time. It is
// read-only after construction (SetExporter aside, which belongs to the
// definition phase) and therefore safely shared by any number of entities.
type Type struct {
	name     string
	attrs    []Attribute
	index    map[string]int
	exporter ExportFunc
}

// NewType builds an entity type from ordered attribute declarations.
// Attribute names must be unique and non-empty, accessors non-nil.
func NewType(name string, attrs ...Attribute) (*Type, error) {
	t := &Type{
		name:  name,
		attrs: attrs,
		index: make(map[string]int, len(attrs)),
	}

	for i, at := range attrs {
		if at.Name == "" {
			return nil, fmt.Errorf("%s: attribute %d has no name", name, i)
		}

		if at.Accessor == nil {
			return nil, fmt.Errorf("%s: attribute %q: %w", name, at.Name, ErrNilAccessor)
		}

		if _, ok := t.index[at.Name]; ok {
			return nil, fmt.Errorf("%s: attribute %q: %w", name, at.Name, ErrDuplicateAttribute)
		}

		t.index[at.Name] = i
	}

	return t, nil
}

// MustType is NewType for declaration sites where a malformed type is a
// programmer error.
func MustType(name string, attrs ...Attribute) *Type {
	t, err := NewType(name, attrs...)
	if err != nil {
		panic(err)
	}

	return t
}

// Name returns the type name.
func (t *Type) Name() string { return t.name }

// Attrs returns the declared attributes in declaration order. Callers must
// not modify the returned slice.
func (t *Type) Attrs() []Attribute { return t.attrs }

// Attr looks up a declared attribute by name.
func (t *Type) Attr(name string) (Attribute, bool) {
	i, ok := t.index[name]
	if !ok {
		return Attribute{}, false
	}

	return t.attrs[i], true
}

// SetExporter installs a custom export rendering for entities of this type.
// The exporter is honored when the entity appears nested inside another
// type's export; a type never delegates to its own exporter while exporting
// itself, which keeps self-typed recursive structures from looping.
func (t *Type) SetExporter(fn ExportFunc) { t.exporter = fn }

// RequiredAttrs returns the names of attributes with no default source.
// These must be present and non-nil in import input.
func (t *Type) RequiredAttrs() []string {
	var required []string
	for _, at := range t.attrs {
		if !at.Accessor.HasDefault() {
			required = append(required, at.Name)
		}
	}

	return required
}

// HasRequired reports whether the type has at least one required attribute.
// Composite accessors use it transitively to decide whether an empty
// construction is a safe default.
func (t *Type) HasRequired() bool {
	for _, at := range t.attrs {
		if !at.Accessor.HasDefault() {
			return true
		}
	}

	return false
}

// New returns an empty entity of this type. Reads fall back to each
// accessor's default source until a value is set.
func (t *Type) New() *Entity {
	return &Entity{typ: t, values: make(map[string]any, len(t.attrs))}
}

// Instance reports whether v is an entity of this exact type.
// Part of the field.Blueprint contract.
func (t *Type) Instance(v any) bool {
	e, ok := v.(*Entity)
	return ok && e.typ == t
}

// FromMapping constructs an entity from an untyped mapping.
// Part of the field.Blueprint contract.
func (t *Type) FromMapping(m map[string]any) (any, error) {
	return Import(t, m)
}

// Empty constructs an entity with every attribute defaulted.
// Part of the field.Blueprint contract.
func (t *Type) Empty() (any, error) {
	return Import(t, map[string]any{})
}
