package field

import (
	"fmt"

	"github.com/google/uuid"
)

type uuidAccessor struct {
	accessorBase
	strict bool
}

// UUID returns an identifier accessor. Raw input may be a uuid.UUID or an
// identifier-formatted string. In lenient mode malformed input falls back
// to the default source; with Strict it surfaces an IdentifierParseError.
//
// A malformed string literal default is a programmer error: with Strict it
// panics at construction, otherwise the literal is discarded and the
// attribute stays required.
func UUID(opts ...Option) Accessor {
	c := applyOptions(opts)

	if c.strict && c.factory == nil && c.hasLiteral {
		if s, ok := c.literal.(string); ok {
			if _, err := uuid.Parse(s); err != nil {
				panic(fmt.Sprintf("field.UUID: invalid literal default %q: %v", s, err))
			}
		}
	}

	adapt := func(lit any) (any, bool) {
		switch v := lit.(type) {
		case uuid.UUID:
			return v, true
		case string:
			id, err := uuid.Parse(v)
			if err != nil {
				return nil, false
			}
			return id, true
		default:
			return nil, false
		}
	}

	return &uuidAccessor{
		accessorBase: accessorBase{
			kind:     KindUUID,
			defaults: newDefaultSource(c, adapt, nil),
		},
		strict: c.strict,
	}
}

func (a *uuidAccessor) Coerce(raw any) (any, error) {
	if isFalsy(raw) {
		return a.defaults.value()
	}

	switch v := raw.(type) {
	case uuid.UUID:
		return v, nil
	case string:
		id, err := uuid.Parse(v)
		if err != nil {
			if a.strict {
				return nil, &IdentifierParseError{Raw: v, Err: err}
			}
			return a.defaults.value()
		}
		return id, nil
	default:
		if a.strict {
			return nil, &IdentifierParseError{Raw: raw, Err: fmt.Errorf("unsupported type %T", raw)}
		}
		return a.defaults.value()
	}
}

type uuidListAccessor struct {
	accessorBase
	strict bool
}

// UUIDList returns an accessor for lists of identifiers. Items may be
// uuid.UUID values or identifier-formatted strings; in lenient mode items
// that fail to convert are dropped, with Strict the first failure surfaces
// an IdentifierParseError. Non-list raw input falls back to the default
// source.
func UUIDList(opts ...Option) Accessor {
	c := applyOptions(opts)

	if c.strict && c.factory == nil && c.hasLiteral {
		if items, ok := asSlice(c.literal); ok {
			for _, item := range items {
				if _, ok := coerceUUIDItem(item); !ok {
					panic(fmt.Sprintf("field.UUIDList: invalid literal default item %v", item))
				}
			}
		}
	}

	adapt := func(lit any) (any, bool) {
		items, ok := asSlice(lit)
		if !ok {
			return nil, false
		}

		out := make([]uuid.UUID, 0, len(items))
		for _, item := range items {
			if id, ok := coerceUUIDItem(item); ok {
				out = append(out, id)
			}
		}

		return out, true
	}

	return &uuidListAccessor{
		accessorBase: accessorBase{
			kind:     KindUUIDList,
			defaults: newDefaultSource(c, adapt, nil),
		},
		strict: c.strict,
	}
}

func (a *uuidListAccessor) Coerce(raw any) (any, error) {
	if raw == nil {
		return a.defaults.value()
	}

	items, ok := asSlice(raw)
	if !ok {
		// only a list is accepted
		return a.defaults.value()
	}

	out := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		id, ok := coerceUUIDItem(item)
		if !ok {
			if a.strict {
				return nil, &IdentifierParseError{Raw: item, Err: fmt.Errorf("invalid list item")}
			}
			continue
		}
		out = append(out, id)
	}

	return out, nil
}

func coerceUUIDItem(item any) (uuid.UUID, bool) {
	if id, ok := item.(uuid.UUID); ok {
		return id, true
	}

	id, err := uuid.Parse(toText(item))
	if err != nil {
		return uuid.UUID{}, false
	}

	return id, true
}
