package entity

// Import constructs an entity from an untyped key-value mapping, such as a
// decoded JSON object. The mapping is projected onto the declared attribute
// set; unrecognized keys are discarded by design.
//
// Required attributes (no default source) must be present with a non-nil
// value; every violation is collected into one MissingRequiredFieldsError
// before any attribute is set, so a failed import never yields a partially
// populated entity. A required composite attribute whose key is absent is
// exempt here: it receives the whole mapping instead, and the nested import
// enforces its own required set.
//
// Composite attributes whose own key is absent from the mapping are given
// the entire mapping, which lets flattened input with nested-entity fields
// hoisted to the top level import cleanly. All other attributes receive
// their key's raw value; coercion and default substitution happen in the
// accessor write path.
func Import(t *Type, mapping map[string]any) (*Entity, error) {
	var missing []string
	for _, at := range t.attrs {
		if at.Accessor.HasDefault() {
			continue
		}

		v, present := mapping[at.Name]
		if !present {
			if at.Accessor.Kind().IsComposite() && len(mapping) > 0 {
				// hoisted-input path, checked by the nested import
				continue
			}

			missing = append(missing, at.Name)
			continue
		}

		if v == nil {
			missing = append(missing, at.Name)
		}
	}

	if len(missing) > 0 {
		return nil, &MissingRequiredFieldsError{Type: t.name, Fields: missing}
	}

	e := t.New()
	for _, at := range t.attrs {
		raw, present := mapping[at.Name]

		if at.Accessor.Kind().IsComposite() && !present {
			raw = mapping
		}

		if err := e.Set(at.Name, raw); err != nil {
			return nil, err
		}
	}

	return e, nil
}
