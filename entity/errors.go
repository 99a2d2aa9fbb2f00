package entity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownAttribute is returned when an attribute name is not part of
	// the entity's declared set.
	ErrUnknownAttribute = errors.New("unknown attribute")

	// ErrDuplicateAttribute is returned by NewType for a repeated attribute name.
	ErrDuplicateAttribute = errors.New("duplicate attribute name")

	// ErrNilAccessor is returned by NewType for an attribute without an accessor.
	ErrNilAccessor = errors.New("attribute has no accessor")
)

// MissingRequiredFieldsError is raised during import when one or more
// required attributes are absent or nil. Fields lists every missing name,
// not just the first.
type MissingRequiredFieldsError struct {
	Type   string
	Fields []string
}

func (e *MissingRequiredFieldsError) Error() string {
	return fmt.Sprintf("%s: missing required fields with no default values: %s",
		e.Type, strings.Join(e.Fields, ", "))
}

// IsMissingRequiredFields checks if an error is a MissingRequiredFieldsError.
func IsMissingRequiredFields(err error) bool {
	var me *MissingRequiredFieldsError
	return errors.As(err, &me)
}
