package field

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingDefault is returned when an attribute was never set and its
	// accessor has no default source.
	ErrMissingDefault = errors.New("value has no default and must be set")
)

// IdentifierParseError reports a strict-mode identifier coercion failure.
// Lenient accessors never produce it: they fall back to the default source.
type IdentifierParseError struct {
	Raw any
	Err error
}

func (e *IdentifierParseError) Error() string {
	return fmt.Sprintf("%v is not a valid identifier: %v", e.Raw, e.Err)
}

// Unwrap returns the underlying parse error.
func (e *IdentifierParseError) Unwrap() error { return e.Err }

// IsIdentifierParseError checks if an error is an IdentifierParseError.
func IsIdentifierParseError(err error) bool {
	var pe *IdentifierParseError
	return errors.As(err, &pe)
}

// InvalidCompositeValueError reports a single-object attribute given a value
// of the wrong shape: not a mapping, not a matching instance, and truthy.
type InvalidCompositeValueError struct {
	Target string
	Raw    any
}

func (e *InvalidCompositeValueError) Error() string {
	return fmt.Sprintf("cannot coerce %T into %s: expected a mapping or an instance", e.Raw, e.Target)
}

// IsInvalidCompositeValueError checks if an error is an InvalidCompositeValueError.
func IsInvalidCompositeValueError(err error) bool {
	var ce *InvalidCompositeValueError
	return errors.As(err, &ce)
}
