package collections

import "errors"

// Sentinel errors returned by Collection operations.
//
// Errors that carry context (the offending index, field or type) wrap one of
// these, so compare with [errors.Is]:
//
//	if _, err := c.At(10); errors.Is(err, collections.ErrIndexOutOfRange) {
//	    // ...
//	}
var (
	// ErrIndexOutOfRange is returned by At when the resolved position is
	// outside [0, Count()-1].
	ErrIndexOutOfRange = errors.New("collections: index out of range")

	// ErrDivisionByZero is returned by Average and AverageField when there is
	// nothing to average.
	ErrDivisionByZero = errors.New("collections: division by zero")

	// ErrFieldNotFound is returned when a named field is absent from a
	// record that is otherwise field-accessible.
	ErrFieldNotFound = errors.New("collections: field not found")

	// ErrNotAccessible is returned when a field is requested from a value
	// that has no fields (a number, a bool, a plain slice, ...).
	ErrNotAccessible = errors.New("collections: value has no named fields")

	// ErrNotNumeric is returned by the Sum and Average family when a value
	// cannot be coerced to a number.
	ErrNotNumeric = errors.New("collections: value is not numeric")

	// ErrInvalidKey is returned when a value cannot be used as a Key.
	ErrInvalidKey = errors.New("collections: value cannot be used as a key")

	// ErrUnsupportedSource is returned by From when the source has no
	// collection, iterable or record shape.
	ErrUnsupportedSource = errors.New("collections: unsupported source")

	// ErrUnsupportedFormat is returned by Serialize and Unserialize for an
	// unknown Format.
	ErrUnsupportedFormat = errors.New("collections: unsupported format")

	// ErrUnsupportedVersion is returned by Unserialize when the payload was
	// written by an incompatible envelope version.
	ErrUnsupportedVersion = errors.New("collections: unsupported payload version")

	// ErrChecksumMismatch is returned by Unserialize when the decoded entries
	// do not hash to the checksum stored in the payload.
	ErrChecksumMismatch = errors.New("collections: payload checksum mismatch")

	// ErrMacroNotFound is returned by CallMacro when no macro is registered
	// under the requested name.
	ErrMacroNotFound = errors.New("collections: macro not found")
)
