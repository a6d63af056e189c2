package dom

import "errors"

// Sentinel errors for length conversion.
var (
	// ErrInvalidLength is returned when a length string cannot be parsed.
	ErrInvalidLength = errors.New("dom: invalid length")

	// ErrInvalidUnit is returned when a length uses an unknown or missing unit.
	ErrInvalidUnit = errors.New("dom: invalid unit")

	// ErrNoElement is returned when an em conversion has no element to resolve against.
	ErrNoElement = errors.New("dom: element is not specified")

	// ErrNoParentElement is returned when an em conversion's element has no parent.
	ErrNoParentElement = errors.New("dom: element does not have a parent element")
)
