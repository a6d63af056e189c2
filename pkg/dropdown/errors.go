package dropdown

import "errors"

// Sentinel errors for widget and store operations.
var (
	// ErrOutOfRange is returned when an option index does not exist.
	ErrOutOfRange = errors.New("dropdown: option index out of range")

	// ErrOptionDisabled is returned when a disabled option is highlighted or chosen.
	ErrOptionDisabled = errors.New("dropdown: option is disabled")

	// ErrOptionHidden is returned when an option filtered out by the search query is highlighted or chosen.
	ErrOptionHidden = errors.New("dropdown: option is hidden by the search query")

	// ErrValueNotFound is returned by SetValue when no option carries the value.
	ErrValueNotFound = errors.New("dropdown: value not found")

	// ErrNotFound is returned when a store has no snapshot for the widget id.
	ErrNotFound = errors.New("dropdown: widget not found")

	// ErrMarshal is returned when a snapshot cannot be serialized.
	ErrMarshal = errors.New("dropdown: failed to marshal snapshot")

	// ErrUnmarshal is returned when a stored snapshot cannot be decoded.
	ErrUnmarshal = errors.New("dropdown: failed to unmarshal snapshot")

	// ErrClosed is returned when a closed store is used.
	ErrClosed = errors.New("dropdown: store closed")
)
